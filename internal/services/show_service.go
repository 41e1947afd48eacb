package services

import (
	"context"

	"github.com/joshua-takyi/cinema/internal/models"
)

type ShowService struct {
	showsRepo models.ShowsRepo
}

func NewShowService(showsRepo models.ShowsRepo) *ShowService {
	return &ShowService{showsRepo: showsRepo}
}

func (ss *ShowService) ListShows(ctx context.Context, search string) ([]models.Show, error) {
	return ss.showsRepo.ListShows(ctx, search)
}

func (ss *ShowService) GetShow(ctx context.Context, id int64) (*models.Show, error) {
	show, err := ss.showsRepo.GetShowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, ErrNotFound
	}
	return show, nil
}

func (ss *ShowService) CreateShow(ctx context.Context, in *models.ShowInput) (*models.Show, error) {
	if err := in.Validate(false); err != nil {
		return nil, err
	}
	show := &models.Show{}
	in.Apply(show)
	if err := ss.showsRepo.CreateShow(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}

// UpdateShow handles both PUT (partial=false) and PATCH (partial=true).
func (ss *ShowService) UpdateShow(ctx context.Context, id int64, in *models.ShowInput, partial bool) (*models.Show, error) {
	if err := in.Validate(partial); err != nil {
		return nil, err
	}
	found, err := ss.showsRepo.UpdateShow(ctx, id, in.Changes())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return ss.GetShow(ctx, id)
}

func (ss *ShowService) DeleteShow(ctx context.Context, id int64) error {
	deleted, err := ss.showsRepo.DeleteShow(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
