package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshua-takyi/cinema/internal/models"
	"gorm.io/gorm"
)

type ReservationService struct {
	reservationsRepo models.ReservationsRepo
	showsRepo        models.ShowsRepo
	events           EventRecorder
	now              func() time.Time
}

func NewReservationService(reservationsRepo models.ReservationsRepo, showsRepo models.ShowsRepo, events EventRecorder) *ReservationService {
	return &ReservationService{
		reservationsRepo: reservationsRepo,
		showsRepo:        showsRepo,
		events:           events,
		now:              time.Now,
	}
}

func (rs *ReservationService) ListReservations(ctx context.Context, showID int64) ([]models.Reservation, error) {
	return rs.reservationsRepo.ListReservations(ctx, showID)
}

func (rs *ReservationService) GetReservation(ctx context.Context, id int64) (*models.Reservation, error) {
	r, err := rs.reservationsRepo.GetReservationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

// CreateReservation commits the reservation row, then writes a CREATED audit
// event. The event write cannot fail the call: once the row is committed the
// reservation is returned, whatever happened to the event. If the insert
// fails no event is attempted.
func (rs *ReservationService) CreateReservation(ctx context.Context, in *models.ReservationInput) (*models.Reservation, error) {
	if err := in.Validate(false); err != nil {
		return nil, err
	}
	if in.Status != nil && *in.Status != models.StatusReserved {
		return nil, models.NewValidationError("status", fmt.Sprintf("New reservations start as %s.", models.StatusReserved))
	}
	if err := rs.ensureShow(ctx, *in.Show); err != nil {
		return nil, err
	}

	reservation := &models.Reservation{}
	in.Apply(reservation)
	reservation.Status = models.StatusReserved

	if err := rs.reservationsRepo.CreateReservation(ctx, reservation); err != nil {
		return nil, translateShowFK(err, *in.Show)
	}

	rs.events.Record(ctx,
		reservation.ID,
		models.EventCreated,
		models.SourceWeb,
		fmt.Sprintf("Reservation for %s", reservation.CustomerName),
		NaiveLocal(rs.now()),
	)

	return reservation, nil
}

func (rs *ReservationService) UpdateReservation(ctx context.Context, id int64, in *models.ReservationInput, partial bool) (*models.Reservation, error) {
	if err := in.Validate(partial); err != nil {
		return nil, err
	}
	if in.Show != nil {
		if err := rs.ensureShow(ctx, *in.Show); err != nil {
			return nil, err
		}
	}

	found, err := rs.reservationsRepo.UpdateReservation(ctx, id, in.Changes())
	if err != nil {
		if in.Show != nil {
			return nil, translateShowFK(err, *in.Show)
		}
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return rs.GetReservation(ctx, id)
}

func (rs *ReservationService) DeleteReservation(ctx context.Context, id int64) error {
	deleted, err := rs.reservationsRepo.DeleteReservation(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (rs *ReservationService) ensureShow(ctx context.Context, showID int64) error {
	show, err := rs.showsRepo.GetShowByID(ctx, showID)
	if err != nil {
		return err
	}
	if show == nil {
		return invalidShow(showID)
	}
	return nil
}

// translateShowFK covers a show deleted between the existence check and the
// write.
func translateShowFK(err error, showID int64) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return invalidShow(showID)
	}
	return err
}

func invalidShow(showID int64) error {
	return models.NewValidationError("show", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", showID))
}
