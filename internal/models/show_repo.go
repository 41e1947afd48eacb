package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type ShowsRepo interface {
	ListShows(ctx context.Context, search string) ([]Show, error)
	GetShowByID(ctx context.Context, id int64) (*Show, error)
	CreateShow(ctx context.Context, show *Show) error
	UpdateShow(ctx context.Context, id int64, changes map[string]interface{}) (bool, error)
	DeleteShow(ctx context.Context, id int64) (bool, error)
}

func (pg *PostgresRepo) ListShows(ctx context.Context, search string) ([]Show, error) {
	q := pg.db.WithContext(ctx).Order("id ASC")
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where("movie_title ILIKE ?", "%"+escapeLike(search)+"%")
	}

	shows := []Show{}
	if err := q.Find(&shows).Error; err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}

// GetShowByID returns nil, nil when the show does not exist.
func (pg *PostgresRepo) GetShowByID(ctx context.Context, id int64) (*Show, error) {
	var show Show
	err := pg.db.WithContext(ctx).First(&show, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get show %d: %w", id, err)
	}
	return &show, nil
}

func (pg *PostgresRepo) CreateShow(ctx context.Context, show *Show) error {
	if err := pg.db.WithContext(ctx).Create(show).Error; err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}
	return nil
}

func (pg *PostgresRepo) UpdateShow(ctx context.Context, id int64, changes map[string]interface{}) (bool, error) {
	if len(changes) == 0 {
		var count int64
		err := pg.db.WithContext(ctx).Model(&Show{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	}
	tx := pg.db.WithContext(ctx).Model(&Show{}).Where("id = ?", id).Updates(changes)
	if tx.Error != nil {
		return false, fmt.Errorf("failed to update show %d: %w", id, tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

// DeleteShow removes the show; its reservations go with it through the
// ON DELETE CASCADE foreign key.
func (pg *PostgresRepo) DeleteShow(ctx context.Context, id int64) (bool, error) {
	tx := pg.db.WithContext(ctx).Delete(&Show{}, id)
	if tx.Error != nil {
		return false, fmt.Errorf("failed to delete show %d: %w", id, tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
