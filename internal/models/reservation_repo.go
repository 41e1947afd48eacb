package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ReservationsRepo interface {
	ListReservations(ctx context.Context, showID int64) ([]Reservation, error)
	GetReservationByID(ctx context.Context, id int64) (*Reservation, error)
	CreateReservation(ctx context.Context, reservation *Reservation) error
	UpdateReservation(ctx context.Context, id int64, changes map[string]interface{}) (bool, error)
	DeleteReservation(ctx context.Context, id int64) (bool, error)
	ListReservationsCreatedSince(ctx context.Context, since time.Time) ([]Reservation, error)
}

// ListReservations returns every reservation ordered by id; a positive
// showID narrows the list to one show.
func (pg *PostgresRepo) ListReservations(ctx context.Context, showID int64) ([]Reservation, error) {
	q := pg.db.WithContext(ctx).Order("id ASC")
	if showID > 0 {
		q = q.Where("show_id = ?", showID)
	}

	list := []Reservation{}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

func (pg *PostgresRepo) GetReservationByID(ctx context.Context, id int64) (*Reservation, error) {
	var r Reservation
	err := pg.db.WithContext(ctx).First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation %d: %w", id, err)
	}
	return &r, nil
}

func (pg *PostgresRepo) CreateReservation(ctx context.Context, reservation *Reservation) error {
	err := pg.db.WithContext(ctx).Omit("Show").Create(reservation).Error
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (pg *PostgresRepo) UpdateReservation(ctx context.Context, id int64, changes map[string]interface{}) (bool, error) {
	delete(changes, "created_at")
	if len(changes) == 0 {
		var count int64
		err := pg.db.WithContext(ctx).Model(&Reservation{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	}
	tx := pg.db.WithContext(ctx).Model(&Reservation{}).Where("id = ?", id).Updates(changes)
	if tx.Error != nil {
		return false, fmt.Errorf("failed to update reservation %d: %w", id, tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (pg *PostgresRepo) DeleteReservation(ctx context.Context, id int64) (bool, error) {
	tx := pg.db.WithContext(ctx).Delete(&Reservation{}, id)
	if tx.Error != nil {
		return false, fmt.Errorf("failed to delete reservation %d: %w", id, tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (pg *PostgresRepo) ListReservationsCreatedSince(ctx context.Context, since time.Time) ([]Reservation, error) {
	list := []Reservation{}
	err := pg.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reservations: %w", err)
	}
	return list, nil
}
