package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepo interface {
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpsertUser(ctx context.Context, user *User) error
}

func (pg *PostgresRepo) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := pg.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &u, nil
}

// UpsertUser inserts the user or refreshes email, password and flags of an
// existing user with the same username.
func (pg *PostgresRepo) UpsertUser(ctx context.Context, user *User) error {
	err := pg.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "password_hash", "is_staff", "is_active"}),
		}).
		Create(user).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user %q: %w", user.Username, err)
	}
	return nil
}
