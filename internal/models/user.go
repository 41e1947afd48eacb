package models

import (
	"time"
)

const UsersTable = "users"

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"type:varchar(254);not null;default:''" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	IsStaff      bool      `gorm:"not null" json:"is_staff"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	DateJoined   time.Time `gorm:"not null;autoCreateTime" json:"date_joined"`
}

func (User) TableName() string {
	return UsersTable
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
