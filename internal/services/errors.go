package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
)
