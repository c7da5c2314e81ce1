package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSession    = errors.New("no session")
	ErrUnauthorized = errors.New("unauthorized")
)
