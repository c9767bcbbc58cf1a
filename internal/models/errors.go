package models

import (
	"errors"
)

// Project-related errors
var (
	// ErrInvalidInput is returned when a submitted form fails validation
	ErrInvalidInput = errors.New("invalid input, please try again")
)
