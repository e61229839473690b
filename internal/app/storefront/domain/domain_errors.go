package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrInvalidEmail     = errors.New("please provide a valid email address")
	ErrMissingEventName = errors.New("event name is required")
)
