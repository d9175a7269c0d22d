package overrides

import "errors"

var (
	// ErrOverrideNotFound is returned when no override exists for the date
	ErrOverrideNotFound = errors.New("override not found")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("overrides service: internal error")
)
