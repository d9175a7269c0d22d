package settings

import "errors"

var (
	// ErrInvalidInput is returned for settings outside the business limits
	ErrInvalidInput = errors.New("settings service: invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("settings service: internal error")
)
