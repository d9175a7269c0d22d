package apply_date_override

import "errors"

var (
	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("apply_date_override: invalid input data")

	// ErrPastDate is returned when the override targets a past date
	ErrPastDate = errors.New("apply_date_override: date is in the past")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("apply_date_override: internal error")
)
