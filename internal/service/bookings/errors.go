package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel is returned when the booking is not in a cancellable state
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotComplete is returned when the booking is not in a completable state
	ErrCannotComplete = errors.New("booking cannot be completed")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("bookings service: internal error")
)
