package calendar

import "errors"

var (
	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("calendar client: internal error")

	// ErrUnexpectedStatus is returned when the calendar server responds
	// with a status the client does not expect
	ErrUnexpectedStatus = errors.New("calendar client: unexpected status code")
)
