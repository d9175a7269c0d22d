package booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBookingNotUpdatable is returned when the booking exists but is
	// no longer in a status the update applies to
	ErrBookingNotUpdatable = errors.New("booking.repository: booking not updatable")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
