package override

import "errors"

var (
	// ErrOverrideNotFound is returned when no override exists for the date
	ErrOverrideNotFound = errors.New("override.repository: override not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("override.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("override.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails
	ErrScanRow = errors.New("override.repository: failed to scan row")
)
