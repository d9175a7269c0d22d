package request

import "errors"

var (
	// ErrRequestNotFound is returned when the request does not exist
	ErrRequestNotFound = errors.New("request.repository: request not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("request.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("request.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails
	ErrScanRow = errors.New("request.repository: failed to scan row")
)
