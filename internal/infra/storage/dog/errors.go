package dog

import "errors"

var (
	// ErrDogNotFound is returned when the dog does not exist
	ErrDogNotFound = errors.New("dog.repository: dog not found")

	// ErrUnknownOwnerKind is returned for an owner kind the schema cannot store
	ErrUnknownOwnerKind = errors.New("dog.repository: unknown owner kind")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("dog.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("dog.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails
	ErrScanRow = errors.New("dog.repository: failed to scan row")
)
