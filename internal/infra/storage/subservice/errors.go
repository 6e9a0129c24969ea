package subservice

import "errors"

var (
	// ErrSubServiceNotFound is returned when a sub-service row does not exist.
	ErrSubServiceNotFound = errors.New("subservice.repository: sub-service not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("subservice.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("subservice.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("subservice.repository: failed to scan row")
)
