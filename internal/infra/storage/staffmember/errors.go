package staffmember

import "errors"

var (
	// ErrStaffNotFound is returned when a staff row does not exist.
	ErrStaffNotFound = errors.New("staffmember.repository: staff member not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("staffmember.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("staffmember.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("staffmember.repository: failed to scan row")
)
