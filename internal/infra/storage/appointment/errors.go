package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when an appointment row does not exist.
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken is returned when the exclusion constraint rejects an insert
	// because the staff member already has a confirmed overlapping appointment.
	ErrSlotTaken = errors.New("appointment.repository: staff already booked for an overlapping slot")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
