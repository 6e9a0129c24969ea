package catalog

import "errors"

var (
	// ErrServiceNotFound - service category not found.
	ErrServiceNotFound = errors.New("service not found")

	// ErrSubServiceNotFound - sub-service not found.
	ErrSubServiceNotFound = errors.New("sub-service not found")

	// ErrStaffNotFound - an assigned staff member does not exist.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidInput - invalid input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal - internal service error.
	ErrInternal = errors.New("service: internal error")
)
