package staff

import "errors"

var (
	// ErrStaffNotFound - staff member not found.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidInput - invalid input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal - internal service error.
	ErrInternal = errors.New("service: internal error")
)
