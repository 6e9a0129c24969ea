package get_available_slots

import "errors"

var (
	// ErrInvalidInput - request parameters failed validation.
	ErrInvalidInput = errors.New("get_available_slots.usecase: invalid input")

	// ErrSubServiceNotFound - sub-service does not exist or is inactive.
	ErrSubServiceNotFound = errors.New("get_available_slots.usecase: sub-service not found")

	// ErrInternal - internal use case error.
	ErrInternal = errors.New("get_available_slots.usecase: internal error")
)
