package get_booking_options

import "errors"

var (
	// ErrInvalidInput - request parameters failed validation.
	ErrInvalidInput = errors.New("get_booking_options.usecase: invalid input")

	// ErrSubServiceNotFound - sub-service does not exist or is inactive.
	ErrSubServiceNotFound = errors.New("get_booking_options.usecase: sub-service not found")

	// ErrInternal - internal use case error.
	ErrInternal = errors.New("get_booking_options.usecase: internal error")
)
