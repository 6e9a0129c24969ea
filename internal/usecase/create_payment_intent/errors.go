package create_payment_intent

import "errors"

var (
	// ErrInvalidInput - request parameters failed validation.
	ErrInvalidInput = errors.New("create_payment_intent.usecase: invalid input")

	// ErrSubServiceNotFound - sub-service does not exist or is inactive.
	ErrSubServiceNotFound = errors.New("create_payment_intent.usecase: sub-service not found")

	// ErrInternal - internal use case error.
	ErrInternal = errors.New("create_payment_intent.usecase: internal error")
)
