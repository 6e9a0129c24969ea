package payments

import "errors"

var (
	// ErrIntentNotFound is returned when Stripe does not know the payment intent.
	ErrIntentNotFound = errors.New("payments client: payment intent not found")

	// ErrInternal is returned for transport or provider failures.
	ErrInternal = errors.New("payments client: internal error")
)
