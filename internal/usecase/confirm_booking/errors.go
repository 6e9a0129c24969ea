package confirm_booking

import "errors"

var (
	// ErrInvalidInput - request parameters failed validation.
	ErrInvalidInput = errors.New("confirm_booking.usecase: invalid input")

	// ErrSubServiceNotFound - sub-service does not exist or is inactive.
	ErrSubServiceNotFound = errors.New("confirm_booking.usecase: sub-service not found")

	// ErrStaffNotEligible - the chosen stylist does not perform this sub-service.
	ErrStaffNotEligible = errors.New("confirm_booking.usecase: staff member not eligible for sub-service")

	// ErrDateNotBookable - the requested date is in the past or the salon is closed.
	ErrDateNotBookable = errors.New("confirm_booking.usecase: date is not bookable")

	// ErrInvalidTimeSlot - the start time is not on the slot grid for this duration.
	ErrInvalidTimeSlot = errors.New("confirm_booking.usecase: start time is not a valid slot")

	// ErrPaymentNotCompleted - the payment intent has not succeeded.
	ErrPaymentNotCompleted = errors.New("confirm_booking.usecase: payment not completed")

	// ErrPaymentIntentNotFound - the payment intent does not exist.
	ErrPaymentIntentNotFound = errors.New("confirm_booking.usecase: payment intent not found")

	// ErrSlotTaken - another confirmed appointment occupies the stylist at this time.
	ErrSlotTaken = errors.New("confirm_booking.usecase: slot already taken")

	// ErrInternal - internal use case error.
	ErrInternal = errors.New("confirm_booking.usecase: internal error")
)
