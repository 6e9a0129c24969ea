package appointments

import "errors"

var (
	// ErrAppointmentNotFound - appointment not found.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied - the requester may not see or change this appointment.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel - the appointment has started, passed, or is already canceled.
	ErrCannotCancel = errors.New("appointment cannot be canceled")

	// ErrInternal - internal service error.
	ErrInternal = errors.New("service: internal error")
)
