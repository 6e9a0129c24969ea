package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// ValidAppointmentStatus reports whether status is a known value.
func ValidAppointmentStatus(status AppointmentStatus) bool {
	return status == StatusConfirmed || status == StatusCanceled
}

// Appointment is a confirmed (or canceled) booking of a staff member for a
// sub-service. EndTime is always StartTime plus the sub-service duration at
// the moment of booking.
type Appointment struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ServiceID       uuid.UUID
	SubServiceID    uuid.UUID
	StaffID         uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	Status          AppointmentStatus
	Notes           *string
	PaymentIntentID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the appointment still occupies its staff slot.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusConfirmed
}

// CanBeCanceled reports whether the appointment may still be canceled:
// it must be confirmed and must not have started yet.
func (a *Appointment) CanBeCanceled(now time.Time) bool {
	return a.Status == StatusConfirmed && a.StartTime.After(now)
}

// Overlaps reports whether the appointment overlaps the half-open interval
// [start, end). Bookings that merely touch at a boundary do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// AppointmentDetails is an appointment joined with the display names the
// booking history and admin dashboard render.
type AppointmentDetails struct {
	Appointment

	ClientName      string
	StaffName       string
	SubServiceName  string
	SubServicePrice float64
}

// AppointmentsFilter narrows appointment listings.
type AppointmentsFilter struct {
	ClientID      *uuid.UUID
	StaffID       *uuid.UUID
	StartOfDay    *time.Time // with EndOfDay, bounds appointments to one day
	EndOfDay      *time.Time
	OnlyConfirmed bool
}
