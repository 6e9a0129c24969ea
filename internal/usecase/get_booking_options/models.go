package get_booking_options

import (
	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Request - input parameters of the use case.
type Request struct {
	SubServiceID uuid.UUID
}

// StaffOption - one selectable stylist.
type StaffOption struct {
	ID              uuid.UUID
	FullName        string
	ExperienceLevel domain.ExperienceLevel
}

// Response - everything the booking form needs for one sub-service.
type Response struct {
	SubServiceID      uuid.UUID
	SubServiceName    string
	ServiceName       string
	Price             float64
	DurationMinutes   int
	Staff             []StaffOption
	AutoSelectStaffID *uuid.UUID
}
