package confirm_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request - input parameters of the use case.
type Request struct {
	ClientID        uuid.UUID
	ClientName      string
	ClientEmail     *string
	ClientPhone     *string
	SubServiceID    uuid.UUID
	StaffID         uuid.UUID
	Date            time.Time
	StartTime       types.TimeString
	PaymentIntentID string
	Notes           *string
}

// Response - the confirmed appointment.
type Response struct {
	AppointmentID  uuid.UUID
	SubServiceID   uuid.UUID
	SubServiceName string
	StaffID        uuid.UUID
	StaffName      string
	StartTime      time.Time
	EndTime        time.Time
	Status         domain.AppointmentStatus
	Price          float64
}
