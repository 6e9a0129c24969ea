package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request - input parameters of the use case.
type Request struct {
	SubServiceID uuid.UUID
	Date         time.Time
}

// Response - generated slots for the requested day.
type Response struct {
	SubServiceID    uuid.UUID
	SubServiceName  string
	DurationMinutes int
	Date            time.Time
	Slots           []types.TimeString
}
