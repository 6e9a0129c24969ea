package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	availableSlots "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	SubServiceID    uuid.UUID `json:"subServiceId"`
	SubServiceName  string    `json:"subServiceName"`
	DurationMinutes int       `json:"durationMinutes"`
	Date            string    `json:"date"`  // "2025-10-15"
	Slots           []string  `json:"slots"` // ["07:00", "07:30", ...]
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *availableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		SubServiceID:    resp.SubServiceID,
		SubServiceName:  resp.SubServiceName,
		DurationMinutes: resp.DurationMinutes,
		Date:            resp.Date.Format(domain.DateFormat),
		Slots:           slots,
	}
}
