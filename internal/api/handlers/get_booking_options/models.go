package get_booking_options

import (
	"github.com/google/uuid"

	bookingOptions "github.com/m04kA/Salon-BookingService/internal/usecase/get_booking_options"
)

// StaffOptionResponse HTTP model of one selectable stylist
type StaffOptionResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"fullName"`
	ExperienceLevel string    `json:"experienceLevel"`
}

// BookingOptionsResponse HTTP response model
type BookingOptionsResponse struct {
	SubServiceID      uuid.UUID             `json:"subServiceId"`
	SubServiceName    string                `json:"subServiceName"`
	ServiceName       string                `json:"serviceName"`
	Price             float64               `json:"price"`
	DurationMinutes   int                   `json:"durationMinutes"`
	Staff             []StaffOptionResponse `json:"staff"`
	AutoSelectStaffID *uuid.UUID            `json:"autoSelectStaffId,omitempty"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *bookingOptions.Response) *BookingOptionsResponse {
	staff := make([]StaffOptionResponse, 0, len(resp.Staff))
	for _, s := range resp.Staff {
		staff = append(staff, StaffOptionResponse{
			ID:              s.ID,
			FullName:        s.FullName,
			ExperienceLevel: string(s.ExperienceLevel),
		})
	}

	return &BookingOptionsResponse{
		SubServiceID:      resp.SubServiceID,
		SubServiceName:    resp.SubServiceName,
		ServiceName:       resp.ServiceName,
		Price:             resp.Price,
		DurationMinutes:   resp.DurationMinutes,
		Staff:             staff,
		AutoSelectStaffID: resp.AutoSelectStaffID,
	}
}
