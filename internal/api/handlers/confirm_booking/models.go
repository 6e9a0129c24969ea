package confirm_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	confirmBooking "github.com/m04kA/Salon-BookingService/internal/usecase/confirm_booking"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	ClientName      string    `json:"clientName" validate:"required"`
	ClientEmail     *string   `json:"clientEmail,omitempty" validate:"omitempty,email"`
	ClientPhone     *string   `json:"clientPhone,omitempty"`
	SubServiceID    uuid.UUID `json:"subServiceId" validate:"required"`
	StaffID         uuid.UUID `json:"staffId" validate:"required"`
	Date            string    `json:"date" validate:"required"`      // "2025-10-15"
	StartTime       string    `json:"startTime" validate:"required"` // "10:00"
	PaymentIntentID string    `json:"paymentIntentId" validate:"required"`
	Notes           *string   `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             uuid.UUID `json:"id"`
	SubServiceID   uuid.UUID `json:"subServiceId"`
	SubServiceName string    `json:"subServiceName"`
	StaffID        uuid.UUID `json:"staffId"`
	StaffName      string    `json:"staffName"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Status         string    `json:"status"`
	Price          float64   `json:"price"`
}

// ToUseCaseRequest converts the HTTP request to the use case model.
func (r *ConfirmBookingRequest) ToUseCaseRequest(clientID uuid.UUID) (*confirmBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &confirmBooking.Request{
		ClientID:        clientID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		SubServiceID:    r.SubServiceID,
		StaffID:         r.StaffID,
		Date:            date,
		StartTime:       startTime,
		PaymentIntentID: r.PaymentIntentID,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *confirmBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.AppointmentID,
		SubServiceID:   resp.SubServiceID,
		SubServiceName: resp.SubServiceName,
		StaffID:        resp.StaffID,
		StaffName:      resp.StaffName,
		Date:           resp.StartTime.Format(domain.DateFormat),
		StartTime:      resp.StartTime.Format(domain.TimeFormat),
		EndTime:        resp.EndTime.Format(domain.TimeFormat),
		Status:         string(resp.Status),
		Price:          resp.Price,
	}
}
