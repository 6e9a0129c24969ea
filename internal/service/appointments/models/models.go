package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Request models

// GetClientAppointmentsRequest - request for one client's booking history.
type GetClientAppointmentsRequest struct {
	ClientID    uuid.UUID
	RequesterID uuid.UUID
	IsAdmin     bool
}

// ListAppointmentsRequest - admin dashboard filters.
type ListAppointmentsRequest struct {
	ClientID      *uuid.UUID
	StaffID       *uuid.UUID
	Date          *time.Time
	OnlyConfirmed bool
}

// CancelAppointmentRequest - request to cancel an appointment.
type CancelAppointmentRequest struct {
	AppointmentID uuid.UUID
	RequesterID   uuid.UUID
	IsAdmin       bool
}

// Response models

// AppointmentResponse - appointment data with display names.
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	ClientID        uuid.UUID `json:"clientId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	SubServiceID    uuid.UUID `json:"subServiceId"`
	StaffID         uuid.UUID `json:"staffId"`
	Date            string    `json:"date"`      // "2025-10-15"
	StartTime       string    `json:"startTime"` // "10:00"
	EndTime         string    `json:"endTime"`   // "11:30"
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	ClientName      string    `json:"clientName"`
	StaffName       string    `json:"staffName"`
	SubServiceName  string    `json:"subServiceName"`
	SubServicePrice float64   `json:"subServicePrice"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse - list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainDetails converts joined appointment details to a response.
func FromDomainDetails(d *domain.AppointmentDetails) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              d.ID,
		ClientID:        d.ClientID,
		ServiceID:       d.ServiceID,
		SubServiceID:    d.SubServiceID,
		StaffID:         d.StaffID,
		Date:            d.StartTime.Format(domain.DateFormat),
		StartTime:       d.StartTime.Format(domain.TimeFormat),
		EndTime:         d.EndTime.Format(domain.TimeFormat),
		Status:          string(d.Status),
		Notes:           d.Notes,
		ClientName:      d.ClientName,
		StaffName:       d.StaffName,
		SubServiceName:  d.SubServiceName,
		SubServicePrice: d.SubServicePrice,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// FromDomainDetailsList converts a list of joined appointment details.
func FromDomainDetailsList(details []*domain.AppointmentDetails) *AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, *FromDomainDetails(d))
	}
	return &AppointmentListResponse{Appointments: out}
}

// ToDomainFilter converts the admin listing request to a storage filter.
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentsFilter {
	filter := domain.AppointmentsFilter{
		ClientID:      r.ClientID,
		StaffID:       r.StaffID,
		OnlyConfirmed: r.OnlyConfirmed,
	}
	if r.Date != nil {
		startOfDay := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, r.Date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)
		filter.StartOfDay = &startOfDay
		filter.EndOfDay = &endOfDay
	}
	return filter
}
