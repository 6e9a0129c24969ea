package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Request models

// CreateServiceRequest - request to create a service category.
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// UpdateServiceRequest - request to update a service category. Nil fields
// are left unchanged.
type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// StaffAssignmentInput - one roster entry of a sub-service. A missing
// experience level defaults to beginner.
type StaffAssignmentInput struct {
	StaffID         uuid.UUID `json:"staffId"`
	ExperienceLevel *string   `json:"experienceLevel,omitempty"`
}

// CreateSubServiceRequest - request to create a sub-service with its roster.
type CreateSubServiceRequest struct {
	ServiceID       uuid.UUID              `json:"serviceId"`
	Name            string                 `json:"name"`
	Description     *string                `json:"description,omitempty"`
	Price           float64                `json:"price"`
	DurationMinutes int                    `json:"durationMinutes"`
	IsActive        *bool                  `json:"isActive,omitempty"`
	ImageURL        *string                `json:"imageUrl,omitempty"`
	Staff           []StaffAssignmentInput `json:"staff,omitempty"`
}

// UpdateSubServiceRequest - request to update a sub-service. Nil fields are
// left unchanged; a non-nil Staff replaces the whole roster.
type UpdateSubServiceRequest struct {
	Name            *string                 `json:"name,omitempty"`
	Description     *string                 `json:"description,omitempty"`
	Price           *float64                `json:"price,omitempty"`
	DurationMinutes *int                    `json:"durationMinutes,omitempty"`
	IsActive        *bool                   `json:"isActive,omitempty"`
	ImageURL        *string                 `json:"imageUrl,omitempty"`
	Staff           *[]StaffAssignmentInput `json:"staff,omitempty"`
}

// Response models

// ServiceResponse - service category data.
type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServiceListResponse - list of service categories.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// SubServiceResponse - sub-service data with denormalized listing fields.
type SubServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	ServiceID       uuid.UUID `json:"serviceId"`
	ServiceName     string    `json:"serviceName,omitempty"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	IsActive        bool      `json:"isActive"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	StaffCount      int       `json:"staffCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SubServiceListResponse - list of sub-services.
type SubServiceListResponse struct {
	SubServices []SubServiceResponse `json:"subServices"`
}

// FromDomainService converts a domain service category to a response.
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainServiceList converts a list of domain service categories.
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, *FromDomainService(s))
	}
	return &ServiceListResponse{Services: out}
}

// FromDomainSubService converts a domain sub-service to a response.
func FromDomainSubService(s *domain.SubService) *SubServiceResponse {
	return &SubServiceResponse{
		ID:              s.ID,
		ServiceID:       s.ServiceID,
		ServiceName:     s.ServiceName,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		ImageURL:        s.ImageURL,
		StaffCount:      s.StaffCount,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainSubServiceList converts a list of domain sub-services.
func FromDomainSubServiceList(subs []*domain.SubService) *SubServiceListResponse {
	out := make([]SubServiceResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, *FromDomainSubService(s))
	}
	return &SubServiceListResponse{SubServices: out}
}
