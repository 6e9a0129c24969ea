package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is a top-level service category (e.g. "Hair", "Nails").
type Service struct {
	ID          uuid.UUID
	Name        string
	Description *string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubService is a bookable offering nested under a Service, with its own
// price, duration and staff roster.
type SubService struct {
	ID              uuid.UUID
	ServiceID       uuid.UUID
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	IsActive        bool
	ImageURL        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Denormalized for listings
	ServiceName string
	StaffCount  int
}

// FitsBusinessDay reports whether the sub-service can be completed within a
// single business day at all.
func (s *SubService) FitsBusinessDay() bool {
	return s.DurationMinutes > 0 && s.DurationMinutes <= BusinessCloseMinutes-BusinessOpenMinutes
}
