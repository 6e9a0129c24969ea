package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// AppointmentRepository is the appointment storage interface.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListDetails(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

// TimeProvider supplies the current time, injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time on the salon's wall clock.
func (p *RealTimeProvider) Now() time.Time {
	return domain.Now()
}
