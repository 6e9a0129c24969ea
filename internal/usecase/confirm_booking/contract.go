package confirm_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/mailer"
	"github.com/m04kA/Salon-BookingService/internal/integrations/payments"
)

// SubServiceRepository is the slice of the sub-service storage this use case needs.
type SubServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID, onlyActive bool) (*domain.SubService, error)
	ListAssignedStaff(ctx context.Context, subServiceID uuid.UUID) ([]domain.StaffAssignment, error)
}

// AppointmentRepository persists bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListDetails(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error)
}

// ClientRepository creates the client row on first booking.
type ClientRepository interface {
	EnsureExists(ctx context.Context, c *domain.Client) error
}

// PaymentsClient verifies payment intents with the payment provider.
type PaymentsClient interface {
	GetIntent(ctx context.Context, id string) (*payments.Intent, error)
}

// Mailer sends the confirmation email. Optional: a nil mailer disables it.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, to string, data mailer.BookingConfirmationData) error
}

// TxManager runs the booking insert inside a serializable transaction.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time, injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the use case.
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
