package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// SubServiceRepository is the slice of the sub-service storage this use case needs.
type SubServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID, onlyActive bool) (*domain.SubService, error)
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
