package get_booking_options

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// SubServiceRepository is the slice of the sub-service storage this use case needs.
type SubServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID, onlyActive bool) (*domain.SubService, error)
	ListAssignedStaff(ctx context.Context, subServiceID uuid.UUID) ([]domain.StaffAssignment, error)
}

// Logger is the logging interface of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
