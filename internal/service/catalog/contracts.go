package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// ServiceRepository is the service category storage interface.
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubServiceRepository is the sub-service storage interface.
type SubServiceRepository interface {
	Create(ctx context.Context, sub *domain.SubService) (*domain.SubService, error)
	GetByID(ctx context.Context, id uuid.UUID, onlyActive bool) (*domain.SubService, error)
	ListByService(ctx context.Context, serviceID uuid.UUID, onlyActive bool) ([]*domain.SubService, error)
	ListAll(ctx context.Context) ([]*domain.SubService, error)
	Update(ctx context.Context, sub *domain.SubService) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAssignedStaff(ctx context.Context, subServiceID uuid.UUID) ([]domain.StaffAssignment, error)
	ReplaceAssignments(ctx context.Context, subServiceID uuid.UUID, assignments []domain.StaffAssignment) error
}

// StaffRepository is the slice of staff storage the catalog needs to
// validate roster assignments.
type StaffRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
}

// TransactionManager runs multi-statement catalog writes atomically.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
