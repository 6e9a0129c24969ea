package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	staffRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/staffmember"
	"github.com/m04kA/Salon-BookingService/internal/service/staff/models"
)

// Service manages the staff roster.
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService creates a staff service.
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// List returns all staff members ordered by name.
func (s *Service) List(ctx context.Context) (*models.StaffListResponse, error) {
	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaffList(staff), nil
}

// GetByID returns one staff member.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for staff id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaff(member), nil
}

// Create adds a staff member.
func (s *Service) Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: full name is too long", ErrInvalidInput)
	}

	member := &domain.Staff{
		FullName: name,
		Role:     normalizeRolePtr(req.Role),
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: staff member id=%s created", created.ID)
	return models.FromDomainStaff(created), nil
}

// Update modifies a staff member. Nil request fields are left unchanged.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateStaffRequest) (*models.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Update: repository error for staff id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full name cannot be empty", ErrInvalidInput)
		}
		if len(name) > domain.MaxNameLength {
			return nil, fmt.Errorf("%w: full name is too long", ErrInvalidInput)
		}
		member.FullName = name
	}
	if req.Role != nil {
		member.Role = normalizeRolePtr(req.Role)
	}

	if err := s.staffRepo.Update(ctx, member); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Update: repository error for staff id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: staff member id=%s updated", id)
	return models.FromDomainStaff(member), nil
}

// Delete removes a staff member. Assignments and appointment history go with
// the row via storage-level cascades.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return ErrStaffNotFound
		}
		s.logger.Error("Delete: repository error for staff id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: staff member id=%s deleted", id)
	return nil
}

// normalizeRolePtr trims the role label; an empty label clears the role.
func normalizeRolePtr(role *string) *string {
	if role == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*role)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
