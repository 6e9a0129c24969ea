package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	staffRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/staffmember"
	subServiceRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/subservice"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog/models"
)

// Service manages the salon catalog: service categories, sub-services, and
// the staff roster of each sub-service.
type Service struct {
	serviceRepo    ServiceRepository
	subServiceRepo SubServiceRepository
	staffRepo      StaffRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService creates a catalog service.
func NewService(
	serviceRepo ServiceRepository,
	subServiceRepo SubServiceRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:    serviceRepo,
		subServiceRepo: subServiceRepo,
		staffRepo:      staffRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// ListServices returns all service categories.
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// GetService returns one service category.
func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(service), nil
}

// CreateService adds a service category.
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:        name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service id=%s created", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService modifies a service category. Nil request fields are left
// unchanged.
func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		service.Name = name
	}
	if req.Description != nil {
		if err := validateDescription(req.Description); err != nil {
			return nil, err
		}
		service.Description = req.Description
	}
	if req.ImageURL != nil {
		service.ImageURL = req.ImageURL
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: service id=%s updated", id)
	return models.FromDomainService(service), nil
}

// DeleteService removes a service category together with its sub-services.
func (s *Service) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for service id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: service id=%s deleted", id)
	return nil
}

// ListSubServices returns the sub-services of one category. Public callers
// see only active sub-services.
func (s *Service) ListSubServices(ctx context.Context, serviceID uuid.UUID, onlyActive bool) (*models.SubServiceListResponse, error) {
	if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("ListSubServices: repository error for service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListSubServices - repository error: %v", ErrInternal, err)
	}

	subs, err := s.subServiceRepo.ListByService(ctx, serviceID, onlyActive)
	if err != nil {
		s.logger.Error("ListSubServices: repository error for service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListSubServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSubServiceList(subs), nil
}

// ListAllSubServices returns every sub-service, active or not. Admin only.
func (s *Service) ListAllSubServices(ctx context.Context) (*models.SubServiceListResponse, error) {
	subs, err := s.subServiceRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAllSubServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAllSubServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSubServiceList(subs), nil
}

// GetSubService returns one sub-service.
func (s *Service) GetSubService(ctx context.Context, id uuid.UUID, onlyActive bool) (*models.SubServiceResponse, error) {
	sub, err := s.subServiceRepo.GetByID(ctx, id, onlyActive)
	if err != nil {
		if errors.Is(err, subServiceRepo.ErrSubServiceNotFound) {
			return nil, ErrSubServiceNotFound
		}
		s.logger.Error("GetSubService: repository error for sub-service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetSubService - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSubService(sub), nil
}

// CreateSubService adds a sub-service and its staff roster atomically.
func (s *Service) CreateSubService(ctx context.Context, req *models.CreateSubServiceRequest) (*models.SubServiceResponse, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	if err := validateDuration(req.DurationMinutes); err != nil {
		return nil, err
	}

	if _, err := s.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("CreateSubService: repository error for service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: CreateSubService - repository error: %v", ErrInternal, err)
	}

	assignments, err := s.resolveAssignments(ctx, req.Staff)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	sub := &domain.SubService{
		ServiceID:       req.ServiceID,
		Name:            name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        isActive,
		ImageURL:        req.ImageURL,
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.subServiceRepo.Create(txCtx, sub); err != nil {
			return fmt.Errorf("%w: CreateSubService - repository error: %v", ErrInternal, err)
		}
		if len(assignments) > 0 {
			if err := s.subServiceRepo.ReplaceAssignments(txCtx, sub.ID, assignments); err != nil {
				return fmt.Errorf("%w: CreateSubService - repository error: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CreateSubService: transaction failed: %v", err)
		return nil, err
	}

	sub.StaffCount = len(assignments)
	s.logger.Info("CreateSubService: sub-service id=%s created with %d staff", sub.ID, len(assignments))
	return models.FromDomainSubService(sub), nil
}

// UpdateSubService modifies a sub-service. Nil request fields are left
// unchanged; a non-nil Staff replaces the whole roster.
func (s *Service) UpdateSubService(ctx context.Context, id uuid.UUID, req *models.UpdateSubServiceRequest) (*models.SubServiceResponse, error) {
	sub, err := s.subServiceRepo.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, subServiceRepo.ErrSubServiceNotFound) {
			return nil, ErrSubServiceNotFound
		}
		s.logger.Error("UpdateSubService: repository error for sub-service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSubService - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		sub.Name = name
	}
	if req.Description != nil {
		if err := validateDescription(req.Description); err != nil {
			return nil, err
		}
		sub.Description = req.Description
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		sub.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes); err != nil {
			return nil, err
		}
		sub.DurationMinutes = *req.DurationMinutes
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	if req.ImageURL != nil {
		sub.ImageURL = req.ImageURL
	}

	var assignments []domain.StaffAssignment
	if req.Staff != nil {
		assignments, err = s.resolveAssignments(ctx, *req.Staff)
		if err != nil {
			return nil, err
		}
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.subServiceRepo.Update(txCtx, sub); err != nil {
			if errors.Is(err, subServiceRepo.ErrSubServiceNotFound) {
				return ErrSubServiceNotFound
			}
			return fmt.Errorf("%w: UpdateSubService - repository error: %v", ErrInternal, err)
		}
		if req.Staff != nil {
			if err := s.subServiceRepo.ReplaceAssignments(txCtx, sub.ID, assignments); err != nil {
				return fmt.Errorf("%w: UpdateSubService - repository error: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrSubServiceNotFound) {
			s.logger.Error("UpdateSubService: transaction failed: %v", err)
		}
		return nil, err
	}

	if req.Staff != nil {
		sub.StaffCount = len(assignments)
	}
	s.logger.Info("UpdateSubService: sub-service id=%s updated", id)
	return models.FromDomainSubService(sub), nil
}

// DeleteSubService removes a sub-service and its roster.
func (s *Service) DeleteSubService(ctx context.Context, id uuid.UUID) error {
	if err := s.subServiceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, subServiceRepo.ErrSubServiceNotFound) {
			return ErrSubServiceNotFound
		}
		s.logger.Error("DeleteSubService: repository error for sub-service id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteSubService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSubService: sub-service id=%s deleted", id)
	return nil
}

// resolveAssignments validates roster entries: the staff member must exist,
// duplicates collapse to the first entry, and a missing experience level
// defaults to beginner.
func (s *Service) resolveAssignments(ctx context.Context, inputs []models.StaffAssignmentInput) ([]domain.StaffAssignment, error) {
	assignments := make([]domain.StaffAssignment, 0, len(inputs))
	seen := make(map[uuid.UUID]struct{}, len(inputs))

	for _, in := range inputs {
		if in.StaffID == uuid.Nil {
			return nil, fmt.Errorf("%w: staff id is required", ErrInvalidInput)
		}
		if _, ok := seen[in.StaffID]; ok {
			continue
		}
		seen[in.StaffID] = struct{}{}

		level := domain.DefaultExperienceLevel
		if in.ExperienceLevel != nil {
			level = domain.ExperienceLevel(strings.ToLower(strings.TrimSpace(*in.ExperienceLevel)))
			if !domain.ValidExperienceLevel(level) {
				return nil, fmt.Errorf("%w: unknown experience level %q", ErrInvalidInput, *in.ExperienceLevel)
			}
		}

		member, err := s.staffRepo.GetByID(ctx, in.StaffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				return nil, fmt.Errorf("%w: id=%s", ErrStaffNotFound, in.StaffID)
			}
			s.logger.Error("resolveAssignments: repository error for staff id=%s: %v", in.StaffID, err)
			return nil, fmt.Errorf("%w: resolveAssignments - repository error: %v", ErrInternal, err)
		}

		assignments = append(assignments, domain.StaffAssignment{
			StaffID:         member.ID,
			FullName:        member.FullName,
			Role:            member.Role,
			ExperienceLevel: level,
		})
	}

	return assignments, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && len(*description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	return nil
}

func validateDuration(minutes int) error {
	if minutes < domain.MinDurationMinutes || minutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}
