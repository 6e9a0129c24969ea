package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	staffRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/staffmember"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog/models"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type stubServiceRepo struct {
	service *domain.Service
	getErr  error
}

func (s *stubServiceRepo) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	service.ID = uuid.New()
	return service, nil
}

func (s *stubServiceRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Service, error) {
	return s.service, s.getErr
}

func (s *stubServiceRepo) List(_ context.Context) ([]*domain.Service, error) { return nil, nil }

func (s *stubServiceRepo) Update(_ context.Context, _ *domain.Service) error { return nil }

func (s *stubServiceRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type stubSubServiceRepo struct {
	replaced []domain.StaffAssignment
}

func (s *stubSubServiceRepo) Create(_ context.Context, sub *domain.SubService) (*domain.SubService, error) {
	sub.ID = uuid.New()
	return sub, nil
}

func (s *stubSubServiceRepo) GetByID(_ context.Context, _ uuid.UUID, _ bool) (*domain.SubService, error) {
	return nil, nil
}

func (s *stubSubServiceRepo) ListByService(_ context.Context, _ uuid.UUID, _ bool) ([]*domain.SubService, error) {
	return nil, nil
}

func (s *stubSubServiceRepo) ListAll(_ context.Context) ([]*domain.SubService, error) {
	return nil, nil
}

func (s *stubSubServiceRepo) Update(_ context.Context, _ *domain.SubService) error { return nil }

func (s *stubSubServiceRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubSubServiceRepo) ListAssignedStaff(_ context.Context, _ uuid.UUID) ([]domain.StaffAssignment, error) {
	return nil, nil
}

func (s *stubSubServiceRepo) ReplaceAssignments(_ context.Context, _ uuid.UUID, assignments []domain.StaffAssignment) error {
	s.replaced = assignments
	return nil
}

type stubStaffRepo struct {
	members map[uuid.UUID]*domain.Staff
}

func (s *stubStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Staff, error) {
	member, ok := s.members[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return member, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newCatalogFixture(members ...*domain.Staff) (*Service, *stubSubServiceRepo) {
	staffMembers := make(map[uuid.UUID]*domain.Staff, len(members))
	for _, m := range members {
		staffMembers[m.ID] = m
	}
	subRepo := &stubSubServiceRepo{}
	svc := NewService(
		&stubServiceRepo{service: &domain.Service{ID: uuid.New(), Name: "Hair"}},
		subRepo,
		&stubStaffRepo{members: staffMembers},
		passthroughTxManager{},
		noopLogger{},
	)
	return svc, subRepo
}

func TestCreateSubService_RosterIsResolvedAndStored(t *testing.T) {
	stylist := &domain.Staff{ID: uuid.New(), FullName: "Anna Reyes"}
	svc, subRepo := newCatalogFixture(stylist)

	resp, err := svc.CreateSubService(context.Background(), &models.CreateSubServiceRequest{
		ServiceID:       uuid.New(),
		Name:            "Women's Haircut",
		Price:           65,
		DurationMinutes: 45,
		Staff: []models.StaffAssignmentInput{
			{StaffID: stylist.ID, ExperienceLevel: ptr.Ptr("Expert")},
		},
	})
	require.NoError(t, err)
	require.Len(t, subRepo.replaced, 1)
	assert.Equal(t, stylist.ID, subRepo.replaced[0].StaffID)
	assert.Equal(t, domain.ExperienceExpert, subRepo.replaced[0].ExperienceLevel)
	assert.Equal(t, 1, resp.StaffCount)
}

func TestCreateSubService_DuplicateStaffCollapse(t *testing.T) {
	stylist := &domain.Staff{ID: uuid.New(), FullName: "Anna Reyes"}
	svc, subRepo := newCatalogFixture(stylist)

	_, err := svc.CreateSubService(context.Background(), &models.CreateSubServiceRequest{
		ServiceID:       uuid.New(),
		Name:            "Women's Haircut",
		Price:           65,
		DurationMinutes: 45,
		Staff: []models.StaffAssignmentInput{
			{StaffID: stylist.ID},
			{StaffID: stylist.ID, ExperienceLevel: ptr.Ptr("expert")},
		},
	})
	require.NoError(t, err)
	require.Len(t, subRepo.replaced, 1)
	assert.Equal(t, domain.DefaultExperienceLevel, subRepo.replaced[0].ExperienceLevel)
}

func TestCreateSubService_UnknownStaffRejected(t *testing.T) {
	svc, _ := newCatalogFixture()

	_, err := svc.CreateSubService(context.Background(), &models.CreateSubServiceRequest{
		ServiceID:       uuid.New(),
		Name:            "Women's Haircut",
		Price:           65,
		DurationMinutes: 45,
		Staff:           []models.StaffAssignmentInput{{StaffID: uuid.New()}},
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestCreateSubService_UnknownExperienceLevelRejected(t *testing.T) {
	stylist := &domain.Staff{ID: uuid.New(), FullName: "Anna Reyes"}
	svc, _ := newCatalogFixture(stylist)

	_, err := svc.CreateSubService(context.Background(), &models.CreateSubServiceRequest{
		ServiceID:       uuid.New(),
		Name:            "Women's Haircut",
		Price:           65,
		DurationMinutes: 45,
		Staff: []models.StaffAssignmentInput{
			{StaffID: stylist.ID, ExperienceLevel: ptr.Ptr("wizard")},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateSubService_InvalidDuration(t *testing.T) {
	svc, _ := newCatalogFixture()

	_, err := svc.CreateSubService(context.Background(), &models.CreateSubServiceRequest{
		ServiceID:       uuid.New(),
		Name:            "Women's Haircut",
		Price:           65,
		DurationMinutes: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateSubService_NegativePrice(t *testing.T) {
	svc, _ := newCatalogFixture()

	_, err := svc.CreateSubService(context.Background(), &models.CreateSubServiceRequest{
		ServiceID:       uuid.New(),
		Name:            "Women's Haircut",
		Price:           -1,
		DurationMinutes: 45,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
