package get_booking_options

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type stubSubServiceRepo struct {
	sub         *domain.SubService
	subErr      error
	assignments []domain.StaffAssignment
	listErr     error
}

func (s *stubSubServiceRepo) GetByID(_ context.Context, _ uuid.UUID, _ bool) (*domain.SubService, error) {
	return s.sub, s.subErr
}

func (s *stubSubServiceRepo) ListAssignedStaff(_ context.Context, _ uuid.UUID) ([]domain.StaffAssignment, error) {
	return s.assignments, s.listErr
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_FiltersAdminsAndSortsByName(t *testing.T) {
	subID := uuid.New()
	zanele := uuid.New()
	amahle := uuid.New()
	admin := uuid.New()

	repo := &stubSubServiceRepo{
		sub: &domain.SubService{
			ID:              subID,
			Name:            "Knotless Braids",
			ServiceName:     "Braiding",
			Price:           650,
			DurationMinutes: 120,
			IsActive:        true,
		},
		assignments: []domain.StaffAssignment{
			{StaffID: zanele, FullName: "Zanele M", ExperienceLevel: domain.ExperienceExpert},
			{StaffID: admin, FullName: "Owner", Role: ptr.Ptr("Admin"), ExperienceLevel: domain.ExperienceExpert},
			{StaffID: amahle, FullName: "Amahle K", ExperienceLevel: domain.ExperienceIntermediate},
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SubServiceID: subID})
	require.NoError(t, err)

	require.Len(t, resp.Staff, 2)
	assert.Equal(t, "Amahle K", resp.Staff[0].FullName)
	assert.Equal(t, "Zanele M", resp.Staff[1].FullName)
	assert.Nil(t, resp.AutoSelectStaffID)
	assert.Equal(t, 120, resp.DurationMinutes)
}

func TestExecute_AutoSelectsSingleStylist(t *testing.T) {
	subID := uuid.New()
	only := uuid.New()
	repo := &stubSubServiceRepo{
		sub: &domain.SubService{ID: subID, Name: "Trim", IsActive: true},
		assignments: []domain.StaffAssignment{
			{StaffID: only, FullName: "Naledi P", ExperienceLevel: domain.ExperienceBeginner},
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SubServiceID: subID})
	require.NoError(t, err)
	require.NotNil(t, resp.AutoSelectStaffID)
	assert.Equal(t, only, *resp.AutoSelectStaffID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubSubServiceRepo{}, noopLogger{})
	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
