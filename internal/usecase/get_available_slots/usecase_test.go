package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage/subservice"
)

type stubSubServiceRepo struct {
	sub *domain.SubService
	err error
}

func (s *stubSubServiceRepo) GetByID(_ context.Context, _ uuid.UUID, _ bool) (*domain.SubService, error) {
	return s.sub, s.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_GeneratesSlots(t *testing.T) {
	subID := uuid.New()
	repo := &stubSubServiceRepo{
		sub: &domain.SubService{
			ID:              subID,
			Name:            "Box Braids",
			DurationMinutes: 45,
			IsActive:        true,
		},
	}
	// Wednesday morning.
	now := time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)
	uc := NewUseCase(repo, &fixedTimeProvider{now: now}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SubServiceID: subID,
		Date:         time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// 45-minute appointments fit every half-hour start up to 17:00.
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "07:00", resp.Slots[0].String())
	assert.Equal(t, "17:00", resp.Slots[len(resp.Slots)-1].String())
	assert.Equal(t, 21, len(resp.Slots))
	assert.Equal(t, "Box Braids", resp.SubServiceName)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestExecute_SundayHasNoSlots(t *testing.T) {
	repo := &stubSubServiceRepo{
		sub: &domain.SubService{ID: uuid.New(), Name: "Relaxer", DurationMinutes: 60, IsActive: true},
	}
	now := time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)
	uc := NewUseCase(repo, &fixedTimeProvider{now: now}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SubServiceID: repo.sub.ID,
		Date:         time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), // Sunday
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SubServiceNotFound(t *testing.T) {
	repo := &stubSubServiceRepo{err: subservice.ErrSubServiceNotFound}
	now := time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)
	uc := NewUseCase(repo, &fixedTimeProvider{now: now}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SubServiceID: uuid.New(),
		Date:         time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrSubServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubSubServiceRepo{}, &fixedTimeProvider{now: time.Now()}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
