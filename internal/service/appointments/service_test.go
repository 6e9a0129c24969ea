package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments/models"
)

type stubAppointmentRepo struct {
	appt     *domain.Appointment
	getErr   error
	canceled []uuid.UUID
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Appointment, error) {
	return s.appt, s.getErr
}

func (s *stubAppointmentRepo) ListDetails(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) Cancel(_ context.Context, id uuid.UUID) error {
	s.canceled = append(s.canceled, id)
	return nil
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

func TestCancel_OwnerCancelsUpcomingAppointment(t *testing.T) {
	clientID := uuid.New()
	now := time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)
	repo := &stubAppointmentRepo{
		appt: &domain.Appointment{
			ID:        uuid.New(),
			ClientID:  clientID,
			StartTime: now.Add(24 * time.Hour),
			Status:    domain.StatusConfirmed,
		},
	}
	svc := NewService(repo, &fixedTimeProvider{now: now}, noopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		AppointmentID: repo.appt.ID,
		RequesterID:   clientID,
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{repo.appt.ID}, repo.canceled)
}

func TestCancel_StrangerIsDenied(t *testing.T) {
	now := time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)
	repo := &stubAppointmentRepo{
		appt: &domain.Appointment{
			ID:        uuid.New(),
			ClientID:  uuid.New(),
			StartTime: now.Add(24 * time.Hour),
			Status:    domain.StatusConfirmed,
		},
	}
	svc := NewService(repo, &fixedTimeProvider{now: now}, noopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		AppointmentID: repo.appt.ID,
		RequesterID:   uuid.New(),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.canceled)
}

func TestCancel_AdminMayCancelAnyAppointment(t *testing.T) {
	now := time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)
	repo := &stubAppointmentRepo{
		appt: &domain.Appointment{
			ID:        uuid.New(),
			ClientID:  uuid.New(),
			StartTime: now.Add(2 * time.Hour),
			Status:    domain.StatusConfirmed,
		},
	}
	svc := NewService(repo, &fixedTimeProvider{now: now}, noopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		AppointmentID: repo.appt.ID,
		RequesterID:   uuid.New(),
		IsAdmin:       true,
	})
	require.NoError(t, err)
}

func TestCancel_PastAppointmentCannotBeCanceled(t *testing.T) {
	clientID := uuid.New()
	now := time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)
	repo := &stubAppointmentRepo{
		appt: &domain.Appointment{
			ID:        uuid.New(),
			ClientID:  clientID,
			StartTime: now.Add(-time.Hour),
			Status:    domain.StatusConfirmed,
		},
	}
	svc := NewService(repo, &fixedTimeProvider{now: now}, noopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		AppointmentID: repo.appt.ID,
		RequesterID:   clientID,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AlreadyCanceled(t *testing.T) {
	clientID := uuid.New()
	now := time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)
	repo := &stubAppointmentRepo{
		appt: &domain.Appointment{
			ID:        uuid.New(),
			ClientID:  clientID,
			StartTime: now.Add(24 * time.Hour),
			Status:    domain.StatusCanceled,
		},
	}
	svc := NewService(repo, &fixedTimeProvider{now: now}, noopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		AppointmentID: repo.appt.ID,
		RequesterID:   clientID,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}
