package confirm_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Salon-BookingService/internal/integrations/mailer"
	"github.com/m04kA/Salon-BookingService/internal/integrations/payments"
	"github.com/m04kA/Salon-BookingService/pkg/txmanager"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type stubSubServiceRepo struct {
	sub         *domain.SubService
	subErr      error
	assignments []domain.StaffAssignment
}

func (s *stubSubServiceRepo) GetByID(_ context.Context, _ uuid.UUID, _ bool) (*domain.SubService, error) {
	return s.sub, s.subErr
}

func (s *stubSubServiceRepo) ListAssignedStaff(_ context.Context, _ uuid.UUID) ([]domain.StaffAssignment, error) {
	return s.assignments, nil
}

type stubAppointmentRepo struct {
	existing       []*domain.AppointmentDetails
	createErr      error
	createOnceErrs []error // consumed one per call, before createErr
	created        *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if len(s.createOnceErrs) > 0 {
		err := s.createOnceErrs[0]
		s.createOnceErrs = s.createOnceErrs[1:]
		return nil, err
	}
	if s.createErr != nil {
		return nil, s.createErr
	}
	appt.ID = uuid.New()
	s.created = appt
	return appt, nil
}

func (s *stubAppointmentRepo) ListDetails(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	return s.existing, nil
}

type stubClientRepo struct {
	ensured *domain.Client
}

func (s *stubClientRepo) EnsureExists(_ context.Context, c *domain.Client) error {
	s.ensured = c
	return nil
}

type stubPayments struct {
	intent *payments.Intent
	err    error
}

func (s *stubPayments) GetIntent(_ context.Context, _ string) (*payments.Intent, error) {
	return s.intent, s.err
}

type stubMailer struct {
	to   string
	data mailer.BookingConfirmationData
	sent int
}

func (s *stubMailer) SendBookingConfirmation(_ context.Context, to string, data mailer.BookingConfirmationData) error {
	s.to = to
	s.data = data
	s.sent++
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// retryingTxManager runs the production DoSerializable retry loop without the
// database plumbing.
type retryingTxManager struct {
	attempts int
}

func (m *retryingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for i := 0; i < 3; i++ {
		m.attempts++
		err = fn(ctx)
		if !txmanager.IsSerializationFailure(err) {
			return err
		}
	}
	return err
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

type fixture struct {
	subServices  *stubSubServiceRepo
	appointments *stubAppointmentRepo
	clients      *stubClientRepo
	payments     *stubPayments
	mailer       *stubMailer
	uc           *UseCase
	req          Request
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clientID := uuid.New()
	staffID := uuid.New()
	subID := uuid.New()
	serviceID := uuid.New()

	f := &fixture{
		subServices: &stubSubServiceRepo{
			sub: &domain.SubService{
				ID:              subID,
				ServiceID:       serviceID,
				Name:            "Knotless Braids",
				Price:           650,
				DurationMinutes: 90,
				IsActive:        true,
			},
			assignments: []domain.StaffAssignment{
				{StaffID: staffID, FullName: "Zanele M", ExperienceLevel: domain.ExperienceExpert},
			},
		},
		appointments: &stubAppointmentRepo{},
		clients:      &stubClientRepo{},
		payments: &stubPayments{
			intent: &payments.Intent{ID: "pi_123", Status: payments.StatusSucceeded, AmountCents: 65000, Currency: "zar"},
		},
		mailer: &stubMailer{},
	}

	// Wednesday morning; the booking targets Thursday.
	now := time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)
	f.uc = NewUseCase(
		f.subServices,
		f.appointments,
		f.clients,
		f.payments,
		f.mailer,
		passthroughTxManager{},
		&fixedTimeProvider{now: now},
		noopLogger{},
	)

	email := "thandi@example.com"
	f.req = Request{
		ClientID:        clientID,
		ClientName:      "Thandi N",
		ClientEmail:     &email,
		SubServiceID:    subID,
		StaffID:         staffID,
		Date:            time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		PaymentIntentID: "pi_123",
	}
	return f
}

func TestExecute_ConfirmsBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &f.req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, "Zanele M", resp.StaffName)
	assert.Equal(t, time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC), resp.StartTime)
	assert.Equal(t, time.Date(2026, 9, 3, 11, 30, 0, 0, time.UTC), resp.EndTime)

	require.NotNil(t, f.appointments.created)
	require.NotNil(t, f.appointments.created.PaymentIntentID)
	assert.Equal(t, "pi_123", *f.appointments.created.PaymentIntentID)

	require.NotNil(t, f.clients.ensured)
	assert.Equal(t, f.req.ClientID, f.clients.ensured.ID)

	assert.Equal(t, 1, f.mailer.sent)
	assert.Equal(t, "thandi@example.com", f.mailer.to)
	assert.Equal(t, "2026-09-03", f.mailer.data.Date)
	assert.Equal(t, "10:00", f.mailer.data.StartTime)
	assert.Equal(t, "11:30", f.mailer.data.EndTime)
}

func TestExecute_PaymentNotSucceeded(t *testing.T) {
	f := newFixture(t)
	f.payments.intent.Status = "requires_payment_method"

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrPaymentNotCompleted)
	assert.Nil(t, f.appointments.created)
}

func TestExecute_PaymentIntentNotFound(t *testing.T) {
	f := newFixture(t)
	f.payments.intent = nil
	f.payments.err = payments.ErrIntentNotFound

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrPaymentIntentNotFound)
}

func TestExecute_StaffNotEligible(t *testing.T) {
	f := newFixture(t)
	f.req.StaffID = uuid.New() // not assigned to the sub-service

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrStaffNotEligible)
}

func TestExecute_AdminIsNotEligibleEvenWhenAssigned(t *testing.T) {
	f := newFixture(t)
	role := "Admin"
	f.subServices.assignments[0].Role = &role

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrStaffNotEligible)
}

func TestExecute_SundayNotBookable(t *testing.T) {
	f := newFixture(t)
	f.req.Date = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC) // Sunday

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestExecute_OffGridStartTime(t *testing.T) {
	f := newFixture(t)
	f.req.StartTime = types.TimeString("10:15")

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SlotTooLateForDuration(t *testing.T) {
	f := newFixture(t)
	// 90 minutes starting at 17:00 would run past closing.
	f.req.StartTime = types.TimeString("17:00")

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_OverlapDetectedInTransaction(t *testing.T) {
	f := newFixture(t)
	busy := &domain.AppointmentDetails{}
	busy.StaffID = f.req.StaffID
	busy.StartTime = time.Date(2026, 9, 3, 9, 30, 0, 0, time.UTC)
	busy.EndTime = time.Date(2026, 9, 3, 10, 30, 0, 0, time.UTC)
	busy.Status = domain.StatusConfirmed
	f.appointments.existing = []*domain.AppointmentDetails{busy}

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, f.appointments.created)
}

func TestExecute_BackToBackBookingsDoNotOverlap(t *testing.T) {
	f := newFixture(t)
	// Existing booking ends exactly when the new one starts.
	prev := &domain.AppointmentDetails{}
	prev.StaffID = f.req.StaffID
	prev.StartTime = time.Date(2026, 9, 3, 8, 30, 0, 0, time.UTC)
	prev.EndTime = time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)
	prev.Status = domain.StatusConfirmed
	f.appointments.existing = []*domain.AppointmentDetails{prev}

	_, err := f.uc.Execute(context.Background(), &f.req)
	require.NoError(t, err)
	require.NotNil(t, f.appointments.created)
}

func TestExecute_ExclusionConstraintMapsToSlotTaken(t *testing.T) {
	f := newFixture(t)
	f.appointments.createErr = appointment.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SerializationConflictIsRetriedToSuccess(t *testing.T) {
	f := newFixture(t)
	f.appointments.createOnceErrs = []error{
		fmt.Errorf("%w: Create - execute insert: %w", appointment.ErrExecQuery, &pq.Error{Code: "40001"}),
	}
	txm := &retryingTxManager{}
	f.uc.txManager = txm

	resp, err := f.uc.Execute(context.Background(), &f.req)
	require.NoError(t, err)
	assert.Equal(t, 2, txm.attempts)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	require.NotNil(t, f.appointments.created)
}

func TestExecute_SerializationConflictExhaustsRetries(t *testing.T) {
	f := newFixture(t)
	conflict := fmt.Errorf("%w: Create - execute insert: %w", appointment.ErrExecQuery, &pq.Error{Code: "40001"})
	f.appointments.createOnceErrs = []error{conflict, conflict, conflict}
	txm := &retryingTxManager{}
	f.uc.txManager = txm

	_, err := f.uc.Execute(context.Background(), &f.req)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 3, txm.attempts)
	assert.Nil(t, f.appointments.created)
}

func TestExecute_NoMailerIsFine(t *testing.T) {
	f := newFixture(t)
	f.uc.mailer = nil

	_, err := f.uc.Execute(context.Background(), &f.req)
	require.NoError(t, err)
}
