package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/availability"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage/subservice"
	"github.com/m04kA/Salon-BookingService/internal/integrations/mailer"
	"github.com/m04kA/Salon-BookingService/internal/integrations/payments"
	"github.com/m04kA/Salon-BookingService/pkg/txmanager"
)

// UseCase turns a succeeded payment into a confirmed appointment.
//
// Nothing from the client request is trusted: the payment intent status, the
// stylist's eligibility, and the slot itself are all re-checked on the server
// before anything is written. The insert runs in a serializable transaction
// with the stylist's day locked, and the storage exclusion constraint backs
// that up, so two clients paying for the same slot cannot both book it.
type UseCase struct {
	subServices  SubServiceRepository
	appointments AppointmentRepository
	clients      ClientRepository
	payments     PaymentsClient
	mailer       Mailer
	txManager    TxManager
	timeProvider TimeProvider
	log          Logger
}

func NewUseCase(
	subServices SubServiceRepository,
	appointments AppointmentRepository,
	clients ClientRepository,
	paymentsClient PaymentsClient,
	mailSender Mailer,
	txManager TxManager,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		subServices:  subServices,
		appointments: appointments,
		clients:      clients,
		payments:     paymentsClient,
		mailer:       mailSender,
		txManager:    txManager,
		timeProvider: timeProvider,
		log:          log,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	intent, err := uc.payments.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, payments.ErrIntentNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrPaymentIntentNotFound, req.PaymentIntentID)
		}
		uc.log.Error("confirm_booking.usecase: Execute - failed to fetch payment intent %s: %v", req.PaymentIntentID, err)
		return nil, fmt.Errorf("%w: Execute - failed to fetch payment intent: %v", ErrInternal, err)
	}
	if !intent.Succeeded() {
		return nil, fmt.Errorf("%w: intent %s has status %q", ErrPaymentNotCompleted, intent.ID, intent.Status)
	}

	sub, err := uc.subServices.GetByID(ctx, req.SubServiceID, true)
	if err != nil {
		if errors.Is(err, subservice.ErrSubServiceNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSubServiceNotFound, req.SubServiceID)
		}
		uc.log.Error("confirm_booking.usecase: Execute - failed to fetch sub-service %s: %v", req.SubServiceID, err)
		return nil, fmt.Errorf("%w: Execute - failed to fetch sub-service: %v", ErrInternal, err)
	}

	staffName, err := uc.checkStaffEligible(ctx, req)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	if !availability.IsDateBookable(req.Date, now) {
		return nil, fmt.Errorf("%w: date=%s", ErrDateNotBookable, req.Date.Format(domain.DateFormat))
	}
	if !availability.ContainsSlot(req.Date, sub.DurationMinutes, req.StartTime, now) {
		return nil, fmt.Errorf("%w: start=%s duration=%d", ErrInvalidTimeSlot, req.StartTime, sub.DurationMinutes)
	}

	startTime, err := req.StartTime.OnDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	endTime := startTime.Add(time.Duration(sub.DurationMinutes) * time.Minute)

	appt := &domain.Appointment{
		ClientID:        req.ClientID,
		ServiceID:       sub.ServiceID,
		SubServiceID:    sub.ID,
		StaffID:         req.StaffID,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          domain.StatusConfirmed,
		Notes:           req.Notes,
		PaymentIntentID: &intent.ID,
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkSlotFree(txCtx, appt); err != nil {
			return err
		}

		if err := uc.clients.EnsureExists(txCtx, &domain.Client{
			ID:       req.ClientID,
			FullName: req.ClientName,
			Email:    req.ClientEmail,
			Phone:    req.ClientPhone,
		}); err != nil {
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			return fmt.Errorf("%w: Execute - failed to ensure client: %v", ErrInternal, err)
		}

		if _, err := uc.appointments.Create(txCtx, appt); err != nil {
			if errors.Is(err, appointment.ErrSlotTaken) {
				return fmt.Errorf("%w: staff=%s start=%s", ErrSlotTaken, appt.StaffID, appt.StartTime.Format(time.RFC3339))
			}
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			return fmt.Errorf("%w: Execute - failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.log.Error("confirm_booking.usecase: Execute - transaction failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - transaction failed: %v", ErrInternal, err)
	}

	uc.log.Info("confirm_booking.usecase: Execute - appointment %s confirmed: client=%s staff=%s start=%s",
		appt.ID, appt.ClientID, appt.StaffID, appt.StartTime.Format(time.RFC3339))

	uc.sendConfirmationEmail(ctx, req, sub, staffName, appt)

	return &Response{
		AppointmentID:  appt.ID,
		SubServiceID:   sub.ID,
		SubServiceName: sub.Name,
		StaffID:        appt.StaffID,
		StaffName:      staffName,
		StartTime:      appt.StartTime,
		EndTime:        appt.EndTime,
		Status:         appt.Status,
		Price:          sub.Price,
	}, nil
}

// checkStaffEligible verifies the chosen stylist is assigned to the
// sub-service and bookable, and returns their display name.
func (uc *UseCase) checkStaffEligible(ctx context.Context, req *Request) (string, error) {
	assignments, err := uc.subServices.ListAssignedStaff(ctx, req.SubServiceID)
	if err != nil {
		uc.log.Error("confirm_booking.usecase: checkStaffEligible - failed to list staff for %s: %v", req.SubServiceID, err)
		return "", fmt.Errorf("%w: checkStaffEligible - failed to list staff: %v", ErrInternal, err)
	}

	for _, a := range availability.EligibleStaff(assignments) {
		if a.StaffID == req.StaffID {
			return a.FullName, nil
		}
	}
	return "", fmt.Errorf("%w: staff=%s sub-service=%s", ErrStaffNotEligible, req.StaffID, req.SubServiceID)
}

// checkSlotFree re-reads the stylist's confirmed appointments for the day
// (locked FOR UPDATE inside the transaction) and rejects any overlap.
func (uc *UseCase) checkSlotFree(ctx context.Context, appt *domain.Appointment) error {
	startOfDay := time.Date(
		appt.StartTime.Year(), appt.StartTime.Month(), appt.StartTime.Day(),
		0, 0, 0, 0, appt.StartTime.Location(),
	)
	endOfDay := startOfDay.Add(24 * time.Hour)

	existing, err := uc.appointments.ListDetails(ctx, domain.AppointmentsFilter{
		StaffID:       &appt.StaffID,
		StartOfDay:    &startOfDay,
		EndOfDay:      &endOfDay,
		OnlyConfirmed: true,
	})
	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			return err
		}
		return fmt.Errorf("%w: checkSlotFree - failed to list day appointments: %v", ErrInternal, err)
	}

	for _, e := range existing {
		if e.Overlaps(appt.StartTime, appt.EndTime) {
			return fmt.Errorf("%w: staff=%s start=%s", ErrSlotTaken, appt.StaffID, appt.StartTime.Format(time.RFC3339))
		}
	}
	return nil
}

// sendConfirmationEmail is best effort: the booking is already committed,
// so a mail failure is only logged.
func (uc *UseCase) sendConfirmationEmail(ctx context.Context, req *Request, sub *domain.SubService, staffName string, appt *domain.Appointment) {
	if uc.mailer == nil || req.ClientEmail == nil || *req.ClientEmail == "" {
		return
	}

	data := mailer.BookingConfirmationData{
		ClientName:     req.ClientName,
		SubServiceName: sub.Name,
		StaffName:      staffName,
		Date:           appt.StartTime.Format(domain.DateFormat),
		StartTime:      appt.StartTime.Format(domain.TimeFormat),
		EndTime:        appt.EndTime.Format(domain.TimeFormat),
		Price:          sub.Price,
	}
	if err := uc.mailer.SendBookingConfirmation(ctx, *req.ClientEmail, data); err != nil {
		uc.log.Warn("confirm_booking.usecase: sendConfirmationEmail - appointment %s: %v", appt.ID, err)
	}
}
