package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments/models"
)

// Service exposes appointment history and cancelation.
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates an appointments service.
func NewService(appointmentRepo AppointmentRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetClientAppointments returns a client's booking history, newest first.
// A client may only see their own history; admins may see anyone's.
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req.ClientID != req.RequesterID && !req.IsAdmin {
		s.logger.Warn("GetClientAppointments: access denied for requester=%s to client=%s", req.RequesterID, req.ClientID)
		return nil, ErrAccessDenied
	}

	details, err := s.appointmentRepo.ListDetails(ctx, domain.AppointmentsFilter{
		ClientID: &req.ClientID,
	})
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDetailsList(details), nil
}

// List returns appointments for the admin dashboard, filtered by client,
// stylist, or day.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	details, err := s.appointmentRepo.ListDetails(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDetailsList(details), nil
}

// Cancel cancels an appointment. Only the owning client or an admin may
// cancel, and only while the appointment has not started.
func (s *Service) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) error {
	appt, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.ClientID != req.RequesterID && !req.IsAdmin {
		s.logger.Warn("Cancel: access denied for requester=%s to appointment id=%s", req.RequesterID, req.AppointmentID)
		return ErrAccessDenied
	}

	if !appt.CanBeCanceled(s.timeProvider.Now()) {
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%s canceled by requester=%s", req.AppointmentID, req.RequesterID)
	return nil
}
