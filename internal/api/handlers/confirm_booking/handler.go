package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	confirmBooking "github.com/m04kA/Salon-BookingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDate           = "invalid date, expected YYYY-MM-DD"
	msgSubServiceNotFound    = "sub-service not found"
	msgStaffNotEligible      = "selected staff member does not perform this sub-service"
	msgDateNotBookable       = "selected date is not bookable"
	msgInvalidTimeSlot       = "selected time slot is not available for this duration"
	msgPaymentNotCompleted   = "payment has not been completed"
	msgPaymentIntentNotFound = "payment intent not found"
	msgSlotTaken             = "the selected time slot has just been taken"
	msgMissingIdentity       = "missing user identity"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
		return
	}

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: client_id=%s, staff_id=%s", clientID, req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, confirmBooking.ErrSubServiceNotFound):
			h.logger.Warn("POST /appointments - Sub-service not found: sub_service_id=%s", req.SubServiceID)
			handlers.RespondNotFound(w, msgSubServiceNotFound)

		case errors.Is(err, confirmBooking.ErrStaffNotEligible):
			h.logger.Warn("POST /appointments - Staff not eligible: staff_id=%s, sub_service_id=%s", req.StaffID, req.SubServiceID)
			handlers.RespondBadRequest(w, msgStaffNotEligible)

		case errors.Is(err, confirmBooking.ErrDateNotBookable):
			h.logger.Warn("POST /appointments - Date not bookable: client_id=%s, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, confirmBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: client_id=%s, start=%s", clientID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, confirmBooking.ErrPaymentNotCompleted):
			h.logger.Warn("POST /appointments - Payment not completed: client_id=%s, intent_id=%s", clientID, req.PaymentIntentID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentNotCompleted)

		case errors.Is(err, confirmBooking.ErrPaymentIntentNotFound):
			h.logger.Warn("POST /appointments - Payment intent not found: intent_id=%s", req.PaymentIntentID)
			handlers.RespondNotFound(w, msgPaymentIntentNotFound)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to confirm booking: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment confirmed: appointment_id=%s, client_id=%s", result.AppointmentID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
