package get_booking_options

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	bookingOptions "github.com/m04kA/Salon-BookingService/internal/usecase/get_booking_options"
)

const (
	msgInvalidSubServiceID = "invalid sub-service id"
	msgSubServiceNotFound  = "sub-service not found"
)

type Handler struct {
	useCase GetBookingOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sub-services/{id}/booking-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subServiceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSubServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookingOptions.Request{SubServiceID: subServiceID})
	if err != nil {
		switch {
		case errors.Is(err, bookingOptions.ErrSubServiceNotFound):
			h.logger.Warn("GET /sub-services/{id}/booking-options - Sub-service not found: sub_service_id=%s", subServiceID)
			handlers.RespondNotFound(w, msgSubServiceNotFound)

		case errors.Is(err, bookingOptions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSubServiceID)

		default:
			h.logger.Error("GET /sub-services/{id}/booking-options - Failed to build options: sub_service_id=%s, error=%v", subServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
