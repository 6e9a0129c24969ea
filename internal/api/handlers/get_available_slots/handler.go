package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	availableSlots "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSubServiceID = "invalid sub-service id"
	msgInvalidDate         = "invalid date, expected YYYY-MM-DD"
	msgSubServiceNotFound  = "sub-service not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sub-services/{id}/available-slots?date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subServiceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSubServiceID)
		return
	}

	date, err := domain.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &availableSlots.Request{
		SubServiceID: subServiceID,
		Date:         date,
	})
	if err != nil {
		switch {
		case errors.Is(err, availableSlots.ErrSubServiceNotFound):
			h.logger.Warn("GET /sub-services/{id}/available-slots - Sub-service not found: sub_service_id=%s", subServiceID)
			handlers.RespondNotFound(w, msgSubServiceNotFound)

		case errors.Is(err, availableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /sub-services/{id}/available-slots - Failed to generate slots: sub_service_id=%s, error=%v", subServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
