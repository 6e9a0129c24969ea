package update_staff

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/staff"
	"github.com/m04kA/Salon-BookingService/internal/service/staff/models"
)

const (
	msgInvalidStaffID     = "invalid staff id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid staff data"
	msgStaffNotFound      = "staff member not found"
)

type Handler struct {
	staff  StaffService
	logger Logger
}

func NewHandler(staffService StaffService, logger Logger) *Handler {
	return &Handler{
		staff:  staffService,
		logger: logger,
	}
}

// Handle PUT /api/v1/admin/staff/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req models.UpdateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/staff/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.staff.Update(r.Context(), staffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrStaffNotFound):
			h.logger.Warn("PUT /admin/staff/{id} - Staff not found: staff_id=%s", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("PUT /admin/staff/{id} - Invalid input: staff_id=%s, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/staff/{id} - Failed to update staff member: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/staff/{id} - Staff member updated: staff_id=%s", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
