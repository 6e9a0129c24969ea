package create_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/staff"
	"github.com/m04kA/Salon-BookingService/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid staff data"
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

// Handle POST /api/v1/admin/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.staff.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, staff.ErrInvalidInput) {
			h.logger.Warn("POST /admin/staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/staff - Failed to create staff member: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/staff - Staff member created: staff_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
