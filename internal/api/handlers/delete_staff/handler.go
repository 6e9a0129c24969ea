package delete_staff

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/staff"
)

const (
	msgInvalidStaffID = "invalid staff id"
	msgStaffNotFound  = "staff member not found"
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

// Handle DELETE /api/v1/admin/staff/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	if err := h.staff.Delete(r.Context(), staffID); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			h.logger.Warn("DELETE /admin/staff/{id} - Staff not found: staff_id=%s", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)
			return
		}
		h.logger.Error("DELETE /admin/staff/{id} - Failed to delete staff member: staff_id=%s, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/staff/{id} - Staff member deleted: staff_id=%s", staffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
