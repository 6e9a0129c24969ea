package get_staff

import (
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/admin/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.staff.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/staff - Failed to list staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
