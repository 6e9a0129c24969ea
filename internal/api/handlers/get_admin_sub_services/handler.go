package get_admin_sub_services

import (
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalogService,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/sub-services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.ListAllSubServices(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/sub-services - Failed to list sub-services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
