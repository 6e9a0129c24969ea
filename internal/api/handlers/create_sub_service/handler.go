package create_sub_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid sub-service data"
	msgServiceNotFound    = "service not found"
	msgStaffNotFound      = "assigned staff member not found"
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

// Handle POST /api/v1/admin/sub-services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/sub-services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.CreateSubService(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("POST /admin/sub-services - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("POST /admin/sub-services - Staff not found: %v", err)
			handlers.RespondBadRequest(w, msgStaffNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/sub-services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/sub-services - Failed to create sub-service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/sub-services - Sub-service created: sub_service_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
