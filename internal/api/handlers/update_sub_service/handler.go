package update_sub_service

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidSubServiceID = "invalid sub-service id"
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidInput        = "invalid sub-service data"
	msgSubServiceNotFound  = "sub-service not found"
	msgStaffNotFound       = "assigned staff member not found"
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

// Handle PUT /api/v1/admin/sub-services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subServiceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSubServiceID)
		return
	}

	var req models.UpdateSubServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/sub-services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.UpdateSubService(r.Context(), subServiceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSubServiceNotFound):
			h.logger.Warn("PUT /admin/sub-services/{id} - Sub-service not found: sub_service_id=%s", subServiceID)
			handlers.RespondNotFound(w, msgSubServiceNotFound)

		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("PUT /admin/sub-services/{id} - Staff not found: sub_service_id=%s, error=%v", subServiceID, err)
			handlers.RespondBadRequest(w, msgStaffNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/sub-services/{id} - Invalid input: sub_service_id=%s, error=%v", subServiceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/sub-services/{id} - Failed to update sub-service: sub_service_id=%s, error=%v", subServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/sub-services/{id} - Sub-service updated: sub_service_id=%s", subServiceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
