package delete_sub_service

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog"
)

const (
	msgInvalidSubServiceID = "invalid sub-service id"
	msgSubServiceNotFound  = "sub-service not found"
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

// Handle DELETE /api/v1/admin/sub-services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subServiceID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSubServiceID)
		return
	}

	if err := h.catalog.DeleteSubService(r.Context(), subServiceID); err != nil {
		if errors.Is(err, catalog.ErrSubServiceNotFound) {
			h.logger.Warn("DELETE /admin/sub-services/{id} - Sub-service not found: sub_service_id=%s", subServiceID)
			handlers.RespondNotFound(w, msgSubServiceNotFound)
			return
		}
		h.logger.Error("DELETE /admin/sub-services/{id} - Failed to delete sub-service: sub_service_id=%s, error=%v", subServiceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/sub-services/{id} - Sub-service deleted: sub_service_id=%s", subServiceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
