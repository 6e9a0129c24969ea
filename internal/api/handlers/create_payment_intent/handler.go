package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	paymentIntent "github.com/m04kA/Salon-BookingService/internal/usecase/create_payment_intent"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSubServiceNotFound = "sub-service not found"
	msgMissingIdentity    = "missing user identity"
)

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payment-intents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
		return
	}

	var req CreatePaymentIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payment-intents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &paymentIntent.Request{
		ClientID:     clientID,
		SubServiceID: req.SubServiceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentIntent.ErrSubServiceNotFound):
			h.logger.Warn("POST /payment-intents - Sub-service not found: sub_service_id=%s", req.SubServiceID)
			handlers.RespondNotFound(w, msgSubServiceNotFound)

		case errors.Is(err, paymentIntent.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /payment-intents - Failed to create intent: client_id=%s, sub_service_id=%s, error=%v",
				clientID, req.SubServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payment-intents - Intent created: intent_id=%s, client_id=%s", result.PaymentIntentID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
