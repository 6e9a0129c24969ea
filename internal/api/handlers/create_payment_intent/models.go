package create_payment_intent

import (
	"github.com/google/uuid"

	paymentIntent "github.com/m04kA/Salon-BookingService/internal/usecase/create_payment_intent"
)

// CreatePaymentIntentRequest HTTP request model
type CreatePaymentIntentRequest struct {
	SubServiceID uuid.UUID `json:"subServiceId" validate:"required"`
}

// PaymentIntentResponse HTTP response model
type PaymentIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	AmountCents     int64  `json:"amountCents"`
	Currency        string `json:"currency"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *paymentIntent.Response) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		PaymentIntentID: resp.PaymentIntentID,
		ClientSecret:    resp.ClientSecret,
		AmountCents:     resp.AmountCents,
		Currency:        resp.Currency,
	}
}
