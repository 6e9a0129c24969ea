package create_payment_intent

import "github.com/google/uuid"

// Request - input parameters of the use case.
type Request struct {
	ClientID     uuid.UUID
	SubServiceID uuid.UUID
}

// Response - the created intent, ready to hand to the payment form.
type Response struct {
	PaymentIntentID string
	ClientSecret    string
	AmountCents     int64
	Currency        string
}
