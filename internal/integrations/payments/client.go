package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Logger is the logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client wraps the Stripe payment intent API. The API key is installed
// globally in main via stripe.Key before the client is used.
type Client struct {
	log Logger
}

// NewClient creates a Stripe payments client.
func NewClient(log Logger) *Client {
	return &Client{log: log}
}

// CreateIntent creates a payment intent for one booking charge and returns
// its client secret for the frontend payment form.
func (c *Client) CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error) {
	piParams := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(params.AmountCents),
		Currency:    stripe.String(params.Currency),
		Description: stripe.String(params.Description),
	}
	piParams.Context = ctx
	piParams.AddMetadata("sub_service_id", params.SubServiceID)
	piParams.AddMetadata("sub_service_name", params.SubServiceName)

	pi, err := paymentintent.New(piParams)
	if err != nil {
		c.log.Error("Stripe CreateIntent failed: sub_service_id=%s, error=%v", params.SubServiceID, err)
		return nil, fmt.Errorf("%w: create intent: %v", ErrInternal, err)
	}

	c.log.Info("Stripe payment intent created: id=%s, amount=%d %s", pi.ID, params.AmountCents, params.Currency)
	return fromStripeIntent(pi), nil
}

// GetIntent retrieves a payment intent so the booking confirmation can verify
// the payment actually succeeded.
func (c *Client) GetIntent(ctx context.Context, id string) (*Intent, error) {
	piParams := &stripe.PaymentIntentParams{}
	piParams.Context = ctx

	pi, err := paymentintent.Get(id, piParams)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, ErrIntentNotFound
		}
		c.log.Error("Stripe GetIntent failed: id=%s, error=%v", id, err)
		return nil, fmt.Errorf("%w: get intent: %v", ErrInternal, err)
	}

	return fromStripeIntent(pi), nil
}

func fromStripeIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       IntentStatus(pi.Status),
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
	}
}
