package create_payment_intent

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/payments"
)

// SubServiceRepository is the slice of the sub-service storage this use case needs.
type SubServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID, onlyActive bool) (*domain.SubService, error)
}

// PaymentsClient creates payment intents with the payment provider.
type PaymentsClient interface {
	CreateIntent(ctx context.Context, params payments.CreateIntentParams) (*payments.Intent, error)
}

// Logger is the logging interface of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
