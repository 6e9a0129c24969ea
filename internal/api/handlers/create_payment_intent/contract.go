package create_payment_intent

import (
	"context"

	paymentIntent "github.com/m04kA/Salon-BookingService/internal/usecase/create_payment_intent"
)

type CreatePaymentIntentUseCase interface {
	Execute(ctx context.Context, req *paymentIntent.Request) (*paymentIntent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
