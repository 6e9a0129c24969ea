package create_payment_intent

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage/subservice"
	"github.com/m04kA/Salon-BookingService/internal/integrations/payments"
)

// UseCase creates a payment intent for a sub-service. The amount is
// always taken from storage, never from the request.
type UseCase struct {
	subServices SubServiceRepository
	payments    PaymentsClient
	log         Logger
}

func NewUseCase(subServices SubServiceRepository, paymentsClient PaymentsClient, log Logger) *UseCase {
	return &UseCase{
		subServices: subServices,
		payments:    paymentsClient,
		log:         log,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ClientID == uuid.Nil {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if req.SubServiceID == uuid.Nil {
		return nil, fmt.Errorf("%w: sub-service id is required", ErrInvalidInput)
	}

	sub, err := uc.subServices.GetByID(ctx, req.SubServiceID, true)
	if err != nil {
		if errors.Is(err, subservice.ErrSubServiceNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSubServiceNotFound, req.SubServiceID)
		}
		uc.log.Error("create_payment_intent.usecase: Execute - failed to fetch sub-service %s: %v", req.SubServiceID, err)
		return nil, fmt.Errorf("%w: Execute - failed to fetch sub-service: %v", ErrInternal, err)
	}

	amountCents := int64(math.Round(sub.Price * 100))

	intent, err := uc.payments.CreateIntent(ctx, payments.CreateIntentParams{
		AmountCents:    amountCents,
		Currency:       domain.PaymentCurrency,
		SubServiceID:   sub.ID.String(),
		SubServiceName: sub.Name,
	})
	if err != nil {
		uc.log.Error("create_payment_intent.usecase: Execute - failed to create intent for sub-service %s: %v", sub.ID, err)
		return nil, fmt.Errorf("%w: Execute - failed to create payment intent: %v", ErrInternal, err)
	}

	uc.log.Info("create_payment_intent.usecase: Execute - created intent %s for client %s, amount %d %s",
		intent.ID, req.ClientID, intent.AmountCents, intent.Currency)

	return &Response{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     intent.AmountCents,
		Currency:        intent.Currency,
	}, nil
}
