package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/availability"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage/subservice"
)

// UseCase returns the bookable start times of a sub-service for one day.
type UseCase struct {
	subServices  SubServiceRepository
	timeProvider TimeProvider
	log          Logger
}

func NewUseCase(subServices SubServiceRepository, timeProvider TimeProvider, log Logger) *UseCase {
	return &UseCase{
		subServices:  subServices,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute generates the slot grid for the requested date. A closed or past
// date is not an error: the response simply carries no slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	sub, err := uc.subServices.GetByID(ctx, req.SubServiceID, true)
	if err != nil {
		if errors.Is(err, subservice.ErrSubServiceNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSubServiceNotFound, req.SubServiceID)
		}
		uc.log.Error("get_available_slots.usecase: Execute - failed to fetch sub-service %s: %v", req.SubServiceID, err)
		return nil, fmt.Errorf("%w: Execute - failed to fetch sub-service: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	slots := availability.GenerateSlots(req.Date, sub.DurationMinutes, now)

	uc.log.Info("get_available_slots.usecase: Execute - sub-service=%s date=%s slots=%d",
		sub.ID, req.Date.Format("2006-01-02"), len(slots))

	return &Response{
		SubServiceID:    sub.ID,
		SubServiceName:  sub.Name,
		DurationMinutes: sub.DurationMinutes,
		Date:            req.Date,
		Slots:           slots,
	}, nil
}
