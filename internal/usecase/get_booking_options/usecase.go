package get_booking_options

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/availability"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage/subservice"
)

// UseCase assembles the booking form data for a sub-service: its details
// plus the stylists a client may pick. When exactly one stylist is
// eligible the response carries an auto-select hint.
type UseCase struct {
	subServices SubServiceRepository
	log         Logger
}

func NewUseCase(subServices SubServiceRepository, log Logger) *UseCase {
	return &UseCase{
		subServices: subServices,
		log:         log,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SubServiceID == uuid.Nil {
		return nil, fmt.Errorf("%w: sub-service id is required", ErrInvalidInput)
	}

	sub, err := uc.subServices.GetByID(ctx, req.SubServiceID, true)
	if err != nil {
		if errors.Is(err, subservice.ErrSubServiceNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSubServiceNotFound, req.SubServiceID)
		}
		uc.log.Error("get_booking_options.usecase: Execute - failed to fetch sub-service %s: %v", req.SubServiceID, err)
		return nil, fmt.Errorf("%w: Execute - failed to fetch sub-service: %v", ErrInternal, err)
	}

	assignments, err := uc.subServices.ListAssignedStaff(ctx, req.SubServiceID)
	if err != nil {
		uc.log.Error("get_booking_options.usecase: Execute - failed to list staff for %s: %v", req.SubServiceID, err)
		return nil, fmt.Errorf("%w: Execute - failed to list staff: %v", ErrInternal, err)
	}

	eligible := availability.EligibleStaff(assignments)

	staff := make([]StaffOption, 0, len(eligible))
	for _, a := range eligible {
		staff = append(staff, StaffOption{
			ID:              a.StaffID,
			FullName:        a.FullName,
			ExperienceLevel: a.ExperienceLevel,
		})
	}
	sort.Slice(staff, func(i, j int) bool {
		return staff[i].FullName < staff[j].FullName
	})

	resp := &Response{
		SubServiceID:    sub.ID,
		SubServiceName:  sub.Name,
		ServiceName:     sub.ServiceName,
		Price:           sub.Price,
		DurationMinutes: sub.DurationMinutes,
		Staff:           staff,
	}
	if len(staff) == 1 {
		id := staff[0].ID
		resp.AutoSelectStaffID = &id
	}

	return resp, nil
}
