package confirm_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if req.SubServiceID == uuid.Nil {
		return fmt.Errorf("%w: sub-service id is required", ErrInvalidInput)
	}
	if req.StaffID == uuid.Nil {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(req.PaymentIntentID) == "" {
		return fmt.Errorf("%w: payment intent id is required", ErrInvalidInput)
	}
	return nil
}
