package update_staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/service/staff/models"
)

type StaffService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateStaffRequest) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
