package get_sub_services

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListSubServices(ctx context.Context, serviceID uuid.UUID, onlyActive bool) (*models.SubServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
