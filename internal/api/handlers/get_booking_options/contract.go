package get_booking_options

import (
	"context"

	bookingOptions "github.com/m04kA/Salon-BookingService/internal/usecase/get_booking_options"
)

type GetBookingOptionsUseCase interface {
	Execute(ctx context.Context, req *bookingOptions.Request) (*bookingOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
