package cancel_booking

import (
	"context"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

type BookingService interface {
	RequestCancel(ctx context.Context, userID, bookingID string) (*domain.Booking, error)
	AbortCancel(userID, bookingID string) error
	Cancel(ctx context.Context, userID, bookingID string) (*domain.Booking, error)
}

type Clock interface {
	Today() types.Date
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
