package schedule_procedure

import (
	"context"

	"github.com/m04kA/OdontoBooking/internal/domain"
	bookingFlow "github.com/m04kA/OdontoBooking/internal/usecase/booking_flow"
)

type Catalog interface {
	GetByID(id string) (domain.Procedure, bool)
}

type BookingFlow interface {
	Start(ctx context.Context, req bookingFlow.StartRequest) (domain.SelectionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
