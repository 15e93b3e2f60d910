package booking_flow

import (
	"context"

	"github.com/m04kA/OdontoBooking/internal/domain"
	bookingFlow "github.com/m04kA/OdontoBooking/internal/usecase/booking_flow"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

type BookingFlowUseCase interface {
	Start(ctx context.Context, req bookingFlow.StartRequest) (domain.SelectionState, error)
	State(userID string) domain.SelectionState
	Pick(ctx context.Context, req bookingFlow.PickRequest) (<-chan struct{}, error)
	SelectTime(ctx context.Context, req bookingFlow.SelectTimeRequest) (domain.SelectionState, error)
	RequestConfirm(ctx context.Context, userID string) (domain.SelectionState, error)
	UserConfirms(ctx context.Context, userID string) (*domain.Booking, error)
	UserCancels(ctx context.Context, userID string) (domain.SelectionState, error)
	BackToCalendar(ctx context.Context, userID string) (domain.SelectionState, error)
}

type Clock interface {
	Today() types.Date
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
