package booking_flow

import (
	"context"

	"github.com/m04kA/OdontoBooking/internal/domain"
	bookingModels "github.com/m04kA/OdontoBooking/internal/service/bookings/models"
	"github.com/m04kA/OdontoBooking/internal/service/navigation"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// AvailabilityTable интерфейс таблицы доступных слотов.
// Lookup может выполняться сколь угодно долго и должен уважать ctx.
type AvailabilityTable interface {
	Lookup(ctx context.Context, date types.Date) ([]types.TimeString, error)
}

// BookingConfirmer интерфейс сервиса подтверждения записи
type BookingConfirmer interface {
	Confirm(ctx context.Context, req *bookingModels.ConfirmRequest) (*domain.Booking, error)
}

// Navigator интерфейс навигации клиентского приложения
type Navigator interface {
	NavigateTo(userID string, screen navigation.Screen, params map[string]string)
	Current(userID string) navigation.Entry
}

// Clock интерфейс для получения сегодняшней даты клиники (для тестирования)
type Clock interface {
	Today() types.Date
}

// LookupRecorder интерфейс для метрик поиска слотов
type LookupRecorder interface {
	LookupFinished(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
