package bookings

import (
	"context"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

// Catalog интерфейс каталога процедур
type Catalog interface {
	ProfessionalFor(procedureName string) string
}

// Clock интерфейс для получения сегодняшней даты клиники
type Clock interface {
	Today() types.Date
}

// MetricsRecorder интерфейс для метрик бронирований
type MetricsRecorder interface {
	BookingConfirmed()
	BookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
