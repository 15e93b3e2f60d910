package get_available_slots

import (
	"context"

	"github.com/m04kA/OdontoBooking/pkg/types"
)

// AvailabilityTable интерфейс таблицы доступных слотов
type AvailabilityTable interface {
	// Lookup возвращает слоты на дату в порядке отображения
	Lookup(ctx context.Context, date types.Date) ([]types.TimeString, error)
	// AvailableDates возвращает даты диапазона [from, to] с хотя бы одним слотом
	AvailableDates(ctx context.Context, from, to types.Date) ([]types.Date, error)
}

// Clock интерфейс для получения сегодняшней даты клиники (для тестирования)
type Clock interface {
	Today() types.Date
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
