package availability

import (
	"context"
	"database/sql"

	"github.com/m04kA/OdontoBooking/pkg/types"
)

// Table источник доступных слотов по датам
type Table interface {
	Lookup(ctx context.Context, date types.Date) ([]types.TimeString, error)
	AvailableDates(ctx context.Context, from, to types.Date) ([]types.Date, error)
}

// DBExecutor интерфейс для выполнения запросов. Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
