package get_procedures

import "github.com/m04kA/OdontoBooking/internal/domain"

type Catalog interface {
	List() []domain.Procedure
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
