package clock

import (
	"fmt"
	"time"

	"github.com/m04kA/OdontoBooking/pkg/types"
)

// Clock выдает текущий день в таймзоне клиники
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New создает часы для указанной таймзоны (например, "America/Sao_Paulo")
func New(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("clock: unknown timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Today возвращает сегодняшнюю дату клиники
func (c *Clock) Today() types.Date {
	return types.NewDate(c.now().In(c.loc))
}

