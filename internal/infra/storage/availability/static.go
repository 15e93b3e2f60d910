package availability

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/OdontoBooking/pkg/types"
)

// StaticTable предзагруженная таблица слотов в памяти.
// Порядок слотов при регистрации совпадает с порядком отображения.
type StaticTable struct {
	mu      sync.RWMutex
	slots   map[types.Date][]types.TimeString
	latency time.Duration
}

// NewStaticTable создает пустую таблицу.
// latency имитирует сетевую задержку, чтобы клиенты не полагались на мгновенный ответ.
func NewStaticTable(latency time.Duration) *StaticTable {
	return &StaticTable{
		slots:   make(map[types.Date][]types.TimeString),
		latency: latency,
	}
}

// Register регистрирует слоты на дату, заменяя предыдущие.
// Пустой список тоже регистрируется: дата известна, но свободных слотов нет.
func (t *StaticTable) Register(date types.Date, slots []types.TimeString) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slots[date] = append([]types.TimeString{}, slots...)
}

// Lookup возвращает слоты на дату или пустой список, если дата не зарегистрирована
func (t *StaticTable) Lookup(ctx context.Context, date types.Date) ([]types.TimeString, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	slots := t.slots[date]
	return append([]types.TimeString{}, slots...), nil
}

// AvailableDates возвращает даты в диапазоне [from, to], у которых есть хотя бы один слот
func (t *StaticTable) AvailableDates(ctx context.Context, from, to types.Date) ([]types.Date, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	dates := make([]types.Date, 0)
	for date, slots := range t.slots {
		if len(slots) == 0 || date.Before(from) || date.After(to) {
			continue
		}
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func (t *StaticTable) wait(ctx context.Context) error {
	if t.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(t.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
