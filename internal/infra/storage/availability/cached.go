package availability

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m04kA/OdontoBooking/pkg/types"
)

// CachedTable LRU кэш поверх медленного источника слотов.
// Ошибки источника не кэшируются.
type CachedTable struct {
	inner Table
	cache *lru.Cache[types.Date, []types.TimeString]
	log   Logger
}

// NewCachedTable оборачивает таблицу кэшем на size дат
func NewCachedTable(inner Table, size int, log Logger) (*CachedTable, error) {
	cache, err := lru.New[types.Date, []types.TimeString](size)
	if err != nil {
		return nil, fmt.Errorf("availability cache: %w", err)
	}
	return &CachedTable{inner: inner, cache: cache, log: log}, nil
}

// Lookup отдает слоты из кэша или из источника
func (c *CachedTable) Lookup(ctx context.Context, date types.Date) ([]types.TimeString, error) {
	if slots, ok := c.cache.Get(date); ok {
		return append([]types.TimeString{}, slots...), nil
	}

	slots, err := c.inner.Lookup(ctx, date)
	if err != nil {
		return nil, err
	}

	c.cache.Add(date, append([]types.TimeString{}, slots...))
	c.log.Info("availability cache: stored date=%s slots=%d", date, len(slots))
	return slots, nil
}

// AvailableDates не кэшируется: диапазоны запрашиваются редко
func (c *CachedTable) AvailableDates(ctx context.Context, from, to types.Date) ([]types.Date, error) {
	return c.inner.AvailableDates(ctx, from, to)
}
