package bookings

import (
	"sort"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// Partition делит бронирования на два непересекающихся представления:
// upcoming - активные с датой >= today по возрастанию (дата, время),
// past - все остальные по убыванию (дата, время).
// Представления производные и пересчитываются при каждом запросе.
func Partition(list []*domain.Booking, today types.Date) (upcoming, past []*domain.Booking) {
	upcoming = make([]*domain.Booking, 0)
	past = make([]*domain.Booking, 0)

	for _, b := range list {
		if b.IsUpcoming(today) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool { return before(upcoming[i], upcoming[j]) })
	sort.SliceStable(past, func(i, j int) bool { return before(past[j], past[i]) })

	return upcoming, past
}

func before(a, b *domain.Booking) bool {
	if a.Date != b.Date {
		return a.Date.Before(b.Date)
	}
	return a.Time.IsBefore(b.Time)
}
