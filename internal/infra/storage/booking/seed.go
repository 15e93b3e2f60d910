package booking

import (
	"context"
	"fmt"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

type demoBooking struct {
	offsetDays   int
	time         types.TimeString
	procedure    string
	professional string
	status       domain.BookingStatus
}

var demoBookings = []demoBooking{
	{7, "10:00", "Limpeza Dental Completa", "Dr(a). Ana Silva", domain.StatusConfirmed},
	{-15, "14:30", "Clareamento Dental a Laser", "Dr(a). Carlos Lima", domain.StatusCompleted},
	{2, "09:00", "Consulta de Avaliação", "Dr(a). Ana Silva", domain.StatusPending},
	{-30, "11:00", "Restauração Estética", "Dr(a). Sofia Costa", domain.StatusCompleted},
	{1, "16:00", "Avaliação Ortodôntica", "Dr(a). Bruno Mendes", domain.StatusConfirmed},
	{10, "08:00", "Extração de Siso", "Dr(a). Carlos Lima", domain.StatusCancelledByUser},
	{-5, "17:00", "Manutenção Ortodôntica", "Dr(a). Bruno Mendes", domain.StatusCompleted},
}

// SeedDemo заполняет хранилище демонстрационными записями пользователя относительно today
func SeedDemo(ctx context.Context, repo *Repository, userID string, today types.Date) (int, error) {
	for _, demo := range demoBookings {
		date, err := today.AddDays(demo.offsetDays)
		if err != nil {
			return 0, err
		}

		_, err = repo.Create(ctx, &domain.Booking{
			UserID:           userID,
			Date:             date,
			Time:             demo.time,
			ProcedureName:    demo.procedure,
			ProfessionalName: demo.professional,
			Status:           demo.status,
		})
		if err != nil {
			return 0, fmt.Errorf("seed booking %q: %w", demo.procedure, err)
		}
	}
	return len(demoBookings), nil
}
