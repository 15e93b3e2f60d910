package cancel_booking

import (
	"fmt"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/internal/service/bookings/models"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// CancellationPromptResponse ответ первой фазы отмены: текст диалога подтверждения
type CancellationPromptResponse struct {
	Booking *models.BookingResponse `json:"booking"`
	Title   string                  `json:"title"`
	Prompt  string                  `json:"prompt"`
}

func newPrompt(b *domain.Booking, today types.Date) *CancellationPromptResponse {
	return &CancellationPromptResponse{
		Booking: models.FromDomainBooking(b, today),
		Title:   "Cancelar Agendamento",
		Prompt: fmt.Sprintf("Tem certeza que deseja cancelar o agendamento de %s em %s às %s?",
			b.ProcedureName, handlers.FormatDisplayDate(b.Date), b.Time),
	}
}
