package booking_flow

import (
	"fmt"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/internal/service/bookings/models"
)

// StartRequest HTTP request model открытия экрана записи
type StartRequest struct {
	PreselectedProcedure string `json:"preselectedProcedure"`
}

// PickRequest HTTP request model выбора даты
type PickRequest struct {
	Date string `json:"date"`
}

// SelectTimeRequest HTTP request model выбора времени
type SelectTimeRequest struct {
	Time string `json:"time"`
}

// StateResponse снимок машины выбора даты и времени
type StateResponse struct {
	State               string   `json:"state"`
	SelectedDate        string   `json:"selectedDate"`
	SelectedTime        string   `json:"selectedTime"`
	AvailableTimes      []string `json:"availableTimes"`
	IsLoadingTimes      bool     `json:"isLoadingTimes"`
	ShowingTimeSlotPane bool     `json:"showingTimeSlotPane"`
	ProcedureName       string   `json:"procedureName"`
	CanRequestConfirm   bool     `json:"canRequestConfirm"`
	LastError           string   `json:"lastError,omitempty"`
}

// ConfirmationPromptResponse текст диалога подтверждения записи
type ConfirmationPromptResponse struct {
	StateResponse
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// ConfirmedResponse ответ на подтвержденную запись
type ConfirmedResponse struct {
	Booking *models.BookingResponse `json:"booking"`
	State   *StateResponse          `json:"state"`
}

// FromSelectionState конвертирует состояние use case в HTTP response
func FromSelectionState(s domain.SelectionState) *StateResponse {
	times := make([]string, len(s.AvailableTimes))
	for i, t := range s.AvailableTimes {
		times[i] = t.String()
	}

	return &StateResponse{
		State:               string(s.State),
		SelectedDate:        s.SelectedDate.String(),
		SelectedTime:        s.SelectedTime.String(),
		AvailableTimes:      times,
		IsLoadingTimes:      s.IsLoadingTimes,
		ShowingTimeSlotPane: s.ShowingTimeSlotPane,
		ProcedureName:       s.ProcedureName,
		CanRequestConfirm:   s.State == domain.FlowChoosingTime && s.CanRequestConfirm(),
		LastError:           s.LastError,
	}
}

func newConfirmationPrompt(s domain.SelectionState) *ConfirmationPromptResponse {
	return &ConfirmationPromptResponse{
		StateResponse: *FromSelectionState(s),
		Title:         "Confirmar Agendamento",
		Prompt: fmt.Sprintf("Deseja confirmar seu agendamento para:\n\nData: %s\nHorário: %s",
			handlers.FormatDisplayDate(s.SelectedDate), s.SelectedTime),
	}
}
