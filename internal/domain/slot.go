package domain

import "github.com/m04kA/OdontoBooking/pkg/types"

// FlowState состояние машины выбора даты/времени
type FlowState string

const (
	FlowBrowsing     FlowState = "browsing"      // календарь, дата не отправлена на поиск слотов
	FlowLoadingTimes FlowState = "loading_times" // дата выбрана, поиск слотов в процессе
	FlowChoosingTime FlowState = "choosing_time" // слоты загружены
	FlowConfirming   FlowState = "confirming"    // ожидается явное подтверждение пациента
)

// SelectionState снимок состояния выбора для одного пациента
//
// Invariants:
//   - ShowingTimeSlotPane implies SelectedDate is set
//   - SelectedTime is set only while ShowingTimeSlotPane
type SelectionState struct {
	State               FlowState
	SelectedDate        types.Date
	SelectedTime        types.TimeString
	AvailableTimes      []types.TimeString
	IsLoadingTimes      bool
	ShowingTimeSlotPane bool
	ProcedureName       string
	LastError           string // сообщение для пациента о последнем неудачном поиске слотов
}

// CanRequestConfirm returns true if both date and time are chosen
func (s *SelectionState) CanRequestConfirm() bool {
	return !s.SelectedDate.IsZero() && !s.SelectedTime.IsZero()
}

// HasTime returns true if t is among the loaded slots
func (s *SelectionState) HasTime(t types.TimeString) bool {
	for _, slot := range s.AvailableTimes {
		if slot == t {
			return true
		}
	}
	return false
}
