package booking_flow

import (
	"fmt"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

// Сообщения для пациента
const (
	MsgSelectDateAndTime = "Por favor, selecione uma data e um horário para continuar."
	MsgLookupFailed      = "Não foi possível carregar os horários. Tente novamente."
)

var (
	// ErrInvalidInput возвращается при некорректном формате даты или времени
	ErrInvalidInput = fmt.Errorf("booking_flow: invalid input: %w", domain.ErrValidation)

	// ErrSelectionIncomplete возвращается, когда для подтверждения не хватает даты или времени
	ErrSelectionIncomplete = fmt.Errorf("booking_flow: %s: %w", MsgSelectDateAndTime, domain.ErrValidation)

	// ErrTimeNotAvailable возвращается, когда время отсутствует среди загруженных слотов
	ErrTimeNotAvailable = fmt.Errorf("booking_flow: time is not available for selected date: %w", domain.ErrValidation)

	// ErrInvalidState возвращается, когда действие недопустимо в текущем состоянии выбора
	ErrInvalidState = fmt.Errorf("booking_flow: action not allowed in current state: %w", domain.ErrInvalidState)

	// ErrConfirmInProgress возвращается при повторном подтверждении, пока первое не завершилось
	ErrConfirmInProgress = fmt.Errorf("booking_flow: confirmation already in progress: %w", domain.ErrInvalidState)
)
