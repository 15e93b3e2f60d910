package booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking.repository: %w", domain.ErrNotFound)

	// ErrCannotCancel возвращается, когда статус бронирования не допускает отмену
	ErrCannotCancel = fmt.Errorf("booking.repository: booking cannot be cancelled: %w", domain.ErrInvalidState)

	// ErrDuplicateID возвращается при попытке сохранить бронирование с уже занятым ID
	ErrDuplicateID = errors.New("booking.repository: duplicate booking id")

	// ErrInvalidBooking возвращается при попытке сохранить пустое бронирование
	ErrInvalidBooking = errors.New("booking.repository: invalid booking")
)
