package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("bookings: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пациенту
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено (статус или дата)
	ErrCannotCancel = fmt.Errorf("bookings: booking cannot be cancelled: %w", domain.ErrInvalidState)

	// ErrCancellationNotRequested возвращается при подтверждении отмены без предварительного запроса
	ErrCancellationNotRequested = fmt.Errorf("bookings: cancellation was not requested: %w", domain.ErrInvalidState)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("bookings: invalid input: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
