package bookings

import (
	"fmt"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/internal/service/bookings/models"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// validateConfirmRequest валидирует запрос на создание бронирования
func validateConfirmRequest(req *models.ConfirmRequest, today types.Date) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Date.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidInput, req.Date)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len([]rune(req.ProcedureName)) > domain.MaxProcedureNameLength {
		return fmt.Errorf("%w: procedure name exceeds %d characters", ErrInvalidInput, domain.MaxProcedureNameLength)
	}

	return nil
}
