package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// validateDate проверяет формат даты и что она не в прошлом
func validateDate(raw string, today types.Date) (types.Date, error) {
	date, err := types.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if date.Before(today) {
		return "", fmt.Errorf("%w: %s is in the past", ErrInvalidDate, date)
	}

	return date, nil
}

// markerRange вычисляет диапазон [from, to] календаря.
// Начало диапазона не может быть раньше сегодняшнего дня.
func markerRange(req *MarkersRequest, today types.Date) (types.Date, types.Date, error) {
	days := req.Days
	if days == 0 {
		days = DefaultMarkerDays
	}
	if days < 0 || days > domain.MaxMarkerRangeDays {
		return "", "", fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxMarkerRangeDays)
	}

	from := today
	if raw := strings.TrimSpace(req.From); raw != "" {
		parsed, err := types.ParseDate(raw)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		if parsed.After(today) {
			from = parsed
		}
	}

	to, err := from.AddDays(days - 1)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return from, to, nil
}
