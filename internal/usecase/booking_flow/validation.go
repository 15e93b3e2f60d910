package booking_flow

import (
	"fmt"
	"strings"

	"github.com/m04kA/OdontoBooking/pkg/types"
)

// parseDate валидирует и нормализует дату из календаря
func parseDate(raw string) (types.Date, error) {
	date, err := types.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return date, nil
}

// parseTime валидирует и нормализует выбранное время
func parseTime(raw string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return t, nil
}
