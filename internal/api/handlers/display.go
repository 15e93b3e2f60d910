package handlers

import (
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// FormatDisplayDate форматирует дату для пациента: "10/06/2025"
func FormatDisplayDate(d types.Date) string {
	t, err := d.Time()
	if err != nil {
		return d.String()
	}
	return t.Format("02/01/2006")
}
