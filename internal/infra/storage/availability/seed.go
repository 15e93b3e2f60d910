package availability

import "github.com/m04kA/OdontoBooking/pkg/types"

// demoSlots демонстрационное расписание: смещение от сегодняшнего дня -> слоты
var demoSlots = []struct {
	offsetDays int
	slots      []types.TimeString
}{
	{1, []types.TimeString{"09:00", "09:30", "10:00", "14:00", "14:30"}},
	{2, []types.TimeString{"10:30", "11:00", "11:30", "15:00", "16:00"}},
	{3, []types.TimeString{}},
	{5, []types.TimeString{"09:00", "11:00", "14:00", "16:30"}},
	{7, []types.TimeString{"10:00", "10:30", "11:00", "11:30", "12:00"}},
}

// SeedDemo регистрирует демонстрационное расписание относительно today
func SeedDemo(table *StaticTable, today types.Date) error {
	for _, demo := range demoSlots {
		date, err := today.AddDays(demo.offsetDays)
		if err != nil {
			return err
		}
		table.Register(date, demo.slots)
	}
	return nil
}
