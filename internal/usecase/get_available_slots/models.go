package get_available_slots

import "github.com/m04kA/OdontoBooking/pkg/types"

// DefaultMarkerDays количество дней календаря по умолчанию
const DefaultMarkerDays = 31

// Request модель запроса на получение слотов на дату
type Request struct {
	UserID string // UID пациента (для логирования, не влияет на результат)
	Date   string // "2025-06-10"
}

// Response модель ответа со списком слотов
type Response struct {
	Date  types.Date         // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Слоты в порядке отображения, пустой список - свободных слотов нет
}

// MarkersRequest модель запроса отметок календаря
type MarkersRequest struct {
	UserID string
	From   string // Начало диапазона, по умолчанию сегодня
	Days   int    // Длина диапазона в днях, по умолчанию DefaultMarkerDays
}

// MarkersResponse модель ответа с датами, на которые есть свободные слоты
type MarkersResponse struct {
	From  types.Date
	To    types.Date
	Today types.Date
	Dates []types.Date
}
