package booking_flow

import "github.com/m04kA/OdontoBooking/pkg/types"

// StartRequest модель запроса на открытие экрана записи
type StartRequest struct {
	UserID               string // Firebase UID пациента
	PreselectedProcedure string // Процедура, выбранная на экране процедур (опционально)
}

// PickRequest модель запроса на выбор даты в календаре
type PickRequest struct {
	UserID string
	Date   string // "2025-06-10"
}

// SelectTimeRequest модель запроса на выбор времени
type SelectTimeRequest struct {
	UserID string
	Time   string // "09:00"
}

// lookupTag метка запроса слотов: дата и порядковый номер запроса в сессии
type lookupTag struct {
	date types.Date
	seq  uint64
}
