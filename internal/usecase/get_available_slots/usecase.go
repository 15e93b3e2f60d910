package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/OdontoBooking/pkg/types"
)

// UseCase use case для прямого запроса доступности: слоты на дату и отметки календаря
type UseCase struct {
	availability AvailabilityTable
	clock        Clock
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityTable, clock Clock, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		clock:        clock,
		logger:       logger,
	}
}

// Execute возвращает слоты на дату без участия машины состояний записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s, date=%s", req.UserID, req.Date)

	// 1. Валидация даты
	date, err := validateDate(req.Date, uc.clock.Today())
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Запрос таблицы доступности
	slots, err := uc.availability.Lookup(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: lookup for %s failed: %v", date, err)
		return nil, fmt.Errorf("%w: lookup failed: %v", ErrInternal, err)
	}

	if slots == nil {
		slots = []types.TimeString{}
	}

	uc.logger.Info("GetAvailableSlots: %d slots on %s", len(slots), date)
	return &Response{Date: date, Slots: slots}, nil
}

// Markers возвращает даты диапазона, на которые есть свободные слоты
func (uc *UseCase) Markers(ctx context.Context, req *MarkersRequest) (*MarkersResponse, error) {
	uc.logger.Info("GetAvailabilityMarkers: user=%s, from=%q, days=%d", req.UserID, req.From, req.Days)

	today := uc.clock.Today()
	from, to, err := markerRange(req, today)
	if err != nil {
		uc.logger.Warn("GetAvailabilityMarkers: validation failed: %v", err)
		return nil, err
	}

	dates, err := uc.availability.AvailableDates(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailabilityMarkers: failed for [%s, %s]: %v", from, to, err)
		return nil, fmt.Errorf("%w: available dates failed: %v", ErrInternal, err)
	}

	if dates == nil {
		dates = []types.Date{}
	}

	return &MarkersResponse{From: from, To: to, Today: today, Dates: dates}, nil
}
