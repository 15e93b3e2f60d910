package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/OdontoBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// MarkersResponse отметки календаря: даты со свободными слотами
type MarkersResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Today string   `json:"today"`
	Dates []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.String(),
		Slots: slots,
	}
}

// FromMarkersResponse конвертирует отметки календаря в HTTP response
func FromMarkersResponse(resp *getAvailableSlots.MarkersResponse) *MarkersResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.String()
	}

	return &MarkersResponse{
		From:  resp.From.String(),
		To:    resp.To.String(),
		Today: resp.Today.String(),
		Dates: dates,
	}
}
