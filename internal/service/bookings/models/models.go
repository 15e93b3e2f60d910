package models

import (
	"time"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// Request модели

// ConfirmRequest запрос на создание бронирования из выбранных даты и времени
type ConfirmRequest struct {
	UserID        string
	Date          types.Date
	Time          types.TimeString
	ProcedureName string
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	UserID string `json:"userId"`
	View   string `json:"view"` // upcoming | past
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"` // "2025-06-10"
	Time             string  `json:"time"` // "09:00"
	ProcedureName    string  `json:"procedureName"`
	ProfessionalName string  `json:"professionalName"`
	Status           string  `json:"status"`
	StatusLabel      string  `json:"statusLabel"`
	CanCancel        bool    `json:"canCancel"`
	CancelledAt      *string `json:"cancelledAt,omitempty"` // ISO 8601 format
	CreatedAt        string  `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	View     string            `json:"view"`
	Bookings []BookingResponse `json:"bookings"`
}

// statusLabels подписи статусов для приложения пациента
var statusLabels = map[domain.BookingStatus]string{
	domain.StatusPending:           "Pendente",
	domain.StatusConfirmed:         "Confirmado",
	domain.StatusCompleted:         "Realizado",
	domain.StatusCancelledByUser:   "Cancelado pelo Usuário",
	domain.StatusCancelledBySystem: "Cancelado",
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, today types.Date) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		Date:             b.Date.String(),
		Time:             b.Time.String(),
		ProcedureName:    b.ProcedureName,
		ProfessionalName: b.ProfessionalName,
		Status:           string(b.Status),
		StatusLabel:      statusLabels[b.Status],
		CanCancel:        b.CanBeCancelled(today),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO, сохраняя порядок
func FromDomainBookingList(bookings []*domain.Booking, view string, today types.Date) *BookingListResponse {
	resp := &BookingListResponse{
		View:     view,
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, today); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
