package domain

import (
	"time"

	"github.com/m04kA/OdontoBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByUser   BookingStatus = "cancelled_by_user"
	StatusCancelledBySystem BookingStatus = "cancelled_by_system"
)

// Booking represents a patient's appointment at the clinic
type Booking struct {
	ID     string
	UserID string // Firebase UID владельца записи
	Date   types.Date
	Time   types.TimeString
	Status BookingStatus

	// Denormalized data for history
	ProcedureName    string
	ProfessionalName string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTerminal returns true if the booking reached a final status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted ||
		b.Status == StatusCancelledByUser ||
		b.Status == StatusCancelledBySystem
}

// HasCancellableStatus returns true if the status allows cancellation by the patient
func (b *Booking) HasCancellableStatus() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the patient may cancel the booking on the given day
func (b *Booking) CanBeCancelled(today types.Date) bool {
	return b.HasCancellableStatus() && !b.Date.Before(today)
}

// IsUpcoming returns true if the booking belongs to the "upcoming" view
func (b *Booking) IsUpcoming(today types.Date) bool {
	return !b.IsTerminal() && !b.Date.Before(today)
}

// Clone returns a deep copy, so callers never share state with the store
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		c.CancelledAt = &at
	}
	return &c
}
