package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/OdontoBooking/pkg/types"
)

func TestBooking_CanBeCancelled(t *testing.T) {
	today := types.Date("2025-06-10")

	tests := []struct {
		name   string
		status BookingStatus
		date   types.Date
		want   bool
	}{
		{"confirmed today", StatusConfirmed, "2025-06-10", true},
		{"pending in future", StatusPending, "2025-07-01", true},
		{"confirmed in past", StatusConfirmed, "2025-06-09", false},
		{"completed", StatusCompleted, "2025-06-20", false},
		{"already cancelled", StatusCancelledByUser, "2025-06-20", false},
		{"cancelled by system", StatusCancelledBySystem, "2025-06-20", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status, Date: tt.date}
			assert.Equal(t, tt.want, b.CanBeCancelled(today))
		})
	}
}

func TestBooking_CloneDoesNotShareCancelledAt(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	b := &Booking{ID: "b1", CancelledAt: &at}

	c := b.Clone()
	*c.CancelledAt = c.CancelledAt.Add(time.Hour)
	c.Status = StatusCompleted

	assert.Equal(t, at, *b.CancelledAt)
	assert.Empty(t, b.Status)
}

func TestSelectionState_CanRequestConfirm(t *testing.T) {
	s := SelectionState{SelectedDate: "2025-06-10"}
	assert.False(t, s.CanRequestConfirm())

	s.SelectedTime = "09:00"
	assert.True(t, s.CanRequestConfirm())
}
