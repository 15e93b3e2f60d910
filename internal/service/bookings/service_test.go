package bookings

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OdontoBooking/internal/domain"
	bookingRepo "github.com/m04kA/OdontoBooking/internal/infra/storage/booking"
	"github.com/m04kA/OdontoBooking/internal/service/bookings/models"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

type fixedClock struct{ today types.Date }

func (c *fixedClock) Today() types.Date { return c.today }

type stubCatalog struct{}

func (stubCatalog) ProfessionalFor(name string) string {
	if name == "Limpeza" {
		return "Dr(a). Ana Silva"
	}
	return domain.DefaultProfessionalName
}

type countingMetrics struct {
	confirmed atomic.Int32
	cancelled atomic.Int32
}

func (m *countingMetrics) BookingConfirmed() { m.confirmed.Add(1) }
func (m *countingMetrics) BookingCancelled() { m.cancelled.Add(1) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc     *Service
	repo    *bookingRepo.Repository
	clock   *fixedClock
	metrics *countingMetrics
}

func newFixture(today types.Date) *fixture {
	repo := bookingRepo.NewRepository()
	clock := &fixedClock{today: today}
	metrics := &countingMetrics{}
	return &fixture{
		svc:     NewService(repo, stubCatalog{}, clock, metrics, nopLogger{}),
		repo:    repo,
		clock:   clock,
		metrics: metrics,
	}
}

func (f *fixture) put(t *testing.T, userID string, date types.Date, tm types.TimeString, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	created, err := f.repo.Create(context.Background(), &domain.Booking{
		UserID:        userID,
		Date:          date,
		Time:          tm,
		ProcedureName: "Limpeza",
		Status:        status,
	})
	require.NoError(t, err)
	return created
}

func TestService_ConfirmCreatesConfirmedBooking(t *testing.T) {
	f := newFixture("2025-06-01")

	booking, err := f.svc.Confirm(context.Background(), &models.ConfirmRequest{
		UserID:        "u1",
		Date:          "2025-06-10",
		Time:          "09:00",
		ProcedureName: "Limpeza",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, types.Date("2025-06-10"), booking.Date)
	assert.Equal(t, types.TimeString("09:00"), booking.Time)
	assert.Equal(t, "Limpeza", booking.ProcedureName)
	assert.Equal(t, "Dr(a). Ana Silva", booking.ProfessionalName)
	assert.Equal(t, 1, f.repo.Count())
	assert.EqualValues(t, 1, f.metrics.confirmed.Load())
}

func TestService_ConfirmDefaultsProcedure(t *testing.T) {
	f := newFixture("2025-06-01")

	booking, err := f.svc.Confirm(context.Background(), &models.ConfirmRequest{
		UserID: "u1",
		Date:   "2025-06-10",
		Time:   "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProcedureName, booking.ProcedureName)
	assert.Equal(t, domain.DefaultProfessionalName, booking.ProfessionalName)
}

func TestService_ConfirmValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.ConfirmRequest
	}{
		{"missing user", models.ConfirmRequest{Date: "2025-06-10", Time: "09:00"}},
		{"missing date", models.ConfirmRequest{UserID: "u1", Time: "09:00"}},
		{"missing time", models.ConfirmRequest{UserID: "u1", Date: "2025-06-10"}},
		{"malformed date", models.ConfirmRequest{UserID: "u1", Date: "10/06/2025", Time: "09:00"}},
		{"malformed time", models.ConfirmRequest{UserID: "u1", Date: "2025-06-10", Time: "25:00"}},
		{"past date", models.ConfirmRequest{UserID: "u1", Date: "2025-05-31", Time: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("2025-06-01")
			req := tt.req

			booking, err := f.svc.Confirm(context.Background(), &req)
			assert.Nil(t, booking)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, 0, f.repo.Count())
			assert.EqualValues(t, 0, f.metrics.confirmed.Load())
		})
	}
}

func TestService_CancelTwoPhase(t *testing.T) {
	f := newFixture("2025-06-01")
	ctx := context.Background()
	b := f.put(t, "u1", "2025-06-10", "09:00", domain.StatusConfirmed)

	pending, err := f.svc.RequestCancel(ctx, "u1", b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, pending.Status)

	stored, err := f.repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status, "first phase must not mutate the booking")

	cancelled, err := f.svc.Cancel(ctx, "u1", b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	assert.EqualValues(t, 1, f.metrics.cancelled.Load())

	// повторная отмена требует нового запроса и отклоняется по статусу
	_, err = f.svc.Cancel(ctx, "u1", b.ID)
	assert.ErrorIs(t, err, ErrCancellationNotRequested)
	_, err = f.svc.RequestCancel(ctx, "u1", b.ID)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_AbortCancelKeepsBooking(t *testing.T) {
	f := newFixture("2025-06-01")
	ctx := context.Background()
	b := f.put(t, "u1", "2025-06-10", "09:00", domain.StatusPending)

	_, err := f.svc.RequestCancel(ctx, "u1", b.ID)
	require.NoError(t, err)
	require.NoError(t, f.svc.AbortCancel("u1", b.ID))

	_, err = f.svc.Cancel(ctx, "u1", b.ID)
	assert.ErrorIs(t, err, ErrCancellationNotRequested)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	stored, err := f.repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)

	assert.ErrorIs(t, f.svc.AbortCancel("u1", b.ID), ErrCancellationNotRequested)
}

func TestService_RequestCancelRejectsIneligible(t *testing.T) {
	f := newFixture("2025-06-10")
	ctx := context.Background()

	completed := f.put(t, "u1", "2025-06-12", "09:00", domain.StatusCompleted)
	cancelled := f.put(t, "u1", "2025-06-12", "10:00", domain.StatusCancelledBySystem)
	yesterday := f.put(t, "u1", "2025-06-09", "09:00", domain.StatusConfirmed)

	for _, b := range []*domain.Booking{completed, cancelled, yesterday} {
		_, err := f.svc.RequestCancel(ctx, "u1", b.ID)
		assert.ErrorIs(t, err, ErrCannotCancel, b.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidState, b.ID)
	}

	today := f.put(t, "u1", "2025-06-10", "18:00", domain.StatusConfirmed)
	_, err := f.svc.RequestCancel(ctx, "u1", today.ID)
	assert.NoError(t, err, "a booking for today is still cancellable")
}

func TestService_CancelRechecksDateBetweenPhases(t *testing.T) {
	f := newFixture("2025-06-10")
	ctx := context.Background()
	b := f.put(t, "u1", "2025-06-10", "09:00", domain.StatusConfirmed)

	_, err := f.svc.RequestCancel(ctx, "u1", b.ID)
	require.NoError(t, err)

	f.clock.today = "2025-06-11"
	_, err = f.svc.Cancel(ctx, "u1", b.ID)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_CancelOwnershipAndNotFound(t *testing.T) {
	f := newFixture("2025-06-01")
	ctx := context.Background()
	b := f.put(t, "owner", "2025-06-10", "09:00", domain.StatusConfirmed)

	_, err := f.svc.RequestCancel(ctx, "intruder", b.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.RequestCancel(ctx, "owner", "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ConcurrentConfirmCancelIsConsistent(t *testing.T) {
	f := newFixture("2025-06-01")
	ctx := context.Background()
	b := f.put(t, "u1", "2025-06-10", "09:00", domain.StatusConfirmed)
	_, err := f.svc.RequestCancel(ctx, "u1", b.ID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var successes atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.Cancel(ctx, "u1", b.ID); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, successes.Load())
	assert.EqualValues(t, 1, f.metrics.cancelled.Load())
}

func TestService_ListBookingsViews(t *testing.T) {
	f := newFixture("2025-06-10")
	ctx := context.Background()

	f.put(t, "u1", "2025-06-15", "14:00", domain.StatusConfirmed)
	f.put(t, "u1", "2025-06-10", "09:00", domain.StatusPending)
	f.put(t, "u1", "2025-06-15", "08:00", domain.StatusConfirmed)
	f.put(t, "u1", "2025-06-20", "10:00", domain.StatusCancelledByUser)
	f.put(t, "u1", "2025-05-01", "10:00", domain.StatusCompleted)
	f.put(t, "u1", "2025-06-09", "10:00", domain.StatusConfirmed)
	f.put(t, "u2", "2025-06-11", "10:00", domain.StatusConfirmed)

	upcoming, err := f.svc.ListBookings(ctx, &models.ListBookingsRequest{UserID: "u1", View: domain.ViewUpcoming})
	require.NoError(t, err)
	require.Len(t, upcoming.Bookings, 3)
	assert.Equal(t, "2025-06-10", upcoming.Bookings[0].Date)
	assert.Equal(t, "08:00", upcoming.Bookings[1].Time)
	assert.Equal(t, "14:00", upcoming.Bookings[2].Time)
	assert.True(t, upcoming.Bookings[0].CanCancel)
	assert.Equal(t, "Pendente", upcoming.Bookings[0].StatusLabel)

	past, err := f.svc.ListBookings(ctx, &models.ListBookingsRequest{UserID: "u1", View: domain.ViewPast})
	require.NoError(t, err)
	require.Len(t, past.Bookings, 3)
	assert.Equal(t, "2025-06-20", past.Bookings[0].Date)
	assert.Equal(t, "2025-06-09", past.Bookings[1].Date)
	assert.Equal(t, "2025-05-01", past.Bookings[2].Date)
	assert.False(t, past.Bookings[0].CanCancel)
	assert.Nil(t, past.Bookings[0].CancelledAt, "cancelledAt is set only by Cancel")

	def, err := f.svc.ListBookings(ctx, &models.ListBookingsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, domain.ViewUpcoming, def.View)

	_, err = f.svc.ListBookings(ctx, &models.ListBookingsRequest{UserID: "u1", View: "all"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPartition_DisjointAndComplete(t *testing.T) {
	today := types.Date("2025-06-10")
	var list []*domain.Booking
	statuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledBySystem,
	}
	for i, st := range statuses {
		for _, d := range []types.Date{"2025-06-09", "2025-06-10", "2025-06-11"} {
			list = append(list, &domain.Booking{ID: string(st) + string(d), Date: d, Time: types.TimeString([]string{"08:00", "09:00", "10:00", "11:00", "12:00"}[i]), Status: st})
		}
	}

	upcoming, past := Partition(list, today)
	assert.Len(t, append(upcoming, past...), len(list))

	seen := make(map[string]bool)
	for _, b := range upcoming {
		assert.False(t, b.IsTerminal())
		assert.False(t, b.Date.Before(today))
		seen[b.ID] = true
	}
	for _, b := range past {
		assert.False(t, seen[b.ID], "booking %s is in both views", b.ID)
		assert.True(t, b.IsTerminal() || b.Date.Before(today))
	}
}

func TestPartition_EmptyInput(t *testing.T) {
	upcoming, past := Partition(nil, "2025-06-10")
	assert.NotNil(t, upcoming)
	assert.NotNil(t, past)
	assert.Empty(t, upcoming)
	assert.Empty(t, past)
}

func TestService_GetBooking(t *testing.T) {
	f := newFixture("2025-06-01")
	ctx := context.Background()
	b := f.put(t, "u1", "2025-06-10", "09:00", domain.StatusConfirmed)

	resp, err := f.svc.GetBooking(ctx, "u1", b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, "Confirmado", resp.StatusLabel)
	assert.True(t, resp.CanCancel)

	_, err = f.svc.GetBooking(ctx, "u2", b.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetBooking(ctx, "u1", "nope")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
