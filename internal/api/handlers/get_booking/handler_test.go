package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	"github.com/m04kA/OdontoBooking/internal/domain"
	bookingRepo "github.com/m04kA/OdontoBooking/internal/infra/storage/booking"
	"github.com/m04kA/OdontoBooking/internal/service/bookings"
	"github.com/m04kA/OdontoBooking/internal/service/bookings/models"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

type fixedClock struct{ today types.Date }

func (c fixedClock) Today() types.Date { return c.today }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubCatalog struct{}

func (stubCatalog) ProfessionalFor(string) string { return "" }

type stubMetrics struct{}

func (stubMetrics) BookingConfirmed() {}
func (stubMetrics) BookingCancelled() {}

func TestHandler(t *testing.T) {
	clock := fixedClock{today: "2025-06-01"}
	repo := bookingRepo.NewRepository()
	b, err := repo.Create(context.Background(), &domain.Booking{
		UserID: "owner", Date: "2025-06-10", Time: "09:00",
		ProcedureName: "Limpeza", Status: domain.StatusConfirmed,
	})
	require.NoError(t, err)

	h := NewHandler(bookings.NewService(repo, stubCatalog{}, clock, stubMetrics{}, nopLogger{}), nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}", h.Handle).Methods(http.MethodGet)

	do := func(userID, id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/bookings/"+id, nil)
		if userID != "" {
			req = req.WithContext(middleware.WithUserID(req.Context(), userID))
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := do("owner", b.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, b.ID, resp.ID)
	assert.True(t, resp.CanCancel)

	assert.Equal(t, http.StatusForbidden, do("intruder", b.ID).Code)
	assert.Equal(t, http.StatusNotFound, do("owner", "missing").Code)
	assert.Equal(t, http.StatusUnauthorized, do("", b.ID).Code)
}
