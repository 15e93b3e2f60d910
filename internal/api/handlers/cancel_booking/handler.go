package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	"github.com/m04kA/OdontoBooking/internal/service/bookings"
	"github.com/m04kA/OdontoBooking/internal/service/bookings/models"
)

const (
	msgNotFound     = "Agendamento não encontrado."
	msgForbidden    = "Acesso negado."
	msgCannotCancel = "Este agendamento não pode ser cancelado."
	msgNotRequested = "Solicite o cancelamento antes de confirmá-lo."
)

type Handler struct {
	service BookingService
	clock   Clock
	logger  Logger
}

func NewHandler(service BookingService, clock Clock, logger Logger) *Handler {
	return &Handler{
		service: service,
		clock:   clock,
		logger:  logger,
	}
}

// RequestCancel POST /api/v1/bookings/{bookingId}/cancellation
func (h *Handler) RequestCancel(w http.ResponseWriter, r *http.Request) {
	userID, bookingID, ok := h.identify(w, r, "POST /bookings/{id}/cancellation")
	if !ok {
		return
	}

	booking, err := h.service.RequestCancel(r.Context(), userID, bookingID)
	if err != nil {
		h.respondError(w, "POST /bookings/{id}/cancellation", bookingID, userID, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/cancellation - Cancellation requested: booking_id=%s, user_id=%s",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, newPrompt(booking, h.clock.Today()))
}

// Accept POST /api/v1/bookings/{bookingId}/cancellation/accept
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	userID, bookingID, ok := h.identify(w, r, "POST /bookings/{id}/cancellation/accept")
	if !ok {
		return
	}

	booking, err := h.service.Cancel(r.Context(), userID, bookingID)
	if err != nil {
		h.respondError(w, "POST /bookings/{id}/cancellation/accept", bookingID, userID, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/cancellation/accept - Booking cancelled successfully: booking_id=%s, user_id=%s",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking, h.clock.Today()))
}

// Abort DELETE /api/v1/bookings/{bookingId}/cancellation
func (h *Handler) Abort(w http.ResponseWriter, r *http.Request) {
	userID, bookingID, ok := h.identify(w, r, "DELETE /bookings/{id}/cancellation")
	if !ok {
		return
	}

	if err := h.service.AbortCancel(userID, bookingID); err != nil {
		h.respondError(w, "DELETE /bookings/{id}/cancellation", bookingID, userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) identify(w http.ResponseWriter, r *http.Request, op string) (string, string, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", op)
		handlers.RespondUnauthorized(w, "")
		return "", "", false
	}
	return userID, mux.Vars(r)["bookingId"], true
}

func (h *Handler) respondError(w http.ResponseWriter, op, bookingID, userID string, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: booking_id=%s", op, bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: booking_id=%s, user_id=%s", op, bookingID, userID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, bookings.ErrCancellationNotRequested):
		h.logger.Warn("%s - Cancellation not requested: booking_id=%s", op, bookingID)
		handlers.RespondConflict(w, msgNotRequested)

	case errors.Is(err, bookings.ErrCannotCancel):
		h.logger.Warn("%s - Cannot cancel: booking_id=%s", op, bookingID)
		handlers.RespondConflict(w, msgCannotCancel)

	default:
		h.logger.Error("%s - Failed: booking_id=%s, error=%v", op, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
