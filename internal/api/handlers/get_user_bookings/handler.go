package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/internal/service/bookings/models"
)

const (
	msgInvalidView = "Visualização inválida, use upcoming ou past."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?view=upcoming|past
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, "")
		return
	}

	// Формируем запрос к сервису
	serviceReq := &models.ListBookingsRequest{
		UserID: userID,
		View:   r.URL.Query().Get("view"),
	}

	result, err := h.service.ListBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.logger.Warn("GET /bookings - Invalid view: user_id=%s, view=%q", userID, serviceReq.View)
			handlers.RespondBadRequest(w, msgInvalidView)
			return
		}
		h.logger.Error("GET /bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user_id=%s, view=%s, count=%d",
		userID, result.View, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
