package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/OdontoBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate = "Data inválida, use o formato AAAA-MM-DD e uma data a partir de hoje."
	msgInvalidDays = "Parâmetro days inválido."
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	userID, _ := middleware.GetUserID(r.Context())

	resp, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{UserID: userID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/{date} - Failed to get slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}

// HandleMarkers GET /api/v1/availability?from=YYYY-MM-DD&days=N
func (h *Handler) HandleMarkers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID, _ := middleware.GetUserID(r.Context())

	req := &getAvailableSlots.MarkersRequest{UserID: userID, From: query.Get("from")}
	if raw := query.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid days: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	resp, err := h.useCase.Markers(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /availability - Failed to get markers: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromMarkersResponse(resp))
}
