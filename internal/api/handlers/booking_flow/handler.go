package booking_flow

import (
	"errors"
	"net/http"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/internal/service/bookings/models"
	bookingFlow "github.com/m04kA/OdontoBooking/internal/usecase/booking_flow"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgInvalidDate        = "Data inválida, use o formato AAAA-MM-DD."
	msgInvalidTime        = "Horário inválido, use o formato HH:MM."
	msgTimeNotAvailable   = "Este horário não está disponível para a data selecionada."
	msgInvalidState       = "Esta ação não está disponível agora."
	msgConfirmInProgress  = "Seu agendamento já está sendo confirmado."
	msgConfirmFailed      = "Não foi possível confirmar o agendamento. Tente novamente."
)

type Handler struct {
	useCase BookingFlowUseCase
	clock   Clock
	logger  Logger
}

func NewHandler(useCase BookingFlowUseCase, clock Clock, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   clock,
		logger:  logger,
	}
}

// Start POST /api/v1/flow
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "POST /flow")
	if !ok {
		return
	}

	// Тело необязательно: без него процедура берется из навигации или по умолчанию
	var req StartRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /flow - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	state, err := h.useCase.Start(r.Context(), bookingFlow.StartRequest{
		UserID:               userID,
		PreselectedProcedure: req.PreselectedProcedure,
	})
	if err != nil {
		h.respondError(w, "POST /flow", userID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSelectionState(state))
}

// State GET /api/v1/flow
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "GET /flow")
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSelectionState(h.useCase.State(userID)))
}

// Pick POST /api/v1/flow/date
// Ждет завершения поиска слотов (или отмены запроса) и возвращает актуальное состояние.
// Если за это время пациент выбрал другую дату, вернется состояние новой даты.
func (h *Handler) Pick(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "POST /flow/date")
	if !ok {
		return
	}

	var req PickRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	done, err := h.useCase.Pick(r.Context(), bookingFlow.PickRequest{UserID: userID, Date: req.Date})
	if err != nil {
		h.respondError(w, "POST /flow/date", userID, err)
		return
	}

	select {
	case <-done:
	case <-r.Context().Done():
		h.logger.Warn("POST /flow/date - Client gone before lookup finished: user_id=%s", userID)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSelectionState(h.useCase.State(userID)))
}

// SelectTime POST /api/v1/flow/time
func (h *Handler) SelectTime(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "POST /flow/time")
	if !ok {
		return
	}

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.useCase.SelectTime(r.Context(), bookingFlow.SelectTimeRequest{UserID: userID, Time: req.Time})
	if err != nil {
		h.respondError(w, "POST /flow/time", userID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSelectionState(state))
}

// RequestConfirm POST /api/v1/flow/confirmation
func (h *Handler) RequestConfirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "POST /flow/confirmation")
	if !ok {
		return
	}

	state, err := h.useCase.RequestConfirm(r.Context(), userID)
	if err != nil {
		h.respondError(w, "POST /flow/confirmation", userID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, newConfirmationPrompt(state))
}

// Accept POST /api/v1/flow/confirmation/accept
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "POST /flow/confirmation/accept")
	if !ok {
		return
	}

	booking, err := h.useCase.UserConfirms(r.Context(), userID)
	if err != nil {
		h.respondError(w, "POST /flow/confirmation/accept", userID, err)
		return
	}

	h.logger.Info("POST /flow/confirmation/accept - Booking created successfully: booking_id=%s, user_id=%s",
		booking.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, &ConfirmedResponse{
		Booking: models.FromDomainBooking(booking, h.clock.Today()),
		State:   FromSelectionState(h.useCase.State(userID)),
	})
}

// Dismiss POST /api/v1/flow/confirmation/dismiss
func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "POST /flow/confirmation/dismiss")
	if !ok {
		return
	}

	state, err := h.useCase.UserCancels(r.Context(), userID)
	if err != nil {
		h.respondError(w, "POST /flow/confirmation/dismiss", userID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSelectionState(state))
}

// BackToCalendar POST /api/v1/flow/calendar
func (h *Handler) BackToCalendar(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "POST /flow/calendar")
	if !ok {
		return
	}

	state, err := h.useCase.BackToCalendar(r.Context(), userID)
	if err != nil {
		h.respondError(w, "POST /flow/calendar", userID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSelectionState(state))
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", op)
		handlers.RespondUnauthorized(w, "")
	}
	return userID, ok
}

func (h *Handler) respondError(w http.ResponseWriter, op, userID string, err error) {
	switch {
	case errors.Is(err, bookingFlow.ErrSelectionIncomplete):
		h.logger.Warn("%s - Selection incomplete: user_id=%s", op, userID)
		handlers.RespondBadRequest(w, bookingFlow.MsgSelectDateAndTime)

	case errors.Is(err, bookingFlow.ErrTimeNotAvailable):
		h.logger.Warn("%s - Time not available: user_id=%s", op, userID)
		handlers.RespondBadRequest(w, msgTimeNotAvailable)

	case errors.Is(err, bookingFlow.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: user_id=%s, error=%v", op, userID, err)
		if op == "POST /flow/time" {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}

	case errors.Is(err, bookingFlow.ErrConfirmInProgress):
		h.logger.Warn("%s - Confirmation in progress: user_id=%s", op, userID)
		handlers.RespondConflict(w, msgConfirmInProgress)

	case errors.Is(err, domain.ErrValidation):
		// ошибка повторной проверки при создании записи
		h.logger.Warn("%s - Validation failed: user_id=%s, error=%v", op, userID, err)
		handlers.RespondBadRequest(w, msgConfirmFailed)

	case errors.Is(err, domain.ErrInvalidState):
		h.logger.Warn("%s - Invalid state: user_id=%s, error=%v", op, userID, err)
		handlers.RespondConflict(w, msgInvalidState)

	default:
		h.logger.Error("%s - Failed: user_id=%s, error=%v", op, userID, err)
		handlers.RespondInternalError(w)
	}
}
