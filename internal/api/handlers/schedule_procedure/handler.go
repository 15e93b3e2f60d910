package schedule_procedure

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	flowHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/booking_flow"
	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	bookingFlow "github.com/m04kA/OdontoBooking/internal/usecase/booking_flow"
)

const (
	msgProcedureNotFound = "Procedimento não encontrado."
	msgConfirmInProgress = "Seu agendamento já está sendo confirmado."
)

type Handler struct {
	catalog Catalog
	flow    BookingFlow
	logger  Logger
}

func NewHandler(catalog Catalog, flow BookingFlow, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		flow:    flow,
		logger:  logger,
	}
}

// Handle POST /api/v1/procedures/{procedureId}/schedule
// Открывает экран записи с предвыбранной процедурой ("Agendar" на экране процедур)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /procedures/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, "")
		return
	}

	procedureID := mux.Vars(r)["procedureId"]
	procedure, found := h.catalog.GetByID(procedureID)
	if !found {
		h.logger.Warn("POST /procedures/{id}/schedule - Procedure not found: id=%s", procedureID)
		handlers.RespondNotFound(w, msgProcedureNotFound)
		return
	}

	state, err := h.flow.Start(r.Context(), bookingFlow.StartRequest{
		UserID:               userID,
		PreselectedProcedure: procedure.Name,
	})
	if err != nil {
		if errors.Is(err, bookingFlow.ErrConfirmInProgress) {
			h.logger.Warn("POST /procedures/{id}/schedule - Confirmation in progress: user_id=%s", userID)
			handlers.RespondConflict(w, msgConfirmInProgress)
			return
		}
		h.logger.Error("POST /procedures/{id}/schedule - Failed to start flow: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /procedures/{id}/schedule - Flow started: user_id=%s, procedure=%q", userID, procedure.Name)
	handlers.RespondJSON(w, http.StatusOK, flowHandler.FromSelectionState(state))
}
