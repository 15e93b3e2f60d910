package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/internal/service/auth"
)

const (
	msgProfileNotFound = "Perfil não encontrado."
	msgProviderDown    = "Serviço de autenticação indisponível. Tente novamente mais tarde."
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /profile - Missing user ID")
		handlers.RespondUnauthorized(w, "")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("GET /profile - Profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgProfileNotFound)
		case errors.Is(err, auth.ErrProviderUnavailable):
			h.logger.Error("GET /profile - Provider unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgProviderDown)
		default:
			h.logger.Error("GET /profile - Failed to get profile: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
