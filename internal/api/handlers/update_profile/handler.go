package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/internal/integrations/firebaseauth"
	"github.com/m04kA/OdontoBooking/internal/service/auth"
	"github.com/m04kA/OdontoBooking/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgInvalidForm        = "Verifique os campos do perfil."
	msgPhoneInUse         = "Este telefone já está em uso por outra conta."
	msgProfileNotFound    = "Perfil não encontrado."
	msgProviderDown       = "Serviço de autenticação indisponível. Tente novamente mais tarde."
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

// Handle PUT /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /profile - Missing user ID")
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		var validationErr *auth.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /profile - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidForm, validationErr.Fields)
		case errors.Is(err, firebaseauth.ErrPhoneAlreadyExists):
			h.logger.Warn("PUT /profile - Phone already in use: user_id=%s", userID)
			handlers.RespondConflict(w, msgPhoneInUse)
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("PUT /profile - Profile not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgProfileNotFound)
		case errors.Is(err, auth.ErrProviderUnavailable):
			h.logger.Error("PUT /profile - Provider unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgProviderDown)
		default:
			h.logger.Error("PUT /profile - Failed to update profile: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
