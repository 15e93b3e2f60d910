package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/internal/integrations/firebaseauth"
	"github.com/m04kA/OdontoBooking/internal/service/auth"
	"github.com/m04kA/OdontoBooking/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido."
	msgInvalidForm        = "Preencha e-mail e senha corretamente."
	msgSignInFailed       = "Erro ao fazer login. Verifique suas credenciais e tente novamente."
	msgUserDisabled       = "Esta conta foi desativada."
	msgTooManyAttempts    = "Muitas tentativas de login. Aguarde alguns minutos e tente novamente."
	msgProviderDown       = "Serviço de autenticação indisponível. Tente novamente mais tarde."
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		var validationErr *auth.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /auth/sign-in - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidForm, validationErr.Fields)
		case errors.Is(err, auth.ErrProviderUnavailable):
			h.logger.Error("POST /auth/sign-in - Provider unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgProviderDown)
		case errors.Is(err, firebaseauth.ErrTooManyAttempts):
			h.logger.Warn("POST /auth/sign-in - Too many attempts: email=%s", req.Email)
			handlers.RespondTooManyRequests(w, msgTooManyAttempts)
		case errors.Is(err, firebaseauth.ErrUserDisabled):
			h.logger.Warn("POST /auth/sign-in - User disabled: email=%s", req.Email)
			handlers.RespondForbidden(w, msgUserDisabled)
		case errors.Is(err, domain.ErrAuth):
			h.logger.Warn("POST /auth/sign-in - Rejected: email=%s, error=%v", req.Email, err)
			handlers.RespondUnauthorized(w, msgSignInFailed)
		default:
			h.logger.Error("POST /auth/sign-in - Failed to sign in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-in - Signed in: user_id=%s", resp.UserID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
