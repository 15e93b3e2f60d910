package sign_up

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
	msgInvalidForm        = "Verifique os campos do cadastro."
	msgEmailInUse         = "Este e-mail já está em uso."
	msgSignUpFailed       = "Não foi possível criar a conta. Tente novamente."
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

// Handle POST /api/v1/auth/sign-up
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		var validationErr *auth.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /auth/sign-up - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidForm, validationErr.Fields)
		case errors.Is(err, auth.ErrProviderUnavailable):
			h.logger.Error("POST /auth/sign-up - Provider unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgProviderDown)
		case errors.Is(err, firebaseauth.ErrEmailAlreadyExists):
			h.logger.Warn("POST /auth/sign-up - Email already in use: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailInUse)
		case errors.Is(err, domain.ErrAuth):
			h.logger.Warn("POST /auth/sign-up - Rejected: email=%s, error=%v", req.Email, err)
			handlers.RespondUnauthorized(w, msgSignUpFailed)
		default:
			h.logger.Error("POST /auth/sign-up - Failed to sign up: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-up - Registered: user_id=%s", resp.UserID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
