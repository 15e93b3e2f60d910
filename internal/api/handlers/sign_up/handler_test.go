package sign_up

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
	"github.com/m04kA/OdontoBooking/internal/integrations/firebaseauth"
	"github.com/m04kA/OdontoBooking/internal/service/auth"
	"github.com/m04kA/OdontoBooking/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct{ err error }

func (s stubService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SignUpResponse{UserID: "uid-new", Email: req.Email, NextScreen: "Login"}, nil
}

const body = `{"fullName":"Ana Souza","cpf":"529.982.247-25","email":"ana@example.com",` +
	`"password":"Sorriso#2025","confirmPassword":"Sorriso#2025","birthDate":"2000-03-15"}`

func post(h *Handler, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(payload)))
	return rec
}

func TestHandler_Success(t *testing.T) {
	rec := post(NewHandler(stubService{}, nopLogger{}), body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.SignUpResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Login", resp.NextScreen)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		msg  string
	}{
		{"validation", &auth.ValidationError{Fields: map[string]string{"cpf": "CPF inválido."}}, http.StatusBadRequest, msgInvalidForm},
		{"email in use", firebaseauth.ErrEmailAlreadyExists, http.StatusConflict, msgEmailInUse},
		{"provider down", auth.ErrProviderUnavailable, http.StatusServiceUnavailable, msgProviderDown},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(stubService{err: tt.err}, nopLogger{}), body)
			require.Equal(t, tt.want, rec.Code)

			if tt.msg != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.msg, resp.Error)
			}
		})
	}
}
