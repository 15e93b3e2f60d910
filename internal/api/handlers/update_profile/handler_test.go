package update_profile

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
	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	"github.com/m04kA/OdontoBooking/internal/integrations/firebaseauth"
	"github.com/m04kA/OdontoBooking/internal/service/auth"
	"github.com/m04kA/OdontoBooking/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct{ err error }

func (s stubService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ProfileResponse{UserID: userID, Email: "ana@example.com", FullName: req.FullName, Phone: req.Phone}, nil
}

const body = `{"fullName":"Ana S.","phone":"+5534999998888"}`

func put(h *Handler, userID, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(payload))
	if userID != "" {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	rec := put(NewHandler(stubService{}, nopLogger{}), "uid-1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProfileResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Ana S.", resp.FullName)
	assert.Equal(t, "+5534999998888", resp.Phone)
}

func TestHandler_BadRequests(t *testing.T) {
	h := NewHandler(stubService{}, nopLogger{})

	assert.Equal(t, http.StatusUnauthorized, put(h, "", body).Code)
	assert.Equal(t, http.StatusBadRequest, put(h, "uid-1", "{").Code)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		msg  string
	}{
		{"validation", &auth.ValidationError{Fields: map[string]string{"phone": "Telefone inválido."}}, http.StatusBadRequest, msgInvalidForm},
		{"phone in use", firebaseauth.ErrPhoneAlreadyExists, http.StatusConflict, msgPhoneInUse},
		{"not found", firebaseauth.ErrUserNotFound, http.StatusNotFound, msgProfileNotFound},
		{"provider down", auth.ErrProviderUnavailable, http.StatusServiceUnavailable, msgProviderDown},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(NewHandler(stubService{err: tt.err}, nopLogger{}), "uid-1", body)
			require.Equal(t, tt.want, rec.Code)

			if tt.msg != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.msg, resp.Error)
			}
		})
	}
}
