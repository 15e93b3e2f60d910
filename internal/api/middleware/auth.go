package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
)

// TokenVerifier проверяет Firebase ID token и возвращает UID
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth требует заголовок "Authorization: Bearer <ID token>" и кладет UID в контекст
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				logger.Warn("%s %s - empty bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "")
				return
			}

			userID, err := verifier.VerifyToken(r.Context(), token)
			if err != nil || userID == "" {
				logger.Warn("%s %s - token rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
