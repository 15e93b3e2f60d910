package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeVerifier struct{}

func (fakeVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "good" {
		return "uid-1", nil
	}
	return "", errors.New("bad token")
}

func echoUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(userID))
}

func TestAuth(t *testing.T) {
	handler := Auth(fakeVerifier{}, nopLogger{})(http.HandlerFunc(echoUserID))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer good", http.StatusOK, "uid-1"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, ""},
		{"empty token", "Bearer   ", http.StatusUnauthorized, ""},
		{"rejected", "Bearer bad", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/flow", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

type observation struct {
	method, route string
	status        int
}

type fakeHTTPMetrics struct{ seen []observation }

func (m *fakeHTTPMetrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.seen = append(m.seen, observation{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	collector := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector))
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancellation", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/abc/cancellation", nil))

	require.Len(t, collector.seen, 1)
	assert.Equal(t, observation{http.MethodPost, "/api/v1/bookings/{bookingId}/cancellation", http.StatusConflict}, collector.seen[0])
}

func newRateLimited(t *testing.T, opts RateLimitOptions) http.Handler {
	t.Helper()
	rateLimit, err := RateLimit(opts, nopLogger{})
	require.NoError(t, err)
	return rateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func sendFrom(handler http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimit(t *testing.T) {
	handler := newRateLimited(t, RateLimitOptions{RequestsPerSecond: 0.001, Burst: 2, MaxClients: 10})

	assert.Equal(t, http.StatusOK, sendFrom(handler, "1.1.1.1:1000", ""))
	assert.Equal(t, http.StatusOK, sendFrom(handler, "1.1.1.1:1001", ""))
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(handler, "1.1.1.1:1002", ""))
	assert.Equal(t, http.StatusOK, sendFrom(handler, "2.2.2.2:1000", ""), "limits are per client")
}

func TestRateLimit_SpoofedForwardedForIgnored(t *testing.T) {
	handler := newRateLimited(t, RateLimitOptions{RequestsPerSecond: 0.001, Burst: 1, MaxClients: 10})

	assert.Equal(t, http.StatusOK, sendFrom(handler, "9.9.9.9:4000", "1.0.0.1"))
	for i := 2; i <= 5; i++ {
		xff := fmt.Sprintf("1.0.0.%d", i)
		assert.Equal(t, http.StatusTooManyRequests, sendFrom(handler, "9.9.9.9:4000", xff),
			"rotating X-Forwarded-For must not reset the limit")
	}
}

func TestRateLimit_TrustedProxyUsesForwardedFor(t *testing.T) {
	handler := newRateLimited(t, RateLimitOptions{
		RequestsPerSecond: 0.001,
		Burst:             1,
		TrustProxyHeaders: true,
		MaxClients:        10,
	})

	assert.Equal(t, http.StatusOK, sendFrom(handler, "10.0.0.1:80", "1.1.1.1, 10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(handler, "10.0.0.1:80", "1.1.1.1, 10.0.0.1"))
	assert.Equal(t, http.StatusOK, sendFrom(handler, "10.0.0.1:80", "2.2.2.2, 10.0.0.1"))
}

func TestRateLimit_TracksBoundedNumberOfClients(t *testing.T) {
	handler := newRateLimited(t, RateLimitOptions{RequestsPerSecond: 0.001, Burst: 1, MaxClients: 2})

	for i := 0; i < 100; i++ {
		sendFrom(handler, fmt.Sprintf("3.3.0.%d:80", i), "")
	}
	// первый клиент вытеснен и получает новый limiter
	assert.Equal(t, http.StatusOK, sendFrom(handler, "3.3.0.0:80", ""))
	// последний клиент еще в кэше
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(handler, "3.3.0.99:80", ""))
}

func TestRateLimit_InvalidClientBound(t *testing.T) {
	_, err := RateLimit(RateLimitOptions{RequestsPerSecond: 1, Burst: 1}, nopLogger{})
	assert.Error(t, err)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.0.7:5555"
	req.Header.Set("X-Real-IP", " 10.1.1.1 ")
	req.Header.Set("X-Forwarded-For", "8.8.8.8, 10.1.1.1")

	t.Run("untrusted headers", func(t *testing.T) {
		assert.Equal(t, "192.168.0.7", clientIP(req, false))
	})

	t.Run("trusted proxy", func(t *testing.T) {
		assert.Equal(t, "8.8.8.8", clientIP(req, true))

		req.Header.Del("X-Forwarded-For")
		assert.Equal(t, "10.1.1.1", clientIP(req, true))

		req.Header.Del("X-Real-IP")
		assert.Equal(t, "192.168.0.7", clientIP(req, true))
	})
}
