package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/m04kA/OdontoBooking/internal/api/handlers"
)

const msgRateLimited = "Muitas tentativas. Aguarde um momento e tente novamente."

// RateLimitOptions настройки ограничения частоты запросов
type RateLimitOptions struct {
	RequestsPerSecond float64
	Burst             int
	// TrustProxyHeaders брать IP из X-Forwarded-For/X-Real-IP.
	// Без доверенного прокси заголовки подделываются клиентом, поэтому по умолчанию выключено.
	TrustProxyHeaders bool
	MaxClients        int // сколько IP отслеживается, самые старые вытесняются
}

// limiterStore хранит limiter на каждый IP клиента
type limiterStore struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters.Add(ip, limiter)
	}
	return limiter
}

// RateLimit ограничивает частоту запросов с одного IP
func RateLimit(opts RateLimitOptions, logger Logger) (func(http.Handler) http.Handler, error) {
	limiters, err := lru.New[string, *rate.Limiter](opts.MaxClients)
	if err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	store := &limiterStore{
		limiters: limiters,
		limit:    rate.Limit(opts.RequestsPerSecond),
		burst:    opts.Burst,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, opts.TrustProxyHeaders)
			if !store.get(ip).Allow() {
				logger.Warn("%s %s - rate limit exceeded, ip=%s", r.Method, r.URL.Path, ip)
				handlers.RespondTooManyRequests(w, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

// clientIP возвращает адрес соединения. За доверенным прокси берется
// первый адрес из X-Forwarded-For, затем X-Real-IP
func clientIP(r *http.Request, trustProxyHeaders bool) string {
	if trustProxyHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
				return first
			}
		}

		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
