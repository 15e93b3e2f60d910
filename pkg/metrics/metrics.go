package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы запроса доступных слотов
const (
	LookupResolved = "resolved"
	LookupStale    = "stale"
	LookupFailed   = "failed"
)

// Metrics набор prometheus метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil.
type Metrics struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	bookingsConfirmed prometheus.Counter
	bookingsCancelled prometheus.Counter
	lookups           *prometheus.CounterVec
}

// New регистрирует метрики в глобальном registry prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_confirmed_total",
			Help:        "Bookings created through the confirmation workflow",
			ConstLabels: labels,
		}),
		bookingsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Bookings cancelled by the patient",
			ConstLabels: labels,
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_lookups_total",
			Help:        "Availability lookups by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.bookingsConfirmed, m.bookingsCancelled, m.lookups)
	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) BookingConfirmed() {
	if m == nil {
		return
	}
	m.bookingsConfirmed.Inc()
}

func (m *Metrics) BookingCancelled() {
	if m == nil {
		return
	}
	m.bookingsCancelled.Inc()
}

// LookupFinished фиксирует исход запроса слотов (LookupResolved, LookupStale, LookupFailed)
func (m *Metrics) LookupFinished(outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(outcome).Inc()
}
