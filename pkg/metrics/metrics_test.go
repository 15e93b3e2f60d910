package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("odonto-test", prometheus.NewRegistry())

	m.BookingConfirmed()
	m.BookingConfirmed()
	m.BookingCancelled()
	m.LookupFinished(LookupStale)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/flow", http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsConfirmed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsCancelled))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues(LookupStale)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.lookups.WithLabelValues(LookupFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/v1/flow", "200")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BookingConfirmed()
		m.BookingCancelled()
		m.LookupFinished(LookupResolved)
		m.ObserveHTTPRequest(http.MethodPost, "/", http.StatusCreated, time.Second)
	})
}
