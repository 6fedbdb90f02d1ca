package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := New()

	m.NotificationAttempt("PUSH", "sent")
	m.NotificationAttempt("PUSH", "sent")
	m.NotificationAttempt("EMAIL", "failed")
	m.PaymentTransition("CHECKOUT", "COMPLETED")
	m.EscrowTransition("FUNDED", "RELEASED")
	m.QueueProcessed("sent", 0)

	assert.InDelta(t, 2, testutil.ToFloat64(m.notifications.WithLabelValues("PUSH", "sent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.notifications.WithLabelValues("EMAIL", "failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.payments.WithLabelValues("CHECKOUT", "COMPLETED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.escrow.WithLabelValues("FUNDED", "RELEASED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.queueItems.WithLabelValues("sent")), 0)
}

func TestMetrics_HTTP(t *testing.T) {
	m := New()

	done := m.TrackInFlight()
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpInFlight), 0)
	done()
	assert.InDelta(t, 0, testutil.ToFloat64(m.httpInFlight), 0)

	m.ObserveHTTP(http.MethodGet, "/api/v1/listings/:id", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/listings/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.PaymentTransition("MOCK", "COMPLETED")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `expatmart_payments_transitions_total{provider="MOCK",status="COMPLETED"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
