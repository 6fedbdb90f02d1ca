// Package metrics exposes Prometheus collectors for the marketplace.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"expatmart/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "expatmart"

// Metrics owns a private registry so tests and multiple binaries never clash
// on the global one.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight  prometheus.Gauge
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	notifications *prometheus.CounterVec
	payments      *prometheus.CounterVec
	escrow        *prometheus.CounterVec
	queueItems    *prometheus.CounterVec
	queueDuration prometheus.Histogram
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "attempts_total",
			Help:      "Notification delivery attempts by channel and outcome.",
		}, []string{"channel", "status"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "transitions_total",
			Help:      "Payment transactions entering a status, by provider.",
		}, []string{"provider", "status"}),
		escrow: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "escrow",
			Name:      "transitions_total",
			Help:      "Escrow account state transitions.",
		}, []string{"from", "to"}),
		queueItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification_queue",
			Name:      "items_total",
			Help:      "Queue items processed by outcome.",
		}, []string{"status"}),
		queueDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "notification_queue",
			Name:      "item_duration_seconds",
			Help:      "Time spent dispatching one queue item.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.notifications,
		m.payments,
		m.escrow,
		m.queueItems,
		m.queueDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// NewRecorder exposes m as the domain metrics recorder.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RegisterDBStats exports the connection pool statistics of db under the given name.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// TrackInFlight increments the in-flight gauge and returns its decrement.
func (m *Metrics) TrackInFlight() func() {
	m.httpInFlight.Inc()

	return m.httpInFlight.Dec
}

// ObserveHTTP records one finished request. route is the matched route
// pattern, never the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) NotificationAttempt(channel, status string) {
	m.notifications.WithLabelValues(channel, status).Inc()
}

func (m *Metrics) PaymentTransition(provider, status string) {
	m.payments.WithLabelValues(provider, status).Inc()
}

func (m *Metrics) EscrowTransition(from, to string) {
	m.escrow.WithLabelValues(from, to).Inc()
}

func (m *Metrics) QueueProcessed(status string, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	m.queueItems.WithLabelValues(status).Inc()
	m.queueDuration.Observe(duration.Seconds())
}
