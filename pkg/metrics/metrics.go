// Package metrics provides Prometheus metrics for the podium relay.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request duration buckets in seconds, covering 100ms to 10s.
var defaultDurationBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Manager owns all Prometheus metrics for the relay.
type Manager struct {
	namespace       string
	subsystem       string
	durationBuckets []float64
	enabled         bool
	registry        prometheus.Registerer

	// HTTP surface. The path label carries raw request paths; cardinality is
	// unbounded. Known operational risk, accepted for now.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Relay activity.
	eventsPublished   *prometheus.CounterVec
	brokerErrors      prometheus.Counter
	evaluationsStored prometheus.Counter
	storeErrors       prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "podium",
		subsystem:       "relay",
		durationBuckets: defaultDurationBuckets,
		enabled:         true,
		registry:        prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by method, path and status",
			Buckets:   m.durationBuckets,
		},
		[]string{"method", "path", "status"},
	)

	m.eventsPublished = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "events_published_total",
			Help:      "Total number of events published to the broker by event name",
		},
		[]string{"event"},
	)

	m.brokerErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "broker_errors_total",
		Help:      "Total number of failed broker publishes",
	})

	m.evaluationsStored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_stored_total",
		Help:      "Total number of evaluation records written to the document store",
	})

	m.storeErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Total number of failed document store operations",
	})
}

// RecordHTTPRequest increments the request counter for a route.
func (m *Manager) RecordHTTPRequest(method, path, status string) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
}

// RecordHTTPRequestDuration observes a request duration in seconds.
func (m *Manager) RecordHTTPRequestDuration(method, path, status string, seconds float64) {
	if !m.enabled {
		return
	}
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// RecordEventPublished increments the publish counter for an event name.
func (m *Manager) RecordEventPublished(event string) {
	if !m.enabled {
		return
	}
	m.eventsPublished.WithLabelValues(event).Inc()
}

// RecordBrokerError increments the broker failure counter.
func (m *Manager) RecordBrokerError() {
	if !m.enabled {
		return
	}
	m.brokerErrors.Inc()
}

// RecordEvaluationStored increments the stored-evaluation counter.
func (m *Manager) RecordEvaluationStored() {
	if !m.enabled {
		return
	}
	m.evaluationsStored.Inc()
}

// RecordStoreError increments the document store failure counter.
func (m *Manager) RecordStoreError() {
	if !m.enabled {
		return
	}
	m.storeErrors.Inc()
}

// Package-level helpers forwarding to the global manager.

func RecordHTTPRequest(method, path, status string) {
	globalManager.RecordHTTPRequest(method, path, status)
}

func RecordHTTPRequestDuration(method, path, status string, seconds float64) {
	globalManager.RecordHTTPRequestDuration(method, path, status, seconds)
}

func RecordEventPublished(event string) {
	globalManager.RecordEventPublished(event)
}

func RecordBrokerError() {
	globalManager.RecordBrokerError()
}

func RecordEvaluationStored() {
	globalManager.RecordEvaluationStored()
}

func RecordStoreError() {
	globalManager.RecordStoreError()
}

// GetRegistry returns the custom registry backing the global manager. The
// exposition endpoint serves from this registry.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
