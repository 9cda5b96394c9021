// Package metrics provides Prometheus metrics for the catalog API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager holds all Prometheus collectors for the service.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	validationFailures  *prometheus.CounterVec
}

// Global metrics manager instance. Custom registry to avoid the default
// Go collector noise.
var globalManager = NewManager()

// NewManager creates a metrics manager with its own registry.
func NewManager() *Manager {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	m := &Manager{registry: registry}

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by route, method and status code",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.validationFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "api",
			Name:      "validation_failures_total",
			Help:      "Total number of requests rejected by shape or parameter validation",
		},
		[]string{"route"},
	)

	return m
}

// RecordHTTPRequest records one finished HTTP request.
func RecordHTTPRequest(route, method, statusCode string, durationSeconds float64) {
	globalManager.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	globalManager.httpRequestDuration.WithLabelValues(route, method, statusCode).Observe(durationSeconds)
}

// RecordValidationFailure increments the validation failure counter for a route.
func RecordValidationFailure(route string) {
	globalManager.validationFailures.WithLabelValues(route).Inc()
}

// Handler returns the HTTP handler serving the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(globalManager.registry, promhttp.HandlerOpts{})
}
