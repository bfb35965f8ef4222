package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics records request throughput and latency for the API.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	auth     *prometheus.CounterVec
}

// NewHTTPMetrics registers the HTTP metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	auth := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_attempts_total",
		Help: "Authentication attempts by operation and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(requests, duration, auth)
	return &HTTPMetrics{
		requests: requests,
		duration: duration,
		auth:     auth,
	}
}

// ObserveRequest records one completed request.
func (m *HTTPMetrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requests.WithLabelValues(method, normalizeLabel(route), code).Inc()
	m.duration.WithLabelValues(method, normalizeLabel(route), code).Observe(elapsed.Seconds())
}

// IncAuthOutcome counts a login or register attempt result.
func (m *HTTPMetrics) IncAuthOutcome(operation, outcome string) {
	if m == nil || m.auth == nil {
		return
	}
	m.auth.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}

// Handler exposes the gatherer for the /metrics endpoint.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
