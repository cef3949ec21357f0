package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service's collectors; it is what /metrics exposes.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "freelance",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freelance",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "freelance",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	lifecycleTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freelance",
			Subsystem: "applications",
			Name:      "transitions_total",
			Help:      "Lifecycle operations by action and outcome (committed or error code).",
		},
		[]string{"action", "outcome"},
	)

	adminOverrides = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "freelance",
			Subsystem: "applications",
			Name:      "admin_overrides_total",
			Help:      "Transitions committed by an admin on an application they do not own.",
		},
		[]string{"action"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpInFlight,
		httpRequests,
		httpDuration,
		lifecycleTransitions,
		adminOverrides,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// OutcomeCommitted labels a lifecycle operation that was persisted.
const OutcomeCommitted = "committed"

func RecordTransition(action, outcome string) {
	lifecycleTransitions.WithLabelValues(action, outcome).Inc()
}

func RecordAdminOverride(action string) {
	adminOverrides.WithLabelValues(action).Inc()
}

// RequestStarted and RequestFinished are called by the HTTP middleware around each request.
func RequestStarted() {
	httpInFlight.Inc()
}

func RequestFinished(method, path string, status int, seconds float64) {
	httpInFlight.Dec()
	if path == "" {
		path = "unmatched"
	}
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}
