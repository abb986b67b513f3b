// Package metrics provides Prometheus metrics for the GrowthBoard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	enabled   bool
	registry  prometheus.Registerer

	// Business metrics.
	scoreComputations prometheus.Counter
	whatIfRequests    prometheus.Counter
	matchRequests     prometheus.Counter
	matchErrors       prometheus.Counter
	scoringErrors     prometheus.Counter
	candidatesTotal   prometheus.Gauge

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "growthboard",
		subsystem: "scoring",
		buckets:   prometheus.DefBuckets,
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	if !m.enabled {
		return
	}
	factory := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help}
	}

	m.scoreComputations = prometheus.NewCounter(factory("score_computations_total", "Number of full score evaluations performed."))
	m.whatIfRequests = prometheus.NewCounter(factory("whatif_requests_total", "Number of what-if scenario evaluations."))
	m.matchRequests = prometheus.NewCounter(factory("match_requests_total", "Number of resume match requests."))
	m.matchErrors = prometheus.NewCounter(factory("match_errors_total", "Number of failed resume match requests."))
	m.scoringErrors = prometheus.NewCounter(factory("scoring_errors_total", "Number of rejected scoring calls (invalid input)."))

	m.candidatesTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "candidates_total", Help: "Number of candidates in the catalog.",
	})

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http",
		Name: "requests_total", Help: "HTTP requests by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "http",
		Name: "request_duration_ms", Help: "HTTP request duration in milliseconds.",
		Buckets: m.buckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByEndpoint = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http",
		Name: "errors_total", Help: "HTTP error responses by endpoint and class.",
	}, []string{"endpoint", "method", "class"})

	m.registry.MustRegister(
		m.scoreComputations,
		m.whatIfRequests,
		m.matchRequests,
		m.matchErrors,
		m.scoringErrors,
		m.candidatesTotal,
		m.httpRequests,
		m.httpRequestDuration,
		m.errorsByEndpoint,
	)
}

// GetRegistry returns the registry backing the global manager, for
// promhttp handlers.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level recording helpers on the global manager.

func RecordScoreComputation() { record(globalManager.scoreComputations) }
func RecordWhatIfRequest()    { record(globalManager.whatIfRequests) }
func RecordMatchRequest()     { record(globalManager.matchRequests) }
func RecordMatchError()       { record(globalManager.matchErrors) }
func RecordScoringError()     { record(globalManager.scoringErrors) }

// UpdateCandidatesTotal sets the catalog size gauge.
func UpdateCandidatesTotal(n int) {
	if globalManager.enabled {
		globalManager.candidatesTotal.Set(float64(n))
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes one request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// RecordErrorByEndpoint counts one error response.
func RecordErrorByEndpoint(endpoint, method, class string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, class).Inc()
	}
}

func record(c prometheus.Counter) {
	if globalManager.enabled {
		c.Inc()
	}
}
