// Package metrics provides Prometheus metrics for the rostermix service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the rostermix service.
type Manager struct {
	namespace string
	registry  prometheus.Registerer

	// Core business metrics - what matters for a team-assignment tool
	randomizations     prometheus.Counter
	fillOperations     prometheus.Counter
	historyRestores    prometheus.Counter
	importFailures     prometheus.Counter
	validationFailures prometheus.Counter
	cappedTeamCounts   prometheus.Counter

	// Roster state gauges
	playerCount  prometheus.Gauge
	reserveCount prometheus.Gauge
	teamCount    prometheus.Gauge
	historySize  prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "rostermix",
		registry:  prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.randomizations = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "randomizations_total",
		Help:      "Total number of full team randomizations performed.",
	})
	m.fillOperations = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "fill_operations_total",
		Help:      "Total number of fill-remaining operations performed.",
	})
	m.historyRestores = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "history_restores_total",
		Help:      "Total number of history snapshots restored.",
	})
	m.importFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "import_failures_total",
		Help:      "Total number of rejected configuration imports.",
	})
	m.validationFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of team composition validations that found violations.",
	})
	m.cappedTeamCounts = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "capped_team_counts_total",
		Help:      "Times a requested max-team cap was reduced to avoid stranding players.",
	})

	m.playerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "players",
		Help:      "Current number of players on the roster.",
	})
	m.reserveCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "reserve_players",
		Help:      "Current number of reserve players.",
	})
	m.teamCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "teams",
		Help:      "Current number of teams.",
	})
	m.historySize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "history_entries",
		Help:      "Current number of stored history snapshots.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"endpoint", "method"})

	return m
}

// GetRegistry returns the registry metrics are collected into, for exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordRandomization counts one full randomization.
func RecordRandomization() { globalManager.randomizations.Inc() }

// RecordFillOperation counts one fill-remaining pass.
func RecordFillOperation() { globalManager.fillOperations.Inc() }

// RecordHistoryRestore counts one restored snapshot.
func RecordHistoryRestore() { globalManager.historyRestores.Inc() }

// RecordImportFailure counts one rejected import.
func RecordImportFailure() { globalManager.importFailures.Inc() }

// RecordValidationFailure counts one invalid composition verdict.
func RecordValidationFailure() { globalManager.validationFailures.Inc() }

// RecordCappedTeamCount counts one silently reduced max-team cap.
func RecordCappedTeamCount() { globalManager.cappedTeamCounts.Inc() }

// UpdatePlayerCount sets the roster size gauge.
func UpdatePlayerCount(n int) { globalManager.playerCount.Set(float64(n)) }

// UpdateReserveCount sets the reserve players gauge.
func UpdateReserveCount(n int) { globalManager.reserveCount.Set(float64(n)) }

// UpdateTeamCount sets the team count gauge.
func UpdateTeamCount(n int) { globalManager.teamCount.Set(float64(n)) }

// UpdateHistorySize sets the history size gauge.
func UpdateHistorySize(n int) { globalManager.historySize.Set(float64(n)) }

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}
