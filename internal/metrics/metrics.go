package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Readiness Gate Metrics
var (
	// ReadinessProbesTotal tracks database readiness probes by outcome
	ReadinessProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_readiness_probes_total",
			Help: "Total database readiness probes by outcome (success/failure)",
		},
		[]string{"outcome"},
	)

	// ReadinessGateState tracks the current gate state (0=pending, 1=probing, 2=ready, 3=failed)
	ReadinessGateState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_readiness_gate_state",
			Help: "Current readiness gate state (0=pending, 1=probing, 2=ready, 3=failed)",
		},
	)
)

// Database Metrics
var (
	// DBQueryDuration tracks query latency by simplified query name
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks failed queries by simplified query name
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total database query errors",
		},
		[]string{"query"},
	)
)

// HTTP Metrics
var (
	// HTTPRequestDuration tracks request latency by method and route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "route"},
	)
)
