// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track tutorial use case activity
var (
	// TutorialOperationsTotal counts tutorial use case calls by operation and outcome
	TutorialOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutorial_operations_total",
			Help: "Total number of tutorial operations by result",
		},
		[]string{"operation", "status"},
	)
)

// Database metrics track repository performance
var (
	// DBQueryDuration measures repository query duration in seconds
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBQueryErrorsTotal counts failed repository queries
	DBQueryErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		},
		[]string{"operation"},
	)
)

// Resilience metrics
var (
	// CircuitBreakerState reports each breaker as 0 closed, 1 half-open, 2 open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)
