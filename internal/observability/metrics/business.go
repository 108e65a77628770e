package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordTutorialOperation counts one tutorial use case call.
// A nil err is recorded as "success", anything else as "error".
func RecordTutorialOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	TutorialOperationsTotal.WithLabelValues(operation, status).Inc()
}

// ObserveDBQuery records the duration of a repository query started at start.
// Intended for use with defer:
//
//	defer func(start time.Time) { metrics.ObserveDBQuery("tutorial_get", start, err) }(time.Now())
func ObserveDBQuery(operation string, start time.Time, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		DBQueryErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// RegisterTutorialsTotal exposes the number of stored tutorials as a gauge
// evaluated at scrape time. Registering twice is not an error.
func RegisterTutorialsTotal(count func() float64) error {
	gauge := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "tutorials_total",
			Help: "Total number of tutorials in the database",
		},
		count,
	)
	if err := prometheus.Register(gauge); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return err
	}
	return nil
}

// SetCircuitBreakerState publishes the numeric state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
