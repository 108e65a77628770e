// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes application-level metrics including:
//   - Business metrics (tutorial operations, stored tutorial count)
//   - Database query metrics
//
// HTTP request metrics live next to the HTTP middleware in internal/handler/http.
// All metrics are registered with the Prometheus default registry and exposed
// via the /metrics endpoint.
//
// Example usage:
//
//	import "tutorial-api/internal/observability/metrics"
//
//	func (r *Repo) Get(ctx context.Context, id int64) (t *entity.Tutorial, err error) {
//	    defer func(start time.Time) { metrics.ObserveDBQuery("tutorial_get", start, err) }(time.Now())
//	    // ... query ...
//	}
package metrics
