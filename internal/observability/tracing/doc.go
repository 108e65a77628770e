// Package tracing provides OpenTelemetry tracing integration.
//
// The package exposes a process-wide tracer and an HTTP middleware that
// starts one server span per request. Exporters are configured by whoever
// installs the global TracerProvider; without one, spans are no-ops.
//
// Example usage:
//
//	func (s *Service) Get(ctx context.Context, id int64) (*entity.Tutorial, error) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "tutorial.Get")
//	    defer span.End()
//	    // ...
//	}
package tracing
