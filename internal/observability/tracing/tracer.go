package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans produced by this application.
const InstrumentationName = "tutorial-api"

// tracer is the global tracer instance for the application.
var tracer = otel.Tracer(InstrumentationName)

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
