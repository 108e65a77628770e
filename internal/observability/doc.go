// Package observability groups the logging, metrics and tracing infrastructure
// shared by the HTTP layer, the use cases and the repositories.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus business and database metrics
//   - tracing: OpenTelemetry tracer and HTTP middleware
package observability
