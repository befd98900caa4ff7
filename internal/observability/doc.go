// Package observability groups the cross-cutting monitoring concerns:
// structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: slog-based structured logging with request ID propagation
//   - metrics: Prometheus metric registry and recorders
//   - tracing: OpenTelemetry middleware and tracer setup
package observability
