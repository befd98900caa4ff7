// Package tracing provides OpenTelemetry tracing for the HTTP surface.
//
// Init installs the tracer provider and W3C propagation; Middleware starts
// a server span per request and echoes the trace ID to clients via the
// X-Trace-Id header so support requests can be correlated with traces
// and logs.
package tracing
