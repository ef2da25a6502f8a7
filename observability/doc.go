// Package observability provides OpenTelemetry tracing for outbound gateway
// calls.
//
// InitTracer wires an OTLP HTTP exporter into the global tracer provider;
// the session then records one span per send when tracing is enabled.
package observability
