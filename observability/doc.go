// Package observability bootstraps OpenTelemetry tracing and metrics
// for applications embedding the toolkit's REST clients.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("billing-cli"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("billing-cli"))
//	defer mp.Shutdown(ctx)
//
// Once a provider is installed the clients pick it up automatically via
// the otel globals; without one, spans and metrics are no-ops.
package observability
