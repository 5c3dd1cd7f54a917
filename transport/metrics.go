package transport

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/kbukum/restkit/transport"

// metrics records per-exchange instruments on the global meter provider.
// When no provider is installed the instruments are no-ops.
type metrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newMetrics() *metrics {
	meter := otel.Meter(meterName)

	requests, _ := meter.Int64Counter(
		"restkit.transport.requests",
		metric.WithDescription("Number of HTTP exchanges attempted."),
	)
	duration, _ := meter.Float64Histogram(
		"restkit.transport.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("HTTP exchange duration."),
	)

	return &metrics{requests: requests, duration: duration}
}

// record registers one exchange. status is 0 when no response was received.
func (m *metrics) record(ctx context.Context, method string, status int, elapsed time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.Bool("error", err != nil),
	}
	if status > 0 {
		attrs = append(attrs, attribute.String("http.status", strconv.Itoa(status)))
	}

	opt := metric.WithAttributes(attrs...)
	m.requests.Add(ctx, 1, opt)
	m.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), opt)
}
