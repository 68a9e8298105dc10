package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records atom metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordWrite records a Set/Update call and whether it was suppressed.
	RecordWrite(ctx context.Context, atom string, suppressed bool)

	// RecordNotify records one notification pass with its fan-out and latency.
	RecordNotify(ctx context.Context, atom string, listeners int, durationMs float64)

	// RecordListenerError records a listener failure during dispatch.
	RecordListenerError(ctx context.Context, atom string)

	// RecordSubscription records a registration change:
	// +1 for subscribe, -1 for unsubscribe.
	RecordSubscription(ctx context.Context, atom string, delta int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	writes         metric.Int64Counter
	notifyLatency  metric.Float64Histogram
	notifyFanout   metric.Int64Histogram
	listenerErrors metric.Int64Counter
	subscriptions  metric.Int64UpDownCounter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("atomstate")

	writes, err := meter.Int64Counter("atomstate.writes",
		metric.WithDescription("Number of Set/Update calls"),
	)
	if err != nil {
		return nil, err
	}

	notifyLatency, err := meter.Float64Histogram("atomstate.notify.latency_ms",
		metric.WithDescription("Notification dispatch latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	notifyFanout, err := meter.Int64Histogram("atomstate.notify.listeners",
		metric.WithDescription("Number of listeners notified per accepted write"),
	)
	if err != nil {
		return nil, err
	}

	listenerErrors, err := meter.Int64Counter("atomstate.listener.errors",
		metric.WithDescription("Number of listener failures during dispatch"),
	)
	if err != nil {
		return nil, err
	}

	subscriptions, err := meter.Int64UpDownCounter("atomstate.subscriptions",
		metric.WithDescription("Number of active listener registrations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		writes:         writes,
		notifyLatency:  notifyLatency,
		notifyFanout:   notifyFanout,
		listenerErrors: listenerErrors,
		subscriptions:  subscriptions,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordWrite records a Set/Update call.
func (m *otelMetrics) RecordWrite(ctx context.Context, atom string, suppressed bool) {
	m.writes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("atom", atom),
		attribute.Bool("suppressed", suppressed),
	))
}

// RecordNotify records one notification pass.
func (m *otelMetrics) RecordNotify(ctx context.Context, atom string, listeners int, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("atom", atom),
	}
	m.notifyFanout.Record(ctx, int64(listeners), metric.WithAttributes(attrs...))
	m.notifyLatency.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

// RecordListenerError records a listener failure.
func (m *otelMetrics) RecordListenerError(ctx context.Context, atom string) {
	m.listenerErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("atom", atom),
	))
}

// RecordSubscription records a registration change.
func (m *otelMetrics) RecordSubscription(ctx context.Context, atom string, delta int) {
	m.subscriptions.Add(ctx, int64(delta), metric.WithAttributes(
		attribute.String("atom", atom),
	))
}
