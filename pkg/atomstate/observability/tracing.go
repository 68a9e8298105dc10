package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the atomstate tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("atomstate")

// SpanManager handles trace span lifecycle around notification dispatch.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartNotifySpan starts a span covering one notification pass.
	// Returns the context with span and the span itself.
	StartNotifySpan(ctx context.Context, atomName string, listeners int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartNotifySpan starts a span covering one notification pass.
func (m *otelSpanManager) StartNotifySpan(ctx context.Context, atomName string, listeners int) (context.Context, trace.Span) {
	return StartNotifySpan(ctx, atomName, listeners)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartNotifySpan starts a span covering one notification pass.
// Uses the global OTel tracer.
func StartNotifySpan(ctx context.Context, atomName string, listeners int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "atomstate.notify",
		trace.WithAttributes(
			attribute.String("atom", atomName),
			attribute.Int("listeners", listeners),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
