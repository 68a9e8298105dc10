package atomstate

import (
	"log/slog"

	"github.com/randalmurphal/atomstate/pkg/atomstate/observability"
)

// options holds per-atom configuration.
type options[T any] struct {
	name     string
	equal    func(a, b T) bool
	equalSet bool
	onError  ErrorHandler
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
}

// defaultOptions returns the default atom configuration.
func defaultOptions[T any]() options[T] {
	return options[T]{
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures an Atom at construction time.
type Option[T any] func(*options[T])

// WithName sets the atom name used in logs, metrics, and listener errors.
// Default: the generated atom-<id>.
//
// Example:
//
//	counter := atomstate.New(0, atomstate.WithName[int]("request-count"))
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) {
		o.name = name
	}
}

// WithErrorHandler routes listener failures to fn instead of the atom's
// logger. fn receives *ListenerError values. Supply a handler that does
// nothing to discard failures entirely.
func WithErrorHandler[T any](fn ErrorHandler) Option[T] {
	return func(o *options[T]) {
		o.onError = fn
	}
}

// WithEqual overrides the change-suppression comparison. Passing nil
// disables suppression, so every Set and Update notifies even when the value
// is unchanged.
//
// Without this option the atom prefers the Equal method when T implements
// Equaler[T], falls back to == for comparable types, and never suppresses
// otherwise.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(o *options[T]) {
		o.equal = equal
		o.equalSet = true
	}
}

// WithLogger sets the logger used for atom events and unhandled listener
// failures. Default: slog.Default().
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
// Default: observability.NoopMetrics.
func WithMetrics[T any](metrics observability.MetricsRecorder) Option[T] {
	return func(o *options[T]) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}

// WithTracing sets the span manager used to trace notification dispatch.
// Default: observability.NoopSpanManager.
func WithTracing[T any](spans observability.SpanManager) Option[T] {
	return func(o *options[T]) {
		if spans != nil {
			o.spans = spans
		}
	}
}
