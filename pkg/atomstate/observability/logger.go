// Package observability provides structured logging, metrics, and tracing
// support for atomstate.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds atom context to a logger.
// Returns a new logger with atom and atom_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "request-count", "atom-9f2c01ab")
//	enriched.Debug("value updated") // includes atom, atom_id
func EnrichLogger(logger *slog.Logger, atomName, atomID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("atom", atomName),
		slog.String("atom_id", atomID),
	)
}

// LogWrite logs an accepted write and the fan-out it will trigger.
func LogWrite(logger *slog.Logger, atomName string, listeners int) {
	if logger == nil {
		return
	}
	logger.Debug("value updated",
		slog.String("atom", atomName),
		slog.Int("listeners", listeners),
	)
}

// LogSuppressed logs a write suppressed by the equality comparison.
func LogSuppressed(logger *slog.Logger, atomName string) {
	if logger == nil {
		return
	}
	logger.Debug("write suppressed",
		slog.String("atom", atomName),
	)
}

// LogSubscribe logs a new listener registration.
func LogSubscribe(logger *slog.Logger, atomName string, listenerID uint64, listeners int) {
	if logger == nil {
		return
	}
	logger.Debug("listener subscribed",
		slog.String("atom", atomName),
		slog.Uint64("listener_id", listenerID),
		slog.Int("listeners", listeners),
	)
}

// LogUnsubscribe logs a listener removal.
func LogUnsubscribe(logger *slog.Logger, atomName string, listenerID uint64, listeners int) {
	if logger == nil {
		return
	}
	logger.Debug("listener unsubscribed",
		slog.String("atom", atomName),
		slog.Uint64("listener_id", listenerID),
		slog.Int("listeners", listeners),
	)
}

// LogListenerError logs a listener failure that has no dedicated handler.
func LogListenerError(logger *slog.Logger, atomName string, listenerID uint64, err error) {
	if logger == nil {
		return
	}
	logger.Error("listener failed",
		slog.String("atom", atomName),
		slog.Uint64("listener_id", listenerID),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
