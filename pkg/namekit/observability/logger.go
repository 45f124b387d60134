// Package observability provides logging, metrics, and tracing hooks for
// namekit registries.
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

// EnrichLogger adds registry context to a logger.
// Returns a new logger with the registry_id field.
func EnrichLogger(logger *slog.Logger, registryID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("registry_id", registryID))
}

// LogRegistryBuilt logs the completion of a registry build.
func LogRegistryBuilt(logger *slog.Logger, entries, renamed int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("registry built",
		slog.Int("entries", entries),
		slog.Int("renamed", renamed),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogNameResolved logs an entity that was assigned a name other than the
// one it declared.
func LogNameResolved(logger *slog.Logger, position int, declared, resolved string) {
	if logger == nil {
		return
	}
	logger.Debug("entity renamed",
		slog.Int("position", position),
		slog.String("declared", declared),
		slog.String("resolved", resolved),
	)
}

// LogLookupMiss logs a failed lookup.
func LogLookupMiss(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Debug("lookup failed",
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
