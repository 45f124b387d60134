package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordBuild records a completed registry build.
	RecordBuild(ctx context.Context, entries, renamed int, duration time.Duration)

	// RecordLookup records a lookup and whether it found an entry.
	RecordLookup(ctx context.Context, found bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	builds       metric.Int64Counter
	entries      metric.Int64Histogram
	renames      metric.Int64Counter
	buildLatency metric.Float64Histogram
	lookups      metric.Int64Counter
	lookupMisses metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the default OTel metrics instance.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("namekit")

	builds, err := meter.Int64Counter("namekit.registry.builds",
		metric.WithDescription("Number of registries built"),
	)
	if err != nil {
		return nil, err
	}

	entries, err := meter.Int64Histogram("namekit.registry.entries",
		metric.WithDescription("Number of entries per built registry"),
	)
	if err != nil {
		return nil, err
	}

	renames, err := meter.Int64Counter("namekit.registry.renames",
		metric.WithDescription("Number of entities renamed during registry builds"),
	)
	if err != nil {
		return nil, err
	}

	buildLatency, err := meter.Float64Histogram("namekit.registry.build_latency_ms",
		metric.WithDescription("Registry build latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	lookups, err := meter.Int64Counter("namekit.registry.lookups",
		metric.WithDescription("Number of registry lookups"),
	)
	if err != nil {
		return nil, err
	}

	lookupMisses, err := meter.Int64Counter("namekit.registry.lookup_misses",
		metric.WithDescription("Number of registry lookups that found nothing"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		builds:       builds,
		entries:      entries,
		renames:      renames,
		buildLatency: buildLatency,
		lookups:      lookups,
		lookupMisses: lookupMisses,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
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

// RecordBuild records a registry build.
func (m *otelMetrics) RecordBuild(ctx context.Context, entries, renamed int, duration time.Duration) {
	m.builds.Add(ctx, 1)
	m.entries.Record(ctx, int64(entries))
	if renamed > 0 {
		m.renames.Add(ctx, int64(renamed))
	}
	m.buildLatency.Record(ctx, Milliseconds(duration))
}

// RecordLookup records a lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, found bool) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("found", found)))
	if !found {
		m.lookupMisses.Add(ctx, 1)
	}
}
