package registry

import (
	"log/slog"

	"github.com/randalmurphal/namekit/pkg/namekit/observability"
)

// buildConfig holds configuration for registry construction.
type buildConfig struct {
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
	suffixStart int
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		metrics:     observability.NoopMetrics{},
		spans:       observability.NoopSpanManager{},
		suffixStart: 1,
	}
}

// Option configures registry construction.
type Option func(*buildConfig)

// WithLogger sets the logger used for renames, the build summary, and
// lookup misses. Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: observability.NoopMetrics{}.
//
// Example:
//
//	reg := registry.New(items, registry.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *buildConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpanManager sets the span manager used to trace the build.
// Default: observability.NoopSpanManager{}.
func WithSpanManager(s observability.SpanManager) Option {
	return func(c *buildConfig) {
		if s != nil {
			c.spans = s
		}
	}
}

// WithSuffixStart sets the first numeric suffix tried when a name collides.
// Default: 1, so duplicates of "x" become "x1", "x2", ...
// Values below 1 are ignored.
func WithSuffixStart(n int) Option {
	return func(c *buildConfig) {
		if n > 0 {
			c.suffixStart = n
		}
	}
}
