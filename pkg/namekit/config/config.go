package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/namekit/pkg/namekit/observability"
	"github.com/randalmurphal/namekit/pkg/namekit/registry"
)

// Config holds registry construction settings.
type Config struct {
	Registry      RegistryConfig      `yaml:"registry" json:"registry"`
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`
}

// RegistryConfig configures name resolution.
type RegistryConfig struct {
	// SuffixStart is the first numeric suffix tried on a name collision.
	SuffixStart int `yaml:"suffix_start" json:"suffix_start"`
}

// ObservabilityConfig toggles logging, metrics, and tracing.
type ObservabilityConfig struct {
	// LogLevel is one of debug, info, warn, error, or off. Build summaries
	// are logged at info; renames and lookup misses at debug.
	LogLevel string `yaml:"log_level" json:"log_level"`
	// Metrics enables OpenTelemetry metrics.
	Metrics bool `yaml:"metrics" json:"metrics"`
	// Tracing enables OpenTelemetry tracing.
	Tracing bool `yaml:"tracing" json:"tracing"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Registry: RegistryConfig{SuffixStart: 1},
		Observability: ObservabilityConfig{
			LogLevel: "off",
		},
	}
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if c.Registry.SuffixStart < 1 {
		return fmt.Errorf("registry.suffix_start must be >= 1, got %d", c.Registry.SuffixStart)
	}
	if _, _, err := parseLevel(c.Observability.LogLevel); err != nil {
		return err
	}
	return nil
}

// RegistryOptions converts the configuration into registry options.
//
// logger is used only when LogLevel is not "off"; records below LogLevel are
// dropped by wrapping its handler. A nil logger disables logging.
func (c Config) RegistryOptions(logger *slog.Logger) []registry.Option {
	opts := []registry.Option{registry.WithSuffixStart(c.Registry.SuffixStart)}

	if level, on, err := parseLevel(c.Observability.LogLevel); err == nil && on && logger != nil {
		opts = append(opts, registry.WithLogger(slog.New(&levelHandler{level: level, next: logger.Handler()})))
	}
	if c.Observability.Metrics {
		opts = append(opts, registry.WithMetrics(observability.NewMetricsRecorder()))
	}
	if c.Observability.Tracing {
		opts = append(opts, registry.WithSpanManager(observability.NewSpanManager()))
	}
	return opts
}

// parseLevel maps a level name to a slog level. on is false for "off".
func parseLevel(s string) (level slog.Level, on bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off":
		return 0, false, nil
	case "debug":
		return slog.LevelDebug, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "warn", "warning":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	}
	return 0, false, fmt.Errorf("observability.log_level: unknown level %q", s)
}
