/*
Package config loads registry settings from YAML or JSON.

# File Format

	registry:
	  suffix_start: 1      # first suffix tried on a name collision
	observability:
	  log_level: debug     # debug, info, warn, error, off
	  metrics: true        # OpenTelemetry metrics via the global meter provider
	  tracing: true        # OpenTelemetry spans via the global tracer provider

Missing keys keep their Default() value. Unknown keys are an error.

# Usage

	cfg, err := config.FromFile("namekit.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	reg := registry.New(items, cfg.RegistryOptions(slog.Default())...)
*/
package config
