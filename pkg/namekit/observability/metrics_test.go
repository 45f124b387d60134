package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest installs a test meter provider and returns its reader.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalProvider := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumValue(t *testing.T, m *metricdata.Metrics) int64 {
	t.Helper()
	require.NotNil(t, m)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "Expected Sum type")
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestNewMetricsRecorder(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordBuild(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)
	ctx := context.Background()

	m.RecordBuild(ctx, 4, 2, 3*time.Millisecond)
	m.RecordBuild(ctx, 1, 0, time.Millisecond)

	rm := collectMetrics(t, reader)

	assert.Equal(t, int64(2), sumValue(t, findMetric(rm, "namekit.registry.builds")))
	assert.Equal(t, int64(2), sumValue(t, findMetric(rm, "namekit.registry.renames")))

	entries := findMetric(rm, "namekit.registry.entries")
	require.NotNil(t, entries)
	hist, ok := entries.Data.(metricdata.Histogram[int64])
	require.True(t, ok, "Expected Histogram type")
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
	assert.Equal(t, int64(5), hist.DataPoints[0].Sum)

	latency := findMetric(rm, "namekit.registry.build_latency_ms")
	require.NotNil(t, latency)
	_, ok = latency.Data.(metricdata.Histogram[float64])
	assert.True(t, ok, "Expected Histogram type")
}

func TestRecordLookup(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)
	ctx := context.Background()

	m.RecordLookup(ctx, true)
	m.RecordLookup(ctx, true)
	m.RecordLookup(ctx, false)

	rm := collectMetrics(t, reader)

	lookups := findMetric(rm, "namekit.registry.lookups")
	assert.Equal(t, int64(3), sumValue(t, lookups))

	sum := lookups.Data.(metricdata.Sum[int64])
	hits := map[bool]int64{}
	for _, dp := range sum.DataPoints {
		found, ok := dp.Attributes.Value("found")
		require.True(t, ok)
		hits[found.AsBool()] = dp.Value
	}
	assert.Equal(t, map[bool]int64{true: 2, false: 1}, hits)

	assert.Equal(t, int64(1), sumValue(t, findMetric(rm, "namekit.registry.lookup_misses")))
}
