package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records as JSON lines.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:   h.buf,
		level: h.level,
		attrs: make([]slog.Attr, len(h.attrs)+len(attrs)),
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *testHandler) getLastRecord() map[string]any {
	lines := bytes.Split(h.buf.Bytes(), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) > 0 {
			var m map[string]any
			if err := json.Unmarshal(lines[i], &m); err == nil {
				return m
			}
		}
	}
	return nil
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds registry_id", func(t *testing.T) {
		h := newTestHandler()
		enriched := EnrichLogger(slog.New(h), "reg-1")
		enriched.Info("hello")

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "reg-1", record["registry_id"])
		assert.Equal(t, "hello", record["msg"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "reg-1"))
	})
}

func TestLogRegistryBuilt(t *testing.T) {
	h := newTestHandler()

	LogRegistryBuilt(slog.New(h), 4, 2, 1.5)

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "registry built", record["msg"])
	assert.Equal(t, float64(4), record["entries"]) // JSON decodes ints as float64
	assert.Equal(t, float64(2), record["renamed"])
	assert.Equal(t, 1.5, record["duration_ms"])

	assert.NotPanics(t, func() { LogRegistryBuilt(nil, 0, 0, 0) })
}

func TestLogNameResolved(t *testing.T) {
	h := newTestHandler()

	LogNameResolved(slog.New(h), 3, "worker", "worker1")

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "entity renamed", record["msg"])
	assert.Equal(t, float64(3), record["position"])
	assert.Equal(t, "worker", record["declared"])
	assert.Equal(t, "worker1", record["resolved"])

	assert.NotPanics(t, func() { LogNameResolved(nil, 0, "", "x") })
}

func TestLogLookupMiss(t *testing.T) {
	h := newTestHandler()

	LogLookupMiss(slog.New(h), "missing", errors.New("not found"))

	record := h.getLastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "lookup failed", record["msg"])
	assert.Equal(t, "missing", record["name"])
	assert.Equal(t, "not found", record["error"])

	assert.NotPanics(t, func() { LogLookupMiss(nil, "", errors.New("x")) })
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, done(), 5*time.Millisecond)
}

func TestMilliseconds(t *testing.T) {
	assert.Equal(t, 1.5, Milliseconds(1500*time.Microsecond))
	assert.Equal(t, float64(0), Milliseconds(0))
}
