package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDefault installs a logger writing to the returned buffer for the
// duration of the test.
func captureDefault(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(cfg, &buf)
	return &buf
}

func TestJSONLogging(t *testing.T) {
	buf := captureDefault(t, NewConfig("info", "json", "packsim", "1.0.0", "test", "pokebox", false))

	slog.Info("pack opened", "revealed", 5, "coins", 900)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "packsim", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "pokebox", entry["variant"])
	assert.Equal(t, "pack opened", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(5), entry["revealed"])
}

func TestBaseAttributes_SkipsEmpty(t *testing.T) {
	attrs := Config{ServiceName: "packsim"}.BaseAttributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, AttrKeyService, attrs[0].Key)
}

func TestLevelFiltering(t *testing.T) {
	buf := captureDefault(t, Config{Level: "warn", Format: "text"})

	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestRequestIDContext(t *testing.T) {
	buf := captureDefault(t, Config{Level: "debug", Format: "text"})

	ctx := WithRequestID(context.Background(), "test-req-123")
	id, ok := RequestID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "test-req-123", id)

	FromContext(ctx).Info("with id")
	assert.Contains(t, buf.String(), "request_id=test-req-123")

	_, ok = RequestID(context.Background())
	assert.False(t, ok)
	_, ok = RequestID(WithRequestID(context.Background(), ""))
	assert.False(t, ok, "empty id is treated as absent")
}

func TestWith_AccumulatesScopedAttributes(t *testing.T) {
	ctx := With(context.Background(), "method", "POST")
	ctx = With(ctx, "path", "/api/v1/packs/open")
	ctx = WithRequestID(ctx, "req-1")

	// Installed after ctx was built; FromContext must still use it.
	buf := captureDefault(t, Config{Level: "info", Format: "text"})
	FromContext(ctx).Info("scoped")

	out := buf.String()
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/api/v1/packs/open")
	assert.Contains(t, out, "request_id=req-1")

	assert.Equal(t, ctx, With(ctx), "no args leaves ctx unchanged")
}

func TestWith_DoesNotLeakIntoParent(t *testing.T) {
	parent := With(context.Background(), "a", 1)
	_ = With(parent, "b", 2)

	buf := captureDefault(t, Config{Level: "info", Format: "text"})
	FromContext(parent).Info("parent")
	assert.Contains(t, buf.String(), "a=1")
	assert.NotContains(t, buf.String(), "b=2")
}

func TestNewRequestID(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, Config{Level: tt.level}.LogLevel())
		})
	}
}
