package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{name: "nil context", ctx: nil, want: defaultLogger},
		{name: "no logger stored", ctx: context.Background(), want: defaultLogger},
		{name: "stored logger", ctx: WithContext(context.Background(), custom), want: custom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromContext(tt.ctx))
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	assert.Nil(t, LoggerFromContext(nil)) //nolint:staticcheck // nil guard
	assert.Nil(t, LoggerFromContext(context.Background()))

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithContext(context.Background(), custom)
	assert.Same(t, custom, LoggerFromContext(ctx))
}

func TestWithRequestAndCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContext(ctx).InfoContext(ctx, "generating quote")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "corr-789", entry["correlation_id"])
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Equal(t, custom, FromContext(context.Background()))
}

func TestContextLoggerRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()})
	ctx := WithContext(context.Background(), slog.New(handler))
	ctx = WithRequestID(ctx, "req-integration-123")

	FromContext(ctx).Info("calling upstream",
		slog.String("mood", "courage"),
		slog.String("api_key", "sk-live-abcdefghijklmnopqrstuvwxyz"),
	)

	output := buf.String()
	assert.Contains(t, output, "req-integration-123")
	assert.Contains(t, output, "courage")
	assert.Contains(t, output, "api_key")
	assert.NotContains(t, output, "abcdefghijklmnopqrstuvwxyz")
}
