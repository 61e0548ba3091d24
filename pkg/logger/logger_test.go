package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/scheduling/pkg/logger"
)

func TestHandler_EnrichesFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := logger.NewWithWriter(&buf, slog.LevelDebug)

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "user-1")
	ctx = logger.SetLogType(ctx, "webrequest")
	ctx = logger.SetWorkMode(ctx, "worker")

	l.With("component", "test").InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	require.Equal(t, "hello", record["msg"])
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, "user-1", record["user_id"])
	require.Equal(t, "webrequest", record["type"])
	require.Equal(t, "worker", record["work_mode"])
	require.Equal(t, "test", record["component"])
	require.Equal(t, "scheduling", record["origin_service"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}
