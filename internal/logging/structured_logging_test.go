package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("dataset loaded",
			slog.String("component", "dataset"),
			slog.Int("rows", 17))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"dataset loaded"`)
		assert.Contains(t, output, `"component":"dataset"`)
		assert.Contains(t, output, `"rows":17`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to render chart", assert.AnError,
			slog.String("chart", "gdp-impact-chart"),
			slog.String("component", "charts"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to render chart"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"chart":"gdp-impact-chart"`)
	})

	t.Run("LogError tolerates nil logger and nil error", func(t *testing.T) {
		LogError(nil, "ignored", assert.AnError)

		var buf bytes.Buffer
		LogError(NewStructuredLogger(&buf, slog.LevelInfo), "no cause", nil)
		assert.Contains(t, buf.String(), `"msg":"no cause"`)
		assert.NotContains(t, buf.String(), `"error"`)
	})

	t.Run("LogOperation skips zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "export_written",
			slog.String("format", "xlsx"),
			slog.Int("rows", 17),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"msg":"export_written"`)
		assert.Contains(t, output, `"format":"xlsx"`)
		assert.Contains(t, output, `"rows":17`)
		assert.NotContains(t, output, `"duration"`)

		buf.Reset()
		LogOperation(logger, "export_written", slog.Duration("duration", time.Millisecond))
		assert.Contains(t, buf.String(), `"duration"`)
	})

	t.Run("LogHTTPRequest logs request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "POST", "/api/charts/top-affected-chart", 200, 1.5,
			slog.String("user_agent", "test-client"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"POST"`)
		assert.Contains(t, output, `"path":"/api/charts/top-affected-chart"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"user_agent":"test-client"`)
	})
}

func TestContextValues(t *testing.T) {
	t.Run("stores and retrieves logger from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)
		FromContext(ctx).Info("test from context")

		assert.Contains(t, buf.String(), "test from context")
	})

	t.Run("returns default logger when not in context", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
		logger.Info("test message")
	})

	t.Run("stores request id", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "abc")
		assert.Equal(t, "abc", RequestIDFromContext(ctx))
		assert.Empty(t, RequestIDFromContext(context.Background()))
	})
}
