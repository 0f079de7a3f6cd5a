package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := newLogger(tt.level, "text", &bytes.Buffer{})
			assert.True(t, l.Enabled(context.Background(), tt.want))
			if tt.want > slog.LevelDebug {
				assert.False(t, l.Enabled(context.Background(), tt.want-4))
			}
		})
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	newLogger("info", "json", &buf).Info("request emitted", "bytes", 10)
	assert.Contains(t, buf.String(), `"msg":"request emitted"`)
}
