package data

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "warning", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "ERROR", want: slog.LevelError},
		{level: "", want: slog.LevelInfo},
		{level: "bogus", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Logger{Level: tt.level}.SlogLevel(), tt.level)
	}
}
