package data

import (
	"log/slog"
	"strings"
)

// Flags tracks CLI flag overrides. Nil pointers mean the flag was not
// supplied.
type Flags struct {
	Profile  *string
	Region   *string
	Resource *string
	PageSize *int
	Demo     *bool
	ReadOnly *bool
	LogLevel *string
	LogFile  *string
}

// Logger tracks logging configuration.
type Logger struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// SlogLevel maps the configured level name to a slog level. Unknown
// names fall back to info.
func (l Logger) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
