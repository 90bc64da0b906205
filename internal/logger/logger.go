// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLogLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New returns a colorized tint logger for dev and test, and a JSON logger everywhere else.
func New(w io.Writer, level slog.Level, environment string) *slog.Logger {
	if environment == "dev" || environment == "test" {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// InitLogger builds a stdout logger and installs it as the slog default.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	l := New(os.Stdout, level, environment)
	slog.SetDefault(l)
	return l
}
