// Package logger configures the application's structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup creates a JSON logger at the given level, installs it as the slog
// default and returns it. Unknown levels fall back to info.
func Setup(level string) *slog.Logger {
	return New(os.Stdout, level)
}

// New creates a JSON logger writing to w.
func New(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(level string) slog.Level {
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
