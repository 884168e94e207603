// Package logger builds slog loggers from the logging config.
package logger

import (
	"io"
	"log/slog"
	"os"

	"universe-engine/config"
)

// New returns a logger writing to stdout configured per cfg.
func New(cfg config.LoggingConfig) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter returns a logger writing to w configured per cfg. Format
// selection follows cfg.JSONFormat first, then cfg.Format.
func NewWithWriter(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	level := parseLogLevel(cfg.Level)

	var handler slog.Handler
	if cfg.JSONFormat || cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}

func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
