package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mkholodov/wuguan-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it as
// the slog default. "json" emits structured records for production;
// anything else falls back to the text handler with source locations,
// which is what local development wants. Everything goes to stderr so
// stdout stays free for tooling.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// parseLevel maps a config string to a slog level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
