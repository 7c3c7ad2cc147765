package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config provides environment-based configuration for the application logger.
type Config struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format selects the handler: "json" for production, "text" for development.
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// New creates a slog.Logger writing to w according to cfg. A nil w defaults
// to os.Stderr.
func New(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// NewDiscard returns a logger that drops everything. Useful as a default for
// components whose callers did not supply a logger.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
