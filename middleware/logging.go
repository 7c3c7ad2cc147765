package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/authkit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Logger is the slog logger to use; nil falls back to slog.Default().
	Logger *slog.Logger
	// Level for successful requests (default: slog.LevelInfo). Responses
	// with 4xx status log at Warn and 5xx at Error regardless.
	Level slog.Level
	// Skip defines a function to skip logging for specific requests,
	// e.g. health checks.
	Skip func(r *http.Request) bool
	// SlowThreshold promotes requests slower than this to Warn
	// (default: 5s).
	SlowThreshold time.Duration
	// Component name for structured logging (default: "http").
	Component string
}

// Logging creates request logging middleware with default configuration. The
// Data type parameter must match the one used by the session middleware for
// identity attributes to be picked up.
func Logging[Data any](log *slog.Logger) func(http.Handler) http.Handler {
	return LoggingWithConfig[Data](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates request logging middleware that logs one line per
// completed request with method, path, status, response size, and duration.
// When the session middleware runs earlier in the chain, the authenticated
// user and session IDs are attached as well.
func LoggingWithConfig[Data any](cfg LoggingConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			elapsed := time.Since(start)
			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", wrapped.status),
				slog.Int64("bytes", wrapped.size),
				logger.Duration(elapsed),
			}

			if ident, ok := IdentityFromContext[Data](r.Context()); ok && ident.IsAuthenticated() {
				attrs = append(attrs,
					logger.UserID(ident.User.ID),
					logger.SessionID(ident.Session.ID))
			}

			level := cfg.Level
			switch {
			case wrapped.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case wrapped.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			case elapsed > cfg.SlowThreshold:
				level = slog.LevelWarn
				attrs = append(attrs, slog.Bool("slow_request", true))
			}

			cfg.Logger.LogAttrs(r.Context(), level, "request completed", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code and
// response size for logging.
type statusWriter struct {
	http.ResponseWriter
	status  int
	size    int64
	written bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.written = true
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}
