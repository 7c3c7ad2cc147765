// Package logger provides slog construction from environment configuration
// plus nil-safe attribute helpers for consistent structured logging.
package logger
