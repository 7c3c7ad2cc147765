package session

import (
	"time"
)

// Config holds session manager configuration.
type Config struct {
	// TTL is the session time-to-live (idle timeout).
	TTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	// TouchInterval is the minimum time between rolling-renewal updates.
	// Prevents a store write on every request; 0 extends on every access.
	TouchInterval time.Duration `env:"SESSION_TOUCH_INTERVAL" envDefault:"24h"`
}

// DefaultConfig returns a Config with sensible defaults: 30-day sessions
// extended at most once per day.
func DefaultConfig() Config {
	return Config{
		TTL:           30 * 24 * time.Hour,
		TouchInterval: 24 * time.Hour,
	}
}
