package sessiontransport

import (
	"log/slog"

	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/session"
)

// Config provides environment-based configuration for cookie-based session
// transport.
type Config struct {
	// CookieName is the well-known name of the session cookie. Callers must
	// obtain it via Cookie.CookieName rather than hardcoding it.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CookieName: "__session",
	}
}

// NewCookieFromConfig creates a cookie-based session transport from
// configuration. The session.Manager and cookie.Manager must be provided by
// the caller.
func NewCookieFromConfig[Data any](cfg Config, mgr *session.Manager[Data], cookieMgr *cookie.Manager, log *slog.Logger) *Cookie[Data] {
	return NewCookie(mgr, cookieMgr, cfg.CookieName, log)
}
