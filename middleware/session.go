package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/session"
)

type identityKey struct{}

// Identity is the per-request authentication state resolved by the session
// middleware. User and Session are nil for anonymous requests.
type Identity[Data any] struct {
	User    *auth.User
	Session *session.Session[Data]
}

// IsAuthenticated reports whether the request carries a valid user session.
func (i Identity[Data]) IsAuthenticated() bool {
	return i.User != nil && i.Session != nil
}

// SessionConfig configures the session middleware.
type SessionConfig[Data any] struct {
	// Service resolves the request's identity (required).
	Service *auth.Service[Data]
	// Logger for structured logging; nil discards output.
	Logger *slog.Logger
	// Skip defines a function to skip middleware execution for specific
	// requests, e.g. health checks.
	Skip func(r *http.Request) bool
	// RequireAuth rejects anonymous requests via ErrorHandler.
	RequireAuth bool
	// RequireGuest rejects authenticated requests via ErrorHandler,
	// e.g. on login and signup pages.
	RequireGuest bool
	// ErrorHandler renders auth failures. Defaults to a plain 401/403.
	ErrorHandler http.HandlerFunc
}

// Session creates middleware that resolves the request's session once per
// request and stashes the identity in the request context. Verification side
// effects (rolling cookie renewal, blank-cookie clearing) happen inside the
// service's transport; resolution failures degrade to an anonymous identity
// rather than failing the request.
func Session[Data any](svc *auth.Service[Data]) func(http.Handler) http.Handler {
	return SessionWithConfig(SessionConfig[Data]{Service: svc})
}

// SessionWithConfig creates a session middleware with custom configuration.
func SessionWithConfig[Data any](cfg SessionConfig[Data]) func(http.Handler) http.Handler {
	if cfg.Service == nil {
		panic("session middleware: service is required")
	}
	if cfg.RequireAuth && cfg.RequireGuest {
		panic("session middleware: RequireAuth and RequireGuest cannot both be true")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewDiscard()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			user, sess, err := cfg.Service.CurrentUser(w, r)
			if err != nil {
				// Graceful degradation: treat as anonymous instead of
				// failing the request.
				cfg.Logger.ErrorContext(r.Context(), "session middleware: identity resolution failed",
					logger.Error(err))
				user, sess = nil, nil
			}

			ident := Identity[Data]{User: user, Session: sess}

			if cfg.RequireAuth && !ident.IsAuthenticated() {
				cfg.errorResponse(w, r, http.StatusUnauthorized)
				return
			}
			if cfg.RequireGuest && ident.IsAuthenticated() {
				cfg.errorResponse(w, r, http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (cfg SessionConfig[Data]) errorResponse(w http.ResponseWriter, r *http.Request, status int) {
	if cfg.ErrorHandler != nil {
		cfg.ErrorHandler(w, r)
		return
	}
	http.Error(w, http.StatusText(status), status)
}

// IdentityFromContext retrieves the identity resolved by the session
// middleware. The second return value is false when the middleware did not
// run for this request.
func IdentityFromContext[Data any](ctx context.Context) (Identity[Data], bool) {
	ident, ok := ctx.Value(identityKey{}).(Identity[Data])
	return ident, ok
}

// UserFromContext returns the authenticated user for the request, or nil for
// anonymous requests.
func UserFromContext[Data any](ctx context.Context) *auth.User {
	if ident, ok := IdentityFromContext[Data](ctx); ok {
		return ident.User
	}
	return nil
}
