package sessiontransport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/session"
)

// Cookie provides HTTP cookie-based session transport. It binds the session
// manager to a single request/response pair: Issue establishes a session and
// writes its cookie, Verify resolves the request cookie to a session while
// keeping client and server expiry in sync, and Terminate invalidates the
// current session.
//
// The cookie value is the session's bearer token, signed via cookie.Manager.
// The cookie itself is session-scoped (cleared when the browser closes);
// server-side expiry is governed by the session manager's TTL.
type Cookie[Data any] struct {
	manager   *session.Manager[Data]
	cookieMgr *cookie.Manager
	name      string
	log       *slog.Logger
}

// NewCookie creates a cookie-based session transport. The logger records
// swallowed cookie-write failures during Verify; pass nil to discard them.
func NewCookie[Data any](mgr *session.Manager[Data], cookieMgr *cookie.Manager, name string, log *slog.Logger) *Cookie[Data] {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Cookie[Data]{
		manager:   mgr,
		cookieMgr: cookieMgr,
		name:      name,
		log:       log,
	}
}

// CookieName returns the configured session cookie name so callers never
// hardcode it.
func (c *Cookie[Data]) CookieName() string {
	return c.name
}

// Issue creates a session for userID with optional custom attributes and
// writes its cookie to the response. Store failures propagate to the caller.
// Calling Issue outside a request/response context (nil ResponseWriter) is a
// programming error and fails with ErrNoResponseContext, since the Set-Cookie
// header is only observable during the response window.
func (c *Cookie[Data]) Issue(w http.ResponseWriter, r *http.Request, userID uuid.UUID, data ...Data) (session.Session[Data], error) {
	if w == nil || r == nil {
		return session.Session[Data]{}, ErrNoResponseContext
	}

	sess, err := c.manager.Create(r.Context(), userID, data...)
	if err != nil {
		return session.Session[Data]{}, err
	}

	if err := c.writeCookie(w, sess); err != nil {
		return session.Session[Data]{}, err
	}

	return sess, nil
}

// Verify resolves the request's session cookie to a live session.
//
// A missing cookie or an empty cookie value returns ErrNoSession with no side
// effect. A nonempty value is validated against the store; unknown, expired or
// tampered values result in a blank cookie write that instructs the client to
// delete its stale cookie, then ErrNoSession. When validation crosses the
// rolling-renewal threshold the extended session's cookie is re-written to the
// response.
//
// Both the renewal and the blank-cookie writes are best effort: a write
// failure is logged and discarded, and the verification result is returned
// regardless, so identity resolution is never blocked by cookie mechanics.
// The store read always completes before any cookie write is attempted.
func (c *Cookie[Data]) Verify(w http.ResponseWriter, r *http.Request) (session.Session[Data], error) {
	raw, err := c.cookieMgr.Get(r, c.name)
	if err != nil || raw == "" {
		// No cookie, or a malformed empty one: nothing to validate and
		// nothing worth clearing.
		return session.Session[Data]{}, ErrNoSession
	}

	token, err := c.cookieMgr.GetSigned(r, c.name)
	if err != nil {
		c.clearCookie(w)
		return session.Session[Data]{}, ErrNoSession
	}

	sess, err := c.manager.Validate(r.Context(), token)
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
		c.clearCookie(w)
		return session.Session[Data]{}, ErrNoSession
	case err != nil:
		return session.Session[Data]{}, err
	}

	if sess.IsFresh() {
		if werr := c.writeCookie(w, sess); werr != nil {
			c.log.WarnContext(r.Context(), "session cookie renewal failed",
				logger.Error(werr), slog.String("cookie", c.name))
		}
	}

	return sess, nil
}

// Terminate invalidates the current session (logout). When no valid session
// exists it returns session.ErrNotAuthenticated as a value; terminating an
// already-invalidated session is therefore idempotent. The blank cookie is
// written unconditionally so the client never retains a dead token.
func (c *Cookie[Data]) Terminate(w http.ResponseWriter, r *http.Request) error {
	if w == nil || r == nil {
		return ErrNoResponseContext
	}

	sess, err := c.Verify(w, r)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return session.ErrNotAuthenticated
		}
		return err
	}

	if err := c.manager.Delete(r.Context(), sess.ID); err != nil {
		return err
	}

	c.cookieMgr.Delete(w, c.name)
	return nil
}

// writeCookie derives the cookie descriptor from the session token and writes
// it to the response. The cookie is session-scoped: no Max-Age is set, so the
// browser drops it on close while the server-side record keeps its own TTL.
func (c *Cookie[Data]) writeCookie(w http.ResponseWriter, sess session.Session[Data]) error {
	return c.cookieMgr.SetSigned(w, c.name, sess.Token)
}

// clearCookie writes a blank cookie so the client deletes its stale copy.
// Skipping this write would leave an unusable cookie on the client
// indefinitely, so it happens on every invalid-session branch.
func (c *Cookie[Data]) clearCookie(w http.ResponseWriter) {
	if w == nil {
		return
	}
	c.cookieMgr.Delete(w, c.name)
}
