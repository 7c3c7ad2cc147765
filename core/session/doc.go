// Package session provides server-side session lifecycle management with
// rolling expiration.
//
// A Session is identified by a stable UUID and carried between requests by an
// opaque bearer token. The Manager owns the lifecycle: Create persists a new
// session for a user, Validate resolves a token to a live session while
// applying the rolling-renewal policy, and Delete invalidates a session.
//
// # Rolling renewal
//
// Sessions use an idle-timeout model. Each successful Validate checks whether
// the touch interval has elapsed since the session was last updated; if so the
// expiry is pushed out by the full TTL and the session is flagged fresh. The
// fresh flag is derived state, computed at validation time and never stored —
// transports inspect it via IsFresh to know when the client-side cookie must
// be re-issued to match the extended server-side expiry.
//
// The touch interval throttles store writes: with a 30-day TTL and a 24-hour
// touch interval an active session produces at most one renewal write per day
// instead of one per request.
//
// # Storage
//
// Persistence is abstracted behind the Store interface. This package performs
// no cross-request locking; concurrent renewals of the same session are
// arbitrated by the store's own per-record atomicity. Postgres and Redis
// implementations live in the integration/database packages.
//
// Basic usage:
//
//	store := pg.NewSessionStore[MyData](pool)
//	mgr := session.NewManager(store, 30*24*time.Hour, 24*time.Hour)
//
//	sess, err := mgr.Create(ctx, userID)
//	if err != nil {
//		return err
//	}
//
//	sess, err = mgr.Validate(ctx, token)
//	switch {
//	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
//		// treat as unauthenticated
//	case err != nil:
//		return err
//	}
//	if sess.IsFresh() {
//		// re-issue the client cookie
//	}
package session
