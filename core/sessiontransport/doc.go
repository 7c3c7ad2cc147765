// Package sessiontransport binds server-side sessions to HTTP cookies.
//
// The Cookie transport is the request/response boundary of the session
// lifecycle. It owns three operations:
//
//   - Issue: create a session for a user and write its signed cookie.
//   - Verify: resolve the request cookie to a live session, renewing or
//     clearing the client cookie as a side effect.
//   - Terminate: invalidate the current session and clear its cookie.
//
// # Verification state machine
//
// Each Verify call walks a small state machine:
//
//	no cookie / empty value  -> ErrNoSession, no side effect
//	bad signature            -> blank cookie written, ErrNoSession
//	unknown or expired token -> blank cookie written, ErrNoSession
//	valid, renewal due       -> cookie re-written with extended expiry
//	valid, no renewal due    -> session returned as-is
//
// Every invalid branch converges on the same observable state: a cleared
// client cookie and no session. The blank-cookie write is mandatory —
// without it a stale, unusable cookie would sit on the client indefinitely.
//
// Renewal and blank-cookie writes are deliberately best effort. A failure
// while writing them is logged and discarded so that identity resolution is
// never blocked by cookie-transport mechanics; downstream authorization
// depends on the returned session, not on the Set-Cookie header landing.
//
// # Cookie policy
//
// The cookie value is the session's bearer token signed by cookie.Manager.
// The cookie carries no Max-Age, making it session-scoped: browsers discard
// it on close while the server-side record expires on its own TTL. Name,
// signing secrets and attributes are process-wide configuration injected at
// construction, never ambient globals, so tests can substitute fakes freely.
//
// Usage:
//
//	transport := sessiontransport.NewCookie(sessionMgr, cookieMgr, "__session", log)
//
//	// Login succeeded:
//	sess, err := transport.Issue(w, r, user.ID)
//
//	// On every subsequent request:
//	sess, err := transport.Verify(w, r)
//	if errors.Is(err, sessiontransport.ErrNoSession) {
//		// anonymous request
//	}
//
//	// Logout:
//	err := transport.Terminate(w, r)
package sessiontransport
