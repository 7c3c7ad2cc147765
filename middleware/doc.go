// Package middleware provides net/http middleware for session-based
// authentication and request logging.
//
// The session middleware resolves the request's identity once per request
// via the auth service and stashes it in the request context:
//
//	svc := auth.NewService(users, hasher, transport, cfg, log)
//	mux.Handle("/dashboard", middleware.SessionWithConfig(middleware.SessionConfig[MyData]{
//		Service:     svc,
//		RequireAuth: true,
//	})(dashboardHandler))
//
// Handlers retrieve the identity through the context helpers:
//
//	func dashboard(w http.ResponseWriter, r *http.Request) {
//		user := middleware.UserFromContext[MyData](r.Context())
//		// user is non-nil because RequireAuth guarded the route
//	}
//
// RequireAuth rejects anonymous requests, RequireGuest rejects authenticated
// ones (login and signup pages). Both default to plain 401/403 responses and
// accept a custom ErrorHandler for redirects or rendered pages.
//
// The logging middleware logs one structured line per completed request and
// attaches the authenticated user and session IDs when it runs after the
// session middleware:
//
//	chain := middleware.Session(svc)(middleware.Logging[MyData](log)(mux))
package middleware
