// Package auth orchestrates session-based authentication: signup, login,
// logout and per-request identity resolution.
//
// The Service composes three collaborators, all injected explicitly:
//
//   - UserStore — the credential store, enforcing email uniqueness
//     (Postgres implementation in integration/database/pg).
//   - PasswordHasher — password hashing (bcrypt implementation in pkg/hasher).
//   - sessiontransport.Cookie — session issuance, verification and
//     termination bound to the request/response pair.
//
// # Error posture
//
// Recoverable problems are data, not errors. Malformed email, short
// password, duplicate email and bad credentials come back as field-keyed
// messages in the Result for the caller to render next to the form. Login
// failures intentionally reuse one generic message for unknown email and
// wrong password so responses cannot be used to enumerate accounts.
// Store and infrastructure failures propagate on the error return.
//
// Usage:
//
//	svc := auth.NewService(users, hasher.New(0), transport, auth.DefaultConfig(), log)
//
//	res, err := svc.Signup(w, r, email, password)
//	if err != nil {
//		// infrastructure failure
//	}
//	if !res.OK() {
//		// render res.Errors next to the form fields
//	}
//	// navigate to res.RedirectTo
//
// Ready-made net/http adapters (SignupHandler, LoginHandler, AuthHandler,
// LogoutHandler) cover the common form-post wiring.
package auth
