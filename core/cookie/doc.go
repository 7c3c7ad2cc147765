// Package cookie provides HTTP cookie management with HMAC-SHA256 signing
// and signing-key rotation.
//
// The Manager signs values with its primary secret and verifies against every
// configured secret, so cookies issued under an old key remain valid while a
// new key is rolled out. Defaults are tuned for authentication cookies:
// HttpOnly, SameSite=Strict, Path=/ and session-scoped expiry (no Max-Age, so
// the browser discards the cookie when it closes).
//
// Basic usage:
//
//	mgr, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//		return err
//	}
//
//	// Write a signed cookie.
//	err = mgr.SetSigned(w, "__session", token, cookie.WithSecure(true))
//
//	// Read it back; tampering yields ErrInvalidSignature.
//	token, err := mgr.GetSigned(r, "__session")
//
//	// Instruct the client to delete it.
//	mgr.Delete(w, "__session")
//
// Configuration can also come from the environment via Config and
// NewFromConfig, with COOKIE_SECRETS holding comma-separated secrets ordered
// newest first.
package cookie
