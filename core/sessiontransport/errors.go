package sessiontransport

import "errors"

var (
	// ErrNoSession is returned when the request carries no usable session:
	// the cookie is absent, empty, tampered, unknown or expired.
	ErrNoSession = errors.New("sessiontransport: no session")

	// ErrNoResponseContext is returned when a cookie-writing operation is
	// invoked outside a request/response context. Cookie writes are only
	// observable while the response headers are still open, so this is a
	// programming error rather than a runtime condition.
	ErrNoResponseContext = errors.New("sessiontransport: no response context")
)
