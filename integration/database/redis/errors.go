package redis

import "errors"

var (
	// ErrEmptyConnectionString is returned when no connection string is
	// configured; set the REDIS_URL env var.
	ErrEmptyConnectionString = errors.New("empty redis connection string")
	// ErrFailedToParseConnString is returned for malformed redis:// URLs.
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	// ErrFailedToConnect is returned when the client cannot reach the server
	// after all retry attempts.
	ErrFailedToConnect = errors.New("failed to connect to redis")
	// ErrHealthcheckFailed is returned when the connection is not available.
	ErrHealthcheckFailed = errors.New("healthcheck failed, connection is not available")
)
