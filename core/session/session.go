package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session represents a server-side session with generic attribute storage.
// The Data type parameter allows custom per-session attributes specific to
// your application (role claims, UI preferences, etc.).
type Session[Data any] struct {
	// ID is the stable unique session identifier that never changes during
	// the session lifecycle. It is used for store lookups and invalidation.
	ID uuid.UUID

	// Token is the cryptographically secure bearer value (32 bytes,
	// base64url) carried by the session cookie.
	Token string

	// UserID identifies the user this session was issued for.
	UserID uuid.UUID

	// Data holds custom application-specific session attributes.
	Data Data

	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// fresh marks a session whose rolling-renewal threshold was crossed
	// during validation. Derived at validation time, never persisted.
	fresh bool
}

// New creates a session for userID with the given TTL and optional custom
// attributes. The returned session has not been persisted yet.
func New[Data any](userID uuid.UUID, ttl time.Duration, data ...Data) (Session[Data], error) {
	if userID == uuid.Nil {
		return Session[Data]{}, ErrMissingUserID
	}

	token, err := generateToken()
	if err != nil {
		return Session[Data]{}, errors.Join(ErrTokenGeneration, err)
	}

	var d Data
	if len(data) > 0 {
		d = data[0]
	}

	now := time.Now()
	return Session[Data]{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		Data:      d,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetData updates the session's custom attributes.
func (s *Session[Data]) SetData(data Data) {
	s.Data = data
	s.UpdatedAt = time.Now()
}

// IsExpired returns true if the session has expired.
func (s Session[Data]) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsFresh reports whether the rolling-renewal threshold was crossed during
// the validation that produced this session value. A fresh session has had
// its expiry extended server-side; the transport must re-issue the client
// cookie so the two stay in sync.
func (s Session[Data]) IsFresh() bool {
	return s.fresh
}

// touch extends the session expiration if the touch interval has elapsed
// since the last update. Returns true if the session was extended, which
// also flags the session as fresh.
func (s *Session[Data]) touch(ttl, touchInterval time.Duration) bool {
	if time.Since(s.UpdatedAt) < touchInterval {
		return false
	}
	now := time.Now()
	s.ExpiresAt = now.Add(ttl)
	s.UpdatedAt = now
	s.fresh = true
	return true
}

// generateToken creates a cryptographically secure random token using
// 32 bytes (256 bits) encoded as base64 URL-safe string without padding.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
