package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Manager handles the session lifecycle: creation, validation with rolling
// renewal, and invalidation. The touchInterval determines how often sessions
// are extended on access, reducing write operations to the store.
type Manager[Data any] struct {
	store         Store[Data]
	ttl           time.Duration
	touchInterval time.Duration
}

// NewManager creates a session manager with the specified store, time-to-live
// duration, and touch interval. The touchInterval prevents updating session
// expiration on every access; set it to 0 to extend on every validation.
func NewManager[Data any](store Store[Data], ttl, touchInterval time.Duration) *Manager[Data] {
	return &Manager[Data]{
		store:         store,
		ttl:           ttl,
		touchInterval: touchInterval,
	}
}

// NewManagerFromConfig creates a session manager from configuration.
func NewManagerFromConfig[Data any](cfg Config, store Store[Data]) *Manager[Data] {
	return NewManager(store, cfg.TTL, cfg.TouchInterval)
}

// Create issues and persists a new session for userID with optional custom
// attributes. Exactly one session record is created per call.
func (m *Manager[Data]) Create(ctx context.Context, userID uuid.UUID, data ...Data) (Session[Data], error) {
	sess, err := New(userID, m.ttl, data...)
	if err != nil {
		return Session[Data]{}, err
	}

	if err := m.store.Save(ctx, &sess); err != nil {
		return Session[Data]{}, errors.Join(ErrSaveSession, err)
	}

	return sess, nil
}

// Validate looks up a session by its bearer token and applies the rolling
// renewal policy. Unknown tokens return ErrNotFound; expired records return
// ErrExpired. When the touch interval has elapsed the session's expiry is
// extended and persisted before returning, and the returned session reports
// IsFresh() == true so the transport can re-issue the client cookie.
//
// The store read always completes before the renewal write is attempted.
func (m *Manager[Data]) Validate(ctx context.Context, token string) (Session[Data], error) {
	stored, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return Session[Data]{}, err
	}

	sess := *stored
	if sess.IsExpired() {
		return Session[Data]{}, ErrExpired
	}

	if sess.touch(m.ttl, m.touchInterval) {
		if err := m.store.Save(ctx, &sess); err != nil {
			return Session[Data]{}, errors.Join(ErrSaveSession, err)
		}
	}

	return sess, nil
}

// GetByID retrieves a session by its stable ID and validates expiration.
// No renewal is applied; use Validate for request-path lookups.
func (m *Manager[Data]) GetByID(ctx context.Context, id uuid.UUID) (Session[Data], error) {
	stored, err := m.store.GetByID(ctx, id)
	if err != nil {
		return Session[Data]{}, err
	}

	if stored.IsExpired() {
		return Session[Data]{}, ErrExpired
	}

	return *stored, nil
}

// Delete invalidates a session by ID. Deleting a session that is already
// gone is not an error; invalidation is idempotent.
func (m *Manager[Data]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Join(ErrDeleteSession, err)
	}
	return nil
}

// CleanupExpired removes all expired sessions from the store and returns the
// count of deleted sessions. Should be called periodically to prevent session
// table growth.
func (m *Manager[Data]) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// TTL returns the session time-to-live duration.
func (m *Manager[Data]) TTL() time.Duration {
	return m.ttl
}
