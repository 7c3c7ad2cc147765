package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/core/session"
)

// SessionStore is the Redis-backed session store. Expiry is delegated to
// Redis key TTLs, so expired sessions vanish on their own and DeleteExpired
// is a no-op.
//
// Each session occupies two keys: the record itself under its stable ID and
// a token index pointing at that ID, both carrying the same TTL.
type SessionStore[Data any] struct {
	client *redis.Client
	prefix string
}

// NewSessionStore creates a Redis session store. An empty prefix defaults
// to "authkit".
func NewSessionStore[Data any](client *redis.Client, prefix string) *SessionStore[Data] {
	if prefix == "" {
		prefix = "authkit"
	}
	return &SessionStore[Data]{client: client, prefix: prefix}
}

var _ session.Store[struct{}] = (*SessionStore[struct{}])(nil)

func (s *SessionStore[Data]) idKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:session:id:%s", s.prefix, id)
}

func (s *SessionStore[Data]) tokenKey(token string) string {
	return fmt.Sprintf("%s:session:token:%s", s.prefix, token)
}

// sessionRecord is the JSON shape persisted to Redis. The private fresh flag
// on session.Session is derived state and intentionally not part of it.
type sessionRecord[Data any] struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Data      Data      `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetByID returns the session with the given stable ID or session.ErrNotFound.
func (s *SessionStore[Data]) GetByID(ctx context.Context, id uuid.UUID) (*session.Session[Data], error) {
	raw, err := s.client.Get(ctx, s.idKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}

	var rec sessionRecord[Data]
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}

	sess := session.Session[Data]{
		ID:        rec.ID,
		Token:     rec.Token,
		UserID:    rec.UserID,
		Data:      rec.Data,
		ExpiresAt: rec.ExpiresAt,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	return &sess, nil
}

// GetByToken resolves the token index to a session ID and loads the record.
func (s *SessionStore[Data]) GetByToken(ctx context.Context, token string) (*session.Session[Data], error) {
	idStr, err := s.client.Get(ctx, s.tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, session.ErrNotFound
	}

	return s.GetByID(ctx, id)
}

// Save writes the session record and its token index with a TTL matching the
// session expiry. Saving an already-expired session deletes it instead of
// storing a key Redis would refuse.
func (s *SessionStore[Data]) Save(ctx context.Context, sess *session.Session[Data]) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}

	rec := sessionRecord[Data]{
		ID:        sess.ID,
		Token:     sess.Token,
		UserID:    sess.UserID,
		Data:      sess.Data,
		ExpiresAt: sess.ExpiresAt,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.idKey(sess.ID), raw, ttl)
	pipe.Set(ctx, s.tokenKey(sess.Token), sess.ID.String(), ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Delete removes the session record and its token index. Deleting a session
// that is already gone returns session.ErrNotFound, which callers may ignore.
func (s *SessionStore[Data]) Delete(ctx context.Context, id uuid.UUID) error {
	raw, err := s.client.Get(ctx, s.idKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.ErrNotFound
		}
		return err
	}

	var rec sessionRecord[Data]
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Record is unreadable; still drop the ID key.
		return s.client.Del(ctx, s.idKey(id)).Err()
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.idKey(id))
	pipe.Del(ctx, s.tokenKey(rec.Token))
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteExpired is a no-op: Redis evicts expired keys on its own.
func (s *SessionStore[Data]) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
