package pg

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/core/session"
)

// SessionStore is the Postgres-backed session store. Custom session
// attributes are serialized to the sessions.data JSONB column.
type SessionStore[Data any] struct {
	pool *pgxpool.Pool
}

// NewSessionStore creates a Postgres session store on top of the given pool.
func NewSessionStore[Data any](pool *pgxpool.Pool) *SessionStore[Data] {
	return &SessionStore[Data]{pool: pool}
}

var _ session.Store[struct{}] = (*SessionStore[struct{}])(nil)

// GetByID returns the session with the given stable ID or session.ErrNotFound.
func (s *SessionStore[Data]) GetByID(ctx context.Context, id uuid.UUID) (*session.Session[Data], error) {
	return s.get(ctx,
		`SELECT id, token, user_id, data, expires_at, created_at, updated_at
		 FROM sessions
		 WHERE id = $1`, id)
}

// GetByToken returns the session with the given bearer token or
// session.ErrNotFound.
func (s *SessionStore[Data]) GetByToken(ctx context.Context, token string) (*session.Session[Data], error) {
	return s.get(ctx,
		`SELECT id, token, user_id, data, expires_at, created_at, updated_at
		 FROM sessions
		 WHERE token = $1`, token)
}

func (s *SessionStore[Data]) get(ctx context.Context, query string, arg any) (*session.Session[Data], error) {
	var (
		sess session.Session[Data]
		raw  []byte
	)
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&sess.ID, &sess.Token, &sess.UserID, &raw,
		&sess.ExpiresAt, &sess.CreatedAt, &sess.UpdatedAt,
	)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, errors.Join(session.ErrNotFound, err)
		}
		return nil, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &sess.Data); err != nil {
			return nil, err
		}
	}

	return &sess, nil
}

// Save upserts the session record keyed by its stable ID. Renewals overwrite
// expires_at and updated_at in place; the row-level write is atomic, which is
// all the arbitration concurrent renewals of one session need.
func (s *SessionStore[Data]) Save(ctx context.Context, sess *session.Session[Data]) error {
	raw, err := json.Marshal(sess.Data)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO sessions (id, token, user_id, data, expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			token = EXCLUDED.token,
			data = EXCLUDED.data,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at`,
		sess.ID, sess.Token, sess.UserID, raw,
		sess.ExpiresAt, sess.CreatedAt, sess.UpdatedAt,
	)
	return err
}

// Delete removes the session with the given ID. Deleting a session that is
// already gone returns session.ErrNotFound, which callers may ignore.
func (s *SessionStore[Data]) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

// DeleteExpired removes all expired sessions and returns the deleted count.
func (s *SessionStore[Data]) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
