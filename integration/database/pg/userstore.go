package pg

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/core/auth"
)

// UserStore is the Postgres-backed credential store. Email uniqueness is
// enforced by a unique index on lower(email); violations surface as
// auth.ErrEmailTaken so the auth service can turn them into a field error.
type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a Postgres user store on top of the given pool.
func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

var _ auth.UserStore = (*UserStore)(nil)

// Create persists a new user. Emails are stored as given but compared
// case-insensitively by the unique index.
func (s *UserStore) Create(ctx context.Context, email, passwordHash string) (auth.User, error) {
	user := auth.User{
		ID:           uuid.New(),
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		user.ID, user.Email, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return auth.User{}, errors.Join(auth.ErrEmailTaken, err)
		}
		return auth.User{}, err
	}

	return user, nil
}

// GetByEmail returns the user with the given email, matched
// case-insensitively, or auth.ErrUserNotFound.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	var user auth.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at
		 FROM users
		 WHERE lower(email) = lower($1)`,
		strings.TrimSpace(email),
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if IsNotFoundError(err) {
			return auth.User{}, errors.Join(auth.ErrUserNotFound, err)
		}
		return auth.User{}, err
	}
	return user, nil
}

// GetByID returns the user with the given ID or auth.ErrUserNotFound.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	var user auth.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at
		 FROM users
		 WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if IsNotFoundError(err) {
			return auth.User{}, errors.Join(auth.ErrUserNotFound, err)
		}
		return auth.User{}, err
	}
	return user, nil
}
