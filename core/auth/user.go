package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the identity record managed by the credential store. It is created
// by signup and never mutated by this subsystem.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserStore is the credential store collaborator. Implementations must
// enforce a uniqueness constraint on email and surface violations as
// ErrEmailTaken.
type UserStore interface {
	// Create persists a new user and returns it. A duplicate email fails
	// with ErrEmailTaken; any other failure propagates unchanged.
	Create(ctx context.Context, email, passwordHash string) (User, error)
	// GetByEmail returns the user with the given email or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (User, error)
	// GetByID returns the user with the given ID or ErrUserNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

// PasswordHasher is the password hashing collaborator. See pkg/hasher for
// the bcrypt implementation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
