package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrFailedToOpenDBConnection is returned when the pool cannot be
	// established after all retry attempts.
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	// ErrEmptyConnectionString is returned when no connection string is
	// configured; set the PG_CONN_URL env var.
	ErrEmptyConnectionString = errors.New("empty postgres connection string")
	// ErrHealthcheckFailed is returned when the connection is not available.
	ErrHealthcheckFailed = errors.New("healthcheck failed, connection is not available")
	// ErrFailedToParseDBConfig is returned for malformed connection strings.
	ErrFailedToParseDBConfig = errors.New("failed to parse db config")
	// ErrFailedToApplyMigrations is returned when goose cannot bring the
	// schema up to date.
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
)

// Postgres error codes relevant to this package, per the SQLSTATE standard.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// IsNotFoundError reports whether err is a no-rows result.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports whether err is a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolationError reports whether err is a referential integrity
// violation.
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
