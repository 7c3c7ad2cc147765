package pg

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the users and sessions schema up to date using the SQL
// migrations embedded in this package. goose requires a database/sql handle,
// so the pgx pool is bridged through the stdlib adapter for the duration of
// the migration run.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger) error {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return migrate(ctx, pool, cfg, log, sub)
}

// MigrateFS is like Migrate but applies migrations from the provided
// filesystem, allowing applications to extend the schema with their own
// migration files.
func MigrateFS(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger, fsys fs.FS) error {
	return migrate(ctx, pool, cfg, log, fsys)
}

func migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger, fsys fs.FS) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if cerr := db.Close(); cerr != nil && log != nil {
			log.WarnContext(ctx, "failed to close migration db handle", "error", cerr)
		}
	}()

	store, err := database.NewStore(database.DialectPostgres, cfg.MigrationsTable)
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	provider, err := goose.NewProvider("", db, fsys, goose.WithStore(store))
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if log != nil {
		for _, r := range results {
			log.InfoContext(ctx, "applied migration",
				slog.String("source", r.Source.Path),
				slog.Duration("duration", r.Duration))
		}
	}

	return nil
}
