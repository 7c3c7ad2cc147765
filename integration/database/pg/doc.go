// Package pg provides PostgreSQL connection management plus the Postgres
// implementations of the credential and session stores.
//
// Connect wraps the pgx connection pool with retry logic so services riding
// out a database restart do not crash-loop on startup. Migrate applies the
// embedded users/sessions schema migrations using goose, bridging the pgx
// pool through the database/sql adapter goose requires; applications with
// additional tables can layer their own migrations via MigrateFS.
//
// Configuration is handled through the Config struct with environment
// variable mapping:
//
//	cfg := pg.Config{}
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//		log.Fatal(err)
//	}
//
//	users := pg.NewUserStore(pool)
//	sessions := pg.NewSessionStore[MyData](pool)
//
// The error classification helpers (IsNotFoundError, IsDuplicateKeyError,
// IsForeignKeyViolationError) translate raw SQLSTATE codes into the checks
// callers actually write, e.g. mapping a unique-index violation on signup to
// the "email already exists" validation error.
//
// Healthcheck returns a ping function suitable for readiness and liveness
// probes.
package pg
