// Package redis provides Redis connection management and a TTL-native
// session store implementation.
//
// Connect wraps the go-redis client with URL parsing, startup retry and a
// connection-verifying ping. The SessionStore leans on Redis key TTLs for
// expiry: every save re-applies a TTL derived from the session's ExpiresAt,
// so expired sessions disappear without a cleanup job and DeleteExpired is a
// no-op.
//
// Usage:
//
//	cfg := redis.Config{}
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	sessions := redis.NewSessionStore[MyData](client, cfg.KeyPrefix)
//	mgr := session.NewManagerFromConfig(sessionCfg, sessions)
//
// Choose this store when session records are disposable cache-like state;
// choose the Postgres store when sessions must survive a cache flush or be
// queryable alongside the user table.
package redis
