package redis

import "time"

// Config holds Redis connection configuration with environment variable
// mapping.
type Config struct {
	// ConnectionString is a redis:// URL including credentials and database
	// number, e.g. redis://:secret@localhost:6379/0.
	ConnectionString string        `env:"REDIS_URL,required"`
	RetryAttempts    int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval    time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	// KeyPrefix namespaces all keys written by this module.
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"authkit"`
}
