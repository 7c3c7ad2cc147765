package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	loadEnvOnce sync.Once
)

// Load parses environment variables into cfg, which must be a non-nil
// pointer to a struct with `env` tags. Each configuration type is loaded
// once per process and cached; subsequent calls for the same type return the
// cached value. A .env file in the working directory is applied on first use
// and silently skipped when absent.
func Load(cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidConfigType, cfg)
	}

	loadEnvOnce.Do(func() {
		// Missing .env is the normal case in production.
		_ = godotenv.Load()
	})

	typ := rv.Elem().Type()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[typ]; ok {
		rv.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", typ, err)
	}

	cache[typ] = rv.Elem().Interface()
	return nil
}

// MustLoad is like Load but panics on failure. Useful during application
// startup where a missing required variable should abort the process.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset clears the configuration cache. Intended for tests that mutate the
// environment between loads.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = make(map[reflect.Type]any)
}
