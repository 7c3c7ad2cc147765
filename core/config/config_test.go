package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/config"
)

type serverConfig struct {
	Host string `env:"TEST_CFG_HOST" envDefault:"localhost"`
	Port int    `env:"TEST_CFG_PORT" envDefault:"8080"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CFG_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.Reset()

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("reads environment variables", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_CFG_HOST", "example.com")
		t.Setenv("TEST_CFG_PORT", "9090")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "example.com", cfg.Host)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_CFG_HOST", "first.example.com")

		var first serverConfig
		require.NoError(t, config.Load(&first))

		// Environment changes after the first load are not observed.
		t.Setenv("TEST_CFG_HOST", "second.example.com")

		var second serverConfig
		require.NoError(t, config.Load(&second))

		assert.Equal(t, first, second)
		assert.Equal(t, "first.example.com", second.Host)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		config.Reset()

		var cfg requiredConfig
		require.Error(t, config.Load(&cfg))
	})

	t.Run("rejects non-pointer and nil targets", func(t *testing.T) {
		config.Reset()

		require.ErrorIs(t, config.Load(serverConfig{}), config.ErrInvalidConfigType)
		require.ErrorIs(t, config.Load(nil), config.ErrInvalidConfigType)

		var ptr *serverConfig
		require.ErrorIs(t, config.Load(ptr), config.ErrInvalidConfigType)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		config.Reset()

		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
