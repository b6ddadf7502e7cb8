package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with redis storage
		path := writeConfig(t, `
log-level: debug
storage: redis
session-ttl: 30m
redis:
  host: cache
  port: "6380"
  db: 2
player-names: [Alice, Bob]
custom-category:
  min-symbols: 5
  max-symbols: 6
`)

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: every value is taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, 30*time.Minute, conf.SessionTTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
		assert.Equal(t, []string{"Alice", "Bob"}, conf.PlayerNames)
		assert.Equal(t, 5, conf.CustomCategory.MinSymbols)
		assert.Equal(t, 6, conf.CustomCategory.MaxSymbols)
	})

	t.Run("Applies defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "log-level: info\n")

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: defaults are filled in
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, 2*time.Hour, conf.SessionTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, []string{"Player 1", "Player 2"}, conf.PlayerNames)
		assert.Equal(t, 4, conf.CustomCategory.MinSymbols)
		assert.Equal(t, 8, conf.CustomCategory.MaxSymbols)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: custom category limits in both the file and the environment
		path := writeConfig(t, `
custom-category:
  min-symbols: 5
  max-symbols: 6
`)
		t.Setenv("CUSTOM_MIN_SYMBOLS", "3")
		t.Setenv("CUSTOM_MAX_SYMBOLS", "10")

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the environment wins
		assert.Equal(t, 3, conf.CustomCategory.MinSymbols)
		assert.Equal(t, 10, conf.CustomCategory.MaxSymbols)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
