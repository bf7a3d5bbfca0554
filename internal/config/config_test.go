package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"EOPGAME_HOST", "EOPGAME_PORT", "EOPGAME_STORAGE_TYPE",
		"EOPGAME_REDIS_URL", "EOPGAME_CATALOG_PATH", "EOPGAME_LOG_LEVEL",
		"EOPGAME_REDIS_POOL_SIZE", "EOPGAME_REDIS_KEY_PREFIX", "EOPGAME_PROGRESS_TTL",
	} {
		// Setenv restores the original value after the test
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, "data/cards.yaml", cfg.CatalogPath)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())

	rc := cfg.RedisConfig()
	assert.Equal(t, 10, rc.PoolSize)
	assert.Equal(t, "eopgame", rc.KeyPrefix)
	assert.Equal(t, time.Duration(0), rc.ProgressTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EOPGAME_PORT", "9090")
	t.Setenv("EOPGAME_STORAGE_TYPE", "redis")
	t.Setenv("EOPGAME_REDIS_URL", "redis://cache:6379/1")
	t.Setenv("EOPGAME_LOG_LEVEL", "DEBUG")
	t.Setenv("EOPGAME_PROGRESS_TTL", "720h")
	t.Setenv("EOPGAME_REDIS_KEY_PREFIX", "eop-staging")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	rc := cfg.RedisConfig()
	assert.Equal(t, "redis://cache:6379/1", rc.URL)
	assert.Equal(t, 720*time.Hour, rc.ProgressTTL)
	assert.Equal(t, "eop-staging", rc.KeyPrefix)
	assert.Equal(t, 2, rc.MinIdleConns)
}

func TestLoadRejectsNegativeTTL(t *testing.T) {
	t.Setenv("EOPGAME_PROGRESS_TTL", "-1h")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("EOPGAME_PORT", "eighty")

	_, err := Load()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "nonsense"}.SlogLevel())
}
