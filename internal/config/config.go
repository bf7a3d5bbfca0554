package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	redisstorage "github.com/zeroXten/alexa-threat-model-game/internal/storage/redis"
)

// Config is the server's runtime configuration, read from the environment
type Config struct {
	Host        string `env:"EOPGAME_HOST"`
	Port        int    `env:"EOPGAME_PORT"         envDefault:"8080"`
	StorageType string `env:"EOPGAME_STORAGE_TYPE" envDefault:"memory"`
	CatalogPath string `env:"EOPGAME_CATALOG_PATH" envDefault:"data/cards.yaml"`
	LogLevel    string `env:"EOPGAME_LOG_LEVEL"    envDefault:"info"`

	Redis Redis
}

// Redis configures the Redis progress store
type Redis struct {
	URL         string        `env:"EOPGAME_REDIS_URL"`
	PoolSize    int           `env:"EOPGAME_REDIS_POOL_SIZE"   envDefault:"10"`
	KeyPrefix   string        `env:"EOPGAME_REDIS_KEY_PREFIX"  envDefault:"eopgame"`
	ProgressTTL time.Duration `env:"EOPGAME_PROGRESS_TTL"      envDefault:"0s"`
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Redis.ProgressTTL < 0 {
		return Config{}, fmt.Errorf("EOPGAME_PROGRESS_TTL must not be negative")
	}
	return cfg, nil
}

// RedisConfig returns the store settings, layered over the Redis defaults
func (c Config) RedisConfig() redisstorage.Config {
	rc := redisstorage.DefaultConfig()
	rc.URL = c.Redis.URL
	rc.PoolSize = c.Redis.PoolSize
	rc.KeyPrefix = c.Redis.KeyPrefix
	rc.ProgressTTL = c.Redis.ProgressTTL
	return rc
}

// SlogLevel converts LogLevel to a slog.Level, defaulting to info
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
