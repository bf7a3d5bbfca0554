package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// DialTimeout bounds the initial connection check in New
	DialTimeout time.Duration

	// KeyPrefix namespaces progress keys, so one Redis can serve several deployments
	KeyPrefix string

	// ProgressTTL expires idle progress records; zero keeps them forever
	ProgressTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		KeyPrefix:    "eopgame",
		ProgressTTL:  0,
	}
}
