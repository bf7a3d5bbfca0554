package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
	"github.com/zeroXten/alexa-threat-model-game/internal/storage"
)

// Storage keeps each user's progress as one JSON document under a
// user-scoped key. Saves replace the whole document.
type Storage struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New connects to Redis and checks the server answers before returning
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns

	s := NewWithClient(redis.NewClient(opts), cfg)

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().DialTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Ping(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// NewWithClient wraps an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		prefix: prefix,
		ttl:    cfg.ProgressTTL,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Ping checks the server is reachable
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// GetProgress decodes the user's record. A record that fails to decode or
// lacks required fields is reported as model.ErrStoreCorrupt.
func (s *Storage) GetProgress(ctx context.Context, userID model.UserID) (*model.Progress, error) {
	data, err := s.client.Get(ctx, s.progressKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProgressNotFound
		}
		return nil, err
	}

	var rec progressRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreCorrupt, err)
	}
	return rec.toModel()
}

// SaveProgress writes the whole record, refreshing its TTL when one is set
func (s *Storage) SaveProgress(ctx context.Context, progress *model.Progress) error {
	data, err := json.Marshal(recordFromModel(progress))
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.progressKey(progress.UserID), data, s.ttl).Err()
}
