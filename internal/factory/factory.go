package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/zeroXten/alexa-threat-model-game/internal/catalog"
	"github.com/zeroXten/alexa-threat-model-game/internal/dependencies/clock"
	"github.com/zeroXten/alexa-threat-model-game/internal/dependencies/random"
	"github.com/zeroXten/alexa-threat-model-game/internal/services/session"
	"github.com/zeroXten/alexa-threat-model-game/internal/skill"
	"github.com/zeroXten/alexa-threat-model-game/internal/storage"
	"github.com/zeroXten/alexa-threat-model-game/internal/storage/memory"
	redisstorage "github.com/zeroXten/alexa-threat-model-game/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Catalog is shared read-only by every request
	Catalog *catalog.Catalog

	// Services
	SessionService *session.Service
	Skill          *skill.Skill

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// CatalogPath is the path to the card catalog document.
	// Ignored if Catalog is set.
	CatalogPath string
	// Catalog is an already loaded catalog (optional)
	Catalog *catalog.Catalog
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// The catalog is read once here and never reloaded
	cat := cfg.Catalog
	if cat == nil {
		if cfg.CatalogPath == "" {
			return nil, errors.New("CatalogPath or Catalog required")
		}
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	// Create storage based on type
	var store storage.Storage
	var closers []io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	logger.Info("application configured",
		slog.String("storage", storageType),
		slog.Int("cards", cat.Size()),
	)

	app := newWithDependencies(store, clock.New(), random.New(), cat, logger)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cat *catalog.Catalog, logger *slog.Logger) *App {
	sessionService := session.New(store, clk, rnd, cat.Size(), logger)
	skillService := skill.New(sessionService, cat, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Catalog:        cat,
		SessionService: sessionService,
		Skill:          skillService,
	}
}

// Close releases connections held by the storage backend
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
