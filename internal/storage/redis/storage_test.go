package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newProgress(userID model.UserID) *model.Progress {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Progress{
		UserID:        userID,
		CurrentGameID: "game-1",
		Games: map[model.GameID]*model.GameState{
			"game-1": {
				Name:    model.DefaultGameName,
				Seed:    3141592653,
				Index:   12,
				Created: created,
				Updated: created.Add(time.Minute),
			},
			"game-2": {Name: "Office", Seed: 0, Index: 0, Created: created, Updated: created},
		},
	}
}

func (s *StorageSuite) TestSaveAndGetProgress() {
	p := newProgress("amzn1.ask.account.ABC")

	err := s.storage.SaveProgress(s.ctx, p)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetProgress(s.ctx, "amzn1.ask.account.ABC")
	s.Require().NoError(err)
	s.Equal(p, retrieved)
}

func (s *StorageSuite) TestGetProgressNotFound() {
	_, err := s.storage.GetProgress(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrProgressNotFound)
}

func (s *StorageSuite) TestProgressKeyFormat() {
	s.Require().NoError(s.storage.SaveProgress(s.ctx, newProgress("user-1")))

	s.True(s.mini.Exists("eopgame:progress:user-1"))
}

func (s *StorageSuite) TestProgressHasNoTTLByDefault() {
	s.Require().NoError(s.storage.SaveProgress(s.ctx, newProgress("user-1")))

	s.Equal(time.Duration(0), s.mini.TTL(s.storage.progressKey("user-1")))
}

func (s *StorageSuite) TestProgressTTLApplied() {
	cfg := DefaultConfig()
	cfg.ProgressTTL = time.Hour
	s.storage = NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)

	s.Require().NoError(s.storage.SaveProgress(s.ctx, newProgress("user-1")))

	s.Equal(time.Hour, s.mini.TTL(s.storage.progressKey("user-1")))
}

func (s *StorageSuite) TestGetProgressInvalidJSON() {
	s.Require().NoError(s.mini.Set(s.storage.progressKey("user-1"), "not json"))

	_, err := s.storage.GetProgress(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrStoreCorrupt)
}

func (s *StorageSuite) TestGetProgressMissingCurrentGame() {
	s.Require().NoError(s.mini.Set(s.storage.progressKey("user-1"), `{"user_id":"user-1","games":{}}`))

	_, err := s.storage.GetProgress(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrStoreCorrupt)
}

func (s *StorageSuite) TestGetProgressMissingSeed() {
	raw := `{"user_id":"user-1","current_game_id":"g","games":{"g":{"name":"Quick Start","index":0}}}`
	s.Require().NoError(s.mini.Set(s.storage.progressKey("user-1"), raw))

	_, err := s.storage.GetProgress(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrStoreCorrupt)
}

func (s *StorageSuite) TestGetProgressMissingGames() {
	s.Require().NoError(s.mini.Set(s.storage.progressKey("user-1"), `{"user_id":"user-1","current_game_id":"g"}`))

	_, err := s.storage.GetProgress(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrStoreCorrupt)
}

func (s *StorageSuite) TestGetProgressAcceptsZeroSeedAndIndex() {
	raw := `{"user_id":"user-1","current_game_id":"g","games":{"g":{"name":"Quick Start","seed":0,"index":0}}}`
	s.Require().NoError(s.mini.Set(s.storage.progressKey("user-1"), raw))

	p, err := s.storage.GetProgress(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(uint32(0), p.CurrentGame().Seed)
	s.Equal(0, p.CurrentGame().Index)
}

func (s *StorageSuite) TestGetProgressServerDown() {
	s.mini.Close()

	_, err := s.storage.GetProgress(s.ctx, "user-1")
	s.Require().Error(err)
	s.NotErrorIs(err, model.ErrProgressNotFound)
	s.NotErrorIs(err, model.ErrStoreCorrupt)
}

func (s *StorageSuite) TestSaveProgressServerDown() {
	s.mini.Close()

	err := s.storage.SaveProgress(s.ctx, newProgress("user-1"))
	s.Error(err)
}

func (s *StorageSuite) TestKeyPrefix() {
	cfg := DefaultConfig()
	cfg.KeyPrefix = "staging"
	s.storage = NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)

	s.Require().NoError(s.storage.SaveProgress(s.ctx, newProgress("user-1")))

	s.True(s.mini.Exists("staging:progress:user-1"))
	s.False(s.mini.Exists("eopgame:progress:user-1"))
}

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))

	s.mini.Close()
	s.Error(s.storage.Ping(s.ctx))
}

func (s *StorageSuite) TestNewConnects() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()

	store, err := New(cfg)
	s.Require().NoError(err)
	defer func() { _ = store.Close() }()

	s.NoError(store.SaveProgress(s.ctx, newProgress("user-1")))
	s.True(s.mini.Exists("eopgame:progress:user-1"))
}

func (s *StorageSuite) TestNewInvalidURL() {
	cfg := DefaultConfig()
	cfg.URL = "not a url"

	_, err := New(cfg)
	s.Error(err)
}
