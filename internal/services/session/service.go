package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zeroXten/alexa-threat-model-game/internal/dependencies/clock"
	"github.com/zeroXten/alexa-threat-model-game/internal/dependencies/random"
	"github.com/zeroXten/alexa-threat-model-game/internal/model"
	"github.com/zeroXten/alexa-threat-model-game/internal/storage"
)

// Service loads per-request game sessions. It holds no per-user state and is
// safe to share between requests.
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	random   random.Random
	deckSize int
	logger   *slog.Logger
}

// New creates a new session Service for a deck of deckSize cards
func New(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	deckSize int,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:  storage,
		clock:    clock,
		random:   random,
		deckSize: deckSize,
		logger:   logger,
	}
}

// Load fetches the user's progress, creating and persisting a new game on
// first contact.
func (s *Service) Load(ctx context.Context, userID model.UserID) (*Session, error) {
	progress, err := s.storage.GetProgress(ctx, userID)
	switch {
	case err == nil:
		if err := progress.Validate(s.deckSize); err != nil {
			s.logger.Error("corrupt progress record",
				slog.String("user_id", string(userID)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		s.logger.Debug("loaded progress",
			slog.String("user_id", string(userID)),
			slog.String("game_id", string(progress.CurrentGameID)),
		)
	case errors.Is(err, model.ErrProgressNotFound):
		progress, err = s.create(ctx, userID)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, model.ErrStoreCorrupt):
		s.logger.Error("corrupt progress record",
			slog.String("user_id", string(userID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	default:
		s.logger.Error("failed to load progress",
			slog.String("user_id", string(userID)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	return &Session{
		service:  s,
		progress: progress,
	}, nil
}

func (s *Service) create(ctx context.Context, userID model.UserID) (*model.Progress, error) {
	now := s.clock.Now()
	gameID := model.GameID(s.random.ID())

	progress := &model.Progress{
		UserID:        userID,
		CurrentGameID: gameID,
		Games: map[model.GameID]*model.GameState{
			gameID: {
				Name:    model.DefaultGameName,
				Seed:    s.random.Uint32(),
				Index:   0,
				Created: now,
				Updated: now,
			},
		},
	}

	if err := s.storage.SaveProgress(ctx, progress); err != nil {
		s.logger.Error("failed to save new progress",
			slog.String("user_id", string(userID)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	s.logger.Info("progress created",
		slog.String("user_id", string(userID)),
		slog.String("game_id", string(gameID)),
	)

	return progress, nil
}

// DeckSize returns the number of cards sessions are bounded by
func (s *Service) DeckSize() int {
	return s.deckSize
}
