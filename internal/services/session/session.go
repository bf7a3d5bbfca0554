package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
)

// Session is one user's loaded progress for the duration of a turn.
// Every mutation is written back to the store before it returns.
type Session struct {
	service  *Service
	progress *model.Progress
}

func (s *Session) current() (*model.GameState, error) {
	if s == nil || s.progress == nil {
		return nil, model.ErrNotLoaded
	}
	game := s.progress.CurrentGame()
	if game == nil {
		return nil, model.ErrNotLoaded
	}
	return game, nil
}

// UserID returns the user the session belongs to
func (s *Session) UserID() (model.UserID, error) {
	if s == nil || s.progress == nil {
		return "", model.ErrNotLoaded
	}
	return s.progress.UserID, nil
}

// GameID returns the active game's id
func (s *Session) GameID() (model.GameID, error) {
	if _, err := s.current(); err != nil {
		return "", err
	}
	return s.progress.CurrentGameID, nil
}

// Seed returns the active game's shuffle seed
func (s *Session) Seed() (uint32, error) {
	game, err := s.current()
	if err != nil {
		return 0, err
	}
	return game.Seed, nil
}

// Index returns the active game's position in the shuffled deck
func (s *Session) Index() (int, error) {
	game, err := s.current()
	if err != nil {
		return 0, err
	}
	return game.Index, nil
}

// Name returns the active game's display name
func (s *Session) Name() (string, error) {
	game, err := s.current()
	if err != nil {
		return "", err
	}
	return game.Name, nil
}

// ResetIndex moves back to the first card
func (s *Session) ResetIndex(ctx context.Context) error {
	return s.update(ctx, "index reset", func(g *model.GameState) {
		g.Index = 0
	})
}

// ResetSeed picks a new shuffle seed for the active game
func (s *Session) ResetSeed(ctx context.Context) error {
	if _, err := s.current(); err != nil {
		return err
	}
	seed := s.service.random.Uint32()
	return s.update(ctx, "seed reset", func(g *model.GameState) {
		g.Seed = seed
	})
}

// Restart moves back to the first card under a new shuffle seed. Both
// changes go to the store in one write, so a failure leaves the game as it was.
func (s *Session) Restart(ctx context.Context) error {
	if _, err := s.current(); err != nil {
		return err
	}
	seed := s.service.random.Uint32()
	return s.update(ctx, "game restarted", func(g *model.GameState) {
		g.Index = 0
		g.Seed = seed
	})
}

// NextIndex moves forward one card unless already at the last card.
// It returns the resulting index.
func (s *Session) NextIndex(ctx context.Context) (int, error) {
	game, err := s.current()
	if err != nil {
		return 0, err
	}
	if game.Index >= s.service.deckSize-1 {
		return game.Index, nil
	}
	if err := s.update(ctx, "index advanced", func(g *model.GameState) {
		g.Index++
	}); err != nil {
		return 0, err
	}
	return game.Index, nil
}

// PreviousIndex moves back one card unless already at the first card.
// It returns the resulting index.
func (s *Session) PreviousIndex(ctx context.Context) (int, error) {
	game, err := s.current()
	if err != nil {
		return 0, err
	}
	if game.Index <= 0 {
		return game.Index, nil
	}
	if err := s.update(ctx, "index retreated", func(g *model.GameState) {
		g.Index--
	}); err != nil {
		return 0, err
	}
	return game.Index, nil
}

// update applies fn to the active game and persists the record. The
// in-memory change is undone if the write fails.
func (s *Session) update(ctx context.Context, msg string, fn func(g *model.GameState)) error {
	game, err := s.current()
	if err != nil {
		return err
	}

	before := *game
	fn(game)
	game.Updated = s.service.clock.Now()

	if err := s.service.storage.SaveProgress(ctx, s.progress); err != nil {
		*game = before
		s.service.logger.Error("failed to save progress",
			slog.String("user_id", string(s.progress.UserID)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	s.service.logger.Debug(msg,
		slog.String("user_id", string(s.progress.UserID)),
		slog.String("game_id", string(s.progress.CurrentGameID)),
		slog.Int("index", game.Index),
	)
	return nil
}
