package model

import (
	"fmt"
	"time"
)

// UserID is the voice platform's stable identifier for a user
type UserID string

// GameID identifies one of a user's named games
type GameID string

// DefaultGameName is the name given to a game created on first contact
const DefaultGameName = "Quick Start"

// GameState is the saved position within one shuffled deck
type GameState struct {
	Name    string    `json:"name"`
	Seed    uint32    `json:"seed"`
	Index   int       `json:"index"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Progress is the durable per-user record
type Progress struct {
	UserID        UserID                `json:"user_id"`
	CurrentGameID GameID                `json:"current_game_id"`
	Games         map[GameID]*GameState `json:"games"`
}

// CurrentGame returns the active game, or nil if the current game id is dangling
func (p *Progress) CurrentGame() *GameState {
	if p.Games == nil {
		return nil
	}
	return p.Games[p.CurrentGameID]
}

// Validate checks the invariants a loaded record must satisfy for a deck of deckSize cards
func (p *Progress) Validate(deckSize int) error {
	if p.UserID == "" {
		return fmt.Errorf("%w: missing user_id", ErrStoreCorrupt)
	}
	if p.CurrentGameID == "" {
		return fmt.Errorf("%w: missing current_game_id", ErrStoreCorrupt)
	}
	game := p.CurrentGame()
	if game == nil {
		return fmt.Errorf("%w: current game %q not in games", ErrStoreCorrupt, p.CurrentGameID)
	}
	if game.Index < 0 || game.Index >= deckSize {
		return fmt.Errorf("%w: index %d outside deck of %d cards", ErrStoreCorrupt, game.Index, deckSize)
	}
	return nil
}

// Clone returns a deep copy of the record
func (p *Progress) Clone() *Progress {
	clone := &Progress{
		UserID:        p.UserID,
		CurrentGameID: p.CurrentGameID,
		Games:         make(map[GameID]*GameState, len(p.Games)),
	}
	for id, g := range p.Games {
		if g == nil {
			clone.Games[id] = nil
			continue
		}
		gc := *g
		clone.Games[id] = &gc
	}
	return clone
}
