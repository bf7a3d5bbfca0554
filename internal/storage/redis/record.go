package redis

import (
	"fmt"
	"time"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
)

// progressRecord is the stored JSON shape. Required fields are pointers so a
// record written by another client with fields missing is detected rather
// than read back as zero values.
type progressRecord struct {
	UserID        *string                `json:"user_id"`
	CurrentGameID *string                `json:"current_game_id"`
	Games         map[string]*gameRecord `json:"games"`
}

type gameRecord struct {
	Name    *string   `json:"name"`
	Seed    *uint32   `json:"seed"`
	Index   *int      `json:"index"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

func recordFromModel(p *model.Progress) progressRecord {
	userID := string(p.UserID)
	currentGameID := string(p.CurrentGameID)
	rec := progressRecord{
		UserID:        &userID,
		CurrentGameID: &currentGameID,
		Games:         make(map[string]*gameRecord, len(p.Games)),
	}
	for id, g := range p.Games {
		if g == nil {
			continue
		}
		name, seed, index := g.Name, g.Seed, g.Index
		rec.Games[string(id)] = &gameRecord{
			Name:    &name,
			Seed:    &seed,
			Index:   &index,
			Created: g.Created,
			Updated: g.Updated,
		}
	}
	return rec
}

func (r progressRecord) toModel() (*model.Progress, error) {
	if r.UserID == nil {
		return nil, fmt.Errorf("%w: missing user_id", model.ErrStoreCorrupt)
	}
	if r.CurrentGameID == nil {
		return nil, fmt.Errorf("%w: missing current_game_id", model.ErrStoreCorrupt)
	}
	if r.Games == nil {
		return nil, fmt.Errorf("%w: missing games", model.ErrStoreCorrupt)
	}

	p := &model.Progress{
		UserID:        model.UserID(*r.UserID),
		CurrentGameID: model.GameID(*r.CurrentGameID),
		Games:         make(map[model.GameID]*model.GameState, len(r.Games)),
	}
	for id, g := range r.Games {
		if g == nil || g.Name == nil || g.Seed == nil || g.Index == nil {
			return nil, fmt.Errorf("%w: game %q is missing name, seed or index", model.ErrStoreCorrupt, id)
		}
		p.Games[model.GameID(id)] = &model.GameState{
			Name:    *g.Name,
			Seed:    *g.Seed,
			Index:   *g.Index,
			Created: g.Created,
			Updated: g.Updated,
		}
	}
	return p, nil
}
