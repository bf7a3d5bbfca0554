package deck

import (
	"context"
	"fmt"

	"github.com/zeroXten/alexa-threat-model-game/internal/catalog"
	"github.com/zeroXten/alexa-threat-model-game/internal/model"
	"github.com/zeroXten/alexa-threat-model-game/internal/services/session"
	"github.com/zeroXten/alexa-threat-model-game/internal/shuffle"
)

// Position is a card together with where it sits in the shuffled deck.
// Two positions are the same place in the deck when their indexes match,
// whatever the cards say.
type Position struct {
	Index int
	Card  model.Card
}

// Deck is the shuffled order of the catalog for one session. It is rebuilt
// from the seed on every request rather than stored.
type Deck struct {
	catalog *catalog.Catalog
	session *session.Session
	order   []model.Card
}

// Order returns the catalog shuffled with seed
func Order(cat *catalog.Catalog, seed uint32) []model.Card {
	return shuffle.Apply(seed, cat.Cards())
}

// New creates a deck for the session and restores its shuffle
func New(cat *catalog.Catalog, sess *session.Session) (*Deck, error) {
	d := &Deck{
		catalog: cat,
		session: sess,
	}
	if err := d.Restore(); err != nil {
		return nil, err
	}
	return d, nil
}

// Shuffle reorders the deck using an explicit seed
func (d *Deck) Shuffle(seed uint32) {
	d.order = Order(d.catalog, seed)
}

// Restore reorders the deck using the session's seed
func (d *Deck) Restore() error {
	seed, err := d.session.Seed()
	if err != nil {
		return err
	}
	d.Shuffle(seed)
	return nil
}

// Size returns the number of cards in the deck
func (d *Deck) Size() int {
	return len(d.order)
}

// CardAt returns the card at index i of the shuffled order
func (d *Deck) CardAt(i int) (model.Card, error) {
	if i < 0 || i >= len(d.order) {
		return model.Card{}, fmt.Errorf("%w: %d not in [0, %d)", model.ErrIndexOutOfRange, i, len(d.order))
	}
	return d.order[i], nil
}

// Current returns the card at the session's index
func (d *Deck) Current() (Position, error) {
	index, err := d.session.Index()
	if err != nil {
		return Position{}, err
	}
	return d.at(index)
}

// Advance moves to the next card. At the last card the position is
// returned unchanged.
func (d *Deck) Advance(ctx context.Context) (Position, error) {
	index, err := d.session.NextIndex(ctx)
	if err != nil {
		return Position{}, err
	}
	return d.at(index)
}

// Retreat moves to the previous card. At the first card the position is
// returned unchanged.
func (d *Deck) Retreat(ctx context.Context) (Position, error) {
	index, err := d.session.PreviousIndex(ctx)
	if err != nil {
		return Position{}, err
	}
	return d.at(index)
}

func (d *Deck) at(index int) (Position, error) {
	card, err := d.CardAt(index)
	if err != nil {
		return Position{}, err
	}
	return Position{Index: index, Card: card}, nil
}
