package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
)

// ErrInvalidCatalog is returned when the catalog document is inconsistent
var ErrInvalidCatalog = errors.New("invalid card catalog")

// document mirrors the cards.yaml layout
type document struct {
	SuitOrder []string                     `yaml:"suit_order"`
	RankOrder []string                     `yaml:"rank_order"`
	Ranks     map[string]string            `yaml:"ranks"`
	Suits     map[string]map[string]string `yaml:"suits"`
}

// Catalog is the fixed, unshuffled ordered set of cards.
// It is immutable once built and safe to share between requests.
type Catalog struct {
	cards []model.Card
}

// New creates a catalog from cards already in canonical order
func New(cards []model.Card) *Catalog {
	c := make([]model.Card, len(cards))
	copy(c, cards)
	return &Catalog{cards: c}
}

// Load reads and parses a catalog document from a file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds the canonical card order from a catalog document.
// Cards are ordered by suit_order, then rank_order within each suit,
// skipping ranks a suit does not define.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if len(doc.SuitOrder) == 0 || len(doc.RankOrder) == 0 {
		return nil, fmt.Errorf("%w: suit_order and rank_order are required", ErrInvalidCatalog)
	}

	var cards []model.Card
	for _, suit := range doc.SuitOrder {
		ranks, ok := doc.Suits[suit]
		if !ok {
			return nil, fmt.Errorf("%w: suit %q has no cards", ErrInvalidCatalog, suit)
		}
		for _, rank := range doc.RankOrder {
			description, ok := ranks[rank]
			if !ok {
				continue
			}
			word, ok := doc.Ranks[rank]
			if !ok {
				return nil, fmt.Errorf("%w: rank %q has no display word", ErrInvalidCatalog, rank)
			}
			cards = append(cards, model.Card{
				Rank:        rank,
				RankWord:    word,
				Description: description,
				Suit:        suit,
			})
		}
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no cards", ErrInvalidCatalog)
	}

	return &Catalog{cards: cards}, nil
}

// Size returns the number of cards
func (c *Catalog) Size() int {
	return len(c.cards)
}

// At returns the card at position i of the canonical order
func (c *Catalog) At(i int) (model.Card, error) {
	if i < 0 || i >= len(c.cards) {
		return model.Card{}, fmt.Errorf("%w: %d not in [0, %d)", model.ErrIndexOutOfRange, i, len(c.cards))
	}
	return c.cards[i], nil
}

// Cards returns a copy of the cards in canonical order
func (c *Catalog) Cards() []model.Card {
	out := make([]model.Card, len(c.cards))
	copy(out, c.cards)
	return out
}
