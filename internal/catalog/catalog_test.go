package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
)

const sampleDoc = `
suit_order: [tampering, spoofing]
rank_order: ["2", "3", "K", "A"]
ranks:
  "2": two
  "3": three
  K: king
  A: ace
suits:
  spoofing:
    A: spoof ace
    "2": spoof two
  tampering:
    K: tamper king
    "3": tamper three
  unused:
    "2": never listed
`

func TestParseOrdersBySuitThenRank(t *testing.T) {
	c, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	want := []model.Card{
		{Rank: "3", RankWord: "three", Description: "tamper three", Suit: "tampering"},
		{Rank: "K", RankWord: "king", Description: "tamper king", Suit: "tampering"},
		{Rank: "2", RankWord: "two", Description: "spoof two", Suit: "spoofing"},
		{Rank: "A", RankWord: "ace", Description: "spoof ace", Suit: "spoofing"},
	}
	assert.Equal(t, want, c.Cards())
	assert.Equal(t, 4, c.Size())
}

func TestParseIsStableAcrossRuns(t *testing.T) {
	first, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := Parse([]byte(sampleDoc))
		require.NoError(t, err)
		require.Equal(t, first.Cards(), again.Cards())
	}
}

func TestParseRejectsMissingSuit(t *testing.T) {
	doc := `
suit_order: [spoofing, tampering]
rank_order: ["2"]
ranks: {"2": two}
suits:
  spoofing: {"2": a}
`
	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestParseRejectsMissingRankWord(t *testing.T) {
	doc := `
suit_order: [spoofing]
rank_order: ["2", "3"]
ranks: {"2": two}
suits:
  spoofing: {"2": a, "3": b}
`
	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	_, err := Parse([]byte("{}"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("suit_order: [unclosed"))
	assert.Error(t, err)
}

func TestAtBounds(t *testing.T) {
	c, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	card, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, "tamper three", card.Description)

	_, err = c.At(-1)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
	_, err = c.At(4)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
}

func TestCardsReturnsCopy(t *testing.T) {
	c, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	cards := c.Cards()
	cards[0].Description = "changed"

	card, _ := c.At(0)
	assert.Equal(t, "tamper three", card.Description)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Size())
}

func TestLoadBundledCatalog(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "data", "cards.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 74, c.Size())

	first, _ := c.At(0)
	assert.Equal(t, model.Card{
		Rank:        "2",
		RankWord:    "two",
		Description: "An attacker could squat on the random port or socket that the server normally uses.",
		Suit:        "spoofing",
	}, first)

	last, _ := c.At(73)
	assert.Equal(t, "elevation of privilege", last.Suit)
	assert.Equal(t, "A", last.Rank)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
