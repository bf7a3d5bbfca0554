package factory

import (
	"time"

	"github.com/zeroXten/alexa-threat-model-game/internal/catalog"
	"github.com/zeroXten/alexa-threat-model-game/internal/dependencies/mocks"
	"github.com/zeroXten/alexa-threat-model-game/internal/model"
	"github.com/zeroXten/alexa-threat-model-game/internal/storage/memory"
	"github.com/zeroXten/alexa-threat-model-game/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and the small catalog from TestCatalog
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, TestCatalog(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}

// TestCatalog returns a four card catalog. With seed 42 it shuffles to
// C, B, D, A and with seed 1 to D, A, C, B.
func TestCatalog() *catalog.Catalog {
	return catalog.New([]model.Card{
		{Rank: "A", RankWord: "ace", Description: "Card A.", Suit: "spoofing"},
		{Rank: "B", RankWord: "bee", Description: "Card B.", Suit: "spoofing"},
		{Rank: "C", RankWord: "cee", Description: "Card C.", Suit: "tampering"},
		{Rank: "D", RankWord: "dee", Description: "Card D.", Suit: "tampering"},
	})
}
