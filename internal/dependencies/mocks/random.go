package mocks

import (
	"sync"

	"github.com/zeroXten/alexa-threat-model-game/internal/dependencies/random"
)

// MockRandom hands out queued seeds and game IDs in order. It is safe to
// queue from a test while an HTTP handler draws from it.
type MockRandom struct {
	mu    sync.Mutex
	seeds []uint32
	ids   []string
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Uint32 pops the next queued seed, or 0 if none remain
func (r *MockRandom) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.seeds) == 0 {
		return 0
	}
	seed := r.seeds[0]
	r.seeds = r.seeds[1:]
	return seed
}

// ID pops the next queued game ID, or "" if none remain
func (r *MockRandom) ID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ids) == 0 {
		return ""
	}
	id := r.ids[0]
	r.ids = r.ids[1:]
	return id
}

// QueueUint32 appends seeds
func (r *MockRandom) QueueUint32(values ...uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seeds = append(r.seeds, values...)
}

// QueueID appends game IDs
func (r *MockRandom) QueueID(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, values...)
}

// Pending reports how many seeds and IDs have not been drawn
func (r *MockRandom) Pending() (seeds, ids int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seeds), len(r.ids)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seeds = nil
	r.ids = nil
}
