package memory

import (
	"context"
	"sync"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
	"github.com/zeroXten/alexa-threat-model-game/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu       sync.RWMutex
	progress map[model.UserID]*model.Progress
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		progress: make(map[model.UserID]*model.Progress),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Progress operations. Records are copied in and out.

func (s *Storage) GetProgress(ctx context.Context, userID model.UserID) (*model.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.progress[userID]
	if !ok {
		return nil, model.ErrProgressNotFound
	}
	return p.Clone(), nil
}

func (s *Storage) SaveProgress(ctx context.Context, progress *model.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[progress.UserID] = progress.Clone()
	return nil
}

// Ping always succeeds
func (s *Storage) Ping(context.Context) error {
	return nil
}

// Count returns the number of stored records
func (s *Storage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.progress)
}
