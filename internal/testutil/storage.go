package testutil

import (
	"context"
	"errors"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
	"github.com/zeroXten/alexa-threat-model-game/internal/storage"
)

// ErrStoreDown is returned by FailingStorage when a call is set to fail
var ErrStoreDown = errors.New("connection refused")

// FailingStorage wraps a Storage and fails chosen calls, simulating an
// unreachable backing store.
type FailingStorage struct {
	storage.Storage

	FailGet  bool
	FailSave bool
	FailPing bool

	Saves int
}

// NewFailingStorage wraps inner; no calls fail until a flag is set
func NewFailingStorage(inner storage.Storage) *FailingStorage {
	return &FailingStorage{Storage: inner}
}

func (f *FailingStorage) GetProgress(ctx context.Context, userID model.UserID) (*model.Progress, error) {
	if f.FailGet {
		return nil, ErrStoreDown
	}
	return f.Storage.GetProgress(ctx, userID)
}

func (f *FailingStorage) SaveProgress(ctx context.Context, progress *model.Progress) error {
	if f.FailSave {
		return ErrStoreDown
	}
	f.Saves++
	return f.Storage.SaveProgress(ctx, progress)
}

func (f *FailingStorage) Ping(ctx context.Context) error {
	if f.FailPing {
		return ErrStoreDown
	}
	return f.Storage.Ping(ctx)
}
