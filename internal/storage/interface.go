package storage

import (
	"context"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
)

// Storage defines the interface for progress persistence.
// Records are addressed by a single user-scoped key and writes are last-writer-wins.
type Storage interface {
	// GetProgress returns model.ErrProgressNotFound if the user has no record
	GetProgress(ctx context.Context, userID model.UserID) (*model.Progress, error)
	SaveProgress(ctx context.Context, progress *model.Progress) error

	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}
