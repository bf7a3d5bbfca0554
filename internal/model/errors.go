package model

import "errors"

// Common errors used across the application
var (
	// Progress store errors
	ErrProgressNotFound = errors.New("progress not found")
	ErrStoreUnavailable = errors.New("progress store unavailable")
	ErrStoreCorrupt     = errors.New("progress record is corrupt")

	// Session errors
	ErrNotLoaded = errors.New("session not loaded")

	// Deck errors
	ErrIndexOutOfRange = errors.New("card index out of range")
	ErrEmptyCatalog    = errors.New("catalog has no cards")
)
