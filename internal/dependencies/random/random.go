package random

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/google/uuid"
)

// Random provides random values that can be mocked for testing
type Random interface {
	// Uint32 returns a random 32-bit value, used for shuffle seeds
	Uint32() uint32

	// ID returns a new unique identifier
	ID() string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Uint32 returns a cryptographically random uint32
func (r *CryptoRandom) Uint32() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return binary.BigEndian.Uint32(buf[:])
}

// ID returns a random (version 4) UUID string
func (r *CryptoRandom) ID() string {
	return uuid.NewString()
}
