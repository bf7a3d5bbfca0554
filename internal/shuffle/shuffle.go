// Package shuffle reorders sequences deterministically from a 32-bit seed.
//
// The permutation for a given seed and length matches CPython's
// random.Random(seed).shuffle, so decks stored by earlier deployments of the
// game are rebuilt in exactly the same order.
package shuffle

import "math/bits"

// Source is a seeded generator that produces the same values for the same seed
type Source struct {
	mt *mt19937
}

// NewSource creates a Source for the given seed
func NewSource(seed uint32) *Source {
	return &Source{mt: newMT19937(seed)}
}

// Uint32 returns the next 32 random bits
func (s *Source) Uint32() uint32 {
	return s.mt.Uint32()
}

// Below returns a value in [0, n) using rejection sampling over the
// smallest number of bits that can hold n. n must be in [1, 2^32).
func (s *Source) Below(n int) int {
	if n <= 1 {
		return 0
	}
	k := bits.Len(uint(n))
	for {
		r := int(s.mt.Uint32() >> (32 - k))
		if r < n {
			return r
		}
	}
}

// Shuffle performs a Fisher-Yates shuffle of n elements, walking from the
// last element down and calling swap for every step, including i == j.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Below(i + 1)
		swap(i, j)
	}
}

// Perm returns the permutation of [0, n) produced by shuffling the identity
// sequence with the given seed. Element k of the result is the original
// position of the item that lands at position k.
func Perm(seed uint32, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	NewSource(seed).Shuffle(n, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Apply returns a shuffled copy of items; items itself is left untouched
func Apply[T any](seed uint32, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	NewSource(seed).Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
