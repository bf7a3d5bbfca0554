package shuffle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceMatchesReferenceOutput(t *testing.T) {
	// First outputs of random.Random(42).getrandbits(32)
	src := NewSource(42)
	assert.Equal(t, uint32(2746317213), src.Uint32())
	assert.Equal(t, uint32(478163327), src.Uint32())
	assert.Equal(t, uint32(107420369), src.Uint32())
}

func TestPermMatchesReferenceSequences(t *testing.T) {
	tests := []struct {
		name string
		seed uint32
		n    int
		want []int
	}{
		{"four cards seed 0", 0, 4, []int{2, 0, 1, 3}},
		{"four cards seed 1", 1, 4, []int{3, 0, 2, 1}},
		{"four cards seed 42", 42, 4, []int{2, 1, 3, 0}},
		{"four cards max seed", 4294967295, 4, []int{2, 3, 0, 1}},
		{"ten cards seed 42", 42, 10, []int{7, 3, 2, 8, 5, 6, 9, 4, 0, 1}},
		{"ten cards seed 1234567", 1234567, 10, []int{9, 8, 5, 0, 7, 2, 4, 1, 3, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Perm(tt.seed, tt.n))
		})
	}
}

func TestApplyMatchesReferenceSequence(t *testing.T) {
	items := []string{"A", "B", "C", "D"}

	got := Apply(42, items)

	assert.Equal(t, []string{"C", "B", "D", "A"}, got)
	assert.Equal(t, []string{"A", "B", "C", "D"}, items, "input must not be modified")
}

func TestPermIsDeterministic(t *testing.T) {
	for _, seed := range []uint32{0, 7, 99, 31337, 3141592653} {
		first := Perm(seed, 74)
		second := Perm(seed, 74)
		require.Equal(t, first, second, "seed %d", seed)
	}
}

func TestPermIsAPermutation(t *testing.T) {
	perm := Perm(2024, 74)

	seen := make(map[int]bool, len(perm))
	for _, p := range perm {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, 74)
		seen[p] = true
	}
	assert.Len(t, seen, 74)
}

func TestPermDiffersBetweenSeeds(t *testing.T) {
	assert.NotEqual(t, Perm(1, 74), Perm(2, 74))
}

func TestPermSmallInputs(t *testing.T) {
	assert.Empty(t, Perm(5, 0))
	assert.Equal(t, []int{0}, Perm(5, 1))
}

func TestBelowStaysInRange(t *testing.T) {
	src := NewSource(7)
	for n := 1; n < 100; n++ {
		v := src.Below(n)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, n)
	}
}
