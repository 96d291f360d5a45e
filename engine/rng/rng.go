/*
Package rng provides the deterministic random stream that drives every
randomized step of the puzzle engine.

A textual seed is hashed to a 32-bit state (FNV-1a) and expanded with the
mulberry32 mixing function. All randomness is local to a Source value: two
Sources built from the same state produce identical sequences, and there is
no package-level mutable state. Independent sub-streams are derived from one
seed by appending a literal discriminator suffix before hashing, so sibling
consumers (maze carving, wall augmentation, target selection) never alias.
*/
package rng

// FNV-1a 32-bit constants. Exact values are fixed so that a seed string
// always maps to the same state; cross-system bit-compatibility is not a
// goal, only reproducibility within this engine.
const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

// Hash maps an arbitrary seed string to a 32-bit PRNG state using FNV-1a.
// Every string, including the empty string, is a valid seed.
func Hash(seed string) uint32 {
	h := fnvOffset
	for i := 0; i < len(seed); i++ {
		h ^= uint32(seed[i])
		h *= fnvPrime
	}
	return h
}

// Source is a deterministic pseudo-random number generator. It is a pure
// function of its initial state: each call advances the state and returns
// the next value of the sequence. Not safe for concurrent use; callers that
// need independent streams derive one Source per stream.
type Source struct {
	state uint32
}

// New returns a Source seeded with the given 32-bit state.
func New(state uint32) *Source {
	return &Source{state: state}
}

// ForSeed returns a Source seeded from the hash of a seed string.
func ForSeed(seed string) *Source {
	return New(Hash(seed))
}

// Float64 advances the generator and returns the next value in [0, 1).
// The step is the mulberry32 mixing function over the 32-bit state.
func (s *Source) Float64() float64 {
	s.state += 0x6D2B79F5
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// Intn returns a uniformly distributed integer in [0, n). It panics if
// n <= 0, which indicates a caller bug rather than a runtime condition.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	return int(s.Float64() * float64(n))
}

// Shuffle returns a new slice holding the elements of items permuted by a
// Fisher–Yates shuffle driven by the seed. The input slice is not mutated.
// For a fixed seed and a fixed input order the output is reproducible
// element for element.
func Shuffle[T any](items []T, seed string) []T {
	out := make([]T, len(items))
	copy(out, items)
	src := ForSeed(seed)
	for i := len(out) - 1; i >= 1; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
