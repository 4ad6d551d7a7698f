// Package sampler provides unbiased shuffling and sampling over slices.
// Callers inject the random source so sessions draw fresh entropy while
// tests stay deterministic.
package sampler

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// New returns a rand.Rand seeded from the OS entropy source. Each session
// gets its own so repeated plays are never reproducible.
func New() *rand.Rand {
	var seed [16]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// Entropy read failing is effectively impossible; a zero seed
		// still yields a valid (if fixed) sequence.
		return rand.New(rand.NewPCG(0, 0))
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// Shuffle returns a uniformly shuffled copy of s using the Durstenfeld
// variant of Fisher-Yates. The input is never modified.
func Shuffle[T any](r *rand.Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns a uniformly random subset of n elements from pool, in
// shuffled order. When n is zero, negative, or at least len(pool), the whole
// pool is returned shuffled.
func Sample[T any](r *rand.Rand, pool []T, n int) []T {
	shuffled := Shuffle(r, pool)
	if n <= 0 || n >= len(shuffled) {
		return shuffled
	}
	return shuffled[:n]
}
