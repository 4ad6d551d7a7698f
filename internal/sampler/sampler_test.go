package sampler

import (
	"math/rand/v2"
	"testing"
)

func fixedRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestShuffleIsPermutation(t *testing.T) {
	r := fixedRand()
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	out := Shuffle(r, in)

	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	seen := make(map[int]int)
	for _, v := range out {
		seen[v]++
	}
	for _, v := range in {
		if seen[v] != 1 {
			t.Errorf("element %d appears %d times, want 1", v, seen[v])
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	r := fixedRand()
	in := []string{"a", "b", "c", "d"}
	orig := []string{"a", "b", "c", "d"}

	Shuffle(r, in)

	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("input mutated at %d: got %q, want %q", i, in[i], orig[i])
		}
	}
}

func TestSampleSizes(t *testing.T) {
	r := fixedRand()
	pool := []int{1, 2, 3, 4, 5}

	tests := []struct {
		n    int
		want int
	}{
		{3, 3},
		{5, 5},
		{10, 5}, // n beyond pool returns everything
		{0, 5},  // n <= 0 returns everything
		{-1, 5},
	}

	for _, tt := range tests {
		got := Sample(r, pool, tt.n)
		if len(got) != tt.want {
			t.Errorf("Sample(n=%d) returned %d elements, want %d", tt.n, len(got), tt.want)
		}
	}
}

func TestSampleNoDuplicates(t *testing.T) {
	r := fixedRand()
	pool := make([]int, 100)
	for i := range pool {
		pool[i] = i
	}

	for trial := 0; trial < 50; trial++ {
		got := Sample(r, pool, 10)
		seen := make(map[int]bool)
		for _, v := range got {
			if seen[v] {
				t.Fatalf("trial %d: duplicate element %d in sample", trial, v)
			}
			seen[v] = true
		}
	}
}

// TestSampleFairness checks the statistical property that each element lands
// in a k-of-N sample with frequency close to k/N.
func TestSampleFairness(t *testing.T) {
	r := fixedRand()
	const (
		poolSize   = 20
		sampleSize = 5
		trials     = 20000
	)
	pool := make([]int, poolSize)
	for i := range pool {
		pool[i] = i
	}

	counts := make([]int, poolSize)
	for trial := 0; trial < trials; trial++ {
		for _, v := range Sample(r, pool, sampleSize) {
			counts[v]++
		}
	}

	expected := float64(trials) * float64(sampleSize) / float64(poolSize)
	for i, c := range counts {
		ratio := float64(c) / expected
		if ratio < 0.9 || ratio > 1.1 {
			t.Errorf("element %d sampled %d times, expected ~%.0f (ratio %.3f)", i, c, expected, ratio)
		}
	}
}
