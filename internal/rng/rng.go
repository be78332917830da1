// Package rng provides the seeded random source used for map generation and spawning.
package rng

import (
	"math/rand"
	"time"
)

// Source wraps a seeded *rand.Rand with the dice-style helpers the generator needs.
// A Source is not safe for concurrent use.
type Source struct {
	r    *rand.Rand
	seed int64
}

// New creates a source from the given seed. A seed of 0 means a random seed will be used.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed actually used, so a time-seeded run can be replayed.
func (s *Source) Seed() int64 {
	return s.seed
}

// Range returns a uniformly distributed integer in [min, max], both inclusive.
func (s *Source) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// RollDice rolls n dice with the given number of sides and returns the sum.
// Rolls with no dice or fewer than one side return 0.
func (s *Source) RollDice(n, sides int) int {
	if n <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += 1 + s.r.Intn(sides)
	}
	return total
}

// Intn returns a uniformly distributed integer in [0, n).
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}
