// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

package generator

import (
	"math"
	"math/rand"
)

// Source is the single pseudo-random sequence every generator draws from.
// It wraps a seeded *rand.Rand rather than the package-level global so draw
// order, not process state, governs reproducibility. Two Sources with the
// same seed yield identical draw sequences; every consumer must draw in the
// same order across runs for output to be byte-identical.
//
// Source is not safe for concurrent use. Generation is single-threaded, so
// no locking is needed.
type Source struct {
	r *rand.Rand
}

// NewSource creates a deterministic random source from the given seed.
func NewSource(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform integer in [lo, hi], inclusive on both ends.
func (s *Source) IntBetween(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}

// Intn returns a uniform integer in [0, n). n == 0 returns 0, which lets a
// zero-length window collapse instead of panicking.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Float64 returns a uniform float in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Choice returns a uniformly drawn element of items. items must be non-empty.
func (s *Source) Choice(items []string) string {
	return items[s.r.Intn(len(items))]
}

// Sample returns k distinct elements drawn without replacement, in draw
// order. k is clamped to len(items). The input slice is not modified.
func (s *Source) Sample(items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	pool := make([]string, len(items))
	copy(pool, items)

	// Partial Fisher-Yates: the first k positions end up holding the sample.
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		j := i + s.r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// Poisson returns a draw from a Poisson distribution with the given mean,
// using Knuth's multiplication method. Adequate for the small lambdas used
// here (session counts); not intended for lambda > ~30.
func (s *Source) Poisson(lambda float64) int {
	limit := math.Exp(-lambda)
	product := s.r.Float64()
	count := 0
	for product > limit {
		count++
		product *= s.r.Float64()
	}
	return count
}

// Exponential returns a draw from an exponential distribution with the given
// scale (mean). Used for the skewed watch-time distribution.
func (s *Source) Exponential(scale float64) float64 {
	return s.r.ExpFloat64() * scale
}
