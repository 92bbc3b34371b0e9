// Package assign implements the team-assignment engine: grouping, team-count
// resolution, the distribution strategies, and the locked/reserve post-passes.
//
// All functions are pure with respect to their inputs except for the
// distribution strategies, which fill caller-owned team slices in place and
// consume the skill groups handed to them. Callers that need the pre-call
// state must clone first.
package assign

import (
	"math/rand"
	"time"
)

// Option applies a configuration option to the Randomizer.
type Option func(*Randomizer)

// WithSeed seeds the internal random source, making shuffles deterministic.
func WithSeed(seed int64) Option {
	return func(r *Randomizer) {
		r.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // shuffle fairness, not cryptography
	}
}

// WithRand replaces the internal random source entirely.
func WithRand(rng *rand.Rand) Option {
	return func(r *Randomizer) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// Randomizer carries the injected random source used for shuffling. A zero
// seed is never special; every invocation of a shuffle may produce a
// different order unless the caller fixed the seed.
type Randomizer struct {
	rng *rand.Rand
}

// New creates a Randomizer with a time-seeded random source by default.
func New(opts ...Option) *Randomizer {
	r := &Randomizer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // shuffle fairness, not cryptography
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}
