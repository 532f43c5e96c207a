// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// options.go — functional options for the strategy constructors.
//
// Contract (strict):
//   • Options are functional (type Option func(*planConfig)).
//   • Option constructors PANIC only on nil RNG arguments (programmer
//     error); numeric misuse is recorded and surfaced by the strategy as
//     ErrOptionViolation, so plans fail eagerly but never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through planConfig.

package plan

import (
	"fmt"
	"math/rand"
)

// Option customizes a strategy constructor by mutating a planConfig
// instance before any index is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*planConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and experiments to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *planConfig) {
		// Seeded source → reproducible draws and shuffles.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic strategies.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("plan: WithRand(nil)")
	}
	return func(c *planConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithRepeats sets the number of full V-fold passes (r ≥ 1).
//
//	r >= 1: repeat the fold partition r times with fresh shuffles
//	r <  1: invalid option → ErrOptionViolation at construction
func WithRepeats(r int) Option {
	return func(c *planConfig) {
		if r < minRepeats {
			c.err = fmt.Errorf("WithRepeats(%d): %w", r, ErrOptionViolation)

			return
		}
		c.repeats = r
	}
}

// WithStep sets the rolling-origin window advance in rows (s ≥ 1).
// Unset, the step defaults to the assess width so consecutive assessment
// windows tile the series without gap or overlap.
//
//	s >= 1: advance the window start by s rows per slice
//	s <  1: invalid option → ErrOptionViolation at construction
func WithStep(s int) Option {
	return func(c *planConfig) {
		if s < minWindow {
			c.err = fmt.Errorf("WithStep(%d): %w", s, ErrOptionViolation)

			return
		}
		c.step = s
	}
}

// WithCumulative makes the rolling analysis window grow from row 0 instead
// of sliding at fixed width: slice k analyzes rows [0, k·step+initial).
// Complexity: O(1) time, O(1) space.
func WithCumulative() Option {
	return func(c *planConfig) {
		c.cumulative = true
	}
}
