// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • planConfig is the single source of truth for all strategy knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newPlanConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil   (stochastic strategies must be seeded explicitly)
//   • repeats    = 1     (single pass of V-fold)
//   • step       = 0     (rolling step resolves to the assess width)
//   • cumulative = false (fixed-width sliding analysis window)

package plan

import "math/rand"

// planConfig aggregates all knobs used by strategy constructors.
// It is passed by VALUE to strategies (immutable to callers).
type planConfig struct {
	// RNG for stochastic draws; nil means "no randomness supplied".
	rng *rand.Rand
	// Number of full V-fold passes.
	repeats int
	// Rolling window advance; 0 resolves to the assess width.
	step int
	// Whether the rolling analysis window grows from the origin.
	cumulative bool

	// first violation recorded during option application
	err error
}

// newPlanConfig constructs a config with deterministic defaults and applies
// all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newPlanConfig(opts ...Option) planConfig {
	cfg := planConfig{
		rng:        nil,
		repeats:    minRepeats,
		step:       0,
		cumulative: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
