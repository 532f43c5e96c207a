// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// validators.go — shared eager-validation steps for strategy constructors.
//
// Priority (tie-break guidance when multiple validations fail):
//   • ErrNilUniverse      — universe presence first.
//   • ErrOptionViolation  — then recorded option misuse.
//   • ErrBadCount / ErrBadProportion — then parameter ranges.
//   • ErrNeedRandSource   — then RNG presence for stochastic strategies.
//   • ErrInsufficientRows — only after all cheaper checks pass.

package plan

import (
	"fmt"

	"github.com/katalvlaran/resample/dataset"
)

// validateBase checks the universe and any option violation recorded
// during config resolution. Every strategy runs this first.
func validateBase(method string, u *dataset.Universe, cfg planConfig) error {
	if u == nil {
		return planErrorf(method, "nil universe", ErrNilUniverse)
	}
	if cfg.err != nil {
		// The recorded violation already wraps ErrOptionViolation;
		// add the method context only.
		return fmt.Errorf("%s: %w", method, cfg.err)
	}

	return nil
}

// validateRNG checks that a stochastic strategy was given an RNG.
func validateRNG(method string, cfg planConfig) error {
	if cfg.rng == nil {
		return planErrorf(method, "use WithSeed or WithRand", ErrNeedRandSource)
	}

	return nil
}

// validateTimes checks a draw count against its minimum.
func validateTimes(method string, times int) error {
	if times < minTimes {
		return planErrorf(method, "times=%d, minimum %d", ErrBadCount, times, minTimes)
	}

	return nil
}
