// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// errors.go — sentinel errors for the plan package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w (see planErrorf below).
//   • Strategies MUST NOT panic at runtime; validation panics are confined
//     to option constructors receiving nil functions/RNGs.

package plan

import (
	"errors"
	"fmt"
)

// ErrNilUniverse indicates a strategy received a nil *dataset.Universe.
// Usage: if errors.Is(err, ErrNilUniverse) { /* construct the universe first */ }.
var ErrNilUniverse = errors.New("plan: universe is nil")

// ErrBadCount indicates a count parameter below its minimum: times < 1
// for Bootstrap/MonteCarlo, or v < 2 for VFold.
// Usage: if errors.Is(err, ErrBadCount) { /* report invalid count */ }.
var ErrBadCount = errors.New("plan: count below minimum")

// ErrBadProportion indicates a Monte-Carlo proportion outside the open
// interval (0,1).
// Usage: if errors.Is(err, ErrBadProportion) { /* clamp or reject p */ }.
var ErrBadProportion = errors.New("plan: proportion out of range")

// ErrInsufficientRows indicates the dataset is smaller than the strategy's
// minimum requirement: fewer rows than folds, a rolling window that does
// not fit, or a stratified deal that leaves some fold empty.
// Usage: if errors.Is(err, ErrInsufficientRows) { /* shrink v / windows */ }.
var ErrInsufficientRows = errors.New("plan: not enough rows")

// ErrNeedRandSource indicates a stochastic strategy was invoked without an
// RNG (WithSeed or WithRand must be supplied).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* add WithSeed(...) */ }.
var ErrNeedRandSource = errors.New("plan: rng is required")

// ErrOptionViolation indicates a WithX(...) option received a meaningless
// value (e.g. WithRepeats(r<1), WithStep(s<1)). The violation is recorded
// during option application and surfaced by the strategy constructor.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("plan: invalid option value")

// ErrSplitIndex indicates Plan.Split(i) was called with i outside [0, Len()).
// Usage: if errors.Is(err, ErrSplitIndex) { /* check Plan.Len() */ }.
var ErrSplitIndex = errors.New("plan: split index out of range")

// planErrorf wraps a sentinel (or any error) with the given method context,
// preserving errors.Is semantics: "<Method>: <formatted message>: <sentinel>".
func planErrorf(method, format string, sentinel error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
