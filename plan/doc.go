// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// Package plan generates resampling plans: ordered collections of
// analysis/assessment splits over a dataset.Universe, one collection per
// strategy invocation.
//
// Strategies (all pure generators — no state machine, no I/O):
//
//   - Bootstrap(u, times, ...)              — with-replacement draws, out-of-bag assessment
//   - VFold(u, v, ...)                      — v disjoint folds, WithRepeats(r) for repetition
//   - MonteCarlo(u, times, proportion, ...) — independent without-replacement draws
//   - RollingOrigin(u, initial, assess, ...) — contiguous forward-moving windows
//
// Determinism contract (strict):
//
//	Same Universe + same parameters + same seed ⇒ an identical Plan,
//	split for split and index for index. Stochastic strategies therefore
//	require an explicit RNG via WithSeed or WithRand; omitting it fails
//	with ErrNeedRandSource rather than silently drawing from a global
//	source. RollingOrigin is fully arithmetic and needs no RNG.
//
// Stratification:
//
//	Strategies stratify whenever the Universe was built with
//	dataset.WithStrata: each category is drawn from (or dealt into folds)
//	independently, in sorted category order, so category proportions carry
//	into every partition within ±1 row. RollingOrigin ignores strata —
//	row order is time order there and must not be reshuffled.
//
// Validation (eager, per the error policy below): every structural
// problem — bad parameter, missing RNG, dataset too small, an empty fold —
// is reported by the constructor. Once a *Plan exists, every Split in it
// is valid and downstream evaluation never trips over plan structure.
//
// Error policy (sentinels only, branch with errors.Is):
//
//   - ErrNilUniverse      — nil *dataset.Universe
//   - ErrBadCount         — times < 1, or v < 2
//   - ErrBadProportion    — proportion outside (0,1)
//   - ErrInsufficientRows — dataset smaller than the strategy's minimum
//   - ErrNeedRandSource   — stochastic strategy without WithSeed/WithRand
//   - ErrOptionViolation  — meaningless option value (e.g. WithRepeats(0))
//   - ErrSplitIndex       — Plan.Split(i) outside [0, Len())
//
// Complexity: every strategy runs in O(total splits × rows) time and
// produces index bookkeeping only — no row content is copied, ever.
package plan
