// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// impl_vfold.go — V-fold cross-validation, optionally repeated.
//
// Semantics:
//   • Each repeat partitions all rows into v disjoint folds of
//     (approximately) equal size: base = n/v rows each, with the first
//     n mod v folds taking one extra row.
//   • Stratified universes are dealt per category with the same remainder
//     rule, so every fold receives a proportional share of each category
//     (within ±1 row).
//   • Fold k's rows form the assessment set; all other folds form the
//     analysis set. Both are emitted in ascending order.
//   • Repeats reshuffle from the same RNG stream: v·repeats splits,
//     ordered repeat-major then fold-minor, each row assessed exactly
//     once per repeat.

package plan

import (
	"strconv"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/split"
)

// VFold generates a v-fold cross-validation plan over u, repeated
// WithRepeats(r) times (default 1).
//
// Determinism: the in-stratum shuffle and the first-folds-take-the-extra-row
// remainder rule are both pinned by the RNG seed; nothing depends on data
// values beyond row order itself.
//
// Errors: ErrNilUniverse, ErrOptionViolation, ErrBadCount (v < 2),
// ErrNeedRandSource, ErrInsufficientRows (v > NumRows, or a stratified
// deal that leaves some fold with no assessment rows).
//
// Complexity: O(repeats · n log n) time (sorting partitions dominates),
// O(n) index space per split.
func VFold(u *dataset.Universe, v int, opts ...Option) (*Plan, error) {
	cfg := newPlanConfig(opts...)
	if err := validateBase(MethodVFold, u, cfg); err != nil {
		return nil, err
	}
	if v < minFolds {
		return nil, planErrorf(MethodVFold, "v=%d, minimum %d", ErrBadCount, v, minFolds)
	}
	if err := validateRNG(MethodVFold, cfg); err != nil {
		return nil, err
	}
	n := u.NumRows()
	if v > n {
		return nil, planErrorf(MethodVFold, "v=%d folds over %d rows", ErrInsufficientRows, v, n)
	}

	grps := groups(u)
	splits := make([]split.Split, 0, v*cfg.repeats)
	for r := 1; r <= cfg.repeats; r++ {
		folds := dealFolds(cfg, grps, v)
		for k, fold := range folds {
			// A stratified deal over many tiny categories can starve the
			// tail folds; an empty assessment set is a structural defect
			// and must surface now, not during evaluation.
			if len(fold) == 0 {
				return nil, planErrorf(MethodVFold, "fold %d of %d is empty", ErrInsufficientRows, k+1, v)
			}
		}
		for k, fold := range folds {
			analysis := make([]int, 0, n-len(fold))
			for j, other := range folds {
				if j != k {
					analysis = append(analysis, other...)
				}
			}
			label := split.Label{Repeat: r, Fold: k + 1}
			s, err := split.New(u, sorted(analysis), sorted(fold), label)
			if err != nil {
				return nil, planErrorf(MethodVFold, "repeat %d fold %d", err, r, k+1)
			}
			splits = append(splits, s)
		}
	}

	params := map[string]string{
		"v":       strconv.Itoa(v),
		"repeats": strconv.Itoa(cfg.repeats),
	}

	return newPlan(MethodVFold, params, splits), nil
}

// dealFolds shuffles each group and deals it into v folds: base = len/v
// rows per fold, the first len mod v folds taking one extra.
// Fold contents arrive unsorted; callers sort when emitting.
func dealFolds(cfg planConfig, grps [][]int, v int) [][]int {
	folds := make([][]int, v)
	for _, g := range grps {
		sh := shuffled(cfg.rng, g)
		base, extra := len(g)/v, len(g)%v
		pos := 0
		for k := 0; k < v; k++ {
			size := base
			if k < extra {
				size++
			}
			folds[k] = append(folds[k], sh[pos:pos+size]...)
			pos += size
		}
	}

	return folds
}
