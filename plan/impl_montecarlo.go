// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// impl_montecarlo.go — Monte-Carlo cross-validation (repeated random
// without-replacement holdout).
//
// Semantics:
//   • Each of `times` iterations independently draws round(proportion·len)
//     rows without replacement as the analysis set; the remainder is the
//     assessment set. Draws are independent — no disjointness across
//     iterations.
//   • Stratified universes round per category, clamped to [1, len-1] so
//     both partitions keep at least one representative of every category.
//     The total analysis size may therefore drift from round(proportion·n)
//     by the per-category rounding.
//   • Both partitions are emitted in ascending order.

package plan

import (
	"math"
	"strconv"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/split"
)

// MonteCarlo generates `times` independent random holdout splits of u,
// placing roughly proportion·NumRows rows in each analysis set.
// Splits are labeled Resample 1..times in draw order.
//
// Errors: ErrNilUniverse, ErrOptionViolation, ErrBadCount (times < 1),
// ErrBadProportion (proportion outside (0,1)), ErrNeedRandSource,
// ErrInsufficientRows (an unstratified universe with a single row cannot
// populate both partitions).
//
// Complexity: O(times · n log n) time, O(n) index space per split.
func MonteCarlo(u *dataset.Universe, times int, proportion float64, opts ...Option) (*Plan, error) {
	cfg := newPlanConfig(opts...)
	if err := validateBase(MethodMonteCarlo, u, cfg); err != nil {
		return nil, err
	}
	if err := validateTimes(MethodMonteCarlo, times); err != nil {
		return nil, err
	}
	if proportion <= 0 || proportion >= 1 {
		return nil, planErrorf(MethodMonteCarlo, "proportion=%g, want (0,1)", ErrBadProportion, proportion)
	}
	if err := validateRNG(MethodMonteCarlo, cfg); err != nil {
		return nil, err
	}
	n := u.NumRows()
	if n < 2 {
		return nil, planErrorf(MethodMonteCarlo, "%d row(s) cannot fill both partitions", ErrInsufficientRows, n)
	}

	grps := groups(u)
	splits := make([]split.Split, 0, times)
	for t := 1; t <= times; t++ {
		analysis := make([]int, 0, n)
		assessment := make([]int, 0, n)
		for _, g := range grps {
			take := holdoutSize(proportion, len(g))
			sh := shuffled(cfg.rng, g)
			analysis = append(analysis, sh[:take]...)
			assessment = append(assessment, sh[take:]...)
		}
		s, err := split.New(u, sorted(analysis), sorted(assessment), split.Label{Resample: t})
		if err != nil {
			return nil, planErrorf(MethodMonteCarlo, "resample %d", err, t)
		}
		splits = append(splits, s)
	}

	params := map[string]string{
		"times":      strconv.Itoa(times),
		"proportion": strconv.FormatFloat(proportion, 'g', -1, 64),
	}

	return newPlan(MethodMonteCarlo, params, splits), nil
}

// holdoutSize rounds proportion·size to the nearest integer and clamps it
// to [1, size-1] so neither partition of the group ends up empty.
// Universe strata are validated to size ≥ 2, so the clamp is always
// satisfiable.
func holdoutSize(proportion float64, size int) int {
	take := int(math.Round(proportion * float64(size)))
	if take < 1 {
		take = 1
	}
	if take > size-1 {
		take = size - 1
	}

	return take
}
