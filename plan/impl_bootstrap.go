// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// impl_bootstrap.go — bootstrap resampling (with-replacement draws).
//
// Semantics:
//   • Each of `times` iterations draws NumRows indices uniformly at random
//     WITH replacement; those form the analysis set (duplicates kept, in
//     draw order). The assessment set is the out-of-bag complement — every
//     row never drawn — in ascending order.
//   • Stratified universes draw within each category independently, one
//     draw per category row, so category sizes carry into every analysis
//     set exactly.
//   • An empty out-of-bag set (every row drawn) is legal and produces a
//     split with an empty assessment; the probability vanishes as n grows
//     but the case is handled, not crashed on.

package plan

import (
	"strconv"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/split"
)

// Bootstrap generates `times` with-replacement resamples of u.
//
// Each split's analysis set has exactly u.NumRows() entries; its assessment
// set is the ascending out-of-bag complement (expected size ≈ n·(1−1/e),
// e.g. ~12 of 32 rows). Splits are labeled Resample 1..times in draw order.
//
// Determinism: one RNG (WithSeed/WithRand) pins the whole sequence.
//
// Errors: ErrNilUniverse, ErrOptionViolation, ErrBadCount (times < 1),
// ErrNeedRandSource.
//
// Complexity: O(times · n) time and index space.
func Bootstrap(u *dataset.Universe, times int, opts ...Option) (*Plan, error) {
	cfg := newPlanConfig(opts...)
	if err := validateBase(MethodBootstrap, u, cfg); err != nil {
		return nil, err
	}
	if err := validateTimes(MethodBootstrap, times); err != nil {
		return nil, err
	}
	if err := validateRNG(MethodBootstrap, cfg); err != nil {
		return nil, err
	}

	n := u.NumRows()
	grps := groups(u)
	splits := make([]split.Split, 0, times)
	for t := 1; t <= times; t++ {
		analysis := make([]int, 0, n)
		drawn := make([]bool, n)
		for _, g := range grps {
			for range g {
				k := g[cfg.rng.Intn(len(g))]
				analysis = append(analysis, k)
				drawn[k] = true
			}
		}
		s, err := split.New(u, analysis, complement(drawn), split.Label{Resample: t})
		if err != nil {
			return nil, planErrorf(MethodBootstrap, "resample %d", err, t)
		}
		splits = append(splits, s)
	}

	params := map[string]string{"times": strconv.Itoa(times)}

	return newPlan(MethodBootstrap, params, splits), nil
}
