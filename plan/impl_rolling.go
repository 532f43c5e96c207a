// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// impl_rolling.go — rolling-origin resampling for ordered (time) series.
//
// Semantics:
//   • Row order is time order. Slice k starts at k·step:
//       analysis   = [start, start+initial)        (sliding, the default)
//                  = [0,     start+initial)        (WithCumulative)
//       assessment = [start+initial, start+initial+assess)
//     Assessment strictly follows analysis; both are contiguous; windows
//     advance monotonically.
//   • Generation stops before the first assessment window that would
//     overrun the series: slices exist while start+initial+assess ≤ n.
//   • Purely arithmetic — no RNG — and strata are ignored: reshuffling
//     an ordered series would destroy exactly the structure this
//     strategy exists to respect.

package plan

import (
	"strconv"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/split"
)

// RollingOrigin generates forward-moving analysis/assessment windows over
// the ordered rows of u: `initial` analysis rows, then `assess` assessment
// rows, advancing WithStep(s) rows per slice (default: the assess width).
// WithCumulative grows the analysis window from row 0 instead of sliding.
// Splits are labeled Slice 1..k in window order.
//
// Errors: ErrNilUniverse, ErrOptionViolation, ErrBadCount (initial or
// assess < 1), ErrInsufficientRows (the first window does not fit).
//
// Complexity: O(slices · window) time and index space.
func RollingOrigin(u *dataset.Universe, initial, assess int, opts ...Option) (*Plan, error) {
	cfg := newPlanConfig(opts...)
	if err := validateBase(MethodRolling, u, cfg); err != nil {
		return nil, err
	}
	if initial < minWindow {
		return nil, planErrorf(MethodRolling, "initial=%d, minimum %d", ErrBadCount, initial, minWindow)
	}
	if assess < minWindow {
		return nil, planErrorf(MethodRolling, "assess=%d, minimum %d", ErrBadCount, assess, minWindow)
	}
	step := cfg.step
	if step == 0 {
		step = assess
	}
	n := u.NumRows()
	if initial+assess > n {
		return nil, planErrorf(MethodRolling, "initial=%d assess=%d over %d rows", ErrInsufficientRows, initial, assess, n)
	}

	var splits []split.Split
	for start, k := 0, 1; start+initial+assess <= n; start, k = start+step, k+1 {
		lo := start
		if cfg.cumulative {
			lo = 0
		}
		analysis := contiguous(lo, start+initial)
		assessment := contiguous(start+initial, start+initial+assess)
		s, err := split.New(u, analysis, assessment, split.Label{Slice: k})
		if err != nil {
			return nil, planErrorf(MethodRolling, "slice %d", err, k)
		}
		splits = append(splits, s)
	}

	params := map[string]string{
		"initial":    strconv.Itoa(initial),
		"assess":     strconv.Itoa(assess),
		"step":       strconv.Itoa(step),
		"cumulative": strconv.FormatBool(cfg.cumulative),
	}

	return newPlan(MethodRolling, params, splits), nil
}

// contiguous returns [lo, lo+1, ..., hi-1].
func contiguous(lo, hi int) []int {
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}

	return out
}
