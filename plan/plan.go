// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// plan.go — the Plan type: one strategy invocation's ordered split set.
//
// Design contract (strict):
//   • A Plan is immutable after its strategy constructor returns.
//   • Split order is part of the contract: repeat-major/fold-minor for
//     V-fold, draw order for Bootstrap/MonteCarlo, window order for
//     RollingOrigin. Evaluation results are reported in this order.
//   • Accessors return copies; callers cannot disturb a built plan.

package plan

import (
	"github.com/katalvlaran/resample/split"
)

// Plan is the ordered collection of splits produced by one strategy
// invocation, tagged with the method name and its parameters.
type Plan struct {
	splits []split.Split
	method string
	params map[string]string
}

// newPlan wraps the splits a strategy produced. Internal: strategies are
// the only Plan producers, which is what keeps every Plan structurally valid.
func newPlan(method string, params map[string]string, splits []split.Split) *Plan {
	return &Plan{splits: splits, method: method, params: params}
}

// Len reports the number of splits in the plan.
func (p *Plan) Len() int { return len(p.splits) }

// Split returns the i-th split in plan order.
// Returns ErrSplitIndex when i is outside [0, Len()).
func (p *Plan) Split(i int) (split.Split, error) {
	if i < 0 || i >= len(p.splits) {
		return split.Split{}, planErrorf("Split", "index %d of %d", ErrSplitIndex, i, len(p.splits))
	}

	return p.splits[i], nil
}

// Splits returns a copy of the split sequence in plan order.
// Each split is itself immutable, so sharing them is safe.
func (p *Plan) Splits() []split.Split {
	return append([]split.Split(nil), p.splits...)
}

// Method returns the canonical strategy name (MethodBootstrap, MethodVFold,
// MethodMonteCarlo, or MethodRolling).
func (p *Plan) Method() string { return p.method }

// Params returns a copy of the strategy parameters that produced the plan,
// rendered as strings for reporting.
func (p *Plan) Params() map[string]string {
	out := make(map[string]string, len(p.params))
	for k, v := range p.params {
		out[k] = v
	}

	return out
}
