package eval

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/resample/plan"
)

// Map applies fn to every split of p and returns the results in plan
// order. Fail-fast: the first error cancels the group context, in-flight
// siblings are signalled to stop, no further splits are dispatched, and
// the error comes back wrapped with the failing split's label.
//
// Execution is sequential unless widened via WithWorkers; result order is
// plan order either way, because each worker writes into the slot
// pre-assigned to its split.
func Map[T any](ctx context.Context, p *plan.Plan, fn SplitFunc[T], opts ...Option) ([]T, error) {
	o, err := resolve(p, fn, opts)
	if err != nil {
		return nil, err
	}

	splits := p.Splits()
	results := make([]T, len(splits))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, s := range splits {
		i, s := i, s
		g.Go(func() error {
			// A sibling already failed: skip instead of computing.
			// errgroup reports the first error, so this one is discarded.
			if cerr := gCtx.Err(); cerr != nil {
				return cerr
			}
			v, ferr := fn(gCtx, s)
			if ferr != nil {
				return fmt.Errorf("eval: split %s: %w", s.Label(), ferr)
			}
			results[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Collect applies fn to every split of p, running all of them to
// completion regardless of individual failures, and returns one Result
// per split in plan order. A failed split carries its error in Result.Err
// alongside the successes — never silently dropped.
func Collect[T any](ctx context.Context, p *plan.Plan, fn SplitFunc[T], opts ...Option) ([]Result[T], error) {
	o, err := resolve(p, fn, opts)
	if err != nil {
		return nil, err
	}

	splits := p.Splits()
	results := make([]Result[T], len(splits))

	// A plain errgroup (no derived context): one split's failure must not
	// cancel its siblings in collect-errors mode.
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, s := range splits {
		i, s := i, s
		g.Go(func() error {
			v, ferr := fn(ctx, s)
			results[i] = Result[T]{Index: i, Label: s.Label(), Value: v, Err: ferr}

			return nil
		})
	}
	// Workers never return errors in this mode; Wait only joins them.
	_ = g.Wait()

	return results, nil
}

// resolve validates the shared driver inputs and applies options.
func resolve[T any](p *plan.Plan, fn SplitFunc[T], opts []Option) (evalOptions, error) {
	o := defaultOptions()
	if p == nil {
		return o, ErrNilPlan
	}
	if fn == nil {
		return o, ErrNilFunc
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
