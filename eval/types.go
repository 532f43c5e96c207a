package eval

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/resample/split"
)

// Sentinel errors for the evaluation drivers.
var (
	// ErrNilPlan is returned when a nil *plan.Plan is passed.
	ErrNilPlan = errors.New("eval: plan is nil")

	// ErrNilFunc is returned when a nil per-split function is passed.
	ErrNilFunc = errors.New("eval: split function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("eval: invalid option supplied")

	// ErrNoValues is returned by Summarize for an empty value sequence.
	ErrNoValues = errors.New("eval: no values to summarize")
)

// SplitFunc is the caller-supplied per-split computation: fit a model,
// score a metric, build a prediction frame — anything. It must be
// side-effect-free with respect to sibling splits and should return
// promptly once ctx is cancelled.
type SplitFunc[T any] func(ctx context.Context, s split.Split) (T, error)

// Result pairs one split's outcome with its position and label.
// Index is the split's position in plan order; exactly one of Value/Err
// is meaningful (Err == nil means Value holds).
type Result[T any] struct {
	Index int
	Label split.Label
	Value T
	Err   error
}

// Option configures the drivers via functional arguments. An invalid
// Option (e.g. zero workers) is recorded internally and surfaced as
// ErrOptionViolation when the driver is invoked.
type Option func(*evalOptions)

type evalOptions struct {
	workers int

	// internal error recorded during option parsing
	err error
}

// defaultOptions: sequential execution (one worker), error channel clear.
func defaultOptions() evalOptions {
	return evalOptions{workers: 1}
}

// WithWorkers bounds the number of splits evaluated concurrently.
//
//	n > 1:  dispatch up to n splits at once
//	n == 1: strictly sequential (the default)
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *evalOptions) {
		if n < 1 {
			o.err = fmt.Errorf("WithWorkers(%d): %w", n, ErrOptionViolation)

			return
		}
		o.workers = n
	}
}
