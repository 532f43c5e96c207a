// Package eval applies a caller-supplied function across every split of a
// plan and collects the results in plan order, with optional bounded
// parallelism, plus descriptive summaries of per-split metric values.
//
// What
//
//   - Map: fail-fast driver. Runs fn once per split; the first failure
//     cancels the shared context, no further splits are dispatched, and
//     the error (wrapped with the failing split's label) is returned.
//   - Collect: collect-errors driver. Every split runs to completion;
//     per-split failures are reported in Result entries alongside
//     successes, never swallowed or downgraded.
//   - Summarize: N/Mean/StdDev/StdErr/Min/Max over a float64 metric
//     sequence — the "average the 100 fold accuracies" step.
//
// Ordering & concurrency
//
//	Splits are independent: they share only the immutable universe, so the
//	drivers dispatch them to an errgroup-bounded worker pool and write each
//	result into its pre-assigned slot. Result order always equals plan
//	order, whatever the completion order. The default is WithWorkers(1) —
//	strictly sequential — because per-split work usually dominates and the
//	caller knows best how wide to go.
//
// The per-split function is opaque to this package. It should honor ctx
// (Map cancels it on sibling failure) and must not mutate shared state;
// nothing here locks on its behalf.
//
// Errors
//
//   - ErrNilPlan, ErrNilFunc — missing inputs.
//   - ErrOptionViolation     — WithWorkers(n<1).
//   - ErrNoValues            — Summarize over an empty slice.
package eval
