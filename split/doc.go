// Package split defines the single resample: one immutable
// (analysis, assessment) partition of a dataset.Universe, plus the lazy
// views that resolve row content only when a caller actually reads it.
//
// What
//
//   - Split: analysis indices, assessment indices, the origin Universe,
//     and a structured Label. Built once by a strategy in package plan,
//     immutable thereafter; re-slicing always produces a new Split.
//   - View: an index-indirection layer over the origin — it stores row
//     positions, never row content. Thousands of splits over a large
//     dataset therefore cost memory proportional to the index lists,
//     not to the data.
//   - Materialize: resolves a View against any row-parallel slice the
//     caller holds, gathering rows on demand.
//   - Label: the structured id (repeat/fold, resample, or slice number)
//     used for reporting and ordering, never for index computation.
//
// Invariants
//
//   - Every index lies in [0, origin.NumRows()); New rejects the rest.
//   - Analysis and assessment are disjoint for V-fold and Monte-Carlo
//     splits; for bootstrap splits analysis may repeat indices and the
//     assessment is exactly the out-of-bag complement; for rolling-origin
//     splits both are contiguous and assessment strictly follows analysis.
//     These shapes are the producing strategy's responsibility — Split
//     itself only enforces range validity and immutability.
//
// Complexity
//
//	All accessors are O(1) except the ones documented to copy
//	(Indices, Materialize), which are linear in the view length.
package split
