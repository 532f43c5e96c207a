// Package dataset defines the read-only tabular handle consumed by the
// resampling strategies, and the Universe that fixes the row identity of
// one dataset for the lifetime of a resampling plan.
//
// What
//
//   - Table: the minimal interface a data provider must satisfy — a row
//     count plus named categorical columns for stratification. Cell values
//     are opaque to every other package in this module.
//   - Frame: a small concrete column-major Table, convenient for tests,
//     examples, and callers who hold their data as plain Go slices.
//   - Universe: an immutable snapshot of (row count, optional strata) built
//     from a Table. Every row index produced anywhere in this module is a
//     0-based position into a Universe.
//
// Why
//
//	Resampling plans may hold thousands of splits over one dataset; the
//	Universe lets each of them share a single validated view of the row
//	identity instead of re-inspecting (or copying) the data per split.
//
// Stratification
//
//	Universe construction with WithStrata(column) groups row indices by the
//	column's category values. Categories are kept in sorted order so every
//	downstream draw iterates them deterministically. Each category must hold
//	at least two rows — otherwise no strategy could place a representative
//	in both the analysis and the assessment partition — and violations are
//	reported eagerly at construction, never later.
//
// Errors
//
//   - ErrNilTable        if New receives a nil handle.
//   - ErrNoRows          if the handle reports zero rows.
//   - ErrStrataNotFound  if the requested strata column is absent.
//   - ErrStratumTooSmall if some category holds fewer than two rows.
package dataset
