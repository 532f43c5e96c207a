// SPDX-License-Identifier: MIT
// Package: resample/plan
//
// helpers.go — deterministic index bookkeeping shared by all strategies.
//
// Determinism rules enforced here:
//   • Strata are iterated in sorted category order (dataset.Categories).
//   • Shuffles and draws consume the caller's RNG in a fixed visit order,
//     so one seed pins the entire plan.
//   • Complements and partitions are emitted in ascending row order.

package plan

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/resample/dataset"
)

// groups returns the universe's row-index groups in canonical order:
// one group per category (sorted by name) when stratified, otherwise a
// single group covering [0, NumRows).
// Complexity: O(n) time, O(n) space.
func groups(u *dataset.Universe) [][]int {
	if !u.Stratified() {
		return [][]int{fullRange(u.NumRows())}
	}
	cats := u.Categories()
	out := make([][]int, len(cats))
	for i, cat := range cats {
		out[i] = u.Stratum(cat)
	}

	return out
}

// fullRange returns [0, 1, ..., n-1].
func fullRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// shuffled returns a copied, Fisher–Yates-shuffled permutation of rows,
// leaving the input untouched.
// Complexity: O(len(rows)) time and space.
func shuffled(rng *rand.Rand, rows []int) []int {
	out := append([]int(nil), rows...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// complement returns, in ascending order, every index of [0, n) not
// marked in drawn.
// Complexity: O(n) time, O(result) space.
func complement(drawn []bool) []int {
	out := make([]int, 0)
	for i, d := range drawn {
		if !d {
			out = append(out, i)
		}
	}

	return out
}

// sorted sorts rows in place ascending and returns the same slice.
// Partitions are emitted sorted so a plan reads (and diffs) predictably.
func sorted(rows []int) []int {
	sort.Ints(rows)

	return rows
}
