package split

import (
	"fmt"

	"github.com/katalvlaran/resample/dataset"
)

// View is a read-only window over one partition of a Split: it stores row
// positions into the origin Universe and resolves nothing until read.
// The zero View is empty and safe to use.
type View struct {
	origin *dataset.Universe
	rows   []int
}

// Len reports the number of rows in the view.
func (v View) Len() int { return len(v.rows) }

// At returns the i-th underlying row index. Like slice indexing, At
// panics when i is outside [0, Len()) — a programmer error, not a data
// condition.
func (v View) At(i int) int { return v.rows[i] }

// Indices returns a copy of the view's row indices in view order.
func (v View) Indices() []int { return append([]int(nil), v.rows...) }

// Universe returns the origin the indices resolve against
// (nil for the zero View).
func (v View) Universe() *dataset.Universe { return v.origin }

// Table materializes the view against the origin's own handle, when that
// handle supports provider-side gathering (dataset.Frame does via Take).
// Callers holding richer storage use Materialize instead.
func (v View) Table() (*dataset.Frame, error) {
	if v.origin == nil {
		return nil, ErrNilUniverse
	}
	f, ok := v.origin.Table().(*dataset.Frame)
	if !ok {
		return nil, fmt.Errorf("Table: origin handle is %T, not *dataset.Frame: %w", v.origin.Table(), ErrUnsupportedTable)
	}

	return f.Take(v.rows)
}

// Materialize gathers rows[idx] for every index in the view, in view order.
// rows must be parallel to the origin universe (one element per row).
// This is the on-demand resolution step: until it is called, a View costs
// only its index list. Returns ErrRowsLength on a mismatched slice.
func Materialize[T any](v View, rows []T) ([]T, error) {
	if v.origin != nil && len(rows) != v.origin.NumRows() {
		return nil, fmt.Errorf("Materialize: %d rows, universe has %d: %w", len(rows), v.origin.NumRows(), ErrRowsLength)
	}
	out := make([]T, len(v.rows))
	for i, r := range v.rows {
		out[i] = rows[r]
	}

	return out, nil
}
