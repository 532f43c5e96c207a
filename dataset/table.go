package dataset

import "fmt"

// Table is the read-only handle over tabular data that this module consumes.
// Implementations must be safe for concurrent readers; the resampling core
// never mutates a Table and never inspects anything beyond the row count
// and the categorical columns it is explicitly pointed at.
type Table interface {
	// NumRows reports the number of rows.
	NumRows() int
	// Column returns the values of the named categorical column and true,
	// or (nil, false) when no such column exists.
	Column(name string) ([]string, bool)
}

// Frame is a small column-major Table backed by string columns.
// It is the reference implementation used throughout the tests and
// examples; production callers typically adapt their own storage to
// the Table interface instead.
type Frame struct {
	names []string
	cols  [][]string
	rows  int
}

// NewFrame builds a Frame from parallel column names and column value
// slices. All columns must share one length; at least one column is
// required so the frame has a well-defined row count.
func NewFrame(names []string, cols [][]string) (*Frame, error) {
	if len(names) == 0 || len(names) != len(cols) {
		return nil, fmt.Errorf("NewFrame: %d names vs %d columns: %w", len(names), len(cols), ErrColumnCount)
	}
	rows := len(cols[0])
	for i, c := range cols {
		if len(c) != rows {
			return nil, fmt.Errorf("NewFrame: column %q has %d rows, want %d: %w", names[i], len(c), rows, ErrColumnLength)
		}
	}
	// Copy the storage so the Frame is immutable from the caller's side.
	f := &Frame{
		names: append([]string(nil), names...),
		cols:  make([][]string, len(cols)),
		rows:  rows,
	}
	for i, c := range cols {
		f.cols[i] = append([]string(nil), c...)
	}

	return f, nil
}

// NumRows reports the number of rows in the frame.
func (f *Frame) NumRows() int { return f.rows }

// Names returns a copy of the column names in declaration order.
func (f *Frame) Names() []string { return append([]string(nil), f.names...) }

// Column returns a copy of the named column's values and true,
// or (nil, false) when the column does not exist.
func (f *Frame) Column(name string) ([]string, bool) {
	for i, n := range f.names {
		if n == name {
			return append([]string(nil), f.cols[i]...), true
		}
	}

	return nil, false
}

// Take materializes the given rows (in the given order, duplicates allowed)
// into a new Frame. This is the provider-side "resolve an index list"
// operation that split views defer until actually read.
// Returns ErrRowIndex if any index falls outside [0, NumRows).
func (f *Frame) Take(rows []int) (*Frame, error) {
	for _, r := range rows {
		if r < 0 || r >= f.rows {
			return nil, fmt.Errorf("Take: index %d of %d rows: %w", r, f.rows, ErrRowIndex)
		}
	}
	out := &Frame{
		names: append([]string(nil), f.names...),
		cols:  make([][]string, len(f.cols)),
		rows:  len(rows),
	}
	for i, c := range f.cols {
		col := make([]string, len(rows))
		for j, r := range rows {
			col[j] = c[r]
		}
		out.cols[i] = col
	}

	return out, nil
}
