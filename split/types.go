package split

import (
	"errors"
	"fmt"
)

var (
	// ErrNilUniverse indicates a Split was constructed without an origin.
	ErrNilUniverse = errors.New("split: universe is nil")
	// ErrIndexRange indicates an analysis or assessment index outside the universe.
	ErrIndexRange = errors.New("split: row index out of range")
	// ErrRowsLength indicates Materialize received a slice that does not
	// cover the origin universe row-for-row.
	ErrRowsLength = errors.New("split: rows length does not match universe")
	// ErrUnsupportedTable indicates View.Table was asked to gather rows from
	// a handle that offers no provider-side materialization.
	ErrUnsupportedTable = errors.New("split: table does not support materialization")
)

// Label is the structured id of one Split. Exactly one shape is populated
// by each strategy: {Repeat, Fold} for V-fold cross-validation, {Resample}
// for bootstrap and Monte-Carlo draws, {Slice} for rolling-origin windows.
// Unused fields stay zero. Labels order and name splits; they never feed
// back into index computation.
type Label struct {
	Repeat   int
	Fold     int
	Resample int
	Slice    int
}

// String renders the label in a stable, sortable form:
//
//	{Repeat:2, Fold:3}  → "Repeat2.Fold03"
//	{Fold:3}            → "Fold03"        (single-repeat V-fold)
//	{Resample:7}        → "Resample07"
//	{Slice:12}          → "Slice012"
//	zero value          → "Split"
func (l Label) String() string {
	switch {
	case l.Fold > 0 && l.Repeat > 1:
		return fmt.Sprintf("Repeat%d.Fold%02d", l.Repeat, l.Fold)
	case l.Fold > 0:
		return fmt.Sprintf("Fold%02d", l.Fold)
	case l.Resample > 0:
		return fmt.Sprintf("Resample%02d", l.Resample)
	case l.Slice > 0:
		return fmt.Sprintf("Slice%03d", l.Slice)
	default:
		return "Split"
	}
}
