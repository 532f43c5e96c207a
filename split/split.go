package split

import (
	"fmt"

	"github.com/katalvlaran/resample/dataset"
)

// Split is one resample: an analysis partition to fit on, an assessment
// partition to score on, the Universe both index into, and a Label.
// Immutable after New; accessors return views or copies, never the
// internal slices.
type Split struct {
	analysis   []int
	assessment []int
	origin     *dataset.Universe
	label      Label
}

// New builds a Split over origin, copying both index slices and validating
// every index against [0, origin.NumRows()). The assessment may be empty
// (a bootstrap draw that covered every row); the analysis may not.
// Returns ErrNilUniverse or ErrIndexRange.
func New(origin *dataset.Universe, analysis, assessment []int, label Label) (Split, error) {
	if origin == nil {
		return Split{}, ErrNilUniverse
	}
	n := origin.NumRows()
	if err := checkRange(analysis, n, "analysis"); err != nil {
		return Split{}, err
	}
	if err := checkRange(assessment, n, "assessment"); err != nil {
		return Split{}, err
	}

	return Split{
		analysis:   append([]int(nil), analysis...),
		assessment: append([]int(nil), assessment...),
		origin:     origin,
		label:      label,
	}, nil
}

// checkRange validates every index in idx against [0, n).
func checkRange(idx []int, n int, part string) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("New: %s index %d of %d rows: %w", part, i, n, ErrIndexRange)
		}
	}

	return nil
}

// Analysis returns the lazy view over the analysis partition.
func (s Split) Analysis() View { return View{origin: s.origin, rows: s.analysis} }

// Assessment returns the lazy view over the assessment partition.
func (s Split) Assessment() View { return View{origin: s.origin, rows: s.assessment} }

// Sizes reports (analysis count, assessment count, universe row count).
func (s Split) Sizes() (analysis, assessment, total int) {
	return len(s.analysis), len(s.assessment), s.origin.NumRows()
}

// Label returns the structured id of this split.
func (s Split) Label() Label { return s.label }

// Universe returns the origin the split's indices resolve against.
func (s Split) Universe() *dataset.Universe { return s.origin }
