package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/split"
)

// newUniverse builds an 8-row unstratified universe for split tests.
func newUniverse(t *testing.T) *dataset.Universe {
	t.Helper()
	f, err := dataset.NewFrame(
		[]string{"x"},
		[][]string{{"0", "1", "2", "3", "4", "5", "6", "7"}},
	)
	require.NoError(t, err)
	u, err := dataset.New(f)
	require.NoError(t, err)

	return u
}

// TestNew_NilUniverse verifies the missing-origin guard.
func TestNew_NilUniverse(t *testing.T) {
	_, err := split.New(nil, []int{0}, []int{1}, split.Label{})
	assert.ErrorIs(t, err, split.ErrNilUniverse)
}

// TestNew_IndexRange verifies range validation on both partitions.
func TestNew_IndexRange(t *testing.T) {
	u := newUniverse(t)

	_, err := split.New(u, []int{0, 8}, []int{1}, split.Label{})
	assert.ErrorIs(t, err, split.ErrIndexRange, "analysis index == NumRows should error")

	_, err = split.New(u, []int{0}, []int{-1}, split.Label{})
	assert.ErrorIs(t, err, split.ErrIndexRange, "negative assessment index should error")
}

// TestNew_Sizes verifies the (analysis, assessment, total) triple.
func TestNew_Sizes(t *testing.T) {
	u := newUniverse(t)
	s, err := split.New(u, []int{0, 1, 2, 3, 4, 5}, []int{6, 7}, split.Label{Fold: 1})
	require.NoError(t, err)

	na, nas, total := s.Sizes()
	assert.Equal(t, 6, na)
	assert.Equal(t, 2, nas)
	assert.Equal(t, 8, total)
	assert.Same(t, u, s.Universe())
}

// TestNew_EmptyAssessment verifies the degenerate bootstrap shape: an
// empty assessment is legal and must not crash anything downstream.
func TestNew_EmptyAssessment(t *testing.T) {
	u := newUniverse(t)
	s, err := split.New(u, []int{0, 0, 1, 2, 3, 4, 5, 6, 7, 7}, nil, split.Label{Resample: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, s.Assessment().Len())
	assert.Empty(t, s.Assessment().Indices())
}

// TestNew_Immutable verifies that neither the constructor inputs nor the
// accessor outputs alias the split's internal state.
func TestNew_Immutable(t *testing.T) {
	u := newUniverse(t)
	analysis := []int{0, 1, 2}
	s, err := split.New(u, analysis, []int{3}, split.Label{})
	require.NoError(t, err)

	// Mutating the constructor input must not leak in.
	analysis[0] = 7
	assert.Equal(t, []int{0, 1, 2}, s.Analysis().Indices(), "New must copy its inputs")

	// Mutating an accessor output must not leak back.
	out := s.Analysis().Indices()
	out[1] = 7
	assert.Equal(t, []int{0, 1, 2}, s.Analysis().Indices(), "Indices must return a copy")
}

// TestLabel_String covers every label shape.
func TestLabel_String(t *testing.T) {
	cases := []struct {
		name  string
		label split.Label
		want  string
	}{
		{"repeated vfold", split.Label{Repeat: 2, Fold: 3}, "Repeat2.Fold03"},
		{"single-repeat vfold", split.Label{Repeat: 1, Fold: 3}, "Fold03"},
		{"bootstrap", split.Label{Resample: 7}, "Resample07"},
		{"rolling", split.Label{Slice: 12}, "Slice012"},
		{"zero value", split.Label{}, "Split"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.label.String())
		})
	}
}
