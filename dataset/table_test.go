package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resample/dataset"
)

// TestNewFrame_Validation covers the constructor's shape checks.
func TestNewFrame_Validation(t *testing.T) {
	_, err := dataset.NewFrame(nil, nil)
	assert.ErrorIs(t, err, dataset.ErrColumnCount, "no columns should error")

	_, err = dataset.NewFrame([]string{"a", "b"}, [][]string{{"1"}})
	assert.ErrorIs(t, err, dataset.ErrColumnCount, "names/columns mismatch should error")

	_, err = dataset.NewFrame([]string{"a", "b"}, [][]string{{"1", "2"}, {"x"}})
	assert.ErrorIs(t, err, dataset.ErrColumnLength, "ragged columns should error")
}

// TestNew_EmptyFrame verifies that a zero-row frame cannot seed a universe.
func TestNew_EmptyFrame(t *testing.T) {
	f, err := dataset.NewFrame([]string{"a"}, [][]string{{}})
	require.NoError(t, err, "an empty column is a legal frame")
	assert.Equal(t, 0, f.NumRows())

	_, err = dataset.New(f)
	assert.ErrorIs(t, err, dataset.ErrNoRows, "zero rows should error at universe construction")
}

// TestFrame_Column verifies lookup and the defensive copy.
func TestFrame_Column(t *testing.T) {
	f := newTestFrame(t)

	col, ok := f.Column("class")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "a", "a", "b", "a"}, col)

	col[0] = "mutated"
	again, _ := f.Column("class")
	assert.Equal(t, "a", again[0], "Column must return a copy")

	_, ok = f.Column("missing")
	assert.False(t, ok, "unknown column reports false")
}

// TestFrame_Take verifies index-list materialization, including duplicates
// and out-of-range rejection.
func TestFrame_Take(t *testing.T) {
	f := newTestFrame(t)

	sub, err := f.Take([]int{4, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, sub.NumRows())
	col, _ := sub.Column("value")
	assert.Equal(t, []string{"5.1", "1.2", "1.2"}, col, "rows gathered in list order, duplicates kept")

	_, err = f.Take([]int{6})
	assert.ErrorIs(t, err, dataset.ErrRowIndex, "out-of-range index should error")

	_, err = f.Take([]int{-1})
	assert.ErrorIs(t, err, dataset.ErrRowIndex, "negative index should error")
}
