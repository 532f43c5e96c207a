package plan_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/split"
)

// newUniverse builds an unstratified universe of n rows.
func newUniverse(t *testing.T, n int) *dataset.Universe {
	t.Helper()
	col := make([]string, n)
	for i := range col {
		col[i] = strconv.Itoa(i)
	}
	f, err := dataset.NewFrame([]string{"x"}, [][]string{col})
	require.NoError(t, err)
	u, err := dataset.New(f)
	require.NoError(t, err)

	return u
}

// newStratifiedUniverse builds a universe whose "class" column assigns
// rows to categories round-robin over classes, giving each category
// either ⌊n/len⌋ or ⌈n/len⌉ rows.
func newStratifiedUniverse(t *testing.T, n int, classes []string) *dataset.Universe {
	t.Helper()
	col := make([]string, n)
	for i := range col {
		col[i] = classes[i%len(classes)]
	}
	f, err := dataset.NewFrame([]string{"class"}, [][]string{col})
	require.NoError(t, err)
	u, err := dataset.New(f, dataset.WithStrata("class"))
	require.NoError(t, err)

	return u
}

// indexSet collects a view's indices into a set, reporting duplicates.
func indexSet(v split.View) (set map[int]bool, dups bool) {
	set = make(map[int]bool, v.Len())
	for _, i := range v.Indices() {
		if set[i] {
			dups = true
		}
		set[i] = true
	}

	return set, dups
}

// categoryOf maps a row index to its round-robin class (mirrors
// newStratifiedUniverse's assignment).
func categoryOf(row int, classes []string) string {
	return classes[row%len(classes)]
}
