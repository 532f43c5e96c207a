package split_test

import (
	"fmt"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/split"
)

// ExampleMaterialize shows the index-indirection at work: the Split holds
// only row positions, and the caller's own slice is resolved on demand.
func ExampleMaterialize() {
	frame, _ := dataset.NewFrame(
		[]string{"day"},
		[][]string{{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}},
	)
	u, _ := dataset.New(frame)

	s, _ := split.New(u, []int{0, 1, 2, 3, 4}, []int{5, 6}, split.Label{Slice: 1})

	na, nas, total := s.Sizes()
	fmt.Printf("%s: analysis=%d assessment=%d total=%d\n", s.Label(), na, nas, total)

	// The views cost only their index lists until read.
	temps := []float64{3.1, 4.0, 2.8, 5.5, 6.1, 7.0, 6.4}
	holdout, _ := split.Materialize(s.Assessment(), temps)
	fmt.Println("assessment temps:", holdout)
	// Output:
	// Slice001: analysis=5 assessment=2 total=7
	// assessment temps: [7 6.4]
}
