package eval_test

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/eval"
	"github.com/katalvlaran/resample/plan"
	"github.com/katalvlaran/resample/split"
)

// ExampleMap walks a rolling-origin plan over a year-fragment of monthly
// values, scores each split with a caller-supplied function (here: the
// mean of the held-out window), and summarizes the per-split metrics.
func ExampleMap() {
	months := make([]string, 12)
	for i := range months {
		months[i] = strconv.Itoa(i + 1)
	}
	frame, _ := dataset.NewFrame([]string{"month"}, [][]string{months})
	u, _ := dataset.New(frame)

	// 6 months of analysis, 3 of assessment, advancing a quarter at a time.
	p, err := plan.RollingOrigin(u, 6, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sales := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	meanHoldout := func(_ context.Context, s split.Split) (float64, error) {
		held, merr := split.Materialize(s.Assessment(), sales)
		if merr != nil {
			return 0, merr
		}
		sum := 0.0
		for _, v := range held {
			sum += v
		}

		return sum / float64(len(held)), nil
	}

	metrics, err := eval.Map(context.Background(), p, meanHoldout)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("per-split means:", metrics)

	sum, _ := eval.Summarize(metrics)
	fmt.Printf("n=%d mean=%.2f min=%.2f max=%.2f\n", sum.N, sum.Mean, sum.Min, sum.Max)
	// Output:
	// per-split means: [8 11]
	// n=2 mean=9.50 min=8.00 max=11.00
}
