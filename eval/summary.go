package eval

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a per-split metric sequence.
type Summary struct {
	N      int     // number of values
	Mean   float64 // arithmetic mean
	StdDev float64 // sample standard deviation (0 when N == 1)
	StdErr float64 // StdDev / sqrt(N)
	Min    float64 // smallest value
	Max    float64 // largest value
}

// Summarize reduces the per-split metric values (typically the output of
// Map with a scoring SplitFunc) to a Summary. Order does not matter.
// Returns ErrNoValues for an empty slice.
func Summarize(vals []float64) (Summary, error) {
	n := len(vals)
	if n == 0 {
		return Summary{}, ErrNoValues
	}

	s := Summary{
		N:    n,
		Mean: stat.Mean(vals, nil),
		Min:  floats.Min(vals),
		Max:  floats.Max(vals),
	}
	// Sample standard deviation needs at least two values; a single
	// metric has no spread.
	if n > 1 {
		s.StdDev = stat.StdDev(vals, nil)
		s.StdErr = s.StdDev / math.Sqrt(float64(n))
	}

	return s, nil
}

// Values extracts the successful Results' values in plan order, dropping
// failed splits. Pair with Collect when a partial summary is acceptable;
// use Map when any failure should abort instead.
func Values[T any](results []Result[T]) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.Value)
		}
	}

	return out
}
