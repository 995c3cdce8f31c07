// Package stats summarises the values of a record source.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a value sequence.
//
// Values are used exactly as read; NaN and infinite values are not filtered out.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // sample standard deviation, 0 for fewer than two values
}

// Summarize computes a Summary of values. An empty input gives the zero Summary.
func Summarize(values []float32) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
	}

	s := Summary{
		Count: len(xs),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
	}

	if len(xs) == 1 {
		s.Mean = xs[0]
		return s
	}

	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)

	return s
}
