package rates

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a rate table.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for fewer than two rates
}

// Summarize returns count, mean and sample standard deviation of r.
// Values are reduced in character order so the result is reproducible.
func Summarize(r map[string]float64) Summary {
	keys := slices.Sorted(maps.Keys(r))
	values := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = r[k]
	}

	s := Summary{Count: len(values)}
	switch len(values) {
	case 0:
	case 1:
		s.Mean = values[0]
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	}

	return s
}

// mean is the arithmetic mean of a non-empty slice.
func mean(xs []float64) float64 {
	return stat.Mean(xs, nil)
}
