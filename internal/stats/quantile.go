package stats

import (
	"math"
	"sort"
)

// Quantile returns the q-th quantile of sorted by linear interpolation between
// the closest ranks (the R-7 rule). sorted must be
// ascending and free of NaN.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return math.NaN()
	case n == 1 || q <= 0:
		return sorted[0]
	case q >= 1:
		return sorted[n-1]
	}

	pos := q * float64(n-1)
	lo := math.Floor(pos)
	frac := pos - lo
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}

	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// Present returns the non-NaN values of xs in their original order.
func Present(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}

	return out
}

// Sorted returns an ascending copy of the non-NaN values of xs.
func Sorted(xs []float64) []float64 {
	out := Present(xs)
	sort.Float64s(out)

	return out
}
