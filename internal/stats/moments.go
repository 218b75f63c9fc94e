package stats

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"
)

// Value is a statistic that may be mathematically undefined for its input.
type Value struct {
	V       float64
	Defined bool
}

// Undefined is the marker printed for values that cannot be computed.
const Undefined = "undefined"

// Of wraps v, treating NaN and ±Inf as undefined.
func Of(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}

	return Value{V: v, Defined: true}
}

// centralMoments returns the population central moments m2, m3 and m4.
func centralMoments(xs []float64) (m2, m3, m4 float64) {
	mean := moremath.Mean(xs)
	for _, x := range xs {
		d := x - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	n := float64(len(xs))

	return m2 / n, m3 / n, m4 / n
}

// constant reports whether every value equals the first.
func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}

	return true
}

// Kurtosis returns the Fisher excess kurtosis m4/m2² - 3 of the non-missing
// values. It is undefined for fewer than two values or a constant column.
func Kurtosis(xs []float64) Value {
	xs = Present(xs)
	if len(xs) < 2 || constant(xs) {
		return Value{}
	}
	m2, _, m4 := centralMoments(xs)

	return Of(m4/(m2*m2) - 3)
}

// Skewness returns the Fisher-Pearson coefficient m3/m2^1.5 of the
// non-missing values. It is undefined for fewer than two values or a constant
// column.
func Skewness(xs []float64) Value {
	xs = Present(xs)
	if len(xs) < 2 || constant(xs) {
		return Value{}
	}
	m2, m3, _ := centralMoments(xs)

	return Of(m3 / math.Pow(m2, 1.5))
}
