// Package stats derives the descriptive statistics block of the salaries
// report: describe, correlation, kurtosis and skewness over the numeric
// columns of a table.
package stats

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
)

// ColumnStats describes one numeric column.
type ColumnStats struct {
	Name  string
	Count int
	Mean  Value
	Std   Value
	Min   Value
	Q25   Value
	Q50   Value
	Q75   Value
	Max   Value

	Kurtosis Value
	Skewness Value
}

// Summary is the statistics report for a table.
type Summary struct {
	Columns []ColumnStats
	// Correlation is indexed like Columns.
	Correlation [][]Value
}

// Summarize computes the report over the numeric columns of t. Every column
// in required must be present and numeric.
func Summarize(t *models.Table, required ...string) (*Summary, error) {
	for _, name := range required {
		if _, err := t.Floats(name); err != nil {
			return nil, err
		}
	}

	names := t.NumericColumns()
	columns := make([][]float64, len(names))
	s := &Summary{Columns: make([]ColumnStats, len(names))}
	for i, name := range names {
		xs, err := t.Floats(name)
		if err != nil {
			return nil, err
		}
		columns[i] = xs
		s.Columns[i] = Describe(name, xs)
	}
	s.Correlation = CorrelationMatrix(columns)

	return s, nil
}

// Column returns the stats of the named column.
func (s *Summary) Column(name string) (ColumnStats, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return ColumnStats{}, false
}

// Describe computes count, mean, standard deviation, min, quartiles, max,
// kurtosis and skewness of xs. NaN entries are missing values.
func Describe(name string, xs []float64) ColumnStats {
	sorted := Sorted(xs)
	cs := ColumnStats{Name: name, Count: len(sorted)}
	if len(sorted) == 0 {
		return cs
	}

	sample := moremath.Sample{Xs: sorted, Sorted: true}
	lo, hi := sample.Bounds()
	cs.Mean = Of(sample.Mean())
	if len(sorted) > 1 {
		cs.Std = Of(sample.StdDev())
	}
	cs.Min = Of(lo)
	cs.Q25 = Of(Quantile(sorted, 0.25))
	cs.Q50 = Of(Quantile(sorted, 0.50))
	cs.Q75 = Of(Quantile(sorted, 0.75))
	cs.Max = Of(hi)
	cs.Kurtosis = Kurtosis(sorted)
	cs.Skewness = Skewness(sorted)

	return cs
}

// CorrelationMatrix returns the Pearson correlation of every pair of columns
// over the rows where both are present. The diagonal is 1.
func CorrelationMatrix(columns [][]float64) [][]Value {
	n := len(columns)
	m := make([][]Value, n)
	for i := range m {
		m[i] = make([]Value, n)
	}

	for i := 0; i < n; i++ {
		m[i][i] = Value{V: 1, Defined: true}
		for j := i + 1; j < n; j++ {
			c := pearson(columns[i], columns[j])
			m[i][j] = c
			m[j][i] = c
		}
	}

	return m
}

func pearson(a, b []float64) Value {
	x := make([]float64, 0, len(a))
	y := make([]float64, 0, len(b))
	for k := range a {
		if math.IsNaN(a[k]) || math.IsNaN(b[k]) {
			continue
		}
		x = append(x, a[k])
		y = append(y, b[k])
	}
	if len(x) < 2 || constant(x) || constant(y) {
		return Value{}
	}

	r := stat.Correlation(x, y, nil)
	// rounding can push a perfect correlation past ±1
	r = math.Max(-1, math.Min(1, r))

	return Of(r)
}
