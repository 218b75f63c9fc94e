package chart

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"

	"github.com/fr4nk3nst1ner/salaryscope/internal/stats"
)

const (
	histogramBins = 30
	densityPoints = 200
)

// SalaryDistribution builds a 30-bin histogram of salary_in_usd with a
// smoothed density curve scaled to counts.
func (b *Builder) SalaryDistribution(t Table) (*Chart, error) {
	salaries, err := salaryColumn(t)
	if err != nil {
		return nil, err
	}
	xs := stats.Sorted(salaries)

	return &Chart{
		Kind: KindHistogram,
		Meta: Meta{
			Name:          "salary_distribution",
			Title:         "Distribution of Salaries in USD",
			XLabel:        "Salary in USD",
			YLabel:        "Frequency",
			Width:         10,
			Height:        6,
			TitleFontSize: 16,
			LabelFontSize: 14,
			TickFontSize:  10,
			Palette:       []string{"#ff6361"},
			EdgeColor:     "#000000",
		},
		Histogram: &Histogram{
			Bins:    bin(xs, histogramBins),
			Density: densityCurve(xs, histogramBins),
		},
	}, nil
}

// bin counts sorted values into n equal-width bins over [min, max]. The last
// bin is closed on the right. A single distinct value is centered in a unit
// range.
func bin(sorted []float64, n int) []Bin {
	if len(sorted) == 0 {
		return nil
	}

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(n)

	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = lo + float64(i+1)*width
	}
	bins[n-1].Hi = hi

	for _, x := range sorted {
		i := int((x - lo) / width)
		if i >= n {
			i = n - 1
		}
		if i < 0 {
			i = 0
		}
		bins[i].Count++
	}

	return bins
}

// densityCurve evaluates a Gaussian KDE over the data range, in count units
// of a histogram with nBins bins.
func densityCurve(sorted []float64, nBins int) []Point {
	if len(sorted) < 2 || sorted[0] == sorted[len(sorted)-1] {
		return nil
	}

	lo, hi := sorted[0], sorted[len(sorted)-1]
	sample := moremath.Sample{Xs: sorted, Sorted: true}
	kde := &moremath.KDE{Sample: sample, Bandwidth: moremath.BandwidthScott(sample)}
	if kde.Bandwidth <= 0 || math.IsNaN(kde.Bandwidth) {
		return nil
	}

	scale := float64(len(sorted)) * (hi - lo) / float64(nBins)
	curve := make([]Point, densityPoints)
	step := (hi - lo) / float64(densityPoints-1)
	for i := range curve {
		x := lo + float64(i)*step
		curve[i] = Point{X: x, Y: kde.PDF(x) * scale}
	}

	return curve
}
