package chart

import (
	"sort"

	moremath "github.com/aclements/go-moremath/stats"

	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/internal/stats"
)

// SalaryByExperience builds one bar per experience level with the mean salary
// and a bootstrap confidence interval.
func (b *Builder) SalaryByExperience(t Table) (*Chart, error) {
	groups, err := groupSalaries(t, models.ColExperienceLevel)
	if err != nil {
		return nil, err
	}

	bars := make([]Bar, len(groups))
	for i, g := range groups {
		lo, hi := b.bootstrapMeanCI(g.values)
		bars[i] = Bar{
			Label:  g.label,
			N:      len(g.values),
			Mean:   moremath.Mean(g.values),
			CILow:  lo,
			CIHigh: hi,
		}
	}

	return &Chart{
		Kind: KindBar,
		Meta: Meta{
			Name:          "salary_by_experience",
			Title:         "Average Salary by Experience Level",
			XLabel:        "Experience Level",
			YLabel:        "Average Salary in USD",
			Width:         10,
			Height:        6,
			TitleFontSize: 16,
			LabelFontSize: 14,
			TickFontSize:  10,
			Palette:       paletteFor("Spectral", len(bars)),
		},
		Bars: bars,
	}, nil
}

// bootstrapMeanCI estimates a percentile confidence interval of the mean by
// resampling xs with replacement.
func (b *Builder) bootstrapMeanCI(xs []float64) (float64, float64) {
	if len(xs) == 1 {
		return xs[0], xs[0]
	}

	means := make([]float64, b.opts.Bootstrap)
	for r := range means {
		var sum float64
		for range xs {
			sum += xs[b.rng.Intn(len(xs))]
		}
		means[r] = sum / float64(len(xs))
	}
	sort.Float64s(means)

	tail := (100 - b.opts.Confidence) / 200

	return stats.Quantile(means, tail), stats.Quantile(means, 1-tail)
}
