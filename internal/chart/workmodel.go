package chart

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"

	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/internal/stats"
)

const (
	violinPoints    = 100
	violinCut       = 2.0
	violinHalfWidth = 0.4
)

// WorkModelImpact builds one violin of salary per work model.
func (b *Builder) WorkModelImpact(t Table) (*Chart, error) {
	groups, err := groupSalaries(t, models.ColWorkModels)
	if err != nil {
		return nil, err
	}

	violins := make([]Violin, len(groups))
	peak := 0.0
	for i, g := range groups {
		violins[i] = violinOf(g.label, g.values)
		for _, p := range violins[i].Curve {
			peak = math.Max(peak, p.Y)
		}
	}

	// the widest violin gets the full half width
	for i := range violins {
		for j := range violins[i].Curve {
			violins[i].Curve[j].Y *= violinHalfWidth / peak
		}
	}

	return &Chart{
		Kind: KindViolin,
		Meta: Meta{
			Name:          "work_model_impact",
			Title:         "Impact of Work Model on Salary in Data Science Roles",
			XLabel:        "Work Model",
			YLabel:        "Salary in USD",
			Width:         10,
			Height:        6,
			TitleFontSize: 16,
			LabelFontSize: 14,
			TickFontSize:  10,
			Palette:       paletteFor("cool", len(violins)),
		},
		Violins: violins,
	}, nil
}

// violinOf estimates the density of values over [min-2bw, max+2bw]. The curve
// is left in density units; groups with no spread get no curve.
func violinOf(label string, values []float64) Violin {
	sorted := stats.Sorted(values)
	v := Violin{Label: label, N: len(sorted)}
	if len(sorted) == 0 {
		return v
	}

	v.Min, v.Max = sorted[0], sorted[len(sorted)-1]
	v.Q1 = stats.Quantile(sorted, 0.25)
	v.Median = stats.Quantile(sorted, 0.5)
	v.Q3 = stats.Quantile(sorted, 0.75)
	if v.Min == v.Max {
		return v
	}

	sample := moremath.Sample{Xs: sorted, Sorted: true}
	bw := moremath.BandwidthScott(sample)
	if bw <= 0 || math.IsNaN(bw) {
		return v
	}
	kde := &moremath.KDE{Sample: sample, Bandwidth: bw}

	lo, hi := v.Min-violinCut*bw, v.Max+violinCut*bw
	step := (hi - lo) / float64(violinPoints-1)
	v.Curve = make([]Point, violinPoints)
	for i := range v.Curve {
		x := lo + float64(i)*step
		v.Curve[i] = Point{X: x, Y: kde.PDF(x)}
	}

	return v
}
