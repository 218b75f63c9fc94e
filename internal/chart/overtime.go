package chart

import (
	"math"
	"sort"
	"strconv"

	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/serrors"
)

// Defaults of SalaryOverTimeAdjusted
const (
	DefaultJitter = 0.2
	DefaultAlpha  = 0.7

	categoryWidth = 0.8
)

// SalaryOverTimeAdjusted builds a categorical scatter of salary per work year,
// colored by experience level. Each level gets its own dodged sub-lane inside
// the year, and points are jittered horizontally by up to jitter/levels.
func (b *Builder) SalaryOverTimeAdjusted(t Table, jitter, alpha float64) (*Chart, error) {
	if jitter < 0 || math.IsNaN(jitter) {
		return nil, serrors.With(serrors.ErrInvalidArgument, "jitter must be non-negative, got %v", jitter)
	}
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return nil, serrors.With(serrors.ErrInvalidArgument, "alpha must be within [0, 1], got %v", alpha)
	}

	years, err := t.Floats(models.ColWorkYear)
	if err != nil {
		return nil, err
	}
	levels, err := t.Strings(models.ColExperienceLevel)
	if err != nil {
		return nil, err
	}
	salaries, err := salaryColumn(t)
	if err != nil {
		return nil, err
	}

	keep := func(i int) bool {
		return !math.IsNaN(years[i]) && !math.IsNaN(salaries[i]) && !models.IsMissing(levels[i])
	}

	var distinct []float64
	seenYear := make(map[float64]bool)
	hueIndex := make(map[string]int)
	var series []StripSeries
	for i := range years {
		if !keep(i) {
			continue
		}
		if !seenYear[years[i]] {
			seenYear[years[i]] = true
			distinct = append(distinct, years[i])
		}
		if _, ok := hueIndex[levels[i]]; !ok {
			hueIndex[levels[i]] = len(series)
			series = append(series, StripSeries{Label: levels[i]})
		}
	}
	sort.Float64s(distinct)

	yearIndex := make(map[float64]int, len(distinct))
	categories := make([]string, len(distinct))
	for i, y := range distinct {
		yearIndex[y] = i
		categories[i] = strconv.FormatFloat(y, 'f', -1, 64)
	}

	strip := &Strip{Categories: categories, Alpha: alpha, Jitter: jitter}
	if n := len(series); n > 0 {
		strip.LaneWidth = categoryWidth / float64(n)
		limit := jitter / float64(n)
		for i := range years {
			if !keep(i) {
				continue
			}
			h := hueIndex[levels[i]]
			lane := -categoryWidth/2 + strip.LaneWidth*(float64(h)+0.5)
			x := float64(yearIndex[years[i]]) + lane
			if limit > 0 {
				x += (b.rng.Float64()*2 - 1) * limit
			}
			series[h].Points = append(series[h].Points, Point{X: x, Y: salaries[i]})
		}
	}
	strip.Series = series

	return &Chart{
		Kind: KindStrip,
		Meta: Meta{
			Name:          "salary_over_time",
			Title:         "Salary in USD Over Time by Experience Level and Work Model",
			XLabel:        "Work Year",
			YLabel:        "Salary in USD",
			Width:         12,
			Height:        7,
			TitleFontSize: 16,
			LabelFontSize: 14,
			TickFontSize:  12,
			XTickRotation: 45,
			Legend:        LegendOutsideRight,
			LegendTitle:   "Experience Level",
			Grid:          true,
			Palette:       paletteFor("viridis", len(series)),
		},
		Strip: strip,
	}, nil
}
