// Package chart builds renderer-agnostic descriptions of the salary charts.
// Builders only read the table; drawing is left to a render.Renderer.
package chart

import (
	"math"
	"math/rand"

	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
)

// Kind identifies the shape of a chart
type Kind string

const (
	KindHistogram Kind = "histogram"
	KindBar       Kind = "bar"
	KindBox       Kind = "box"
	KindViolin    Kind = "violin"
	KindStrip     Kind = "strip"
)

// Legend placements
const (
	LegendNone         = ""
	LegendOutsideRight = "outside-upper-left"
)

// Meta is presentation configuration shared by every chart
type Meta struct {
	// Name is a file-friendly identifier
	Name   string
	Title  string
	XLabel string
	YLabel string

	// Width and Height are in inches
	Width  float64
	Height float64

	TitleFontSize float64
	LabelFontSize float64
	TickFontSize  float64
	XTickRotation float64

	Legend      string
	LegendTitle string
	Grid        bool
	// Palette holds hex colors assigned to groups in order
	Palette   []string
	EdgeColor string
}

// Point is a 2D coordinate
type Point struct {
	X, Y float64
}

// Bin is one histogram bucket covering [Lo, Hi)
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Histogram is the payload of KindHistogram
type Histogram struct {
	Bins []Bin
	// Density is a smoothed curve in count units; empty when it cannot be estimated
	Density []Point
}

// Bar is one bar with its confidence interval
type Bar struct {
	Label  string
	N      int
	Mean   float64
	CILow  float64
	CIHigh float64
}

// Box is one box-and-whisker group
type Box struct {
	Label     string
	N         int
	Q1        float64
	Median    float64
	Q3        float64
	WhiskerLo float64
	WhiskerHi float64
	Outliers  []float64
}

// Violin is one violin group. Curve points hold a salary (X) and the half
// width of the violin at that salary (Y).
type Violin struct {
	Label  string
	N      int
	Curve  []Point
	Q1     float64
	Median float64
	Q3     float64
	Min    float64
	Max    float64
}

// StripSeries holds the points of one hue level
type StripSeries struct {
	Label  string
	Points []Point
}

// Strip is the payload of KindStrip. X positions are category indexes plus
// dodge and jitter offsets.
type Strip struct {
	Categories []string
	Series     []StripSeries
	Alpha      float64
	Jitter     float64
	LaneWidth  float64
}

// Chart is a complete chart description
type Chart struct {
	Kind Kind
	Meta Meta

	Histogram *Histogram
	Bars      []Bar
	// Horizontal puts categories on the Y axis
	Horizontal bool
	Boxes      []Box
	Violins    []Violin
	Strip      *Strip
}

// Table is the read-only view of the dataset the builders need
type Table interface {
	Strings(name string) ([]string, error)
	Floats(name string) ([]float64, error)
}

// Options tunes the randomized parts of the builders
type Options struct {
	// Seed drives bootstrap resampling and jitter
	Seed int64
	// Bootstrap is the number of resamples for confidence intervals
	Bootstrap int
	// Confidence is the interval width in percent
	Confidence float64
}

// Builder derives charts from a table
type Builder struct {
	opts Options
	rng  *rand.Rand
}

// NewBuilder creates a Builder, filling zero options with 1000 resamples and 95% confidence
func NewBuilder(opts Options) *Builder {
	if opts.Bootstrap <= 0 {
		opts.Bootstrap = 1000
	}
	if opts.Confidence <= 0 || opts.Confidence >= 100 {
		opts.Confidence = 95
	}

	return &Builder{opts: opts, rng: rand.New(rand.NewSource(opts.Seed))}
}

// group is the salaries of one category in first-appearance order
type group struct {
	label  string
	values []float64
}

// groupSalaries splits salaries by the categorical column, in order of first
// appearance. Rows with a missing category or salary are dropped.
func groupSalaries(t Table, by string) ([]group, error) {
	labels, err := t.Strings(by)
	if err != nil {
		return nil, err
	}
	salaries, err := salaryColumn(t)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []group
	for i, label := range labels {
		if models.IsMissing(label) || math.IsNaN(salaries[i]) {
			continue
		}
		g, ok := index[label]
		if !ok {
			g = len(groups)
			index[label] = g
			groups = append(groups, group{label: label})
		}
		groups[g].values = append(groups[g].values, salaries[i])
	}

	return groups, nil
}

func salaryColumn(t Table) ([]float64, error) {
	return t.Floats(models.ColSalaryUSD)
}

func paletteFor(name string, n int) []string {
	base := palettes[name]
	if len(base) == 0 || n <= 0 {
		return nil
	}

	out := make([]string, n)
	if n == 1 {
		out[0] = base[len(base)/2]
		return out
	}
	// spread n colors evenly over the palette
	for i := range out {
		out[i] = base[i*(len(base)-1)/(n-1)]
	}

	return out
}

var palettes = map[string][]string{
	"Spectral": {"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"},
	"Set3":     {"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd"},
	"cool":     {"#00ffff", "#1ce3ff", "#38c7ff", "#55aaff", "#718eff", "#8e71ff", "#aa55ff", "#c738ff", "#e31cff", "#ff00ff"},
	"viridis":  {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
}
