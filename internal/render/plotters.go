package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fr4nk3nst1ner/salaryscope/internal/chart"
)

const groupHalfWidth = 0.4

// valueRange tracks the extent of plotted values
type valueRange struct {
	min, max float64
}

func newValueRange() valueRange { return valueRange{min: math.Inf(1), max: math.Inf(-1)} }

func (r *valueRange) add(vs ...float64) {
	for _, v := range vs {
		r.min = math.Min(r.min, v)
		r.max = math.Max(r.max, v)
	}
}

func (r valueRange) bounds() (float64, float64) {
	if math.IsInf(r.min, 0) || math.IsInf(r.max, 0) {
		return 0, 1
	}

	return r.min, r.max
}

// boxPlotter draws precomputed box-and-whisker groups at integer positions
type boxPlotter struct {
	boxes      []chart.Box
	palette    []string
	horizontal bool
}

// Plot implements plot.Plotter
func (b *boxPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	at := func(loc, v float64) vg.Point {
		if b.horizontal {
			return vg.Point{X: trX(v), Y: trY(loc)}
		}
		return vg.Point{X: trX(loc), Y: trY(v)}
	}

	outline := draw.LineStyle{Color: color.Gray{Y: 60}, Width: vg.Points(1)}
	median := draw.LineStyle{Color: color.Gray{Y: 60}, Width: vg.Points(2)}
	glyph := draw.GlyphStyle{Color: color.Gray{Y: 60}, Radius: vg.Points(2.5), Shape: draw.RingGlyph{}}

	for i, box := range b.boxes {
		if box.N == 0 {
			continue
		}
		loc := float64(i)
		lo, hi := loc-groupHalfWidth, loc+groupHalfWidth

		rect := []vg.Point{at(lo, box.Q1), at(hi, box.Q1), at(hi, box.Q3), at(lo, box.Q3)}
		c.FillPolygon(paletteColor(b.palette, i, 1), c.ClipPolygonXY(rect))
		c.StrokeLines(outline, c.ClipLinesXY(append(rect, rect[0]))...)
		c.StrokeLines(median, c.ClipLinesXY([]vg.Point{at(lo, box.Median), at(hi, box.Median)})...)

		capLo, capHi := loc-groupHalfWidth/2, loc+groupHalfWidth/2
		c.StrokeLines(outline, c.ClipLinesXY(
			[]vg.Point{at(loc, box.Q1), at(loc, box.WhiskerLo)},
			[]vg.Point{at(loc, box.Q3), at(loc, box.WhiskerHi)},
			[]vg.Point{at(capLo, box.WhiskerLo), at(capHi, box.WhiskerLo)},
			[]vg.Point{at(capLo, box.WhiskerHi), at(capHi, box.WhiskerHi)},
		)...)

		for _, o := range box.Outliers {
			pt := at(loc, o)
			if c.Contains(pt) {
				c.DrawGlyph(glyph, pt)
			}
		}
	}
}

// DataRange implements plot.DataRanger
func (b *boxPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	r := newValueRange()
	for _, box := range b.boxes {
		if box.N == 0 {
			continue
		}
		r.add(box.WhiskerLo, box.WhiskerHi)
		r.add(box.Outliers...)
	}
	vmin, vmax := r.bounds()
	cmin, cmax := -0.5, float64(len(b.boxes))-0.5

	if b.horizontal {
		return vmin, vmax, cmin, cmax
	}

	return cmin, cmax, vmin, vmax
}

// violinPlotter draws mirrored density curves with an inner quartile box
type violinPlotter struct {
	violins []chart.Violin
	palette []string
}

// Plot implements plot.Plotter
func (v *violinPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	outline := draw.LineStyle{Color: color.Gray{Y: 60}, Width: vg.Points(1)}
	inner := draw.LineStyle{Color: color.Gray{Y: 40}, Width: vg.Points(4)}
	whisker := draw.LineStyle{Color: color.Gray{Y: 40}, Width: vg.Points(1)}
	dot := draw.GlyphStyle{Color: color.White, Radius: vg.Points(2), Shape: draw.CircleGlyph{}}

	for i, vi := range v.violins {
		if vi.N == 0 {
			continue
		}
		loc := float64(i)

		if len(vi.Curve) == 0 {
			c.StrokeLines(outline, c.ClipLinesXY([]vg.Point{
				{X: trX(loc - groupHalfWidth), Y: trY(vi.Median)},
				{X: trX(loc + groupHalfWidth), Y: trY(vi.Median)},
			})...)
			continue
		}

		poly := make([]vg.Point, 0, 2*len(vi.Curve))
		for _, p := range vi.Curve {
			poly = append(poly, vg.Point{X: trX(loc + p.Y), Y: trY(p.X)})
		}
		for j := len(vi.Curve) - 1; j >= 0; j-- {
			p := vi.Curve[j]
			poly = append(poly, vg.Point{X: trX(loc - p.Y), Y: trY(p.X)})
		}
		c.FillPolygon(paletteColor(v.palette, i, 1), c.ClipPolygonXY(poly))
		c.StrokeLines(outline, c.ClipLinesXY(append(poly, poly[0]))...)

		x := trX(loc)
		c.StrokeLines(whisker, c.ClipLinesXY([]vg.Point{{X: x, Y: trY(vi.Min)}, {X: x, Y: trY(vi.Max)}})...)
		c.StrokeLines(inner, c.ClipLinesXY([]vg.Point{{X: x, Y: trY(vi.Q1)}, {X: x, Y: trY(vi.Q3)}})...)
		if pt := (vg.Point{X: x, Y: trY(vi.Median)}); c.Contains(pt) {
			c.DrawGlyph(dot, pt)
		}
	}
}

// DataRange implements plot.DataRanger
func (v *violinPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	r := newValueRange()
	for _, vi := range v.violins {
		if vi.N == 0 {
			continue
		}
		r.add(vi.Min, vi.Max)
		for _, p := range vi.Curve {
			r.add(p.X)
		}
	}
	ymin, ymax = r.bounds()

	return -0.5, float64(len(v.violins)) - 0.5, ymin, ymax
}
