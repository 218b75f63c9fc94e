package render

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fr4nk3nst1ner/salaryscope/internal/chart"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/logger"
)

// FileRenderer saves each chart as <Dir>/<name>.<Format>
type FileRenderer struct {
	Dir    string
	Format string
}

// Render implements Renderer
func (r *FileRenderer) Render(ctx context.Context, c *chart.Chart) error {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := r.Path(c)
	if err := Save(c, path); err != nil {
		return err
	}
	logger.Info(ctx, "chart saved", zap.String("chart", c.Meta.Name), zap.String("path", path))

	return nil
}

// Path is where c is saved
func (r *FileRenderer) Path(c *chart.Chart) string {
	format := r.Format
	if format == "" {
		format = "png"
	}

	return filepath.Join(r.Dir, c.Meta.Name+"."+format)
}

// Save draws c and writes it to path; the extension picks the image format
func Save(c *chart.Chart, path string) error {
	p, err := Draw(c)
	if err != nil {
		return err
	}

	w, h := c.Meta.Width, c.Meta.Height
	if w <= 0 || h <= 0 {
		w, h = 10, 6
	}
	if err := p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	return nil
}

// Draw builds a gonum plot from a chart description
func Draw(c *chart.Chart) (*plot.Plot, error) {
	p := plot.New()
	applyMeta(p, c.Meta)

	var err error
	switch c.Kind {
	case chart.KindHistogram:
		err = drawHistogram(p, c)
	case chart.KindBar:
		err = drawBars(p, c)
	case chart.KindBox:
		drawBoxes(p, c)
	case chart.KindViolin:
		drawViolins(p, c)
	case chart.KindStrip:
		err = drawStrip(p, c)
	default:
		err = fmt.Errorf("unsupported chart kind %q", c.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("drawing %s: %w", c.Meta.Name, err)
	}

	return p, nil
}

func applyMeta(p *plot.Plot, m chart.Meta) {
	p.Title.Text = m.Title
	p.X.Label.Text = m.XLabel
	p.Y.Label.Text = m.YLabel
	if m.TitleFontSize > 0 {
		p.Title.TextStyle.Font.Size = vg.Points(m.TitleFontSize)
	}
	if m.LabelFontSize > 0 {
		p.X.Label.TextStyle.Font.Size = vg.Points(m.LabelFontSize)
		p.Y.Label.TextStyle.Font.Size = vg.Points(m.LabelFontSize)
	}
	if m.TickFontSize > 0 {
		p.X.Tick.Label.Font.Size = vg.Points(m.TickFontSize)
		p.Y.Tick.Label.Font.Size = vg.Points(m.TickFontSize)
	}
	if m.XTickRotation != 0 {
		p.X.Tick.Label.Rotation = m.XTickRotation * math.Pi / 180
	}

	if m.Grid {
		grid := plotter.NewGrid()
		dashes := []vg.Length{vg.Points(4), vg.Points(2)}
		gray := color.Gray{Y: 128}
		grid.Vertical.Dashes, grid.Horizontal.Dashes = dashes, dashes
		grid.Vertical.Color, grid.Horizontal.Color = gray, gray
		grid.Vertical.Width, grid.Horizontal.Width = vg.Points(0.5), vg.Points(0.5)
		p.Add(grid)
	}

	if m.Legend == chart.LegendOutsideRight {
		p.Legend.Top = true
		p.Legend.Left = false
		p.Legend.TextStyle.Font.Size = vg.Points(9)
	}
}

func drawHistogram(p *plot.Plot, c *chart.Chart) error {
	h := c.Histogram
	if h == nil || len(h.Bins) == 0 {
		return nil
	}

	bins := make([]plotter.HistogramBin, len(h.Bins))
	for i, b := range h.Bins {
		bins[i] = plotter.HistogramBin{Min: b.Lo, Max: b.Hi, Weight: float64(b.Count)}
	}
	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     h.Bins[0].Hi - h.Bins[0].Lo,
		FillColor: paletteColor(c.Meta.Palette, 0, 1),
		LineStyle: plotter.DefaultLineStyle,
	}
	if edge, err := parseHex(c.Meta.EdgeColor); err == nil {
		hist.LineStyle.Color = edge
	}
	p.Add(hist)

	if len(h.Density) == 0 {
		return nil
	}
	xys := make(plotter.XYs, len(h.Density))
	for i, pt := range h.Density {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = paletteColor(c.Meta.Palette, 0, 1)
	line.Width = vg.Points(2)
	p.Add(line)

	return nil
}

// ciErrors adapts bars to plotter's XYer and YErrorer
type ciErrors []chart.Bar

func (e ciErrors) Len() int { return len(e) }

func (e ciErrors) XY(i int) (float64, float64) { return float64(i), e[i].Mean }

func (e ciErrors) YError(i int) (float64, float64) {
	return e[i].Mean - e[i].CILow, e[i].CIHigh - e[i].Mean
}

func drawBars(p *plot.Plot, c *chart.Chart) error {
	if len(c.Bars) == 0 {
		return nil
	}

	width := vg.Length(c.Meta.Width) * vg.Inch * 0.6 / vg.Length(len(c.Bars))
	labels := make([]string, len(c.Bars))
	for i, b := range c.Bars {
		bc, err := plotter.NewBarChart(plotter.Values{b.Mean}, width)
		if err != nil {
			return err
		}
		bc.XMin = float64(i)
		bc.Color = paletteColor(c.Meta.Palette, i, 1)
		bc.LineStyle.Width = 0
		p.Add(bc)
		labels[i] = b.Label
	}

	whiskers, err := plotter.NewYErrorBars(ciErrors(c.Bars))
	if err != nil {
		return err
	}
	whiskers.LineStyle.Width = vg.Points(1.5)
	p.Add(whiskers)
	p.NominalX(labels...)

	return nil
}

func drawBoxes(p *plot.Plot, c *chart.Chart) {
	labels := make([]string, len(c.Boxes))
	for i, b := range c.Boxes {
		labels[i] = b.Label
	}

	p.Add(&boxPlotter{boxes: c.Boxes, palette: c.Meta.Palette, horizontal: c.Horizontal})
	if c.Horizontal {
		p.NominalY(labels...)
	} else {
		p.NominalX(labels...)
	}
}

func drawViolins(p *plot.Plot, c *chart.Chart) {
	labels := make([]string, len(c.Violins))
	for i, v := range c.Violins {
		labels[i] = v.Label
	}

	p.Add(&violinPlotter{violins: c.Violins, palette: c.Meta.Palette})
	p.NominalX(labels...)
}

func drawStrip(p *plot.Plot, c *chart.Chart) error {
	s := c.Strip
	if s == nil {
		return nil
	}

	if c.Meta.LegendTitle != "" && len(s.Series) > 0 {
		p.Legend.Add(c.Meta.LegendTitle)
	}
	for i, series := range s.Series {
		if len(series.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(series.Points))
		for j, pt := range series.Points {
			xys[j].X, xys[j].Y = pt.X, pt.Y
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = paletteColor(c.Meta.Palette, i, s.Alpha)
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(series.Label, sc)
	}
	p.NominalX(s.Categories...)

	return nil
}
