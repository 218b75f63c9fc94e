// Package driver runs a full analysis: load the dataset, print the
// statistics report, then build and render every chart in a fixed order.
// The first failure aborts the remaining steps.
package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/salaryscope/internal/chart"
	"github.com/fr4nk3nst1ner/salaryscope/internal/config"
	"github.com/fr4nk3nst1ner/salaryscope/internal/loader"
	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/internal/render"
	"github.com/fr4nk3nst1ner/salaryscope/internal/stats"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/logger"
)

const progressTemplate = `{{string . "step"}} {{counters . }} {{bar . }} {{etime . }}`

// Options wires the collaborators of a run
type Options struct {
	// Report receives the statistics blocks
	Report io.Writer
	// Renderer consumes the charts
	Renderer render.Renderer
	// Progress receives a progress bar over the chart steps; none when nil
	Progress io.Writer
}

// Result is what a successful run produced
type Result struct {
	Rows    int
	Summary *stats.Summary
	Charts  []*chart.Chart
}

type step struct {
	name  string
	build func(t chart.Table) (*chart.Chart, error)
}

// Run executes the analysis described by cfg.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	delimiter := ','
	if r := []rune(cfg.Data.Delimiter); len(r) > 0 {
		delimiter = r[0]
	}
	l := loader.New(loader.Options{Delimiter: delimiter, Proxy: cfg.Data.Proxy})

	logger.Info(ctx, "loading dataset", zap.String("source", cfg.Data.Source))
	tbl, err := l.Load(ctx, cfg.Data.Source)
	if err != nil {
		return nil, err
	}

	summary, err := stats.Summarize(tbl, models.ColSalaryUSD)
	if err != nil {
		return nil, err
	}
	if opts.Report != nil {
		if err := summary.Fprint(opts.Report); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
	}

	b := chart.NewBuilder(chart.Options{
		Seed:       cfg.Charts.Seed,
		Bootstrap:  cfg.Charts.Bootstrap,
		Confidence: cfg.Charts.Confidence,
	})
	steps := []step{
		{name: "salary distribution", build: b.SalaryDistribution},
		{name: "salary by experience", build: b.SalaryByExperience},
		{name: "salary by job title", build: b.SalaryByJobTitle},
		{name: "work model impact", build: b.WorkModelImpact},
		{name: "salary over time", build: func(t chart.Table) (*chart.Chart, error) {
			return b.SalaryOverTimeAdjusted(t, cfg.Charts.Jitter, cfg.Charts.Alpha)
		}},
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.Discard{}
	}

	var bar *pb.ProgressBar
	if opts.Progress != nil {
		bar = pb.New(len(steps)).SetTemplateString(progressTemplate).SetWriter(opts.Progress)
		bar.Start()
		defer bar.Finish()
	}

	result := &Result{Rows: tbl.Len(), Summary: summary}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if bar != nil {
			bar.Set("step", s.name)
		}

		c, err := s.build(tbl)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		if err := renderer.Render(ctx, c); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", s.name, err)
		}
		logger.Debug(ctx, "chart done", zap.String("chart", c.Meta.Name))

		result.Charts = append(result.Charts, c)
		if bar != nil {
			bar.Increment()
		}
	}

	return result, nil
}
