package render_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salaryscope/internal/chart"
	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/internal/render"
)

func sampleCharts(t *testing.T) []*chart.Chart {
	t.Helper()

	levels := []string{"EN", "MI", "SE", "EX"}
	workModels := []string{"Remote", "Onsite", "Hybrid"}
	var rows [][]string
	for i := 0; i < 60; i++ {
		rows = append(rows, []string{
			fmt.Sprint(2020 + i%4),
			levels[i%len(levels)],
			fmt.Sprintf("Title %d", i%7),
			fmt.Sprint(40000 + 2500*i + 1000*(i%5)),
			workModels[i%len(workModels)],
		})
	}
	tbl := models.NewTable(
		[]string{"work_year", "experience_level", "job_title", "salary_in_usd", "work_models"},
		rows,
	)

	b := chart.NewBuilder(chart.Options{Seed: 1})
	var charts []*chart.Chart
	for _, build := range []func() (*chart.Chart, error){
		func() (*chart.Chart, error) { return b.SalaryDistribution(tbl) },
		func() (*chart.Chart, error) { return b.SalaryByExperience(tbl) },
		func() (*chart.Chart, error) { return b.SalaryByJobTitle(tbl) },
		func() (*chart.Chart, error) { return b.WorkModelImpact(tbl) },
		func() (*chart.Chart, error) { return b.SalaryOverTimeAdjusted(tbl, 0.2, 0.7) },
	} {
		c, err := build()
		require.NoError(t, err)
		charts = append(charts, c)
	}

	return charts
}

func TestFileRendererWritesEveryChart(t *testing.T) {
	for _, format := range []string{"png", "svg"} {
		t.Run(format, func(t *testing.T) {
			r := &render.FileRenderer{Dir: filepath.Join(t.TempDir(), "charts"), Format: format}
			for _, c := range sampleCharts(t) {
				require.NoError(t, r.Render(context.Background(), c))

				info, err := os.Stat(r.Path(c))
				require.NoError(t, err)
				require.Greater(t, info.Size(), int64(0))
			}
		})
	}
}

func TestDrawUnknownKind(t *testing.T) {
	_, err := render.Draw(&chart.Chart{Kind: "pie", Meta: chart.Meta{Name: "pie"}})
	require.Error(t, err)
}

func TestDisplayRendererBlocksUntilDismissed(t *testing.T) {
	var opened []string
	var waited []string
	r := &render.DisplayRenderer{
		Dir: t.TempDir(),
		Open: func(_ context.Context, path string) error {
			opened = append(opened, filepath.Base(path))
			return nil
		},
		Wait: func(_ context.Context, c *chart.Chart) error {
			waited = append(waited, c.Meta.Name)
			return nil
		},
	}

	charts := sampleCharts(t)[:2]
	for _, c := range charts {
		require.NoError(t, r.Render(context.Background(), c))
	}

	require.Equal(t, []string{"salary_distribution.png", "salary_by_experience.png"}, opened)
	require.Equal(t, []string{"salary_distribution", "salary_by_experience"}, waited)
}

func TestDisplayRendererPropagatesWaitError(t *testing.T) {
	r := &render.DisplayRenderer{
		Dir:  t.TempDir(),
		Open: func(context.Context, string) error { return fmt.Errorf("no viewer") },
		Wait: func(context.Context, *chart.Chart) error { return context.Canceled },
	}

	err := r.Render(context.Background(), sampleCharts(t)[0])
	require.ErrorIs(t, err, context.Canceled)
}

func TestPromptOnNonTerminalReturns(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer devNull.Close()

	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pr.Close()
	defer pw.Close()

	c := sampleCharts(t)[0]
	for name, in := range map[string]*os.File{"devnull": devNull, "pipe": pr, "nil": nil} {
		t.Run(name, func(t *testing.T) {
			done := make(chan error, 1)
			go func() { done <- render.PromptOn(in)(context.Background(), c) }()

			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("prompt blocked without a terminal")
			}
		})
	}
}

func TestPromptOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := render.PromptOn(os.Stdin)(ctx, sampleCharts(t)[0])
	require.ErrorIs(t, err, context.Canceled)
}

func TestDisplayRendererWithoutTerminal(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer devNull.Close()

	r := &render.DisplayRenderer{
		Dir:  t.TempDir(),
		Open: func(context.Context, string) error { return nil },
		Wait: render.PromptOn(devNull),
	}
	for _, c := range sampleCharts(t) {
		require.NoError(t, r.Render(context.Background(), c))
	}
}

func TestRecorder(t *testing.T) {
	var r render.Recorder
	charts := sampleCharts(t)
	for _, c := range charts {
		require.NoError(t, r.Render(context.Background(), c))
	}
	require.Equal(t, charts, r.Charts())
	require.Error(t, r.Render(context.Background(), nil))
}

func TestNew(t *testing.T) {
	r, err := render.New(render.ModeSave, "out", "svg", "")
	require.NoError(t, err)
	require.IsType(t, &render.FileRenderer{}, r)

	r, err = render.New(render.ModeDisplay, "", "", "feh")
	require.NoError(t, err)
	require.IsType(t, &render.DisplayRenderer{}, r)

	r, err = render.New(render.ModeNone, "", "", "")
	require.NoError(t, err)
	require.IsType(t, render.Discard{}, r)

	_, err = render.New("print", "", "", "")
	require.Error(t, err)
}
