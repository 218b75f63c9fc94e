// Package main is the SalaryScope command line: it loads the salaries dataset,
// prints the descriptive statistics and renders the salary charts.
package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/salaryscope/internal/config"
	"github.com/fr4nk3nst1ner/salaryscope/internal/driver"
	"github.com/fr4nk3nst1ner/salaryscope/internal/models"
	"github.com/fr4nk3nst1ner/salaryscope/internal/render"
	"github.com/fr4nk3nst1ner/salaryscope/internal/ui"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/logger"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/serrors"
)

// flags overriding the loaded config
type flags struct {
	configPath string
	data       string
	renderMode string
	outDir     string
	format     string
	jitter     float64
	alpha      float64
	seed       int64
	debug      bool
	silence    bool
	noColor    bool
	examples   bool
}

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 SalaryScope Usage Examples 📋")
	fmt.Println("\n1. Analyze data_science_salaries.csv in the working directory and show every chart:")
	fmt.Println("   salaryscope")

	fmt.Println("\n2. Analyze another file and save the charts as SVG into ./out:")
	fmt.Println("   salaryscope --data salaries.csv --render save --out out --format svg")

	fmt.Println("\n3. Print the statistics only, without the banner:")
	fmt.Println("   salaryscope --render none --silence")

	fmt.Println("\n4. Load a dataset over HTTP and loosen the strip plot jitter:")
	fmt.Println("   salaryscope --data https://example.com/salaries.csv --jitter 0.35 --alpha 0.5")

	fmt.Println("\n5. Read settings from a yaml file:")
	fmt.Println("   salaryscope -c salaryscope.yml")
}

// apply copies the flags that were set on the command line onto cfg
func (f *flags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("data") {
		cfg.Data.Source = f.data
	}
	if changed("render") {
		cfg.Render.Mode = f.renderMode
	}
	if changed("out") {
		cfg.Render.OutDir = f.outDir
	}
	if changed("format") {
		cfg.Render.Format = f.format
	}
	if changed("jitter") {
		cfg.Charts.Jitter = f.jitter
	}
	if changed("alpha") {
		cfg.Charts.Alpha = f.alpha
	}
	if changed("seed") {
		cfg.Charts.Seed = f.seed
	}
	if f.debug {
		cfg.Debug = true
	}
}

func rootCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "salaryscope",
		Short:         "Describe and chart the data science salaries dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.examples {
				printExamples()
				return nil
			}
			if f.noColor {
				pterm.DisableColor()
			}

			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger.Setup(cfg.Environment, cfg.Debug)
			ui.PrintBanner(os.Stderr, f.silence)

			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file path (yaml)")
	fs.StringVar(&f.data, "data", "", "Dataset path or URL (csv, csv.gz or html)")
	fs.StringVar(&f.renderMode, "render", config.RenderDisplay, "Render mode: display, save or none")
	fs.StringVar(&f.outDir, "out", "charts", "Directory for saved charts")
	fs.StringVar(&f.format, "format", "png", "Saved chart format: png, svg or pdf")
	fs.Float64Var(&f.jitter, "jitter", 0.2, "Strip plot jitter")
	fs.Float64Var(&f.alpha, "alpha", 0.7, "Strip plot point opacity")
	fs.Int64Var(&f.seed, "seed", 1, "Seed for bootstrap intervals and jitter")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.silence, "silence", false, "Silence the banner")
	fs.BoolVar(&f.silence, "nobanner", false, "Silence the banner")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&f.examples, "examples", false, "Show usage examples")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	renderer, err := render.New(cfg.Render.Mode, cfg.Render.OutDir, cfg.Render.Format, cfg.Render.Viewer)
	if err != nil {
		return err
	}

	opts := driver.Options{Report: os.Stdout, Renderer: renderer}
	// the display prompt and the progress bar would fight over the terminal
	if cfg.Render.Mode != config.RenderDisplay {
		opts.Progress = os.Stderr
	}

	result, err := driver.Run(ctx, cfg, opts)
	if err != nil {
		return err
	}

	median := math.NaN()
	if salary, ok := result.Summary.Column(models.ColSalaryUSD); ok && salary.Q50.Defined {
		median = salary.Q50.V
	}
	pterm.Fprintln(os.Stderr, fmt.Sprintf("%d rows analyzed, median salary %s, %d charts",
		result.Rows, ui.ColorizeSalary(median), len(result.Charts)))
	if cfg.Render.Mode == config.RenderSave {
		logger.Info(ctx, "charts saved", zap.String("dir", cfg.Render.OutDir))
	}

	return nil
}

// describeError turns a run error into a message for the terminal
func describeError(err error) string {
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return fmt.Sprintf("input not found: %v", err)
	case errors.Is(err, serrors.ErrMissingColumn):
		return fmt.Sprintf("dataset is missing a column: %v", err)
	case errors.Is(err, serrors.ErrParse):
		return fmt.Sprintf("could not parse dataset: %v", err)
	default:
		return err.Error()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := rootCommand().ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	stop()
	if err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(describeError(err))
		os.Exit(1) //nolint: gocritic
	}
}
