package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/fr4nk3nst1ner/salaryscope/internal/chart"
	"github.com/fr4nk3nst1ner/salaryscope/internal/utils"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/logger"
)

// DisplayRenderer shows each chart in an external viewer and blocks until the
// user dismisses it, so charts are looked at one after another.
type DisplayRenderer struct {
	// Dir holds the temporary images, a new temp dir when empty
	Dir string
	// Open launches the viewer, the OS default when nil
	Open func(ctx context.Context, path string) error
	// Wait blocks until the chart is dismissed, a pterm prompt when nil
	Wait func(ctx context.Context, c *chart.Chart) error
}

// NewDisplayRenderer returns a DisplayRenderer using viewer, or the OS default
// viewer when empty
func NewDisplayRenderer(viewer string) *DisplayRenderer {
	return &DisplayRenderer{
		Open: func(ctx context.Context, path string) error {
			return OpenViewer(ctx, viewer, path)
		},
		Wait: WaitForContinue,
	}
}

// Render implements Renderer
func (r *DisplayRenderer) Render(ctx context.Context, c *chart.Chart) error {
	if r.Dir == "" {
		dir, err := os.MkdirTemp("", "salaryscope-")
		if err != nil {
			return fmt.Errorf("creating temp dir: %w", err)
		}
		r.Dir = dir
	}

	path := filepath.Join(r.Dir, c.Meta.Name+".png")
	if err := Save(c, path); err != nil {
		return err
	}

	open := r.Open
	if open == nil {
		open = func(ctx context.Context, path string) error { return OpenViewer(ctx, "", path) }
	}
	if err := open(ctx, path); err != nil {
		logger.Warn(ctx, "could not open viewer", zap.String("path", path), zap.Error(err))
	}

	wait := r.Wait
	if wait == nil {
		wait = WaitForContinue
	}

	return wait(ctx, c)
}

// OpenViewer starts viewer (or the platform default) on path without waiting
// for it to exit
func OpenViewer(ctx context.Context, viewer, path string) error {
	var cmd *exec.Cmd
	switch {
	case viewer != "":
		cmd = exec.CommandContext(ctx, viewer, path)
	case runtime.GOOS == "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case runtime.GOOS == "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", path)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()

	return nil
}

// WaitForContinue blocks on an interactive prompt on stdin
func WaitForContinue(ctx context.Context, c *chart.Chart) error {
	return PromptOn(os.Stdin)(ctx, c)
}

// PromptOn returns a wait function that prompts on in. When in is not a
// terminal nobody can answer, so the chart is left open and it returns at
// once. Cancelling ctx abandons the prompt.
func PromptOn(in *os.File) func(ctx context.Context, c *chart.Chart) error {
	return func(ctx context.Context, c *chart.Chart) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if in == nil || !term.IsTerminal(int(in.Fd())) {
			logger.Warn(ctx, "stdin is not a terminal, not waiting for the chart to be dismissed",
				zap.String("chart", c.Meta.Name))
			return nil
		}

		done := make(chan error, 1)
		go func() {
			_, err := pterm.DefaultInteractiveContinue.
				WithDefaultText(fmt.Sprintf("Showing %q. Continue?", utils.TruncateString(c.Meta.Title, 60))).
				Show()
			done <- err
		}()

		select {
		case err := <-done:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
