// Package render turns chart descriptions into images. A Renderer either
// saves charts, shows them and waits for the viewer, or records them in
// memory.
package render

import (
	"context"
	"fmt"
	"sync"

	"github.com/fr4nk3nst1ner/salaryscope/internal/chart"
)

// Renderer consumes a chart description
type Renderer interface {
	Render(ctx context.Context, c *chart.Chart) error
}

// Recorder keeps every rendered chart in memory
type Recorder struct {
	mu     sync.Mutex
	charts []*chart.Chart
}

// Render implements Renderer
func (r *Recorder) Render(_ context.Context, c *chart.Chart) error {
	if c == nil {
		return fmt.Errorf("nil chart")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.charts = append(r.charts, c)

	return nil
}

// Charts returns the recorded charts in render order
func (r *Recorder) Charts() []*chart.Chart {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*chart.Chart, len(r.charts))
	copy(out, r.charts)

	return out
}

// Discard drops every chart
type Discard struct{}

// Render implements Renderer
func (Discard) Render(context.Context, *chart.Chart) error { return nil }

// Modes accepted by New
const (
	ModeDisplay = "display"
	ModeSave    = "save"
	ModeNone    = "none"
)

// New returns the Renderer for mode
func New(mode, dir, format, viewer string) (Renderer, error) {
	switch mode {
	case ModeDisplay:
		return NewDisplayRenderer(viewer), nil
	case ModeSave:
		return &FileRenderer{Dir: dir, Format: format}, nil
	case ModeNone:
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown render mode %q", mode)
	}
}
