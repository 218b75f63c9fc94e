package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salaryscope/internal/config"
	"github.com/fr4nk3nst1ner/salaryscope/pkg/serrors"
)

func TestFlagsOverrideConfig(t *testing.T) {
	t.Setenv("SALARYSCOPE_RENDER", "save")
	t.Setenv("SALARYSCOPE_JITTER", "0.5")

	cfg, err := config.Load("")
	require.NoError(t, err)

	cmd := rootCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--data", "other.csv", "--alpha", "0.3", "--debug"}))

	f := &flags{}
	f.data, _ = cmd.Flags().GetString("data")
	f.alpha, _ = cmd.Flags().GetFloat64("alpha")
	f.debug, _ = cmd.Flags().GetBool("debug")
	f.apply(cmd, cfg)

	require.Equal(t, "other.csv", cfg.Data.Source)
	require.InDelta(t, 0.3, cfg.Charts.Alpha, 1e-12)
	require.True(t, cfg.Debug)
	// untouched flags keep the environment values
	require.Equal(t, config.RenderSave, cfg.Render.Mode)
	require.InDelta(t, 0.5, cfg.Charts.Jitter, 1e-12)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", serrors.With(serrors.ErrNotFound, "input x.csv not found"), "input not found: "},
		{"missing column", serrors.MissingColumn("salary_in_usd"), "dataset is missing a column: "},
		{"parse", fmt.Errorf("load: %w", serrors.With(serrors.ErrParse, "bad row")), "could not parse dataset: "},
		{"other", fmt.Errorf("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Contains(t, describeError(tt.err), tt.want)
		})
	}
}

func TestRunWithoutRendering(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Data.Source = "testdata/missing.csv"
	cfg.Render.Mode = config.RenderNone

	err = run(context.Background(), cfg)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
