package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salaryscope/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "data_science_salaries.csv", cfg.Data.Source)
	require.Equal(t, ",", cfg.Data.Delimiter)
	require.Equal(t, config.RenderDisplay, cfg.Render.Mode)
	require.Equal(t, "png", cfg.Render.Format)
	require.InDelta(t, 0.2, cfg.Charts.Jitter, 1e-12)
	require.InDelta(t, 0.7, cfg.Charts.Alpha, 1e-12)
	require.Equal(t, 1000, cfg.Charts.Bootstrap)
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
environment: production
data:
  source: other.csv
  delimiter: ";"
render:
  mode: save
  outDir: out
charts:
  jitter: 0.1
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("SALARYSCOPE_ALPHA", "0.5")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "other.csv", cfg.Data.Source)
	require.Equal(t, ";", cfg.Data.Delimiter)
	require.Equal(t, config.RenderSave, cfg.Render.Mode)
	require.Equal(t, "out", cfg.Render.OutDir)
	require.InDelta(t, 0.1, cfg.Charts.Jitter, 1e-12)
	require.InDelta(t, 0.5, cfg.Charts.Alpha, 1e-12)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "render mode", mutate: func(c *config.Config) { c.Render.Mode = "print" }},
		{name: "format", mutate: func(c *config.Config) { c.Render.Format = "gif" }},
		{name: "delimiter", mutate: func(c *config.Config) { c.Data.Delimiter = ";;" }},
		{name: "bootstrap", mutate: func(c *config.Config) { c.Charts.Bootstrap = 0 }},
		{name: "confidence", mutate: func(c *config.Config) { c.Charts.Confidence = 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
