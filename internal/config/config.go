package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Render modes.
const (
	RenderDisplay = "display"
	RenderSave    = "save"
	RenderNone    = "none"
)

// Config holds every tunable of a SalaryScope run.
type Config struct {
	// Environment selects the logger flavor (development or production)
	Environment string `env:"SALARYSCOPE_ENVIRONMENT" env-default:"development" yaml:"environment"`
	// Debug enables debug logging
	Debug bool `env:"SALARYSCOPE_DEBUG" yaml:"debug"`

	Data struct {
		// Source is a file path or an http(s) URL
		Source string `env:"SALARYSCOPE_DATA" env-default:"data_science_salaries.csv" yaml:"source"`
		// Delimiter separates fields of delimited text input
		Delimiter string `env:"SALARYSCOPE_DELIMITER" env-default:"," yaml:"delimiter"`
		// Proxy is used for URL sources
		Proxy string `env:"SALARYSCOPE_PROXY" yaml:"proxy"`
	} `yaml:"data"`

	Render struct {
		// Mode is one of display, save or none
		Mode string `env:"SALARYSCOPE_RENDER" env-default:"display" yaml:"mode"`
		// OutDir receives saved charts
		OutDir string `env:"SALARYSCOPE_OUT" env-default:"charts" yaml:"outDir"`
		// Format is the saved file extension (png, svg, pdf)
		Format string `env:"SALARYSCOPE_FORMAT" env-default:"png" yaml:"format"`
		// Viewer overrides the command used to open charts in display mode
		Viewer string `env:"SALARYSCOPE_VIEWER" yaml:"viewer"`
	} `yaml:"render"`

	Charts struct {
		Jitter float64 `env:"SALARYSCOPE_JITTER" env-default:"0.2" yaml:"jitter"`
		Alpha  float64 `env:"SALARYSCOPE_ALPHA" env-default:"0.7" yaml:"alpha"`
		// Seed makes bootstrap intervals and jitter reproducible
		Seed int64 `env:"SALARYSCOPE_SEED" env-default:"1" yaml:"seed"`
		// Bootstrap is the number of resamples for confidence intervals
		Bootstrap int `env:"SALARYSCOPE_BOOTSTRAP" env-default:"1000" yaml:"bootstrap"`
		// Confidence is the interval width in percent
		Confidence float64 `env:"SALARYSCOPE_CONFIDENCE" env-default:"95" yaml:"confidence"`
	} `yaml:"charts"`
}

// Load reads the yaml file at configPath, applying env overrides and defaults.
// An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cleanenv cannot.
func (c *Config) Validate() error {
	switch c.Render.Mode {
	case RenderDisplay, RenderSave, RenderNone:
	default:
		return fmt.Errorf("invalid render mode %q (want display, save or none)", c.Render.Mode)
	}
	switch c.Render.Format {
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("invalid chart format %q (want png, svg or pdf)", c.Render.Format)
	}
	if len([]rune(c.Data.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Data.Delimiter)
	}
	if c.Charts.Bootstrap < 1 {
		return fmt.Errorf("bootstrap resamples must be positive, got %d", c.Charts.Bootstrap)
	}
	if c.Charts.Confidence <= 0 || c.Charts.Confidence >= 100 {
		return fmt.Errorf("confidence must be within (0, 100), got %v", c.Charts.Confidence)
	}

	return nil
}
