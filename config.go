package canvasutils

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RunConfig configures the window and game loop started by Run.
type RunConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
	ShowFPS   bool   `yaml:"show_fps"`
	Debug     bool   `yaml:"debug"`
}

// DefaultRunConfig returns the configuration used for zero-valued fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:  "canvas-utils",
		Width:  640,
		Height: 480,
		TPS:    60,
	}
}

// LoadRunConfig parses a YAML run configuration. Fields left out of the
// document take their DefaultRunConfig values.
func LoadRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("canvasutils: parse run config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// withDefaults fills zero-valued fields from DefaultRunConfig.
func (c RunConfig) withDefaults() RunConfig {
	def := DefaultRunConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.TPS == 0 {
		c.TPS = def.TPS
	}
	return c
}

func (c RunConfig) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("canvasutils: run config: negative window size %dx%d", c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("canvasutils: run config: negative tps %d", c.TPS)
	}
	return nil
}
