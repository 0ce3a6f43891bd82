// Package config loads the experiment configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything tunable about an experiment session.
type Config struct {
	// DataFile is the CSV file task results are appended to.
	DataFile string `yaml:"data_file"`
	// AssetsDir optionally overrides the built-in sprite set.
	AssetsDir string `yaml:"assets_dir"`
	FPS       int    `yaml:"fps"`
	Screen    Screen `yaml:"screen"`
	// Tasks restricts the battery to a subset, by name. Empty means all.
	Tasks []string `yaml:"tasks"`
	// Timeouts overrides per-task time limits, in seconds, keyed by task name.
	Timeouts map[string]int `yaml:"timeouts"`
}

// Screen is the logical playfield size in terminal cells.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataFile: "experiment_data.csv",
		FPS:      30,
		Screen:   Screen{Width: 100, Height: 40},
	}
}

// Load reads and validates a config file. A missing file is not an error:
// the defaults are returned so the tool runs without any setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DataFile == "" {
		return fmt.Errorf("data_file is required")
	}
	if cfg.FPS < 1 || cfg.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120, got %d", cfg.FPS)
	}
	if cfg.Screen.Width < 40 || cfg.Screen.Height < 20 {
		return fmt.Errorf("screen must be at least 40x20, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	for name, secs := range cfg.Timeouts {
		if secs < 1 {
			return fmt.Errorf("timeout for %q must be positive, got %d", name, secs)
		}
	}
	return nil
}

// Timeout returns the configured override for a task, or zero if none is set.
func (c *Config) Timeout(taskName string) time.Duration {
	if secs, ok := c.Timeouts[taskName]; ok {
		return time.Duration(secs) * time.Second
	}
	return 0
}

// FrameInterval converts the configured FPS into a tick interval.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
