// Package config provides configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the run configuration. The base directory itself is not
// configuration: it is always an explicit argument to the run.
type Config struct {
	// OutputDir is the name of the output subdirectory created under the
	// base directory.
	OutputDir string `yaml:"output_dir"`

	// DefaultFramerate is used when no rate can be estimated from the
	// frame timestamps.
	DefaultFramerate float64 `yaml:"default_framerate"`

	// FFmpegPath overrides ffmpeg executable discovery when set.
	FFmpegPath string `yaml:"ffmpeg_path"`

	// LogLevel is one of debug, info, warn, error, quiet.
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutputDir:        "videos",
		DefaultFramerate: 24.0,
		LogLevel:         "info",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the run cannot work with.
func (c Config) Validate() error {
	if c.OutputDir == "" || filepath.Base(c.OutputDir) != c.OutputDir {
		return fmt.Errorf("output_dir must be a plain directory name, got %q", c.OutputDir)
	}
	if c.DefaultFramerate <= 0 {
		return fmt.Errorf("default_framerate must be positive, got %v", c.DefaultFramerate)
	}
	return nil
}
