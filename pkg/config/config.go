// Package config loads interpreter settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = ".golam.yaml"

type Config struct {
	// LibraryPath lists directories searched for imported .lc files after
	// the importing file's directory.
	LibraryPath []string `yaml:"library_path"`
	// MaxPasses bounds each reduction; 0 means unbounded.
	MaxPasses int `yaml:"max_passes"`
	// Trace is the number of rewrite events kept per statement; 0 disables.
	Trace int `yaml:"trace"`
	// Stats prints reduction statistics to stderr.
	Stats bool `yaml:"stats"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{LogLevel: "warn"}
}

// Load reads path. An empty path means DefaultFile, which may be absent.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultFile
	}
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a config document, rejecting unknown fields.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxPasses < 0 {
		return fmt.Errorf("max_passes must not be negative, got %d", c.MaxPasses)
	}
	if c.Trace < 0 {
		return fmt.Errorf("trace must not be negative, got %d", c.Trace)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
