// SPDX-License-Identifier: MIT
//
// Package config loads the wordwheel YAML configuration.
//
// Every key is optional; missing keys keep the values of Default().
// Environment overrides are applied after the file:
//
//	WORDWHEEL_DB         -> database.path
//	WORDWHEEL_LOG_LEVEL  -> logging.level
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables consulted by Load.
const (
	EnvDatabasePath = "WORDWHEEL_DB"
	EnvLogLevel     = "WORDWHEEL_LOG_LEVEL"
)

// Config is the root of the configuration file.
type Config struct {
	Database Database `yaml:"database"`
	Ingest   Ingest   `yaml:"ingest"`
	Logging  Logging  `yaml:"logging"`
}

// Database configures the word store.
type Database struct {
	Path      string `yaml:"path"`
	BatchSize int    `yaml:"batch_size"`
}

// Ingest configures dictionary processing.
type Ingest struct {
	// ProgressEvery is the number of words between progress reports; 0 disables them.
	ProgressEvery int `yaml:"progress_every"`
}

// Logging configures the zap logger.
type Logging struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database: Database{
			Path:      "wordshapes.db",
			BatchSize: 1000,
		},
		Ingest: Ingest{
			ProgressEvery: 10000,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads path over Default(). An empty path or a missing file yields the
// defaults (plus environment overrides).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("Load(%q): %w", path, err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("Load(%q): parse: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}

	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("Save(%q): %w", path, err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("Save(%q): marshal: %w", path, err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}

	return nil
}

// Validate reports values no component can run with.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is empty: %w", ErrInvalidConfig)
	}
	if c.Database.BatchSize < 1 {
		return fmt.Errorf("database.batch_size = %d, want >= 1: %w", c.Database.BatchSize, ErrInvalidConfig)
	}
	if c.Ingest.ProgressEvery < 0 {
		return fmt.Errorf("ingest.progress_every = %d, want >= 0: %w", c.Ingest.ProgressEvery, ErrInvalidConfig)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}
