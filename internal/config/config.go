// Package config loads the search configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration loaded from the config file.
type Config struct {
	// MaxDigits bounds the search: candidates of up to this many digits.
	MaxDigits int `yaml:"max_digits"`
	// Workers is the number of concurrent search goroutines; 0 means one
	// per CPU, 1 forces the deterministic sequential mode.
	Workers int `yaml:"workers"`
	// ProgressBlock groups this many consecutive digit counts per
	// progress diagnostic on stderr.
	ProgressBlock int `yaml:"progress_block"`
	// MinPersistence suppresses records at or below this value.
	MinPersistence int    `yaml:"min_persistence"`
	LogLevel       string `yaml:"log_level"`
}

// applyDefaults fills zero/empty fields with the reference search
// parameters.
func (c *Config) applyDefaults() {
	if c.MaxDigits == 0 {
		c.MaxDigits = 100
	}
	if c.ProgressBlock == 0 {
		c.ProgressBlock = 100
	}
	if c.MinPersistence == 0 {
		c.MinPersistence = 2
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate rejects parameter combinations the search cannot run with.
// Call after flag overrides have been applied.
func (c *Config) Validate() error {
	if c.MaxDigits < 2 {
		return fmt.Errorf("max_digits must be at least 2, got %d", c.MaxDigits)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.ProgressBlock < 1 {
		return fmt.Errorf("progress_block must be positive, got %d", c.ProgressBlock)
	}
	if c.MinPersistence < 1 {
		return fmt.Errorf("min_persistence must be positive, got %d", c.MinPersistence)
	}
	return nil
}

// Load reads and parses the YAML config file at path. An empty path or a
// missing file yields the default Config so the binary runs without any
// configuration on disk.
func Load(path string) (*Config, error) {
	if path == "" {
		var cfg Config
		cfg.applyDefaults()
		return &cfg, nil
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		var cfg Config
		cfg.applyDefaults()
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}
