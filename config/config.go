// Package config handles hemicheck configuration via YAML files and
// environment variables.
//
// Precedence (highest to lowest):
//  1. Command-line flags (--tolerance, --b0-threshold, --db)
//  2. Environment variables (HEMICHECK_*)
//  3. Config file (YAML)
//  4. Built-in defaults
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables shared by the CLI commands.
type Config struct {
	// Tolerance is the unit-norm tolerance for b-vectors
	// (HEMICHECK_TOLERANCE).
	Tolerance float64 `yaml:"tolerance"`

	// B0Threshold is the b-value cutoff for b0 samples
	// (HEMICHECK_B0_THRESHOLD).
	B0Threshold float64 `yaml:"b0_threshold"`

	// ReportDB is the SQLite path for persisted check results; empty
	// disables persistence (HEMICHECK_REPORT_DB).
	ReportDB string `yaml:"report_db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tolerance:   1e-3,
		B0Threshold: 50,
	}
}

// LoadFromEnv returns the default configuration with environment overrides
// applied.
func LoadFromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

// LoadFromFile reads a YAML config file, layering it over the defaults and
// applying environment overrides on top.
func LoadFromFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := envFloat("HEMICHECK_TOLERANCE"); ok {
		c.Tolerance = v
	}
	if v, ok := envFloat("HEMICHECK_B0_THRESHOLD"); ok {
		c.B0Threshold = v
	}
	if v := os.Getenv("HEMICHECK_REPORT_DB"); v != "" {
		c.ReportDB = v
	}
}

func envFloat(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("config: tolerance must be positive, got %v", c.Tolerance)
	}
	if c.B0Threshold < 0 {
		return fmt.Errorf("config: b0_threshold must be non-negative, got %v", c.B0Threshold)
	}
	return nil
}
