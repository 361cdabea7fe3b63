// Package config loads sieve tuning from YAML files with
// environment-variable overrides. It exists for the CLI and embedding
// services; library callers normally use sievego's functional options
// directly.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level tuning configuration.
type Config struct {
	Sieve   SieveConfig   `yaml:"sieve"`
	Logging LoggingConfig `yaml:"logging"`
}

// SieveConfig holds algorithm selection and parallelism tuning.
type SieveConfig struct {
	SegmentSize        int  `yaml:"segmentSize"`
	Workers            int  `yaml:"workers"`
	SegmentedThreshold int  `yaml:"segmentedThreshold"`
	ParallelThreshold  int  `yaml:"parallelThreshold"`
	Parallel           bool `yaml:"parallel"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file (if path is non-empty) and applies
// environment-variable overrides. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config with the library's default tuning.
func Default() *Config {
	return &Config{
		Sieve: SieveConfig{
			SegmentSize:        1_000_000,
			Workers:            0, // 0 = max(1, NumCPU-1)
			SegmentedThreshold: 10_000_000,
			ParallelThreshold:  500_000_000,
			Parallel:           false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Sieve.SegmentSize < 0 {
		return fmt.Errorf("sieve.segmentSize must be non-negative, got %d", c.Sieve.SegmentSize)
	}
	if c.Sieve.Workers < 0 {
		return fmt.Errorf("sieve.workers must be non-negative, got %d", c.Sieve.Workers)
	}
	if c.Sieve.SegmentedThreshold < 0 || c.Sieve.ParallelThreshold < 0 {
		return fmt.Errorf("sieve thresholds must be non-negative")
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// applyEnvOverrides reads SIEVEGO_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	overrideInt("SIEVEGO_SEGMENT_SIZE", &cfg.Sieve.SegmentSize)
	overrideInt("SIEVEGO_WORKERS", &cfg.Sieve.Workers)
	overrideInt("SIEVEGO_SEGMENTED_THRESHOLD", &cfg.Sieve.SegmentedThreshold)
	overrideInt("SIEVEGO_PARALLEL_THRESHOLD", &cfg.Sieve.ParallelThreshold)
	overrideBool("SIEVEGO_PARALLEL", &cfg.Sieve.Parallel)
	overrideString("SIEVEGO_LOG_LEVEL", &cfg.Logging.Level)
	overrideString("SIEVEGO_LOG_FORMAT", &cfg.Logging.Format)
}

func overrideInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overrideBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func overrideString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
