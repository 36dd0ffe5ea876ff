// Package config provides the harness's hard-wired parameter object.
//
// Every value here is fixed by the design: there is no command-line
// surface and no environment variable ever read. viper is
// still used as the typed-defaults layer so the constants live in one
// validated struct instead of scattered literals, and so tests can load an
// alternate set of values via LoadFromReader without touching the
// filesystem.
package config

import (
	"bytes"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all hard-wired parameters for the benchmarking harness.
type Config struct {
	Bench BenchConfig `mapstructure:"bench"`
	Log   LogConfig   `mapstructure:"log"`
}

// BenchConfig holds the scenario driver's hard-wired parameters.
type BenchConfig struct {
	// MinN and MaxN bound the n ladder; n iterates by doubling from MinN
	// to MaxN inclusive.
	MinN int64 `mapstructure:"min_n"`
	MaxN int64 `mapstructure:"max_n"`

	// Alphas is the queries-per-deletion ladder used by worst_case and
	// random workloads.
	Alphas []float64 `mapstructure:"alphas"`

	// CSVPath is the append-mode sink for timing rows.
	CSVPath string `mapstructure:"csv_path"`

	// BestOf, MinRepeats and MinTestTimeMS parameterize the best-of-k
	// adaptive-repetition timer.
	BestOf        int   `mapstructure:"best_of"`
	MinRepeats    int   `mapstructure:"min_repeats"`
	MinTestTimeMS int64 `mapstructure:"min_test_time_ms"`

	// SkipQueryOneAbove is the n threshold above which the array-parent
	// naive and recursive variants are skipped for the query_one workload.
	SkipQueryOneAbove int64 `mapstructure:"skip_query_one_above"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// Default returns the harness's hard-wired configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are compiled-in literals; a failure here is a
		// programmer error, not a runtime condition.
		panic(fmt.Sprintf("config: invalid built-in defaults: %v", err))
	}
	return &cfg
}

// LoadFromReader loads configuration from raw bytes (useful for testing
// alternate parameter sets without touching the filesystem or environment).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults installs the harness's hard-wired parameters.
func setDefaults(v *viper.Viper) {
	v.SetDefault("bench.min_n", 2)
	v.SetDefault("bench.max_n", 1<<22) // 2^22
	v.SetDefault("bench.alphas", []float64{0.125, 0.25, 0.5, 1, 2, 4, 8})
	v.SetDefault("bench.csv_path", "../data/data.csv")
	v.SetDefault("bench.best_of", 3)
	v.SetDefault("bench.min_repeats", 5)
	v.SetDefault("bench.min_test_time_ms", 1000)
	v.SetDefault("bench.skip_query_one_above", 65536)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Bench.MinN < 2 {
		return fmt.Errorf("bench.min_n must be >= 2, got %d", c.Bench.MinN)
	}
	if c.Bench.MaxN < c.Bench.MinN {
		return fmt.Errorf("bench.max_n (%d) must be >= bench.min_n (%d)", c.Bench.MaxN, c.Bench.MinN)
	}
	if len(c.Bench.Alphas) == 0 {
		return fmt.Errorf("bench.alphas must be non-empty")
	}
	if c.Bench.BestOf < 1 {
		return fmt.Errorf("bench.best_of must be >= 1, got %d", c.Bench.BestOf)
	}
	if c.Bench.MinRepeats < 1 {
		return fmt.Errorf("bench.min_repeats must be >= 1, got %d", c.Bench.MinRepeats)
	}
	if c.Bench.MinTestTimeMS < 0 {
		return fmt.Errorf("bench.min_test_time_ms must be >= 0, got %d", c.Bench.MinTestTimeMS)
	}
	if c.Bench.CSVPath == "" {
		return fmt.Errorf("bench.csv_path must be set")
	}
	return nil
}
