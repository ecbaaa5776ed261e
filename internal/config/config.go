// Package config loads awfy run settings from defaults, a YAML file and
// AWFY_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AnatoleLucet/awfy"
	"gopkg.in/yaml.v3"
)

// Benchmark holds the loop counts of one benchmark.
type Benchmark struct {
	Iterations int `yaml:"iterations"`
	WarmUp     int `yaml:"warmup"`
	Inner      int `yaml:"inner"`
}

// Override replaces the defaults for one benchmark. Unset fields keep the
// default; an explicit zero is kept as zero.
type Override struct {
	Iterations *int `yaml:"iterations"`
	WarmUp     *int `yaml:"warmup"`
	Inner      *int `yaml:"inner"`
}

type Config struct {
	Defaults   Benchmark           `yaml:"defaults"`
	Benchmarks map[string]Override `yaml:"benchmarks"`

	Parallel    bool   `yaml:"parallel"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	MetricsFile string `yaml:"metrics_file"`
}

func Default() Config {
	return Config{
		Defaults: Benchmark{
			Iterations: 1,
			WarmUp:     0,
			Inner:      1,
		},
		LogLevel: "info",
	}
}

// Load returns the merged configuration. A missing file leaves the
// defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("AWFY_ITERATIONS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.Iterations = i
		}
	}
	if v := os.Getenv("AWFY_WARMUP"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.WarmUp = i
		}
	}
	if v := os.Getenv("AWFY_INNER"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.Inner = i
		}
	}
	if v := os.Getenv("AWFY_PARALLEL"); v != "" {
		cfg.Parallel = v == "true" || v == "1"
	}
	if v := os.Getenv("AWFY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("AWFY_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("AWFY_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
}

func (c Config) Validate() error {
	if c.Defaults.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1")
	}
	if c.Defaults.WarmUp < 0 {
		return fmt.Errorf("warmup must be >= 0")
	}
	if c.Defaults.Inner < 1 {
		return fmt.Errorf("inner must be >= 1")
	}

	for name, o := range c.Benchmarks {
		if _, err := awfy.Lookup(name); err != nil {
			return err
		}
		if o.Iterations != nil && *o.Iterations < 1 {
			return fmt.Errorf("%s: iterations must be >= 1", name)
		}
		if o.WarmUp != nil && *o.WarmUp < 0 {
			return fmt.Errorf("%s: warmup must be >= 0", name)
		}
		if o.Inner != nil && *o.Inner < 1 {
			return fmt.Errorf("%s: inner must be >= 1", name)
		}
	}
	return nil
}

// For returns the loop counts of the named benchmark.
func (c Config) For(name string) Benchmark {
	b := c.Defaults

	o, ok := c.Benchmarks[name]
	if !ok {
		return b
	}
	if o.Iterations != nil {
		b.Iterations = *o.Iterations
	}
	if o.WarmUp != nil {
		b.WarmUp = *o.WarmUp
	}
	if o.Inner != nil {
		b.Inner = *o.Inner
	}
	return b
}

// Options converts b into run options for awfy.Run.
func (b Benchmark) Options() awfy.RunOptions {
	return awfy.RunOptions{
		Iterations:      b.Iterations,
		WarmUp:          b.WarmUp,
		InnerIterations: b.Inner,
	}
}
