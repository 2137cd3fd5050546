// Package config loads the optional YAML configuration file. Flags override
// file values; file values override defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file-level configuration
type Config struct {
	Version     string        `yaml:"version"`
	Regions     []string      `yaml:"regions,omitempty"`
	Services    []string      `yaml:"services,omitempty"`
	Workers     int           `yaml:"workers,omitempty"`
	CallTimeout time.Duration `yaml:"call_timeout,omitempty"`
	Output      string        `yaml:"output,omitempty"`
	// Denylist entries are added on top of the built-in exclusions
	Denylist []string    `yaml:"denylist,omitempty"`
	Watch    WatchConfig `yaml:"watch,omitempty"`
}

// WatchConfig configures the continuous inventory daemon
type WatchConfig struct {
	Interval    time.Duration `yaml:"interval,omitempty"`
	MetricsPort int           `yaml:"metrics_port,omitempty"`
	Storage     string        `yaml:"storage,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Version:     "v1",
		Workers:     10,
		CallTimeout: 30 * time.Second,
		Watch: WatchConfig{
			Interval:    1 * time.Hour,
			MetricsPort: 2112,
			Storage:     "./louhi.db",
		},
	}
}

// Load reads configuration from file, layered over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate ensures config values are usable
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if c.CallTimeout < 0 {
		return fmt.Errorf("call_timeout must not be negative")
	}
	if c.Watch.Interval < 0 {
		return fmt.Errorf("watch.interval must not be negative")
	}
	return nil
}
