// Package config handles YAML run configuration parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by LoadConfig when a field is absent.
const (
	DefaultMaxRounds = 4
	DefaultSleep     = time.Minute
	DefaultMinBytes  = 10
)

// Config is the root configuration structure.
type Config struct {
	Snapshot   SnapshotConfig    `yaml:"snapshot"`
	Harness    HarnessConfig     `yaml:"harness"`
	Universe   string            `yaml:"universe,omitempty"` // top-N JSON path, {date} expanded
	Collectors []CollectorConfig `yaml:"collectors"`
}

// SnapshotConfig scopes the dated output tree.
type SnapshotConfig struct {
	Root     string `yaml:"root"`
	Timezone string `yaml:"timezone,omitempty"` // IANA name; empty = KST
}

// HarnessConfig controls the retry loop.
type HarnessConfig struct {
	MaxRounds  int           `yaml:"max_rounds"`
	Sleep      time.Duration `yaml:"sleep"`
	RatePerSec float64       `yaml:"rate_per_sec,omitempty"` // 0 = no launch pacing
}

// CollectorConfig defines a single external collector.
type CollectorConfig struct {
	Name     string            `yaml:"name"`
	Command  string            `yaml:"command"`
	Args     []string          `yaml:"args,omitempty"` // {date} expanded at invocation
	OutDir   string            `yaml:"outdir"`         // {date} expanded
	Quorum   int               `yaml:"quorum,omitempty"` // 0 = size of the universe
	MinBytes int64             `yaml:"min_bytes,omitempty"`
	Dir      string            `yaml:"dir,omitempty"`
	Env      map[string]string `yaml:"env,omitempty"`
}

// LoadConfig reads and parses a YAML configuration file, applying defaults
// and validating the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Harness.MaxRounds == 0 {
		c.Harness.MaxRounds = DefaultMaxRounds
	}
	if c.Harness.Sleep == 0 {
		c.Harness.Sleep = DefaultSleep
	}
	for i := range c.Collectors {
		if c.Collectors[i].MinBytes == 0 {
			c.Collectors[i].MinBytes = DefaultMinBytes
		}
	}
}

func (c *Config) validate() error {
	if c.Harness.MaxRounds < 1 {
		return fmt.Errorf("harness.max_rounds must be >= 1, got %d", c.Harness.MaxRounds)
	}
	if c.Harness.Sleep < 0 {
		return fmt.Errorf("harness.sleep must be >= 0, got %v", c.Harness.Sleep)
	}
	if len(c.Collectors) == 0 {
		return fmt.Errorf("at least one collector is required")
	}
	seen := make(map[string]bool)
	for _, col := range c.Collectors {
		if col.Name == "" {
			return fmt.Errorf("collector name must not be empty")
		}
		if seen[col.Name] {
			return fmt.Errorf("duplicate collector name %q", col.Name)
		}
		seen[col.Name] = true
		if col.Command == "" {
			return fmt.Errorf("collector %s: command must not be empty", col.Name)
		}
		if col.OutDir == "" {
			return fmt.Errorf("collector %s: outdir must not be empty", col.Name)
		}
		if col.Quorum < 0 {
			return fmt.Errorf("collector %s: quorum must be >= 0, got %d", col.Name, col.Quorum)
		}
		if col.Quorum == 0 && c.Universe == "" {
			return fmt.Errorf("collector %s: quorum unset and no universe file configured", col.Name)
		}
	}
	return nil
}

// Location resolves the snapshot timezone. Empty means KST, the reference
// zone the snapshot day is keyed on.
func (c *Config) Location() (*time.Location, error) {
	if c.Snapshot.Timezone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.Snapshot.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot timezone: %w", err)
	}
	return loc, nil
}
