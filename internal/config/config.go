// Package config loads the optional YAML configuration for the wfpfix CLI.
//
// The defect threshold date and the A-file profile boundary are deployment
// knowledge rather than properties of the file format, so they are exposed
// here instead of living as hardcoded constants in the tool.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oceanobservatories/wfp-tools/format"
)

// Config mirrors the YAML configuration file.
//
// Example:
//
//	threshold: 2018-01-01
//	max_a_profile: 178
//	backup: zstd
//	dry_run: false
type Config struct {
	// Threshold is the defect threshold date, as YYYY-MM-DD or RFC 3339.
	// Empty means the built-in default.
	Threshold string `yaml:"threshold"`

	// MaxAProfile is the last profile eligible for A-file correction.
	// Nil means the built-in default.
	MaxAProfile *int `yaml:"max_a_profile"`

	// Backup selects the backup codec: none, zstd, s2 or lz4.
	// Empty disables backups.
	Backup string `yaml:"backup"`

	// DryRun evaluates corrections without writing.
	DryRun bool `yaml:"dry_run"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks field values without applying them.
func (c *Config) Validate() error {
	if c.Threshold != "" {
		if _, err := c.ThresholdTime(); err != nil {
			return err
		}
	}

	if c.MaxAProfile != nil && *c.MaxAProfile < 0 {
		return fmt.Errorf("max_a_profile must be non-negative, got %d", *c.MaxAProfile)
	}

	if _, ok := format.ParseCompressionType(c.Backup); !ok {
		return fmt.Errorf("unknown backup codec %q", c.Backup)
	}

	return nil
}

// ThresholdTime parses the threshold as a UTC instant. Accepts a plain date
// (YYYY-MM-DD) or a full RFC 3339 timestamp.
func (c *Config) ThresholdTime() (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", c.Threshold, time.UTC); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, c.Threshold)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid threshold %q: want YYYY-MM-DD or RFC 3339", c.Threshold)
	}

	return t.UTC(), nil
}
