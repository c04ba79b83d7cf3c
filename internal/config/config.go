// Package config loads named splitter profiles from YAML files.
//
// A configuration file looks like:
//
//	logging:
//	  level: info
//	profiles:
//	  csv:
//	    on: ","
//	    trim: true
//	  words:
//	    matcher: whitespace
//	    omit_empty: true
//	  query:
//	    on: "&"
//	    key_value_separator: "="
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/scalecode-solutions/runesplit/internal/logger"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "runesplit.yaml"

var (
	ErrConfigInvalid   = errors.New("invalid configuration")
	ErrProfileNotFound = errors.New("profile not found")
)

func newConfigError(field string, value any) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

// Config is the top-level configuration file.
type Config struct {
	Logging  logger.LoggingConfig `yaml:"logging"`
	Profiles map[string]Profile   `yaml:"profiles"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Logging: logger.LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
		Profiles: map[string]Profile{},
	}
}

// Load reads the configuration at path on top of the defaults and validates
// every profile.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	for _, name := range cfg.ProfileNames() {
		if err := cfg.Profiles[name].Validate(); err != nil {
			return nil, fmt.Errorf("profile %s: %w", name, err)
		}
	}
	return cfg, nil
}

// Profile returns the named profile.
func (c *Config) Profile(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return p, nil
}

// ProfileNames returns the profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
