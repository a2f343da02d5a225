// Package config defines prism's configuration and loads it from a YAML file.
//
// Configuration is optional: a missing file yields the defaults. Parsing goes
// through sigs.k8s.io/yaml so struct tags follow JSON conventions.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"prism/pkg/logging"
)

// OutputConfig holds output formatting defaults.
type OutputConfig struct {
	// Format is the default output format token.
	Format string `json:"format,omitempty"`
	// Color enables styled table output.
	Color bool `json:"color,omitempty"`
	// Quiet suppresses non-essential output.
	Quiet bool `json:"quiet,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Output  OutputConfig  `json:"output,omitempty"`
	Logging LoggingConfig `json:"logging,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default configuration file location,
// ~/.config/prism/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "prism", "config.yaml"), nil
}

// Load reads the configuration file at path. A missing file is not an error;
// it yields the defaults. Values absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("Config", "No configuration file at %s, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}

	logging.Debug("Config", "Loaded configuration from %s", path)
	return cfg, nil
}
