// Package config loads CLI configuration for the tsz command.
//
// Precedence, lowest to highest: built-in defaults, the YAML config
// file, environment variables, command-line flags (applied by the CLI
// itself).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the tsz CLI. The SDK itself takes its
// configuration as a plain struct; this file-based layer exists only
// for the command-line tool.
type Config struct {
	// ServerURL is the TSZ gateway endpoint.
	ServerURL string `yaml:"server_url"`

	// APIKey is the admin API key used for management commands.
	APIKey string `yaml:"api_key"`

	// TimeoutSeconds bounds each gateway round trip.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ServerURL:      "http://localhost:8080",
		TimeoutSeconds: 60,
	}
}

// DefaultPath returns the default config file location (~/.tsz/config.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tsz", "config.yaml")
	}
	return filepath.Join(home, ".tsz", "config.yaml")
}

// Load reads a YAML config file, falling back to defaults for any field
// the file does not set. A missing file is not an error; the defaults
// are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnvironmentOverrides checks for environment variables and
// overrides the config values if they are set.
//
// Supported environment variables:
//   - TSZ_SERVER_URL: overrides ServerURL
//   - TSZ_API_KEY: overrides APIKey
//   - TSZ_TIMEOUT: overrides TimeoutSeconds
func (c *Config) ApplyEnvironmentOverrides() {
	if url := os.Getenv("TSZ_SERVER_URL"); url != "" {
		c.ServerURL = url
	}
	if key := os.Getenv("TSZ_API_KEY"); key != "" {
		c.APIKey = key
	}
	if timeout := os.Getenv("TSZ_TIMEOUT"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil && seconds > 0 {
			c.TimeoutSeconds = seconds
		}
	}
}
