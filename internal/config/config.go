// Package config holds all OpenClaw CLI configuration, loaded from
// .openclaw/config.yaml in the workspace with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all OpenClaw configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Normalizer settings
	Normalizer NormalizerConfig `yaml:"normalizer"`

	// Kimi K2.5 local service
	Kimi KimiConfig `yaml:"kimi"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// NormalizerConfig configures the L1 normalizer.
type NormalizerConfig struct {
	// Minimum confidence for batch results; lines below this are excluded.
	MinConfidence float64 `yaml:"min_confidence"`
}

// KimiConfig configures the Kimi K2.5 local service integration.
type KimiConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Endpoint      string `yaml:"endpoint"`
	HealthTimeout string `yaml:"health_timeout"`
}

// LoggingConfig configures the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "openclaw",
		Version: Version,

		Normalizer: NormalizerConfig{
			MinConfidence: 0.0,
		},

		Kimi: KimiConfig{
			Enabled:       true,
			Endpoint:      "http://127.0.0.1:8765",
			HealthTimeout: "200ms",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	return filepath.Join(workspace, ".openclaw", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("OPENCLAW_KIMI_ENDPOINT"); url != "" {
		c.Kimi.Endpoint = url
	}
	if v := os.Getenv("OPENCLAW_KIMI_DISABLED"); v != "" {
		if disabled, err := strconv.ParseBool(v); err == nil {
			c.Kimi.Enabled = !disabled
		}
	}
	if v := os.Getenv("OPENCLAW_MIN_CONFIDENCE"); v != "" {
		if conf, err := strconv.ParseFloat(v, 64); err == nil {
			c.Normalizer.MinConfidence = conf
		}
	}
}

// GetHealthTimeout returns the Kimi health check timeout as a duration.
func (c *Config) GetHealthTimeout() time.Duration {
	d, err := time.ParseDuration(c.Kimi.HealthTimeout)
	if err != nil {
		return 200 * time.Millisecond
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Normalizer.MinConfidence < 0 || c.Normalizer.MinConfidence > 1 {
		return fmt.Errorf("min_confidence out of range [0,1]: %v", c.Normalizer.MinConfidence)
	}
	if c.Kimi.Enabled && c.Kimi.Endpoint == "" {
		return fmt.Errorf("kimi enabled but endpoint not configured")
	}
	return nil
}
