// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the general configuration for dqjs
type Config struct {
	// DefaultMode is the output mode used when --mode is not given:
	// "pseudo" or "disasm".
	DefaultMode string `json:"default_mode,omitempty"`
	LogLevel    string `json:"log_level,omitempty"`
	CachePath   string `json:"cache_path,omitempty"`
	// CacheEnabled turns the decompilation result cache on.
	CacheEnabled bool `json:"cache_enabled,omitempty"`
	// LegacyDebugMask overrides the flags-word bit that gates the legacy
	// dialect's trailing debug-info block. The bitfield layout is not
	// derivable from the format, so it stays configurable; 0 keeps the
	// built-in default.
	LegacyDebugMask uint16 `json:"legacy_debug_mask,omitempty"`
}

func defaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DefaultMode:  "pseudo",
		LogLevel:     "info",
		CachePath:    filepath.Join(home, ".dqjs", "cache.db"),
		CacheEnabled: true,
	}
}

// Path returns the path to the configuration file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(home, ".dqjs", "config.json"), nil
}

// Load loads the configuration from disk (JSON format), falling back to
// defaults when no file exists.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	switch c.DefaultMode {
	case "", "pseudo", "disasm":
	default:
		return fmt.Errorf("invalid default_mode %q: must be pseudo or disasm", c.DefaultMode)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
