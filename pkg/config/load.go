// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/webasset-toolkit/asset-runner/pkg/errors"
)

// Default config file names to search for
var defaultConfigFiles = []string{
	".asset-runner.yaml",
	".asset-runner.yml",
	"asset-runner.yaml",
	"asset-runner.yml",
}

// Load loads configuration from a specific file path
func Load(path string) (*Config, error) {
	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	// Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	// Apply defaults before validating so a sparse file stays valid
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// LoadDefault searches for and loads configuration from default locations
// Search order:
// 1. Current directory
// 2. Parent directories (up to root)
// 3. User config directory (.config/asset-runner/)
func LoadDefault() (*Config, error) {
	// Check current directory and parents
	if cfg, err := findInParents("."); err == nil {
		return cfg, nil
	}

	// Check user config directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		userConfigPath := filepath.Join(homeDir, ".config", "asset-runner", "config.yaml")
		if _, err := os.Stat(userConfigPath); err == nil {
			return Load(userConfigPath)
		}
	}

	// Fall back to defaults
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("default config validation failed", err)
	}
	return cfg, nil
}

// findInParents walks up from dir looking for a config file
func findInParents(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		for _, name := range defaultConfigFiles {
			candidate := filepath.Join(abs, name)
			if _, err := os.Stat(candidate); err == nil {
				return Load(candidate)
			}
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return nil, os.ErrNotExist
		}
		abs = parent
	}
}

// applyEnvOverrides applies ASSET_RUNNER_* environment variables on top of
// the loaded configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ASSET_RUNNER_LOG_LEVEL"); v != "" {
		cfg.Global.LogLevel = v
	}
	if v := os.Getenv("ASSET_RUNNER_DIALECT"); v != "" {
		cfg.Report.Dialect = v
	}
	if v := os.Getenv("ASSET_RUNNER_CACHE_DIR"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("ASSET_RUNNER_CACHE_DISABLED"); v != "" {
		if disabled, err := strconv.ParseBool(v); err == nil && disabled {
			cfg.Cache.Enabled = false
		}
	}
	if v := os.Getenv("ASSET_RUNNER_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Global.Concurrency = n
		}
	}
}
