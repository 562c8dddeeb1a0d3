// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Pipelines: DefaultPipelines(),
		Report:    DefaultReport(),
		Cache:     DefaultCache(),
		Global:    DefaultGlobal(),
	}
}

// DefaultPipelines returns the default per-type stage lists.
func DefaultPipelines() PipelinesConfig {
	return PipelinesConfig{
		CSS: []string{"strip-css-comments", "trim-lines"},
		JS:  []string{"trim-lines", "append-semicolon"},
	}
}

// DefaultReport returns the default report configuration.
func DefaultReport() ReportConfig {
	return ReportConfig{
		Dialect: "plain",
		Tool:    "linter",
	}
}

// DefaultCache returns the default cache configuration.
func DefaultCache() CacheConfig {
	return CacheConfig{
		Enabled: true,
		Path:    GetDefaultCachePath(),
		TTL:     Duration(24 * time.Hour),
		MaxMB:   100,
	}
}

// DefaultGlobal returns the default global configuration.
func DefaultGlobal() GlobalConfig {
	return GlobalConfig{
		LogLevel:    "info",
		Concurrency: 4,
	}
}

// GetDefaultCachePath returns the default cache directory path.
func GetDefaultCachePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".asset-runner", "cache")
}

// GetDefaultConfigPath returns the default user config file path.
func GetDefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "asset-runner", "config.yaml")
}

// GetProjectConfigPath returns the project config file path.
func GetProjectConfigPath(projectRoot string) string {
	if projectRoot == "" {
		projectRoot = "."
	}
	return filepath.Join(projectRoot, ".asset-runner.yaml")
}

// applyDefaults fills in zero values after a config file was parsed.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Pipelines.CSS == nil {
		cfg.Pipelines.CSS = defaults.Pipelines.CSS
	}
	if cfg.Pipelines.JS == nil {
		cfg.Pipelines.JS = defaults.Pipelines.JS
	}
	if cfg.Report.Dialect == "" {
		cfg.Report.Dialect = defaults.Report.Dialect
	}
	if cfg.Report.Tool == "" {
		cfg.Report.Tool = defaults.Report.Tool
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = defaults.Cache.Path
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = defaults.Cache.TTL
	}
	if cfg.Cache.MaxMB == 0 {
		cfg.Cache.MaxMB = defaults.Cache.MaxMB
	}
	if cfg.Global.LogLevel == "" {
		cfg.Global.LogLevel = defaults.Global.LogLevel
	}
	if cfg.Global.Concurrency == 0 {
		cfg.Global.Concurrency = defaults.Global.Concurrency
	}
}
