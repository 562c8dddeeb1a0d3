// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for asset-runner.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Project Config: ./.asset-runner.yaml (searched upward)
// 3. User Config: $HOME/.config/asset-runner/config.yaml
// 4. Environment Variables: ASSET_RUNNER_*
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so config files can use human-readable
// values like "24h" as well as integer nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration: %s", value.Value)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config represents the complete application configuration.
type Config struct {
	Pipelines PipelinesConfig `yaml:"pipelines"`
	Report    ReportConfig    `yaml:"report"`
	Cache     CacheConfig     `yaml:"cache"`
	Global    GlobalConfig    `yaml:"global"`
}

// PipelinesConfig lists the ordered stage names applied per resource type.
type PipelinesConfig struct {
	CSS []string `yaml:"css"`
	JS  []string `yaml:"js"`
	// StageOptions carries per-stage options keyed by stage name.
	StageOptions map[string]map[string]any `yaml:"stage_options,omitempty"`
}

// ForType returns the stage list for a resource type ("css" or "js").
func (p PipelinesConfig) ForType(resourceType string) []string {
	switch resourceType {
	case "css":
		return p.CSS
	case "js":
		return p.JS
	default:
		return nil
	}
}

// ReportConfig controls lint report generation.
type ReportConfig struct {
	// Dialect is one of "plain", "checkstyle", "csslint".
	Dialect string `yaml:"dialect"`
	// Output is the report file path; empty means stdout.
	Output string `yaml:"output,omitempty"`
	// Tool names the raw diagnostic schema: "linter" or "csslint".
	Tool string `yaml:"tool"`
}

// CacheConfig controls the processed-text cache.
type CacheConfig struct {
	Enabled bool     `yaml:"enabled"`
	Path    string   `yaml:"path,omitempty"`
	TTL     Duration `yaml:"ttl"`
	MaxMB   int      `yaml:"max_mb"`
}

// GlobalConfig contains cross-cutting settings.
type GlobalConfig struct {
	LogLevel    string `yaml:"log_level"`
	Concurrency int    `yaml:"concurrency"`
}
