// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"strings"
)

const (
	// MaxConcurrency is the maximum allowed value for Global.Concurrency
	MaxConcurrency = 64
	// MaxCacheMB is the maximum allowed cache size in megabytes
	MaxCacheMB = 10240
)

var validDialects = map[string]bool{
	"plain":      true,
	"lint":       true,
	"checkstyle": true,
	"csslint":    true,
}

var validTools = map[string]bool{
	"linter":  true,
	"csslint": true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	if err := c.Report.Validate(); err != nil {
		return fmt.Errorf("report config: %w", err)
	}

	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache config: %w", err)
	}

	if err := c.Global.Validate(); err != nil {
		return fmt.Errorf("global config: %w", err)
	}

	return nil
}

// Validate validates the report configuration
func (r ReportConfig) Validate() error {
	if !validDialects[strings.ToLower(r.Dialect)] {
		return fmt.Errorf("unsupported dialect: %q", r.Dialect)
	}
	if !validTools[strings.ToLower(r.Tool)] {
		return fmt.Errorf("unsupported tool: %q", r.Tool)
	}
	return nil
}

// Validate validates the cache configuration
func (cc CacheConfig) Validate() error {
	if cc.MaxMB < 0 || cc.MaxMB > MaxCacheMB {
		return fmt.Errorf("max_mb must be between 0 and %d, got %d", MaxCacheMB, cc.MaxMB)
	}
	if cc.TTL < 0 {
		return fmt.Errorf("ttl must not be negative, got %v", cc.TTL.Std())
	}
	return nil
}

// Validate validates the global configuration
func (g GlobalConfig) Validate() error {
	if !validLogLevels[strings.ToLower(g.LogLevel)] {
		return fmt.Errorf("unsupported log level: %q", g.LogLevel)
	}
	if g.Concurrency < 1 || g.Concurrency > MaxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d, got %d", MaxConcurrency, g.Concurrency)
	}
	return nil
}
