// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package cache provides caching for processed resource text.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the cache interface.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Entry represents a cache entry.
type Entry struct {
	Key       string
	Value     []byte
	ExpiresAt time.Time
}

// expired reports whether the entry is past its TTL at the given time.
// A zero ExpiresAt means the entry never expires.
func (e *Entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}
