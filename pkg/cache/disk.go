// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DiskCache is a disk-based cache. Each entry is one JSON file under the
// cache directory, named by the hash of its key.
type DiskCache struct {
	path string
}

// NewDiskCache creates a new disk cache rooted at path.
func NewDiskCache(path string) *DiskCache {
	return &DiskCache{path: path}
}

type diskEntry struct {
	Key       string    `json:"key"`
	Value     []byte    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (d *DiskCache) entryPath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(d.path, hex.EncodeToString(sum[:])+".json")
}

// Get retrieves a value from disk cache.
func (d *DiskCache) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(d.entryPath(key))
	if err != nil {
		return nil, ErrCacheMiss
	}
	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Corrupt entries count as misses; they get overwritten on Set.
		return nil, ErrCacheMiss
	}
	if entry.Key != key {
		return nil, ErrCacheMiss
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(d.entryPath(key))
		return nil, ErrCacheMiss
	}
	return entry.Value, nil
}

// Set stores a value in disk cache. A zero ttl means the entry never
// expires.
func (d *DiskCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return err
	}
	entry := diskEntry{Key: key, Value: value}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	tmp := d.entryPath(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, d.entryPath(key))
}

// Delete removes a value from disk cache.
func (d *DiskCache) Delete(_ context.Context, key string) error {
	err := os.Remove(d.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes all entries from disk cache.
func (d *DiskCache) Clear(_ context.Context) error {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(d.path, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
