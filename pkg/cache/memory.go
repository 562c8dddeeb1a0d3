// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is an in-memory cache safe for concurrent use.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]*Entry
}

// NewMemoryCache creates a new memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]*Entry),
	}
}

// Get retrieves a value from cache.
func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrCacheMiss
	}
	if entry.expired(time.Now()) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return nil, ErrCacheMiss
	}
	return entry.Value, nil
}

// Set stores a value in cache. A zero ttl means the entry never expires.
func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := &Entry{Key: key, Value: value}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.items[key] = entry
	m.mu.Unlock()
	return nil
}

// Delete removes a value from cache.
func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

// Clear removes all entries.
func (m *MemoryCache) Clear(_ context.Context) error {
	m.mu.Lock()
	m.items = make(map[string]*Entry)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, including expired ones not yet
// evicted.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
