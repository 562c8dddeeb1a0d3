// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyGenerator generates cache keys.
type KeyGenerator struct {
	prefix string
}

// NewKeyGenerator creates a new key generator.
func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{prefix: "asset"}
}

// Generate generates a cache key from inputs using a SHA256 digest.
func (kg *KeyGenerator) Generate(inputs ...string) string {
	h := sha256.New()
	for _, input := range inputs {
		h.Write([]byte(input))
		h.Write([]byte{0}) // keep ("ab","c") distinct from ("a","bc")
	}
	return kg.prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// GenerateForResource generates a key for one pipeline execution: the
// resource path, its full content and the stage list all participate, so
// any change invalidates the cached output.
func (kg *KeyGenerator) GenerateForResource(path, content string, stages []string) string {
	inputs := make([]string, 0, len(stages)+2)
	inputs = append(inputs, path, content)
	inputs = append(inputs, stages...)
	return kg.Generate(inputs...)
}
