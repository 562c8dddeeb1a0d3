// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package processor provides single-resource text transformers and their
// sequential composition into pipelines.
package processor

import (
	"context"
	"path/filepath"
	"strings"
)

// ResourceType classifies the kind of text a resource holds.
type ResourceType string

const (
	// TypeCSS marks stylesheet resources.
	TypeCSS ResourceType = "css"
	// TypeJS marks script resources.
	TypeJS ResourceType = "js"
	// TypeUnknown marks resources no stage-selection rule applies to.
	TypeUnknown ResourceType = "unknown"
)

// Resource identifies the text being transformed. It is an opaque identity
// for stages: enough to know what is being processed, nothing more.
type Resource struct {
	Path string
	Type ResourceType
}

// NewResource builds a resource identity, detecting the type from the
// path extension.
func NewResource(path string) Resource {
	return Resource{Path: path, Type: DetectType(path)}
}

// DetectType maps a path extension to a resource type.
func DetectType(path string) ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return TypeCSS
	case ".js", ".mjs":
		return TypeJS
	default:
		return TypeUnknown
	}
}

// Processor transforms the complete text of one resource. Implementations
// must be safe for reuse across resources and must not assume which
// processor runs before or after them.
type Processor interface {
	// Name identifies the processor in configuration and error messages.
	Name() string

	// Process transforms input into output. A returned error means the
	// transformation produced nothing usable; callers must discard any
	// partial output.
	Process(ctx context.Context, res Resource, input string) (string, error)
}

// Initializer is implemented by processors that need per-invocation setup.
// Init must be idempotent: a chain calls it before every invocation since
// processors may be stateless or shared across resources.
type Initializer interface {
	Init() error
}
