// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package processor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/webasset-toolkit/asset-runner/pkg/errors"
)

// Factory builds a processor from stage options.
type Factory func(options map[string]any) (Processor, error)

// Registry maps stage names to factories so configuration can reference
// stages by name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry pre-populated with the builtin stages.
func NewRegistry() *Registry {
	r := &Registry{factories: map[string]Factory{}}
	r.Register("strip-css-comments", func(map[string]any) (Processor, error) {
		return StripCSSComments{}, nil
	})
	r.Register("trim-lines", func(map[string]any) (Processor, error) {
		return TrimLines{}, nil
	})
	r.Register("append-semicolon", func(map[string]any) (Processor, error) {
		return AppendSemicolon{}, nil
	})
	r.Register("replace-variables", func(options map[string]any) (Processor, error) {
		stage := ReplaceVariables{Values: map[string]string{}}
		if raw, ok := options["values"].(map[string]any); ok {
			for k, v := range raw {
				stage.Values[k] = fmt.Sprint(v)
			}
		}
		if strict, ok := options["strict"].(bool); ok {
			stage.Strict = strict
		}
		return stage, nil
	})
	return r
}

// Register adds a factory under the given name, replacing any previous one.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create builds the named stage. Unknown names are a configuration error.
func (r *Registry) Create(name string, options map[string]any) (Processor, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.ConfigError(fmt.Sprintf("unknown pipeline stage: %q", name), nil)
	}
	stage, err := factory(options)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to create stage %q", name), err)
	}
	return stage, nil
}

// CreateChain builds a chain from an ordered list of stage names.
func (r *Registry) CreateChain(names []string, options map[string]map[string]any) (*Chain, error) {
	stages := make([]Processor, 0, len(names))
	for _, name := range names {
		stage, err := r.Create(name, options[name])
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return NewChain(stages...), nil
}

// Names returns the registered stage names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
