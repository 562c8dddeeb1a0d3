// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/webasset-toolkit/asset-runner/pkg/errors"
)

// Chain composes an ordered list of processors into one processor. Stage
// order is fixed at construction; each stage consumes the previous stage's
// complete output. An empty chain is the identity transform.
type Chain struct {
	stages []Processor
}

// NewChain creates a chain over the given stages. The slice is copied so
// later mutation by the caller cannot reorder a live pipeline.
func NewChain(stages ...Processor) *Chain {
	copied := make([]Processor, len(stages))
	copy(copied, stages)
	return &Chain{stages: copied}
}

// Name returns a composite name listing the stages in order.
func (c *Chain) Name() string {
	if len(c.stages) == 0 {
		return "chain()"
	}
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Len returns the number of stages in the chain.
func (c *Chain) Len() int {
	return len(c.stages)
}

// Process runs every stage in order, feeding each stage's full output to
// the next. The first stage failure aborts the chain: no later stage runs
// and no partial output is returned. Cancellation is observed between
// stages, never mid-stage.
func (c *Chain) Process(ctx context.Context, res Resource, input string) (string, error) {
	text := input
	for i, stage := range c.stages {
		if err := ctx.Err(); err != nil {
			return "", errors.TimeoutError(fmt.Sprintf("pipeline canceled before stage %q", stage.Name()), err)
		}
		if init, ok := stage.(Initializer); ok {
			if err := init.Init(); err != nil {
				return "", errors.StageError(fmt.Sprintf("failed to initialize stage %q (position %d)", stage.Name(), i), err)
			}
		}
		out, err := stage.Process(ctx, res, text)
		if err != nil {
			return "", errors.StageError(fmt.Sprintf("stage %q (position %d) failed for %s", stage.Name(), i, res.Path), err)
		}
		text = out
	}
	return text, nil
}
