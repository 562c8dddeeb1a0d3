// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package runner

import "errors"

// Exit codes
const (
	ExitSuccess      = 0 // Run completed, all resources processed
	ExitConfigError  = 1 // Configuration or input validation error
	ExitProcessError = 2 // One or more pipeline executions failed
	ExitReportError  = 3 // Lint report adaptation or formatting failed
)

// Errors
var (
	ErrNotInitialized = errors.New("runner not initialized")
	ErrNoResources    = errors.New("no resources to process")
	ErrUnknownTool    = errors.New("unknown lint tool")
	ErrInvalidConfig  = errors.New("invalid configuration")
)
