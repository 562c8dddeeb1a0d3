// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package errors provides typed errors for asset-runner
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrAdaptation indicates a raw lint record could not be converted to the canonical model
	ErrAdaptation
	// ErrStage indicates a pipeline stage failed while transforming text
	ErrStage
	// ErrFormat indicates a report could not be formatted
	ErrFormat
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrCache indicates a cache read/write error
	ErrCache
	// ErrTimeout indicates a timeout occurred
	ErrTimeout
)

// ToolkitError is the base error type for all asset-runner errors
type ToolkitError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *ToolkitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *ToolkitError) Unwrap() error {
	return e.Cause
}

// New creates a new ToolkitError
func New(errType ErrorType, message string, cause error) *ToolkitError {
	return &ToolkitError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *ToolkitError) WithContext(key string, value interface{}) *ToolkitError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var tkErr *ToolkitError
	if err == nil {
		return false
	}
	if errors.As(err, &tkErr) {
		return tkErr.Type == errType
	}
	return false
}

// IsFatal returns true if the error should abort a whole batch rather
// than a single resource. Adaptation and configuration problems poison
// everything built from them; a single stage failure does not.
func IsFatal(err error) bool {
	var tkErr *ToolkitError
	if !errors.As(err, &tkErr) {
		return false
	}

	switch tkErr.Type {
	case ErrConfig, ErrValidation, ErrAdaptation:
		return true
	default:
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrAdaptation:
		return "ADAPTATION"
	case ErrStage:
		return "STAGE"
	case ErrFormat:
		return "FORMAT"
	case ErrValidation:
		return "VALIDATION"
	case ErrCache:
		return "CACHE"
	case ErrTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *ToolkitError {
	return New(ErrConfig, message, cause)
}

// AdaptationError creates an adaptation error
func AdaptationError(message string, cause error) *ToolkitError {
	return New(ErrAdaptation, message, cause)
}

// StageError creates a pipeline stage error
func StageError(message string, cause error) *ToolkitError {
	return New(ErrStage, message, cause)
}

// FormatError creates a report formatting error
func FormatError(message string, cause error) *ToolkitError {
	return New(ErrFormat, message, cause)
}

// ValidationError creates an input validation error
func ValidationError(message string, cause error) *ToolkitError {
	return New(ErrValidation, message, cause)
}

// CacheError creates a cache error
func CacheError(message string, cause error) *ToolkitError {
	return New(ErrCache, message, cause)
}

// TimeoutError creates a timeout error
func TimeoutError(message string, cause error) *ToolkitError {
	return New(ErrTimeout, message, cause)
}
