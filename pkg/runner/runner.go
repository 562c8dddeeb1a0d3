// Package runner provides the core asset-processing orchestration
package runner

import (
	"context"
	"time"

	"github.com/beevik/etree"
)

// Runner orchestrates pipeline processing and lint report generation
type Runner interface {
	// Process runs the configured transformation pipeline over resources
	Process(ctx context.Context, opts ProcessOptions) (*ProcessResult, error)

	// LintReport adapts raw tool diagnostics and formats them as a report
	LintReport(ctx context.Context, opts ReportOptions) (*ReportResult, error)
}

// ProcessOptions contains options for pipeline processing
type ProcessOptions struct {
	// Paths are the resource files to transform
	Paths []string
	// Force skips the processed-text cache
	Force bool
}

// ProcessResult contains the result of one processing run
type ProcessResult struct {
	// RunID uniquely identifies this run
	RunID string

	// Resources holds one entry per input path, in input order
	Resources []ResourceResult

	// Failed counts resources whose pipeline aborted
	Failed int

	// Duration is how long the run took
	Duration time.Duration
}

// ResourceResult is the outcome of one resource's pipeline execution
type ResourceResult struct {
	Path   string
	Output string
	Cached bool
	Err    error
}

// ReportOptions contains options for lint report generation
type ReportOptions struct {
	// RawData is the raw tool output, keyed by resource path
	RawData []byte
	// Paths fixes the resource order; empty means all resources, sorted
	Paths []string
	// Tool names the raw schema: "linter" or "csslint"
	Tool string
	// Dialect selects the output naming convention
	Dialect string
}

// ReportResult contains a formatted lint report
type ReportResult struct {
	RunID     string
	Document  *etree.Document
	Resources int
	Findings  int
	Duration  time.Duration
}
