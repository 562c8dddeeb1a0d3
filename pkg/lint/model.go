// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package lint provides the canonical model for static-analysis findings
// and the adapters that normalize tool-specific records into it.
package lint

import "strings"

// Item is one canonical lint finding. String fields are absent when blank,
// line/column are absent when not positive. Items are value types and are
// never mutated after construction.
type Item struct {
	Severity string
	Line     int
	Column   int
	Reason   string
	Evidence string
}

// HasSeverity reports whether the severity field carries a renderable value.
func (it Item) HasSeverity() bool { return strings.TrimSpace(it.Severity) != "" }

// HasLine reports whether the line field carries a renderable value.
func (it Item) HasLine() bool { return it.Line > 0 }

// HasColumn reports whether the column field carries a renderable value.
func (it Item) HasColumn() bool { return it.Column > 0 }

// HasReason reports whether the reason field carries a renderable value.
func (it Item) HasReason() bool { return strings.TrimSpace(it.Reason) != "" }

// HasEvidence reports whether the evidence field carries a renderable value.
func (it Item) HasEvidence() bool { return strings.TrimSpace(it.Evidence) != "" }

// ResourceReport groups the findings discovered for a single resource.
// Item order is discovery order and is preserved through formatting.
type ResourceReport struct {
	ResourcePath string
	Items        []Item
}

// NewResourceReport creates a report for one resource. A nil items slice is
// normalized to an empty one so callers can range over it unconditionally.
func NewResourceReport(resourcePath string, items []Item) ResourceReport {
	if items == nil {
		items = []Item{}
	}
	return ResourceReport{ResourcePath: resourcePath, Items: items}
}

// Report is an append-only, order-preserving collection of per-resource
// findings. Duplicate resource paths are allowed; entries are kept in
// insertion order.
type Report struct {
	entries []ResourceReport
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{entries: []ResourceReport{}}
}

// Add appends one resource's findings to the report.
func (r *Report) Add(entry ResourceReport) {
	r.entries = append(r.entries, entry)
}

// Entries returns the resource reports in insertion order.
// The returned slice is shared with the report; do not modify it.
func (r *Report) Entries() []ResourceReport {
	return r.entries
}

// Len returns the number of resource entries.
func (r *Report) Len() int {
	return len(r.entries)
}

// TotalItems returns the number of findings across all resources.
func (r *Report) TotalItems() int {
	n := 0
	for i := range r.entries {
		n += len(r.entries[i].Items)
	}
	return n
}
