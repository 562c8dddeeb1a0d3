// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint_test

import (
	"testing"

	"github.com/webasset-toolkit/asset-runner/pkg/lint"
)

// TestReportOrderAndDuplicates verifies insertion order is preserved and
// duplicate resource paths are allowed.
func TestReportOrderAndDuplicates(t *testing.T) {
	rep := lint.NewReport()
	rep.Add(lint.NewResourceReport("b.css", nil))
	rep.Add(lint.NewResourceReport("a.css", []lint.Item{{Reason: "one"}}))
	rep.Add(lint.NewResourceReport("b.css", []lint.Item{{Reason: "two"}, {Reason: "three"}}))

	entries := rep.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantPaths := []string{"b.css", "a.css", "b.css"}
	for i, e := range entries {
		if e.ResourcePath != wantPaths[i] {
			t.Errorf("entry[%d]: expected path %q, got %q", i, wantPaths[i], e.ResourcePath)
		}
	}
	if rep.Len() != 3 {
		t.Errorf("expected Len 3, got %d", rep.Len())
	}
	if rep.TotalItems() != 3 {
		t.Errorf("expected 3 items total, got %d", rep.TotalItems())
	}
}

// TestResourceReportNilItems verifies a nil item slice is normalized.
func TestResourceReportNilItems(t *testing.T) {
	entry := lint.NewResourceReport("a.css", nil)
	if entry.Items == nil {
		t.Error("expected items to be normalized to an empty slice")
	}
	if len(entry.Items) != 0 {
		t.Errorf("expected no items, got %d", len(entry.Items))
	}
}

// TestItemPresence verifies the blank/absent rules for each field.
func TestItemPresence(t *testing.T) {
	item := lint.Item{}
	if item.HasSeverity() || item.HasLine() || item.HasColumn() || item.HasReason() || item.HasEvidence() {
		t.Error("zero item must report every field as absent")
	}

	blank := lint.Item{Severity: "  ", Reason: "\t", Evidence: " \n", Line: 0, Column: -3}
	if blank.HasSeverity() || blank.HasLine() || blank.HasColumn() || blank.HasReason() || blank.HasEvidence() {
		t.Error("blank fields must count as absent")
	}

	full := lint.Item{Severity: "error", Line: 1, Column: 2, Reason: "r", Evidence: "e"}
	if !full.HasSeverity() || !full.HasLine() || !full.HasColumn() || !full.HasReason() || !full.HasEvidence() {
		t.Error("populated fields must count as present")
	}
}
