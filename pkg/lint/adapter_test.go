// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/webasset-toolkit/asset-runner/pkg/errors"
	"github.com/webasset-toolkit/asset-runner/pkg/lint"
)

func TestAdaptLinterError(t *testing.T) {
	raw := lint.LinterError{
		Line:      7,
		Character: 13,
		Reason:    "Missing semicolon.",
		Evidence:  "var a = 1",
		ID:        "(error)",
	}
	item, err := lint.AdaptLinterError(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Line != 7 || item.Column != 13 {
		t.Errorf("expected line 7 column 13, got %d/%d", item.Line, item.Column)
	}
	if item.Severity != "error" {
		t.Errorf("expected severity without parentheses, got %q", item.Severity)
	}
	if item.Reason != "Missing semicolon." || item.Evidence != "var a = 1" {
		t.Errorf("unexpected reason/evidence: %q / %q", item.Reason, item.Evidence)
	}
}

func TestAdaptCSSLintError(t *testing.T) {
	raw := lint.CSSLintError{
		Line:     5,
		Col:      2,
		Type:     "warning",
		Message:  "bad selector",
		Evidence: ".x > {",
	}
	item, err := lint.AdaptCSSLintError(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Severity != "warning" || item.Line != 5 || item.Column != 2 {
		t.Errorf("unexpected adapted item: %+v", item)
	}
	if item.Reason != "bad selector" || item.Evidence != ".x > {" {
		t.Errorf("unexpected reason/evidence: %q / %q", item.Reason, item.Evidence)
	}
}

// TestBuildReportPreservesOrder verifies group order and per-group item
// order survive adaptation.
func TestBuildReportPreservesOrder(t *testing.T) {
	groups := []lint.RawGroup[lint.CSSLintError]{
		{ResourcePath: "z.css", Errors: []lint.CSSLintError{{Message: "one"}, {Message: "two"}}},
		{ResourcePath: "a.css", Errors: []lint.CSSLintError{{Message: "three"}}},
	}
	rep, err := lint.BuildReport(groups, lint.AdaptCSSLintError)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := rep.Entries()
	if len(entries) != 2 || entries[0].ResourcePath != "z.css" || entries[1].ResourcePath != "a.css" {
		t.Fatalf("group order not preserved: %+v", entries)
	}
	if entries[0].Items[0].Reason != "one" || entries[0].Items[1].Reason != "two" {
		t.Errorf("item order not preserved: %+v", entries[0].Items)
	}
}

// TestBuildReportFailFast verifies the first failing adaptation aborts the
// whole conversion with no partial report.
func TestBuildReportFailFast(t *testing.T) {
	groups := []lint.RawGroup[lint.LinterError]{
		{ResourcePath: "ok.js", Errors: []lint.LinterError{{Reason: "fine"}}},
		{ResourcePath: "bad.js", Errors: []lint.LinterError{{Reason: "fine"}, {Reason: "poison"}}},
	}
	calls := 0
	adapt := func(raw lint.LinterError) (lint.Item, error) {
		calls++
		if raw.Reason == "poison" {
			return lint.Item{}, fmt.Errorf("broken adapter")
		}
		return lint.AdaptLinterError(raw)
	}

	rep, err := lint.BuildReport(groups, adapt)
	if rep != nil {
		t.Error("expected no partial report on adaptation failure")
	}
	if err == nil {
		t.Fatal("expected an adaptation error")
	}
	if !errors.IsType(err, errors.ErrAdaptation) {
		t.Errorf("expected an ADAPTATION error, got %v", err)
	}
	if !strings.Contains(err.Error(), "problem while adapting lint item") {
		t.Errorf("error should name the adaptation context: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected adaptation to stop at the poisoned item, got %d calls", calls)
	}
}

// TestBuildReportNilAdapter rejects a missing adapter up front.
func TestBuildReportNilAdapter(t *testing.T) {
	_, err := lint.BuildReport[lint.LinterError](nil, nil)
	if !errors.IsType(err, errors.ErrValidation) {
		t.Errorf("expected a VALIDATION error, got %v", err)
	}
}

func TestParseCSSLintOutput(t *testing.T) {
	data := []byte(`{
		"a.css": [{"line": 5, "col": 2, "type": "warning", "message": "bad selector", "evidence": ".x {", "rule": {"id": "selectors"}}],
		"b.css": []
	}`)

	groups, err := lint.ParseCSSLintOutput(data, []string{"b.css", "a.css"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].ResourcePath != "b.css" || groups[1].ResourcePath != "a.css" {
		t.Errorf("expected caller-supplied order, got %+v", groups)
	}
	if len(groups[1].Errors) != 1 || groups[1].Errors[0].Rule.ID != "selectors" {
		t.Errorf("unexpected parsed errors: %+v", groups[1].Errors)
	}
}

func TestParseLinterOutput(t *testing.T) {
	data := []byte(`{
		"b.js": [{"line": 1, "character": 2, "reason": "x", "evidence": "y", "id": "(warning)"}],
		"a.js": [{"line": 3, "character": 4, "reason": "z"}]
	}`)

	// No explicit order: paths come back sorted for determinism.
	groups, err := lint.ParseLinterOutput(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 || groups[0].ResourcePath != "a.js" || groups[1].ResourcePath != "b.js" {
		t.Errorf("expected sorted group order, got %+v", groups)
	}
}

// TestParseOutputUnlistedResource verifies raw output for a resource the
// caller's path list never consumes fails the parse instead of silently
// dropping its findings.
func TestParseOutputUnlistedResource(t *testing.T) {
	data := []byte(`{
		"a.js": [{"line": 1, "reason": "kept"}],
		"b.js": [{"line": 2, "reason": "would be dropped"}]
	}`)

	groups, err := lint.ParseLinterOutput(data, []string{"a.js"})
	if err == nil {
		t.Fatalf("expected an error for unconsumed lint output, got groups %+v", groups)
	}
	if !errors.IsType(err, errors.ErrValidation) {
		t.Errorf("expected a VALIDATION error, got %v", err)
	}
	if !strings.Contains(err.Error(), "b.js") {
		t.Errorf("error should name the dropped resource: %v", err)
	}
}

func TestParseOutputUnknownPath(t *testing.T) {
	if _, err := lint.ParseLinterOutput([]byte(`{}`), []string{"missing.js"}); err == nil {
		t.Error("expected an error for a path with no lint output")
	}
}

func TestParseOutputBadJSON(t *testing.T) {
	if _, err := lint.ParseCSSLintOutput([]byte(`not json`), nil); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}
