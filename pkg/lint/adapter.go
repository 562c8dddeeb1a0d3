// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package lint

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/webasset-toolkit/asset-runner/pkg/errors"
)

// LinterError is the raw record emitted by JSHint/JSLint style tools.
// Field names follow the tool's JSON output.
type LinterError struct {
	Line      int    `json:"line"`
	Character int    `json:"character"`
	Reason    string `json:"reason"`
	Evidence  string `json:"evidence"`
	ID        string `json:"id"` // "(error)" | "(warning)"
}

// CSSLintError is the raw record emitted by CSSLint.
type CSSLintError struct {
	Line     int    `json:"line"`
	Col      int    `json:"col"`
	Type     string `json:"type"` // "error" | "warning"
	Message  string `json:"message"`
	Evidence string `json:"evidence"`
	Rule     struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"rule"`
}

// AdaptLinterError converts a JSHint/JSLint record into a canonical Item.
// The tool reports severity as a parenthesized id, e.g. "(error)".
func AdaptLinterError(raw LinterError) (Item, error) {
	return Item{
		Severity: trimParens(raw.ID),
		Line:     raw.Line,
		Column:   raw.Character,
		Reason:   raw.Reason,
		Evidence: raw.Evidence,
	}, nil
}

// AdaptCSSLintError converts a CSSLint record into a canonical Item.
func AdaptCSSLintError(raw CSSLintError) (Item, error) {
	return Item{
		Severity: raw.Type,
		Line:     raw.Line,
		Column:   raw.Col,
		Reason:   raw.Message,
		Evidence: raw.Evidence,
	}, nil
}

func trimParens(s string) string {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}

// RawGroup pairs a resource path with the raw records a tool produced for it.
type RawGroup[R any] struct {
	ResourcePath string
	Errors       []R
}

// BuildReport adapts every raw record in every group into the canonical
// model, preserving group order and per-group record order. The first
// failing adaptation aborts the whole conversion: no partial report is ever
// returned, so callers never see a report with silently dropped findings.
func BuildReport[R any](groups []RawGroup[R], adapt func(R) (Item, error)) (*Report, error) {
	if adapt == nil {
		return nil, errors.ValidationError("adapter function is required", nil)
	}
	report := NewReport()
	for _, group := range groups {
		items := make([]Item, 0, len(group.Errors))
		for i, raw := range group.Errors {
			item, err := adapt(raw)
			if err != nil {
				return nil, errors.AdaptationError("problem while adapting lint item", err).
					WithContext("resource", group.ResourcePath).
					WithContext("index", i)
			}
			items = append(items, item)
		}
		report.Add(NewResourceReport(group.ResourcePath, items))
	}
	return report, nil
}

// ParseLinterOutput decodes raw linter JSON of the shape
// {"path.js": [{...}, ...], ...} into ordered groups. Group order follows
// the order supplied in paths when given, otherwise the decoder's map order.
func ParseLinterOutput(data []byte, paths []string) ([]RawGroup[LinterError], error) {
	byPath := map[string][]LinterError{}
	if err := json.Unmarshal(data, &byPath); err != nil {
		return nil, errors.ValidationError("failed to parse linter output", err)
	}
	return orderGroups(byPath, paths)
}

// ParseCSSLintOutput decodes raw CSSLint JSON of the shape
// {"path.css": [{...}, ...], ...} into ordered groups.
func ParseCSSLintOutput(data []byte, paths []string) ([]RawGroup[CSSLintError], error) {
	byPath := map[string][]CSSLintError{}
	if err := json.Unmarshal(data, &byPath); err != nil {
		return nil, errors.ValidationError("failed to parse csslint output", err)
	}
	return orderGroups(byPath, paths)
}

func orderGroups[R any](byPath map[string][]R, paths []string) ([]RawGroup[R], error) {
	if len(paths) == 0 {
		for path := range byPath {
			paths = append(paths, path)
		}
		// Map order is not stable; keep unordered input deterministic.
		sort.Strings(paths)
	}
	groups := make([]RawGroup[R], 0, len(paths))
	seen := map[string]bool{}
	for _, path := range paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		raw, ok := byPath[path]
		if !ok {
			return nil, errors.ValidationError(fmt.Sprintf("no lint output for resource: %s", path), nil)
		}
		groups = append(groups, RawGroup[R]{ResourcePath: path, Errors: raw})
	}
	// The converse of the missing-output check: raw output for a resource
	// the caller's list never consumes would silently drop its findings.
	if len(seen) < len(byPath) {
		leftovers := make([]string, 0, len(byPath)-len(seen))
		for path := range byPath {
			if !seen[path] {
				leftovers = append(leftovers, path)
			}
		}
		sort.Strings(leftovers)
		return nil, errors.ValidationError(fmt.Sprintf("lint output for resources missing from the path list: %s", strings.Join(leftovers, ", ")), nil)
	}
	return groups, nil
}
