// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package report renders canonical lint reports into structured XML
// documents in one of several named dialects.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/webasset-toolkit/asset-runner/pkg/errors"
	"github.com/webasset-toolkit/asset-runner/pkg/lint"
)

// Dialect selects the element/attribute naming convention of the output
// document. It is a formatting-time choice only and is never stored in the
// canonical model.
type Dialect int

const (
	// Plain is the generic lint report dialect.
	Plain Dialect = iota
	// Checkstyle is compatible with Checkstyle report consumers.
	Checkstyle
	// CSSLint is compatible with CSSLint report consumers.
	CSSLint
)

// String returns the canonical lowercase name of the dialect.
func (d Dialect) String() string {
	switch d {
	case Plain:
		return "plain"
	case Checkstyle:
		return "checkstyle"
	case CSSLint:
		return "csslint"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

// ParseDialect resolves a dialect from its configuration name.
// "lint" is accepted as an alias for the plain dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "lint":
		return Plain, nil
	case "checkstyle":
		return Checkstyle, nil
	case "csslint":
		return CSSLint, nil
	default:
		return 0, errors.ConfigError(fmt.Sprintf("unsupported report dialect: %q", name), nil)
	}
}

// Attribute names that do not vary by dialect.
const (
	elementFile  = "file"
	attrName     = "name"
	attrEvidence = "evidence"
	attrLine     = "line"
	attrSeverity = "severity"
)

// dialectNames holds the naming that does vary by dialect.
type dialectNames struct {
	root       string
	issue      string
	columnAttr string
	reasonAttr string
}

var dialectTable = map[Dialect]dialectNames{
	Plain:      {root: "lint", issue: "issue", columnAttr: "char", reasonAttr: "reason"},
	Checkstyle: {root: "checkstyle", issue: "error", columnAttr: "column", reasonAttr: "message"},
	CSSLint:    {root: "csslint", issue: "issue", columnAttr: "char", reasonAttr: "reason"},
}

// Format renders a report into an XML document tree in the given dialect.
//
// The walk is read-only and single-pass: one file element per resource in
// report order, one issue element per finding in item order. Attributes are
// set only for fields that carry a value; a blank string field is treated
// the same as an absent one. A nil report or unknown dialect is rejected
// before any element is built.
func Format(rep *lint.Report, dialect Dialect) (*etree.Document, error) {
	if rep == nil {
		return nil, errors.ConfigError("report is required", nil)
	}
	names, ok := dialectTable[dialect]
	if !ok {
		return nil, errors.ConfigError(fmt.Sprintf("unsupported report dialect: %s", dialect), nil)
	}

	doc := etree.NewDocument()
	root := doc.CreateElement(names.root)
	for _, entry := range rep.Entries() {
		fileElement := root.CreateElement(elementFile)
		fileElement.CreateAttr(attrName, entry.ResourcePath)
		for _, item := range entry.Items {
			appendIssue(fileElement, names, item)
		}
	}
	return doc, nil
}

func appendIssue(parent *etree.Element, names dialectNames, item lint.Item) {
	issue := parent.CreateElement(names.issue)
	if item.HasColumn() {
		issue.CreateAttr(names.columnAttr, strconv.Itoa(item.Column))
	}
	if item.HasEvidence() {
		issue.CreateAttr(attrEvidence, item.Evidence)
	}
	if item.HasLine() {
		issue.CreateAttr(attrLine, strconv.Itoa(item.Line))
	}
	if item.HasReason() {
		issue.CreateAttr(names.reasonAttr, item.Reason)
	}
	if item.HasSeverity() {
		issue.CreateAttr(attrSeverity, item.Severity)
	}
}
