// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/webasset-toolkit/asset-runner/pkg/lint"
	"github.com/webasset-toolkit/asset-runner/pkg/report"
)

func TestWriterWrite(t *testing.T) {
	rep := lint.NewReport()
	rep.Add(lint.NewResourceReport("a.css", []lint.Item{{Reason: "r", Line: 1}}))
	doc, err := report.Format(rep, report.CSSLint)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := report.NewWriter().Write(&buf, doc); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("expected an XML declaration, got %q", firstLine(out))
	}
	if !strings.Contains(out, "<csslint>") {
		t.Errorf("expected a csslint root element in %q", out)
	}
	if !strings.Contains(out, `<file name="a.css">`) {
		t.Errorf("expected a file element in %q", out)
	}
}

func TestWriterDoesNotMutateDocument(t *testing.T) {
	rep := lint.NewReport()
	doc, err := report.Format(rep, report.Plain)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	var first, second bytes.Buffer
	w := report.NewWriter()
	if err := w.Write(&first, doc); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := w.Write(&second, doc); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if first.String() != second.String() {
		t.Error("repeated writes of the same document must be identical")
	}
}

func TestWriterWriteFile(t *testing.T) {
	rep := lint.NewReport()
	rep.Add(lint.NewResourceReport("a.js", []lint.Item{{Severity: "error"}}))
	doc, err := report.Format(rep, report.Checkstyle)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "reports", "lint.xml")
	if err := report.NewWriter().WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report file: %v", err)
	}
	if !strings.Contains(string(data), "<checkstyle>") {
		t.Errorf("unexpected report content: %q", data)
	}
}

func TestWriterNilDocument(t *testing.T) {
	if err := report.NewWriter().Write(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected error for nil document")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
