// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package report

import (
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/webasset-toolkit/asset-runner/pkg/errors"
)

// Writer serializes formatted report documents. Escaping of attribute
// values and text is guaranteed by the etree serialization layer.
type Writer struct {
	indent int
}

// NewWriter creates a writer with the default two-space indent.
func NewWriter() *Writer {
	return &Writer{indent: 2}
}

// Write serializes the document to w, preceded by an XML declaration.
func (wr *Writer) Write(w io.Writer, doc *etree.Document) error {
	if doc == nil {
		return errors.ConfigError("document is required", nil)
	}
	out := doc.Copy()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	// CreateProcInst appends; move the declaration in front of the root.
	if decl := out.Child[len(out.Child)-1]; len(out.Child) > 1 {
		out.RemoveChild(decl)
		out.InsertChildAt(0, decl)
	}
	out.Indent(wr.indent)
	if _, err := out.WriteTo(w); err != nil {
		return errors.FormatError("failed to serialize report", err)
	}
	return nil
}

// WriteFile serializes the document to the given path, creating parent
// directories as needed.
func (wr *Writer) WriteFile(path string, doc *etree.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.FormatError("failed to create report directory", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.FormatError("failed to create report file", err)
	}
	defer f.Close()
	return wr.Write(f, doc)
}
