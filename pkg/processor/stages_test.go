// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package processor_test

import (
	"context"
	"testing"

	"github.com/webasset-toolkit/asset-runner/pkg/processor"
)

func TestStripCSSComments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"no comments", "a { color: red; }", "a { color: red; }", false},
		{"single comment", "a { /* red */ color: red; }", "a {  color: red; }", false},
		{"multiline comment", "a {\n/* one\ntwo */\ncolor: red; }", "a {\n\ncolor: red; }", false},
		{"marker in string", `a::before { content: "/* keep */"; }`, `a::before { content: "/* keep */"; }`, false},
		{"marker in single quotes", "a::before { content: '/*'; }", "a::before { content: '/*'; }", false},
		{"unterminated", "a { /* oops", "", true},
	}

	stage := processor.StripCSSComments{}
	res := processor.NewResource("a.css")
	for _, tt := range tests {
		got, err := stage.Process(context.Background(), res, tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		} else if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestTrimLines(t *testing.T) {
	stage := processor.TrimLines{}
	res := processor.NewResource("a.css")

	input := "a { }  \n\n\n\nb { }\t\n"
	want := "a { }\n\nb { }\n"
	got, err := stage.Process(context.Background(), res, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAppendSemicolon(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"var a = 1", "var a = 1;"},
		{"var a = 1;", "var a = 1;"},
		{"var a = 1;\n", "var a = 1;\n"},
		{"", ""},
		{"   \n", "   \n"},
	}

	stage := processor.AppendSemicolon{}
	res := processor.NewResource("a.js")
	for _, tt := range tests {
		got, err := stage.Process(context.Background(), res, tt.input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("input %q: expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestReplaceVariables(t *testing.T) {
	stage := processor.ReplaceVariables{Values: map[string]string{"color": "#fff", "pad": "4px"}}
	res := processor.NewResource("a.css")

	got, err := stage.Process(context.Background(), res, "a { color: ${color}; padding: ${pad}; margin: ${unknown}; }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a { color: #fff; padding: 4px; margin: ${unknown}; }"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReplaceVariablesStrict(t *testing.T) {
	stage := processor.ReplaceVariables{Values: map[string]string{}, Strict: true}
	res := processor.NewResource("a.css")

	if _, err := stage.Process(context.Background(), res, "a { color: ${missing}; }"); err == nil {
		t.Error("expected an error for an unresolved variable in strict mode")
	}
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		path string
		want processor.ResourceType
	}{
		{"styles/main.css", processor.TypeCSS},
		{"app.JS", processor.TypeJS},
		{"mod.mjs", processor.TypeJS},
		{"image.png", processor.TypeUnknown},
		{"noext", processor.TypeUnknown},
	}
	for _, tt := range tests {
		if got := processor.DetectType(tt.path); got != tt.want {
			t.Errorf("DetectType(%q): expected %v, got %v", tt.path, tt.want, got)
		}
	}
}
