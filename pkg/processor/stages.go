// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package processor

import (
	"context"
	"fmt"
	"strings"
)

// StripCSSComments removes /* ... */ comments from stylesheet text.
// Comment markers inside string literals are left untouched.
type StripCSSComments struct{}

// Name implements Processor.
func (StripCSSComments) Name() string { return "strip-css-comments" }

// Process implements Processor.
func (StripCSSComments) Process(_ context.Context, _ Resource, input string) (string, error) {
	var b strings.Builder
	b.Grow(len(input))

	const (
		stateCode = iota
		stateComment
		stateSingleQuote
		stateDoubleQuote
	)
	state := stateCode
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch state {
		case stateCode:
			if ch == '/' && i+1 < len(input) && input[i+1] == '*' {
				state = stateComment
				i++
				continue
			}
			if ch == '\'' {
				state = stateSingleQuote
			} else if ch == '"' {
				state = stateDoubleQuote
			}
			b.WriteByte(ch)
		case stateComment:
			if ch == '*' && i+1 < len(input) && input[i+1] == '/' {
				state = stateCode
				i++
			}
		case stateSingleQuote:
			if ch == '\'' {
				state = stateCode
			}
			b.WriteByte(ch)
		case stateDoubleQuote:
			if ch == '"' {
				state = stateCode
			}
			b.WriteByte(ch)
		}
	}
	if state == stateComment {
		return "", fmt.Errorf("unterminated comment")
	}
	return b.String(), nil
}

// TrimLines removes trailing whitespace from every line and collapses runs
// of blank lines into a single one.
type TrimLines struct{}

// Name implements Processor.
func (TrimLines) Name() string { return "trim-lines" }

// Process implements Processor.
func (TrimLines) Process(_ context.Context, _ Resource, input string) (string, error) {
	lines := strings.Split(input, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n"), nil
}

// AppendSemicolon ensures script text ends with a semicolon so that
// concatenating it with following resources cannot change its meaning.
type AppendSemicolon struct{}

// Name implements Processor.
func (AppendSemicolon) Name() string { return "append-semicolon" }

// Process implements Processor.
func (AppendSemicolon) Process(_ context.Context, _ Resource, input string) (string, error) {
	trimmed := strings.TrimRight(input, " \t\r\n")
	if trimmed == "" || strings.HasSuffix(trimmed, ";") {
		return input, nil
	}
	return input + ";", nil
}

// ReplaceVariables substitutes ${name} placeholders from a fixed mapping.
// The mapping is process-wide configuration supplied at construction; the
// stage itself stays stateless across invocations.
type ReplaceVariables struct {
	Values map[string]string
	// Strict makes an unresolved placeholder a stage failure instead of
	// passing it through unchanged.
	Strict bool
}

// Name implements Processor.
func (ReplaceVariables) Name() string { return "replace-variables" }

// Process implements Processor.
func (rv ReplaceVariables) Process(_ context.Context, _ Resource, input string) (string, error) {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if input[i] == '$' && i+1 < len(input) && input[i+1] == '{' {
			end := strings.IndexByte(input[i+2:], '}')
			if end >= 0 {
				name := input[i+2 : i+2+end]
				if value, ok := rv.Values[name]; ok {
					b.WriteString(value)
					i += 2 + end
					continue
				}
				if rv.Strict {
					return "", fmt.Errorf("unresolved variable: %s", name)
				}
			}
		}
		b.WriteByte(input[i])
	}
	return b.String(), nil
}
