// Copyright 2026 Web Asset Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides structured logging.
package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// logger wraps a zap logger.
type logger struct {
	zl *zap.Logger
}

// NewLogger creates a logger at the given level ("debug", "info", "warn",
// "error"). Unknown levels fall back to info.
func NewLogger(level string) Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		zl = zap.NewNop()
	}
	return &logger{zl: zl}
}

// NewNopLogger creates a logger that discards everything; useful in tests.
func NewNopLogger() Logger {
	return &logger{zl: zap.NewNop()}
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.zl.Debug(msg, zapFields(fields)...)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.zl.Info(msg, zapFields(fields)...)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.zl.Warn(msg, zapFields(fields)...)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.zl.Error(msg, zapFields(fields)...)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{zl: l.zl.With(zapFields(fields)...)}
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
