// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package test provides a logging.Logger that records entries in memory so
// tests can check what the table and render layers reported.
package test

import (
	"fmt"
	"maps"
	"sync"

	"github.com/ndtable/ndtable/logging"
)

// Entry is one recorded message. Fields holds the fields of the logger the
// message was written through.
type Entry struct {
	Level   logging.Level
	Fields  map[string]any
	Message string
}

type sink struct {
	mtx     sync.Mutex
	entries []Entry
}

// Logger records every message regardless of its level. Loggers derived with
// WithFields write to the same record.
type Logger struct {
	level  logging.Level
	fields map[string]any
	sink   *sink
}

func New() *Logger {
	return &Logger{level: logging.Info, sink: &sink{}}
}

func (l *Logger) WithFields(fields map[string]any) logging.Logger {
	merged := maps.Clone(l.fields)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	maps.Copy(merged, fields)
	return &Logger{level: l.level, fields: merged, sink: l.sink}
}

func (l *Logger) Debug(f string, a ...any) { l.record(logging.Debug, f, a) }
func (l *Logger) Info(f string, a ...any)  { l.record(logging.Info, f, a) }
func (l *Logger) Warn(f string, a ...any)  { l.record(logging.Warn, f, a) }
func (l *Logger) Error(f string, a ...any) { l.record(logging.Error, f, a) }

func (l *Logger) SetLevel(level logging.Level) { l.level = level }
func (l *Logger) GetLevel() logging.Level      { return l.level }

// Entries returns a copy of everything recorded so far, oldest first.
func (l *Logger) Entries() []Entry {
	l.sink.mtx.Lock()
	defer l.sink.mtx.Unlock()
	return append([]Entry(nil), l.sink.entries...)
}

// Filter returns the recorded entries at level.
func (l *Logger) Filter(level logging.Level) []Entry {
	var out []Entry
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (l *Logger) record(level logging.Level, f string, a []any) {
	l.sink.mtx.Lock()
	defer l.sink.mtx.Unlock()
	l.sink.entries = append(l.sink.entries, Entry{
		Level:   level,
		Fields:  l.fields,
		Message: fmt.Sprintf(f, a...),
	})
}
