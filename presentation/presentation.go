// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package presentation renders tables in the output formats of package
// format. It takes a snapshot of the table, builds the render data and
// hands it to the formatter.
package presentation

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ndtable/ndtable/format"
	"github.com/ndtable/ndtable/logging"
	"github.com/ndtable/ndtable/render"
	"github.com/ndtable/ndtable/table"
)

var (
	mtx           sync.RWMutex
	defaultFormat = table.OutputFormat{Name: format.Default}
)

// DefaultFormat returns the output format used for tables without one.
func DefaultFormat() table.OutputFormat {
	mtx.RLock()
	defer mtx.RUnlock()
	return defaultFormat
}

// SetDefaultFormat sets the output format used for tables without one.
func SetDefaultFormat(f table.OutputFormat) {
	mtx.Lock()
	defer mtx.Unlock()
	defaultFormat = f
}

// Resolve returns the output format of tbl, falling back to DefaultFormat.
func Resolve(tbl *table.Table) table.OutputFormat {
	if f, ok := tbl.OutputFormat(); ok {
		return f
	}
	return DefaultFormat()
}

// Option configures String and Write.
type Option func(*options)

type options struct {
	logger logging.Logger
}

// WithLogger sets the logger the render pass reports to.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// String renders tbl in the output format f. Unknown format names fall
// back to utf8.
func String(tbl *table.Table, f table.OutputFormat, opts ...Option) (string, error) {
	o := options{logger: logging.NewNoOpLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	d := render.New(tbl.Snapshot(), render.WithLogger(o.logger))
	out, err := format.Format(d, f)
	if err != nil {
		return "", fmt.Errorf("%s output: %w", format.Sanitize(f.Name), err)
	}
	return out, nil
}

// Default renders tbl in the format returned by Resolve.
func Default(tbl *table.Table, opts ...Option) (string, error) {
	return String(tbl, Resolve(tbl), opts...)
}

// Write renders tbl in the output format f and writes the result to w.
// Output that does not end in a line break is terminated with one.
func Write(w io.Writer, tbl *table.Table, f table.OutputFormat, opts ...Option) error {
	out, err := String(tbl, f, opts...)
	if err != nil {
		return err
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}
