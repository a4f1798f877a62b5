// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package format serializes the render data of a table into text. Every
// output format is a stateless Formatter registered under a name.
package format

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ndtable/ndtable/render"
	"github.com/ndtable/ndtable/table"
)

// Names of the built-in output formats.
const (
	ASCII    = "ascii"
	CSV      = "csv"
	HTML     = "html"
	JSON     = "json"
	Markdown = "markdown"
	TSV      = "tsv"
	UTF8     = "utf8"
)

// Default is the format used for unknown format names.
const Default = UTF8

// Formatter serializes render data. Options of f that do not apply to the
// format are ignored.
type Formatter func(d *render.Data, f table.OutputFormat) (string, error)

var formatters = map[string]Formatter{
	ASCII: func(d *render.Data, f table.OutputFormat) (string, error) {
		return Terminal(d, FlavorASCII, f.ANSI), nil
	},
	CSV: func(d *render.Data, _ table.OutputFormat) (string, error) {
		return Delimited(d, ','), nil
	},
	HTML: func(d *render.Data, f table.OutputFormat) (string, error) {
		return HTMLTable(d, f.Styles), nil
	},
	JSON: func(d *render.Data, f table.OutputFormat) (string, error) {
		return Values(d, f.Compact)
	},
	Markdown: func(d *render.Data, _ table.OutputFormat) (string, error) {
		return MarkdownTable(d), nil
	},
	TSV: func(d *render.Data, _ table.OutputFormat) (string, error) {
		return Delimited(d, '\t'), nil
	},
	UTF8: func(d *render.Data, f table.OutputFormat) (string, error) {
		return Terminal(d, f.Flavor, f.ANSI), nil
	},
}

// Names returns the names of all output formats in lexical order.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the formatter registered under name. Names are matched
// case-insensitively. The error for an unknown name suggests the closest
// known names.
func Lookup(name string) (Formatter, error) {
	if f, ok := formatters[strings.ToLower(name)]; ok {
		return f, nil
	}
	msg := fmt.Sprintf("unknown output format %q", name)
	if s := Suggest(name, Names()); len(s) > 0 {
		msg += fmt.Sprintf(" (did you mean %v?)", strings.Join(s, " or "))
	}
	return nil, fmt.Errorf("%s", msg)
}

// Sanitize returns the lower-cased name if it names an output format and
// Default otherwise.
func Sanitize(name string) string {
	lc := strings.ToLower(name)
	if _, ok := formatters[lc]; ok {
		return lc
	}
	return Default
}

// Format serializes d in the output format named by f. Unknown names fall
// back to Default.
func Format(d *render.Data, f table.OutputFormat) (string, error) {
	return formatters[Sanitize(f.Name)](d, f)
}

// Suggest returns the candidates closest to s by edit distance, if any
// candidate is close enough to be a plausible misspelling.
func Suggest(s string, candidates []string) []string {
	s = strings.ToLower(s)
	limit := max(len(s)/3, 1)
	best := limit + 1
	var out []string
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(s, c)
		switch {
		case dist < best:
			best = dist
			out = []string{c}
		case dist == best:
			out = append(out, c)
		}
	}
	return out
}
