// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package loader reads tabular data files into rows of cell values suitable
// for table.FromData.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/ndtable/ndtable/loader/extension"
	"github.com/ndtable/ndtable/util"
)

// Format identifies the syntax of a data file.
type Format string

// Supported formats. Auto selects the format by file extension.
const (
	Auto Format = "auto"
	CSV  Format = "csv"
	TSV  Format = "tsv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats returns the names accepted by ParseFormat.
func Formats() []string {
	return []string{string(Auto), string(CSV), string(TSV), string(JSON), string(YAML)}
}

// ParseFormat returns the format named s. The empty string is Auto.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Auto, nil
	}
	f := Format(strings.ToLower(s))
	if !slices.Contains(Formats(), string(f)) {
		return "", fmt.Errorf("unknown input format %q", s)
	}
	return f, nil
}

var extensions = map[string]Format{
	".csv":  CSV,
	".tsv":  TSV,
	".tab":  TSV,
	".json": JSON,
	".yaml": YAML,
	".yml":  YAML,
}

// FormatOf returns the format of the file at path based on its extension.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("cannot determine format of %v, set it explicitly", path)
}

// ReadFile reads the data file at path. With format Auto, handlers
// registered with extension.RegisterExtension are consulted first and the
// file extension selects the format otherwise.
func ReadFile(path string, f Format) ([][]any, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if f == Auto {
		if h := extension.FindExtension(filepath.Ext(path)); h != nil {
			rows, err := h(bs)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return rows, nil
		}
		if f, err = FormatOf(path); err != nil {
			return nil, err
		}
	}
	rows, err := Parse(bs, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Read reads all of r and parses it. Auto is treated as CSV.
func Read(r io.Reader, f Format) ([][]any, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(bs, f)
}

// Parse parses bs in format f. Auto is treated as CSV.
//
// Delimited files yield string cells. JSON and YAML files must contain a
// list of rows, each a list of scalars or of objects carrying a "value" key
// and inline configuration fields.
func Parse(bs []byte, f Format) ([][]any, error) {
	switch f {
	case Auto, CSV:
		return parseDelimited(bs, ',')
	case TSV:
		return parseDelimited(bs, '\t')
	case JSON:
		return parseJSON(bs)
	case YAML:
		js, err := yaml.YAMLToJSON(bs)
		if err != nil {
			return nil, err
		}
		return parseJSON(js)
	}
	return nil, fmt.Errorf("unknown input format %q", f)
}

func parseDelimited(bs []byte, sep rune) ([][]any, error) {
	r := csv.NewReader(bytes.NewReader(bs))
	r.Comma = sep
	r.FieldsPerRecord = -1
	if sep == '\t' {
		r.LazyQuotes = true
	}

	var rows [][]any
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		row := make([]any, len(record))
		for i, s := range record {
			row[i] = s
		}
		rows = append(rows, row)
	}
}

func parseJSON(bs []byte) ([][]any, error) {
	if len(bytes.TrimSpace(bs)) == 0 || bytes.Equal(bytes.TrimSpace(bs), []byte("null")) {
		return nil, nil
	}
	var doc any
	if err := util.UnmarshalJSON(bs, &doc); err != nil {
		return nil, err
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of rows but got %v", kindOf(doc))
	}
	rows := make([][]any, len(list))
	for i, r := range list {
		switch r := r.(type) {
		case []any:
			rows[i] = r
		case nil:
			rows[i] = nil
		default:
			return nil, fmt.Errorf("row %d: expected a list but got %v", i, kindOf(r))
		}
		for j, v := range rows[i] {
			if m, ok := v.(map[string]any); ok {
				if _, ok := m["value"]; !ok {
					return nil, fmt.Errorf("row %d, column %d: object without \"value\" key", i, j)
				}
			} else if _, ok := v.([]any); ok {
				return nil, fmt.Errorf("row %d, column %d: nested list", i, j)
			}
		}
	}
	return rows, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case map[string]any:
		return "an object"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	}
	return "a number"
}
