// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package table

import (
	"github.com/ndtable/ndtable/cell"
)

// Entry is a cell value together with a configuration patch that is applied
// to the same cell when the value is written.
type Entry struct {
	Value cell.Value
	Patch Patch
}

// With returns an Entry holding v and p.
func With(v any, p Patch) Entry {
	return Entry{Value: cell.Of(v), Patch: p}
}

// EntryOf interprets v as something that can be written into a cell:
//
//   - an Entry or *Entry is used as is,
//   - a map with a "value" key is split into the value and a patch parsed
//     from the remaining keys with ParsePatch,
//   - anything else is converted with cell.Of.
func EntryOf(v any) Entry {
	switch v := v.(type) {
	case Entry:
		return v
	case *Entry:
		if v == nil {
			return Entry{Value: cell.NullValue()}
		}
		return *v
	case map[string]any:
		if inner, ok := v["value"]; ok {
			return Entry{Value: cell.Of(inner), Patch: ParsePatch(v)}
		}
	}
	return Entry{Value: cell.Of(v)}
}

func entriesOf(values []any) []Entry {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = EntryOf(v)
	}
	return entries
}
