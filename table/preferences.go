// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package table

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Preferences control the structural defaults of every configuration scope:
// which borders are drawn and how header lanes are aligned and emphasized.
type Preferences struct {
	Align              Align  `json:"align" mapstructure:"align"`
	BoldHeaders        bool   `json:"boldHeaders" mapstructure:"boldHeaders"`
	ColumnHeaderAlign  Align  `json:"columnHeaderAlign" mapstructure:"columnHeaderAlign"`
	ColumnHeaderVAlign VAlign `json:"columnHeaderVAlign" mapstructure:"columnHeaderVAlign"`
	HeaderBorders      bool   `json:"headerBorders" mapstructure:"headerBorders"`
	HorizontalBorders  bool   `json:"horizontalBorders" mapstructure:"horizontalBorders"`
	// NumberAlign is applied to columns whose content is mostly numeric and
	// that have no alignment configured. Empty disables the detection.
	NumberAlign     Align  `json:"numberAlign" mapstructure:"numberAlign"`
	RowHeaderAlign  Align  `json:"rowHeaderAlign" mapstructure:"rowHeaderAlign"`
	RowHeaderVAlign VAlign `json:"rowHeaderVAlign" mapstructure:"rowHeaderVAlign"`
	TableBorders    bool   `json:"tableBorders" mapstructure:"tableBorders"`
	VAlign          VAlign `json:"valign" mapstructure:"valign"`
	VerticalBorders bool   `json:"verticalBorders" mapstructure:"verticalBorders"`
}

var builtinPreferences = Preferences{
	Align:              AlignLeft,
	BoldHeaders:        true,
	ColumnHeaderAlign:  AlignLeft,
	ColumnHeaderVAlign: VAlignBottom,
	HeaderBorders:      true,
	HorizontalBorders:  false,
	NumberAlign:        AlignRight,
	RowHeaderAlign:     AlignRight,
	RowHeaderVAlign:    VAlignTop,
	TableBorders:       true,
	VAlign:             VAlignTop,
	VerticalBorders:    false,
}

var defaultPreferences = builtinPreferences

// BuiltinPreferences returns the preferences tables use unless configured
// otherwise.
func BuiltinPreferences() Preferences {
	return builtinPreferences
}

// DefaultPreferences returns the process-wide preferences new tables start
// with.
func DefaultPreferences() Preferences {
	return defaultPreferences
}

// SetDefaultPreferences replaces the process-wide preferences used by tables
// created afterwards. It is not safe to call concurrently with New.
func SetDefaultPreferences(p Preferences) {
	defaultPreferences = p.Sanitize()
}

// Sanitize returns p with every invalid alignment replaced by its built-in
// default.
func (p Preferences) Sanitize() Preferences {
	p.Align = sanitize(p.Align, builtinPreferences.Align)
	p.ColumnHeaderAlign = sanitize(p.ColumnHeaderAlign, builtinPreferences.ColumnHeaderAlign)
	p.RowHeaderAlign = sanitize(p.RowHeaderAlign, builtinPreferences.RowHeaderAlign)
	p.ColumnHeaderVAlign = sanitize(p.ColumnHeaderVAlign, builtinPreferences.ColumnHeaderVAlign)
	p.RowHeaderVAlign = sanitize(p.RowHeaderVAlign, builtinPreferences.RowHeaderVAlign)
	p.VAlign = sanitize(p.VAlign, builtinPreferences.VAlign)
	if p.NumberAlign != "" && !p.NumberAlign.Valid() {
		p.NumberAlign = builtinPreferences.NumberAlign
	}
	return p
}

func sanitize[T validator](v, fallback T) T {
	if v.Valid() {
		return v
	}
	return fallback
}

// scopeDefaults returns the structural defaults of the scope addressed by
// (x, y). A nil coordinate addresses every lane on that axis, so (nil, nil)
// is the table scope.
func (p Preferences) scopeDefaults(x, y *int) Config {
	var c Config
	switch {
	case x == nil && y == nil:
		c.BorderTop = fn.Some(p.TableBorders)
		c.BorderRight = fn.Some(p.TableBorders)
		c.BorderBottom = fn.Some(p.TableBorders)
		c.BorderLeft = fn.Some(p.TableBorders)
		c.VAlign = fn.Some(p.VAlign)
	case x == nil:
		if *y == -1 {
			c.Align = fn.Some(p.ColumnHeaderAlign)
			c.Bold = fn.Some(p.BoldHeaders)
			c.BorderBottom = fn.Some(p.HeaderBorders)
			c.VAlign = fn.Some(p.ColumnHeaderVAlign)
		} else if *y > 0 {
			c.BorderTop = fn.Some(p.HorizontalBorders)
		}
	case y == nil:
		if *x == -1 {
			c.Align = fn.Some(p.RowHeaderAlign)
			c.Bold = fn.Some(p.BoldHeaders)
			c.BorderRight = fn.Some(p.HeaderBorders)
			c.VAlign = fn.Some(p.RowHeaderVAlign)
		} else if *x > 0 {
			c.BorderLeft = fn.Some(p.VerticalBorders)
		}
	case *x == -1 && *y == -1:
		c.BorderLeft = fn.Some(false)
		c.BorderTop = fn.Some(false)
	}
	return c
}
