// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package table

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/ndtable/ndtable/cell"
)

// Field names a configuration field as it appears in data files.
type Field string

// Configuration fields. The shorthand fields are write-only.
const (
	FieldAlign        Field = "align"
	FieldVAlign       Field = "valign"
	FieldBold         Field = "bold"
	FieldItalic       Field = "italic"
	FieldColor        Field = "color"
	FieldLink         Field = "link"
	FieldWidth        Field = "width"
	FieldHeight       Field = "height"
	FieldMaxWidth     Field = "maxWidth"
	FieldMaxHeight    Field = "maxHeight"
	FieldBorderTop    Field = "borderTop"
	FieldBorderRight  Field = "borderRight"
	FieldBorderBottom Field = "borderBottom"
	FieldBorderLeft   Field = "borderLeft"
	FieldRenderer     Field = "renderer"

	FieldBorder           Field = "border"
	FieldHorizontalBorder Field = "horizontalBorder"
	FieldVerticalBorder   Field = "verticalBorder"
)

// Patch is a partial configuration update. Only fields that are set are
// written. A field set to an invalid value, such as an unknown alignment or a
// non-positive size, clears the stored field instead of storing it. Fields
// listed in Unset are cleared.
//
// The Border, HorizontalBorder and VerticalBorder shorthands set several
// directional borders at once. A directional border set by the same patch
// takes precedence over Border, which in turn takes precedence over
// HorizontalBorder and VerticalBorder.
type Patch struct {
	Align            fn.Option[Align]
	VAlign           fn.Option[VAlign]
	Bold             fn.Option[bool]
	Italic           fn.Option[bool]
	Color            fn.Option[Color]
	Link             fn.Option[string]
	Width            fn.Option[int]
	Height           fn.Option[int]
	MaxWidth         fn.Option[int]
	MaxHeight        fn.Option[int]
	BorderTop        fn.Option[bool]
	BorderRight      fn.Option[bool]
	BorderBottom     fn.Option[bool]
	BorderLeft       fn.Option[bool]
	Border           fn.Option[bool]
	HorizontalBorder fn.Option[bool]
	VerticalBorder   fn.Option[bool]
	Renderer         fn.Option[Renderer]
	Unset            []Field

	ignored []string
}

// Dropped describes a patch field that was not stored as given.
type Dropped struct {
	Field  string
	Reason string
}

func (p Patch) unsets(f Field) bool {
	return slices.Contains(p.Unset, f)
}

// IsZero returns true if applying p has no effect.
func (p Patch) IsZero() bool {
	var c Config
	p.Apply(&c)
	return c.IsZero() && len(p.Unset) == 0 && len(p.ignored) == 0
}

// Apply writes p into c. Values that do not pass validation clear the
// corresponding field; they are reported in the returned list along with
// any unknown keys p was parsed from.
func (p Patch) Apply(c *Config) []Dropped {
	var dropped []Dropped
	for _, key := range p.ignored {
		dropped = append(dropped, Dropped{Field: key, Reason: "unknown field"})
	}
	report := func(f Field, reason string) {
		dropped = append(dropped, Dropped{Field: string(f), Reason: reason})
	}

	applyEnum(&c.Align, p.Align, p.unsets(FieldAlign), FieldAlign, report)
	applyEnum(&c.VAlign, p.VAlign, p.unsets(FieldVAlign), FieldVAlign, report)
	applyEnum(&c.Color, p.Color, p.unsets(FieldColor), FieldColor, report)
	applyBool(&c.Bold, p.Bold, p.unsets(FieldBold))
	applyBool(&c.Italic, p.Italic, p.unsets(FieldItalic))
	applySize(&c.Width, p.Width, p.unsets(FieldWidth), FieldWidth, report)
	applySize(&c.Height, p.Height, p.unsets(FieldHeight), FieldHeight, report)
	applySize(&c.MaxWidth, p.MaxWidth, p.unsets(FieldMaxWidth), FieldMaxWidth, report)
	applySize(&c.MaxHeight, p.MaxHeight, p.unsets(FieldMaxHeight), FieldMaxHeight, report)

	if p.unsets(FieldLink) {
		c.Link = fn.None[string]()
	}
	p.Link.WhenSome(func(link string) {
		link = strings.TrimSpace(link)
		if link == "" {
			report(FieldLink, "empty link")
			c.Link = fn.None[string]()
			return
		}
		c.Link = fn.Some(link)
	})

	if p.unsets(FieldRenderer) {
		c.Renderer = fn.None[Renderer]()
	}
	p.Renderer.WhenSome(func(r Renderer) {
		if r == nil {
			report(FieldRenderer, "nil renderer")
			c.Renderer = fn.None[Renderer]()
			return
		}
		c.Renderer = fn.Some(r)
	})

	for _, s := range []Side{Top, Right, Bottom, Left} {
		axis, axisField := p.VerticalBorder, FieldVerticalBorder
		if s == Top || s == Bottom {
			axis, axisField = p.HorizontalBorder, FieldHorizontalBorder
		}
		// first field that is set or unset wins
		for _, candidate := range []struct {
			value fn.Option[bool]
			field Field
		}{
			{p.directional(s), s.Field()},
			{p.Border, FieldBorder},
			{axis, axisField},
		} {
			if candidate.value.IsSome() || p.unsets(candidate.field) {
				applyBool(c.border(s), candidate.value, true)
				break
			}
		}
	}

	return dropped
}

func (p Patch) directional(s Side) fn.Option[bool] {
	switch s {
	case Top:
		return p.BorderTop
	case Right:
		return p.BorderRight
	case Bottom:
		return p.BorderBottom
	}
	return p.BorderLeft
}

type validator interface {
	~string
	Valid() bool
}

func applyEnum[T validator](dst *fn.Option[T], v fn.Option[T], unset bool, f Field, report func(Field, string)) {
	if unset {
		*dst = fn.None[T]()
	}
	v.WhenSome(func(x T) {
		if !x.Valid() {
			report(f, "invalid value "+strconv.Quote(string(x)))
			*dst = fn.None[T]()
			return
		}
		*dst = fn.Some(x)
	})
}

func applyBool(dst *fn.Option[bool], v fn.Option[bool], unset bool) {
	if unset {
		*dst = fn.None[bool]()
	}
	v.WhenSome(func(b bool) {
		*dst = fn.Some(b)
	})
}

func applySize(dst *fn.Option[int], v fn.Option[int], unset bool, f Field, report func(Field, string)) {
	if unset {
		*dst = fn.None[int]()
	}
	v.WhenSome(func(n int) {
		if n <= 0 {
			report(f, "size must be positive, got "+strconv.Itoa(n))
			*dst = fn.None[int]()
			return
		}
		*dst = fn.Some(n)
	})
}

// ParsePatch builds a Patch from a generic map as found in decoded JSON or
// YAML data. Keys follow the Field names. Booleans are interpreted by
// truthiness, sizes are rounded to the nearest integer and a nil value
// clears the field. Values of the wrong type clear the field as well. The
// "value" key is ignored and any other unknown key is dropped.
func ParsePatch(m map[string]any) Patch {
	var p Patch
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		v := m[key]
		f := Field(key)
		if v == nil && key != "value" {
			p.Unset = append(p.Unset, f)
			continue
		}
		switch f {
		case "value":
		case FieldAlign:
			p.Align = fn.Some(Align(str(v)))
		case FieldVAlign:
			p.VAlign = fn.Some(VAlign(str(v)))
		case FieldColor:
			p.Color = fn.Some(Color(str(v)))
		case FieldLink:
			p.Link = fn.Some(str(v))
		case FieldBold:
			p.Bold = fn.Some(truthy(v))
		case FieldItalic:
			p.Italic = fn.Some(truthy(v))
		case FieldBorderTop:
			p.BorderTop = fn.Some(truthy(v))
		case FieldBorderRight:
			p.BorderRight = fn.Some(truthy(v))
		case FieldBorderBottom:
			p.BorderBottom = fn.Some(truthy(v))
		case FieldBorderLeft:
			p.BorderLeft = fn.Some(truthy(v))
		case FieldBorder:
			p.Border = fn.Some(truthy(v))
		case FieldHorizontalBorder:
			p.HorizontalBorder = fn.Some(truthy(v))
		case FieldVerticalBorder:
			p.VerticalBorder = fn.Some(truthy(v))
		case FieldWidth:
			p.Width = fn.Some(size(v))
		case FieldHeight:
			p.Height = fn.Some(size(v))
		case FieldMaxWidth:
			p.MaxWidth = fn.Some(size(v))
		case FieldMaxHeight:
			p.MaxHeight = fn.Some(size(v))
		case FieldRenderer:
			p.Renderer = fn.Some(toRenderer(v))
		default:
			p.ignored = append(p.ignored, key)
		}
	}
	return p
}

// str returns v if it is a string. Anything else maps to the empty string,
// which is never a valid enum value or link.
func str(v any) string {
	s, _ := v.(string)
	return s
}

func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case float64:
		return v != 0 && !math.IsNaN(v)
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case int:
		return v != 0
	case int64:
		return v != 0
	case int32:
		return v != 0
	case uint:
		return v != 0
	case uint64:
		return v != 0
	}
	return true
}

// size converts v to a rounded integer. Values that are not numbers yield 0,
// which is rejected when the patch is applied.
func size(v any) int {
	var f float64
	switch v := v.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case json.Number:
		f, _ = v.Float64()
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0
	}
	if math.IsNaN(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(math.Floor(f + 0.5))
}

func toRenderer(v any) Renderer {
	switch v := v.(type) {
	case Renderer:
		return v
	case func(cell.Value, int, int, Config, *Snapshot) string:
		return RendererFunc(v)
	}
	return nil
}
