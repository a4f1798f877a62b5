// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package table

import (
	"slices"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Align is the horizontal alignment of cell content.
type Align string

// Supported horizontal alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

var aligns = []Align{AlignCenter, AlignLeft, AlignRight}

// Valid returns true if a is a supported alignment.
func (a Align) Valid() bool {
	return slices.Contains(aligns, a)
}

// VAlign is the vertical alignment of cell content.
type VAlign string

// Supported vertical alignments.
const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

var valigns = []VAlign{VAlignBottom, VAlignMiddle, VAlignTop}

// Valid returns true if v is a supported vertical alignment.
func (v VAlign) Valid() bool {
	return slices.Contains(valigns, v)
}

// Color is the foreground color of cell content.
type Color string

// Supported colors.
const (
	ColorBlack   Color = "black"
	ColorBlue    Color = "blue"
	ColorCyan    Color = "cyan"
	ColorDefault Color = "default"
	ColorGreen   Color = "green"
	ColorMagenta Color = "magenta"
	ColorRed     Color = "red"
	ColorWhite   Color = "white"
	ColorYellow  Color = "yellow"
)

var colors = []Color{ColorBlack, ColorBlue, ColorCyan, ColorDefault, ColorGreen, ColorMagenta, ColorRed, ColorWhite, ColorYellow}

// Valid returns true if c is a supported color.
func (c Color) Valid() bool {
	return slices.Contains(colors, c)
}

// Side identifies one of the four borders of a cell.
type Side int

// Cell sides.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Opposite returns the side facing s on the neighboring cell.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Field returns the configuration field of the border on side s.
func (s Side) Field() Field {
	return [...]Field{FieldBorderTop, FieldBorderRight, FieldBorderBottom, FieldBorderLeft}[s]
}

// Config is the configuration of one scope: the table, a row, a column or a
// cell. Unset fields inherit from less specific scopes.
type Config struct {
	Align        fn.Option[Align]
	VAlign       fn.Option[VAlign]
	Bold         fn.Option[bool]
	Italic       fn.Option[bool]
	Color        fn.Option[Color]
	Link         fn.Option[string]
	Width        fn.Option[int]
	Height       fn.Option[int]
	MaxWidth     fn.Option[int]
	MaxHeight    fn.Option[int]
	BorderTop    fn.Option[bool]
	BorderRight  fn.Option[bool]
	BorderBottom fn.Option[bool]
	BorderLeft   fn.Option[bool]
	Renderer     fn.Option[Renderer]
}

// Border returns the border option on side s.
func (c Config) Border(s Side) fn.Option[bool] {
	return *c.border(s)
}

// SetBorder sets the border option on side s.
func (c *Config) SetBorder(s Side, v fn.Option[bool]) {
	*c.border(s) = v
}

func (c *Config) border(s Side) *fn.Option[bool] {
	switch s {
	case Top:
		return &c.BorderTop
	case Right:
		return &c.BorderRight
	case Bottom:
		return &c.BorderBottom
	}
	return &c.BorderLeft
}

// HasBorder returns true if the border on side s is set and enabled.
func (c Config) HasBorder(s Side) bool {
	return c.Border(s).UnwrapOr(false)
}

// IsZero returns true if no field is set.
func (c Config) IsZero() bool {
	return c.Equal(Config{})
}

// Merge returns c with every unset field taken from base.
func (c Config) Merge(base Config) Config {
	return Config{
		Align:        c.Align.Alt(base.Align),
		VAlign:       c.VAlign.Alt(base.VAlign),
		Bold:         c.Bold.Alt(base.Bold),
		Italic:       c.Italic.Alt(base.Italic),
		Color:        c.Color.Alt(base.Color),
		Link:         c.Link.Alt(base.Link),
		Width:        c.Width.Alt(base.Width),
		Height:       c.Height.Alt(base.Height),
		MaxWidth:     c.MaxWidth.Alt(base.MaxWidth),
		MaxHeight:    c.MaxHeight.Alt(base.MaxHeight),
		BorderTop:    c.BorderTop.Alt(base.BorderTop),
		BorderRight:  c.BorderRight.Alt(base.BorderRight),
		BorderBottom: c.BorderBottom.Alt(base.BorderBottom),
		BorderLeft:   c.BorderLeft.Alt(base.BorderLeft),
		Renderer:     c.Renderer.Alt(base.Renderer),
	}
}

// FlipBorders swaps the top and left borders as well as the bottom and
// right borders.
func (c *Config) FlipBorders() {
	c.BorderTop, c.BorderLeft = c.BorderLeft, c.BorderTop
	c.BorderBottom, c.BorderRight = c.BorderRight, c.BorderBottom
}

// Equal compares two configurations. Renderers are compared by presence
// only since functions cannot be compared.
func (c Config) Equal(other Config) bool {
	return c.Align == other.Align &&
		c.VAlign == other.VAlign &&
		c.Bold == other.Bold &&
		c.Italic == other.Italic &&
		c.Color == other.Color &&
		c.Link == other.Link &&
		c.Width == other.Width &&
		c.Height == other.Height &&
		c.MaxWidth == other.MaxWidth &&
		c.MaxHeight == other.MaxHeight &&
		c.BorderTop == other.BorderTop &&
		c.BorderRight == other.BorderRight &&
		c.BorderBottom == other.BorderBottom &&
		c.BorderLeft == other.BorderLeft &&
		c.Renderer.IsSome() == other.Renderer.IsSome()
}

// MaxLines returns the number of lines a cell configured with c may occupy.
func (c Config) MaxLines() int {
	return min(c.MaxHeight.UnwrapOr(Unlimited), c.Height.UnwrapOr(Unlimited))
}

// MaxColumns returns the number of characters a line of a cell configured
// with c may occupy.
func (c Config) MaxColumns() int {
	return min(c.MaxWidth.UnwrapOr(Unlimited), c.Width.UnwrapOr(Unlimited))
}

// Unlimited is the size limit applied when neither a fixed nor a maximum
// size is configured.
const Unlimited = 1000
