// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package format

import (
	"strings"

	"github.com/ndtable/ndtable/render"
	"github.com/ndtable/ndtable/table"
)

// Flavors of the terminal formats.
const (
	FlavorASCII   = "ascii"
	FlavorRounded = "rounded"
	FlavorUTF8    = "utf8"
)

// Junction glyphs indexed by render.Mask.
var glyphs = map[string][]rune{
	FlavorASCII:   []rune(" -|+--++|+|+++++"),
	FlavorRounded: []rune(" ╴╷╮╶─╭┬╵╯│┤╰┴├┼"),
	FlavorUTF8:    []rune(" ╴╷┐╶─┌┬╵┘│┤└┴├┼"),
}

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiBorder = "\x1b[38;5;240m"
)

var ansiColors = map[table.Color]string{
	table.ColorBlack:   "\x1b[30m",
	table.ColorBlue:    "\x1b[34m",
	table.ColorCyan:    "\x1b[36m",
	table.ColorGreen:   "\x1b[32m",
	table.ColorMagenta: "\x1b[35m",
	table.ColorRed:     "\x1b[31m",
	table.ColorWhite:   "\x1b[37m",
	table.ColorYellow:  "\x1b[33m",
}

// Flavors returns the names of the terminal flavors.
func Flavors() []string {
	return []string{FlavorASCII, FlavorRounded, FlavorUTF8}
}

// Terminal draws the table with box-drawing characters of the given flavor.
// Unknown flavors draw UTF-8 boxes. With ansi set, borders are dimmed and
// bold and colored cells are styled with escape sequences.
func Terminal(d *render.Data, flavor string, ansi bool) string {
	g, ok := glyphs[flavor]
	if !ok {
		g = glyphs[FlavorUTF8]
	}
	if d.Columns() == d.StartX() {
		return ""
	}

	var sb strings.Builder
	for y := d.StartY(); y < d.Rows(); y++ {
		for i := range d.Cell(d.StartX(), y).Grid {
			for x := d.StartX(); x < d.Columns(); x++ {
				c := d.Cell(x, y)
				for _, seg := range c.Grid[i] {
					switch seg.Kind {
					case render.BorderSegment:
						if ansi {
							sb.WriteString(ansiBorder)
						}
						sb.WriteString(strings.Repeat(string(g[seg.Mask]), seg.Count))
						if ansi {
							sb.WriteString(ansiReset)
						}
					case render.TextSegment:
						writeText(&sb, seg.Text, c.Config, ansi)
					case render.LineEndSegment:
						sb.WriteByte('\n')
					}
				}
			}
		}
	}
	return sb.String()
}

func writeText(sb *strings.Builder, text string, cfg table.Config, ansi bool) {
	if !ansi || strings.TrimSpace(text) == "" {
		sb.WriteString(text)
		return
	}
	bold := cfg.Bold.UnwrapOr(false)
	color := ansiColors[cfg.Color.UnwrapOr(table.ColorDefault)]
	if bold {
		sb.WriteString(ansiBold)
	}
	sb.WriteString(color)
	sb.WriteString(text)
	if bold || color != "" {
		sb.WriteString(ansiReset)
	}
}
