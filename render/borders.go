// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package render

import (
	"github.com/ndtable/ndtable/table"
)

// Mask encodes which border lines meet at a grid intersection: top (8),
// right (4), bottom (2) and left (1). A Mask selects one of the 16
// box-drawing junction glyphs.
type Mask uint8

// Mask bits and the two straight lines.
const (
	MaskLeft   Mask = 1
	MaskBottom Mask = 2
	MaskRight  Mask = 4
	MaskTop    Mask = 8

	// Horizontal is a straight horizontal line.
	Horizontal = MaskLeft | MaskRight
	// Vertical is a straight vertical line.
	Vertical = MaskTop | MaskBottom
)

// Borders holds the border lines of the visible area of a table.
//
// Horizontal lines are addressed by the column they span and the row they
// lie above, so y ranges up to and including the row count for the line
// below the last row. Vertical lines are addressed by the column they lie
// left of and the row they span.
type Borders struct {
	startX, startY int
	columns, rows  int
	horizontal     [][]bool
	vertical       [][]bool
	hsep           []bool
	vsep           []bool
}

func newBorders(snap *table.Snapshot) *Borders {
	b := &Borders{
		startX:  snap.StartX(),
		startY:  snap.StartY(),
		columns: snap.Columns(),
		rows:    snap.Rows(),
	}
	w, h := b.columns-b.startX, b.rows-b.startY
	b.horizontal = make([][]bool, w)
	b.vertical = make([][]bool, w+1)
	b.hsep = make([]bool, h+1)
	b.vsep = make([]bool, w+1)

	for x := b.startX; x < b.columns; x++ {
		col := make([]bool, h+1)
		for y := b.startY; y <= b.rows; y++ {
			on := y > b.startY && snap.CellConfig(x, y-1).HasBorder(table.Bottom)
			on = on || (y < b.rows && snap.CellConfig(x, y).HasBorder(table.Top))
			col[y-b.startY] = on
			b.hsep[y-b.startY] = b.hsep[y-b.startY] || on
		}
		b.horizontal[x-b.startX] = col
	}
	for x := b.startX; x <= b.columns; x++ {
		col := make([]bool, h)
		for y := b.startY; y < b.rows; y++ {
			on := x > b.startX && snap.CellConfig(x-1, y).HasBorder(table.Right)
			on = on || (x < b.columns && snap.CellConfig(x, y).HasBorder(table.Left))
			col[y-b.startY] = on
			b.vsep[x-b.startX] = b.vsep[x-b.startX] || on
		}
		b.vertical[x-b.startX] = col
	}
	return b
}

// Horizontal returns true if a border is drawn above the cell at (x, y).
// y may equal the row count to address the line below the last row.
func (b *Borders) Horizontal(x, y int) bool {
	if x < b.startX || x >= b.columns || y < b.startY || y > b.rows {
		return false
	}
	return b.horizontal[x-b.startX][y-b.startY]
}

// Vertical returns true if a border is drawn left of the cell at (x, y).
// x may equal the column count to address the line right of the last
// column.
func (b *Borders) Vertical(x, y int) bool {
	if x < b.startX || x > b.columns || y < b.startY || y >= b.rows {
		return false
	}
	return b.vertical[x-b.startX][y-b.startY]
}

// HorizontalSeparation returns true if any horizontal border is drawn
// above row y.
func (b *Borders) HorizontalSeparation(y int) bool {
	if y < b.startY || y > b.rows {
		return false
	}
	return b.hsep[y-b.startY]
}

// VerticalSeparation returns true if any vertical border is drawn left of
// column x.
func (b *Borders) VerticalSeparation(x int) bool {
	if x < b.startX || x > b.columns {
		return false
	}
	return b.vsep[x-b.startX]
}

// Crossing returns the junction at the top left corner of the cell at
// (x, y).
func (b *Borders) Crossing(x, y int) Mask {
	var m Mask
	if b.Vertical(x, y-1) {
		m |= MaskTop
	}
	if b.Horizontal(x, y) {
		m |= MaskRight
	}
	if b.Vertical(x, y) {
		m |= MaskBottom
	}
	if b.Horizontal(x-1, y) {
		m |= MaskLeft
	}
	return m
}
