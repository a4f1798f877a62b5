// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package render

// SegmentKind identifies the type of a Segment.
type SegmentKind int

const (
	// BorderSegment is a run of one junction glyph.
	BorderSegment SegmentKind = iota
	// TextSegment is a padded line of cell content.
	TextSegment
	// LineEndSegment terminates an output line.
	LineEndSegment
)

// Segment is a piece of an output line of a box-drawing format.
type Segment struct {
	Kind SegmentKind
	// Mask and Count describe a BorderSegment: Count repetitions of the
	// glyph for Mask. A zero Mask is blank space.
	Mask  Mask
	Count int
	// Text is the content of a TextSegment.
	Text string
}

func border(m Mask, n int) Segment {
	return Segment{Kind: BorderSegment, Mask: m, Count: n}
}

// buildGrids lays out the output lines of every cell. A cell owns the
// border line above it, the border left of it and the padding on both
// sides of its content. Cells in the last column also own the right
// border and the line end, cells in the last row the border line below.
func (d *Data) buildGrids() {
	b := d.borders
	startX, startY := d.StartX(), d.StartY()
	columns, rows := d.Columns(), d.Rows()

	for x := startX; x < columns; x++ {
		leftBorder := b.VerticalSeparation(x)
		leftPadding := leftBorder || x > startX
		rightPadding := b.VerticalSeparation(x + 1)
		last := x == columns-1
		width := d.ColumnWidth(x)

		separator := func(top bool, y int) []Segment {
			line := Mask(0)
			if top {
				line = Horizontal
			}
			var segs []Segment
			if leftBorder {
				segs = append(segs, border(b.Crossing(x, y), 1))
			}
			if leftPadding {
				segs = append(segs, border(line, 1))
			}
			segs = append(segs, border(line, width))
			if rightPadding {
				segs = append(segs, border(line, 1))
			}
			if last {
				if rightPadding {
					segs = append(segs, border(b.Crossing(x+1, y), 1))
				}
				segs = append(segs, Segment{Kind: LineEndSegment})
			}
			return segs
		}

		for y := startY; y < rows; y++ {
			c := d.cell(x, y)
			c.Grid = nil
			if b.HorizontalSeparation(y) {
				c.Grid = append(c.Grid, separator(b.Horizontal(x, y), y))
			}
			for _, line := range c.Lines {
				var segs []Segment
				if leftBorder {
					segs = append(segs, border(verticalIf(b.Vertical(x, y)), 1))
				}
				if leftPadding {
					segs = append(segs, border(0, 1))
				}
				segs = append(segs, Segment{Kind: TextSegment, Text: line})
				if rightPadding {
					segs = append(segs, border(0, 1))
				}
				if last {
					if rightPadding {
						segs = append(segs, border(verticalIf(b.Vertical(x+1, y)), 1))
					}
					segs = append(segs, Segment{Kind: LineEndSegment})
				}
				c.Grid = append(c.Grid, segs)
			}
			if y == rows-1 && b.HorizontalSeparation(rows) {
				c.Grid = append(c.Grid, separator(b.Horizontal(x, rows), rows))
			}
		}
	}
}

func verticalIf(on bool) Mask {
	if on {
		return Vertical
	}
	return 0
}
