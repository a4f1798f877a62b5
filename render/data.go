// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package render computes the layout of a table snapshot: the text of every
// cell wrapped, clipped and padded to its row and column, and the border
// lines drawn between cells. Output formats consume the resulting Data.
package render

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/ndtable/ndtable/cell"
	"github.com/ndtable/ndtable/logging"
	"github.com/ndtable/ndtable/table"
)

var numberish = regexp.MustCompile(`^[0-9.\-,%\s]*$`)

// Cell is the layout of a single cell.
type Cell struct {
	// Value is the raw cell value.
	Value cell.Value
	// Config is the resolved configuration. Align, VAlign and the four
	// borders are always set.
	Config table.Config
	// Rendered is the text produced by the renderer before clipping.
	Rendered string
	// Lines holds the clipped text padded to the row height and the column
	// width.
	Lines []string
	// Grid holds the output lines of the cell including border segments
	// and padding. See Segment.
	Grid [][]Segment
}

// Data is the layout of a table snapshot.
type Data struct {
	snap        *table.Snapshot
	borders     *Borders
	cells       [][]Cell
	columnWidth []int
	rowHeight   []int
}

// Option configures New.
type Option func(*builder)

type builder struct {
	logger logging.Logger
}

// WithLogger sets the logger build statistics are reported to.
func WithLogger(l logging.Logger) Option {
	return func(b *builder) {
		b.logger = l
	}
}

// New computes the layout of snap.
func New(snap *table.Snapshot, opts ...Option) *Data {
	b := builder{logger: logging.NewNoOpLogger()}
	for _, opt := range opts {
		opt(&b)
	}
	t0 := time.Now()

	startX, startY := snap.StartX(), snap.StartY()
	w, h := snap.Columns()-startX, snap.Rows()-startY
	d := &Data{
		snap:        snap,
		borders:     newBorders(snap),
		cells:       make([][]Cell, w),
		columnWidth: make([]int, w),
		rowHeight:   make([]int, h),
	}

	for x := startX; x < snap.Columns(); x++ {
		d.cells[x-startX] = make([]Cell, h)
		for y := startY; y < snap.Rows(); y++ {
			d.renderCell(x, y)
		}
	}

	d.alignColumns()
	d.padCells()
	d.buildGrids()

	b.logger.WithFields(map[string]any{
		"columns": snap.Columns(),
		"rows":    snap.Rows(),
		"startX":  startX,
		"startY":  startY,
	}).Debug("Built render data in %v.", time.Since(t0))

	return d
}

// renderCell renders the value at (x, y) and clips the text to the
// configured maximum height and width.
func (d *Data) renderCell(x, y int) {
	cfg := d.snap.CellConfig(x, y)
	v := d.snap.Value(x, y)
	rendered := table.RendererFor(cfg).Render(v, x, y, cfg, d.snap)

	lines := strings.Split(rendered, "\n")
	if n := cfg.MaxLines(); len(lines) > n {
		lines = lines[:n]
	}

	maxWidth := cfg.MaxColumns()
	for i, line := range lines {
		lines[i] = clip(line, maxWidth)
		d.columnWidth[x-d.snap.StartX()] = max(d.columnWidth[x-d.snap.StartX()], utf8.RuneCountInString(lines[i]))
	}
	d.rowHeight[y-d.snap.StartY()] = max(d.rowHeight[y-d.snap.StartY()], len(lines))

	*d.cell(x, y) = Cell{
		Value:    v,
		Config:   cfg,
		Rendered: rendered,
		Lines:    lines,
	}
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}

// alignColumns resolves the horizontal alignment of every cell. Data
// columns without an alignment at table or column scope whose lines are
// mostly numeric use the number alignment of the preferences. Whatever is
// still unaligned falls back to the default alignment.
func (d *Data) alignColumns() {
	prefs := d.snap.Preferences()
	if prefs.NumberAlign != "" && d.snap.TableConfig().Align.IsNone() {
		for x := 0; x < d.snap.Columns(); x++ {
			if d.snap.ColumnConfig(x).Align.IsSome() {
				continue
			}
			count := 0
			for y := 0; y < d.snap.Rows(); y++ {
				for _, line := range d.cell(x, y).Lines {
					if numberish.MatchString(strings.TrimSpace(line)) {
						count++
					}
				}
			}
			if 2*count <= d.snap.Rows() {
				continue
			}
			for y := 0; y < d.snap.Rows(); y++ {
				c := d.cell(x, y)
				c.Config.Align = c.Config.Align.Alt(fn.Some(prefs.NumberAlign))
			}
		}
	}

	for x := d.snap.StartX(); x < d.snap.Columns(); x++ {
		for y := d.snap.StartY(); y < d.snap.Rows(); y++ {
			c := d.cell(x, y)
			c.Config.Align = c.Config.Align.Alt(fn.Some(prefs.Align))
			c.Config.VAlign = c.Config.VAlign.Alt(fn.Some(prefs.VAlign))
		}
	}
}

// padCells pads the lines of every cell to the height of its row and the
// width of its column. For middle and center alignment the padding
// alternates between both sides, starting at the top and the right
// respectively. The horizontal alternation continues across the lines of
// a cell.
func (d *Data) padCells() {
	for x := d.snap.StartX(); x < d.snap.Columns(); x++ {
		width := d.ColumnWidth(x)
		for y := d.snap.StartY(); y < d.snap.Rows(); y++ {
			c := d.cell(x, y)
			c.Lines = padLines(c.Lines, d.RowHeight(y), c.Config.VAlign.UnwrapOr(table.VAlignTop))
			align := c.Config.Align.UnwrapOr(table.AlignLeft)
			var count int
			for i, line := range c.Lines {
				c.Lines[i] = padLine(line, width, align, &count)
			}
		}
	}
}

func padLines(lines []string, height int, valign table.VAlign) []string {
	missing := height - len(lines)
	if missing <= 0 {
		return lines
	}
	var above int
	switch valign {
	case table.VAlignBottom:
		above = missing
	case table.VAlignMiddle:
		above = (missing + 1) / 2
	}
	out := make([]string, 0, height)
	out = append(out, make([]string, above)...)
	out = append(out, lines...)
	return append(out, make([]string, missing-above)...)
}

// padLine pads line to width. Center padding goes to the right on even
// values of count and to the left on odd ones; count is advanced by the
// number of spaces added.
func padLine(line string, width int, align table.Align, count *int) string {
	missing := width - utf8.RuneCountInString(line)
	if missing <= 0 {
		return line
	}
	var before int
	switch align {
	case table.AlignRight:
		before = missing
	case table.AlignCenter:
		before = (*count+missing)/2 - *count/2
		*count += missing
	}
	return strings.Repeat(" ", before) + line + strings.Repeat(" ", missing-before)
}

func (d *Data) cell(x, y int) *Cell {
	return &d.cells[x-d.snap.StartX()][y-d.snap.StartY()]
}

// Snapshot returns the snapshot d was built from.
func (d *Data) Snapshot() *table.Snapshot { return d.snap }

// Borders returns the border lines.
func (d *Data) Borders() *Borders { return d.borders }

// Columns returns the number of columns, excluding the row header lane.
func (d *Data) Columns() int { return d.snap.Columns() }

// Rows returns the number of rows, excluding the column header lane.
func (d *Data) Rows() int { return d.snap.Rows() }

// StartX is -1 if the table has row headers and 0 otherwise.
func (d *Data) StartX() int { return d.snap.StartX() }

// StartY is -1 if the table has column headers and 0 otherwise.
func (d *Data) StartY() int { return d.snap.StartY() }

// Cell returns the layout of the cell at (x, y), which must lie in the
// visible area.
func (d *Data) Cell(x, y int) *Cell {
	return d.cell(x, y)
}

// ColumnWidth returns the width of column x in characters.
func (d *Data) ColumnWidth(x int) int {
	return d.columnWidth[x-d.snap.StartX()]
}

// RowHeight returns the height of row y in lines.
func (d *Data) RowHeight(y int) int {
	return d.rowHeight[y-d.snap.StartY()]
}
