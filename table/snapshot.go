// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package table

import (
	"slices"

	"github.com/ndtable/ndtable/cell"
	"github.com/ndtable/ndtable/grid"
)

// Snapshot is an immutable copy of the values and the resolved
// configuration of the visible area of a table. Renderers receive the
// snapshot being rendered so they can inspect neighboring cells.
type Snapshot struct {
	b             bounds
	values        [][]cell.Value
	cellConfigs   [][]Config
	columnConfigs []Config
	rowConfigs    []Config
	tableConfig   Config
	columnHeaders []cell.Value
	rowHeaders    []cell.Value
	prefs         Preferences
}

func newSnapshot(s *store) *Snapshot {
	b := s.bounds()
	snap := &Snapshot{
		b:             b,
		values:        make([][]cell.Value, b.columns-b.startX),
		cellConfigs:   make([][]Config, b.columns-b.startX),
		columnConfigs: make([]Config, b.columns-b.startX),
		rowConfigs:    make([]Config, b.rows-b.startY),
		tableConfig:   s.tableConfig(),
		columnHeaders: s.headerValues(grid.X),
		rowHeaders:    s.headerValues(grid.Y),
		prefs:         s.prefs,
	}
	for x := b.startX; x < b.columns; x++ {
		i := x - b.startX
		snap.columnConfigs[i] = s.columnConfig(x)
		snap.values[i] = make([]cell.Value, b.rows-b.startY)
		snap.cellConfigs[i] = make([]Config, b.rows-b.startY)
		for y := b.startY; y < b.rows; y++ {
			j := y - b.startY
			snap.values[i][j], _ = s.values.Get(x, y)
			snap.cellConfigs[i][j] = s.renderConfig(b, x, y)
		}
	}
	for y := b.startY; y < b.rows; y++ {
		snap.rowConfigs[y-b.startY] = s.rowConfig(y)
	}
	return snap
}

// Columns returns the number of columns, excluding the row header lane.
func (s *Snapshot) Columns() int { return s.b.columns }

// Rows returns the number of rows, excluding the column header lane.
func (s *Snapshot) Rows() int { return s.b.rows }

// StartX is -1 if the table has row headers and 0 otherwise.
func (s *Snapshot) StartX() int { return s.b.startX }

// StartY is -1 if the table has column headers and 0 otherwise.
func (s *Snapshot) StartY() int { return s.b.startY }

// Contains returns true if (x, y) lies in the visible area.
func (s *Snapshot) Contains(x, y int) bool {
	return s.b.contains(x, y)
}

// Value returns the value at (x, y). Coordinates outside the visible area
// yield the absent value.
func (s *Snapshot) Value(x, y int) cell.Value {
	if !s.Contains(x, y) {
		return cell.Value{}
	}
	return s.values[x-s.b.startX][y-s.b.startY]
}

// CellConfig returns the resolved configuration of the cell at (x, y).
// Borders are always set.
func (s *Snapshot) CellConfig(x, y int) Config {
	if !s.Contains(x, y) {
		return Config{}
	}
	return s.cellConfigs[x-s.b.startX][y-s.b.startY]
}

// ColumnConfig returns the configuration of column x.
func (s *Snapshot) ColumnConfig(x int) Config {
	if x < s.b.startX || x >= s.b.columns {
		return Config{}
	}
	return s.columnConfigs[x-s.b.startX]
}

// RowConfig returns the configuration of row y.
func (s *Snapshot) RowConfig(y int) Config {
	if y < s.b.startY || y >= s.b.rows {
		return Config{}
	}
	return s.rowConfigs[y-s.b.startY]
}

// TableConfig returns the table configuration.
func (s *Snapshot) TableConfig() Config {
	return s.tableConfig
}

// ColumnHeaders returns the column header values or nil if there are none.
func (s *Snapshot) ColumnHeaders() []cell.Value {
	return slices.Clone(s.columnHeaders)
}

// RowHeaders returns the row header values or nil if there are none.
func (s *Snapshot) RowHeaders() []cell.Value {
	return slices.Clone(s.rowHeaders)
}

// Preferences returns the preferences of the table.
func (s *Snapshot) Preferences() Preferences {
	return s.prefs
}

// Data returns the data values of the visible area row by row. Header lanes
// are not included.
func (s *Snapshot) Data() [][]cell.Value {
	data := make([][]cell.Value, s.b.rows)
	for y := range data {
		data[y] = make([]cell.Value, s.b.columns)
		for x := range data[y] {
			data[y][x] = s.Value(x, y)
		}
	}
	return data
}
