// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package table

import (
	"github.com/ndtable/ndtable/grid"
)

// CellConfig returns the configuration stored for the cell at (x, y)
// merged with the structural defaults of the cell scope.
func (t *Table) CellConfig(x, y int) (Config, error) {
	if err := grid.CheckCoordinates(x, y); err != nil {
		return Config{}, err
	}
	return t.store.cellConfig(x, y), nil
}

// CellRenderConfig returns the configuration used to render the cell at
// (x, y): every scope merged and every border resolved against the
// neighboring cells.
func (t *Table) CellRenderConfig(x, y int) (Config, error) {
	if err := grid.CheckCoordinates(x, y); err != nil {
		return Config{}, err
	}
	return t.store.renderConfig(t.store.bounds(), x, y), nil
}

// ColumnConfig returns the configuration of column x merged with the
// structural defaults of the column scope.
func (t *Table) ColumnConfig(x int) (Config, error) {
	if err := grid.CheckCoordinate(grid.X, x); err != nil {
		return Config{}, err
	}
	return t.store.columnConfig(x), nil
}

// RowConfig returns the configuration of row y merged with the structural
// defaults of the row scope.
func (t *Table) RowConfig(y int) (Config, error) {
	if err := grid.CheckCoordinate(grid.Y, y); err != nil {
		return Config{}, err
	}
	return t.store.rowConfig(y), nil
}

// TableConfig returns the table configuration merged with the structural
// defaults of the table scope.
func (t *Table) TableConfig() Config {
	return t.store.tableConfig()
}

// SetCellConfig applies p to the cell at (x, y).
func (t *Table) SetCellConfig(x, y int, p Patch) error {
	return t.SetCellsConfig([]int{x}, []int{y}, p)
}

// SetColumnConfig applies p to column x.
func (t *Table) SetColumnConfig(x int, p Patch) error {
	return t.SetColumnsConfig([]int{x}, p)
}

// SetRowConfig applies p to row y.
func (t *Table) SetRowConfig(y int, p Patch) error {
	return t.SetRowsConfig([]int{y}, p)
}

// SetTableConfig applies p to the table scope.
func (t *Table) SetTableConfig(p Patch) {
	t.report("table", 0, 0, p.Apply(&t.store.table))
}

// SetCellsConfig applies p to every cell in the cross product of xs and ys.
func (t *Table) SetCellsConfig(xs, ys []int, p Patch) error {
	if err := checkAll(grid.X, xs); err != nil {
		return err
	}
	if err := checkAll(grid.Y, ys); err != nil {
		return err
	}
	for _, x := range xs {
		for _, y := range ys {
			e, _ := t.store.configs.GetOrCreate(x, y)
			t.report("cell", x, y, p.Apply(&e.Value))
		}
	}
	return nil
}

// SetColumnsConfig applies p to every column in xs.
func (t *Table) SetColumnsConfig(xs []int, p Patch) error {
	if err := checkAll(grid.X, xs); err != nil {
		return err
	}
	for _, x := range xs {
		c := t.store.columns[x]
		t.report("column", x, 0, p.Apply(&c))
		t.store.columns[x] = c
	}
	return nil
}

// SetRowsConfig applies p to every row in ys.
func (t *Table) SetRowsConfig(ys []int, p Patch) error {
	if err := checkAll(grid.Y, ys); err != nil {
		return err
	}
	for _, y := range ys {
		c := t.store.rows[y]
		t.report("row", 0, y, p.Apply(&c))
		t.store.rows[y] = c
	}
	return nil
}

// SetCellsConfigPattern applies p to the cells addressed by two coordinate
// patterns such as "0..2,5". See grid.ParseCoords.
func (t *Table) SetCellsConfigPattern(xPattern, yPattern string, p Patch) error {
	xs, err := grid.ParseCoords(xPattern)
	if err != nil {
		return err
	}
	ys, err := grid.ParseCoords(yPattern)
	if err != nil {
		return err
	}
	return t.SetCellsConfig(xs, ys, p)
}

// SetColumnsConfigPattern applies p to the columns addressed by a
// coordinate pattern.
func (t *Table) SetColumnsConfigPattern(pattern string, p Patch) error {
	xs, err := grid.ParseCoords(pattern)
	if err != nil {
		return err
	}
	return t.SetColumnsConfig(xs, p)
}

// SetRowsConfigPattern applies p to the rows addressed by a coordinate
// pattern.
func (t *Table) SetRowsConfigPattern(pattern string, p Patch) error {
	ys, err := grid.ParseCoords(pattern)
	if err != nil {
		return err
	}
	return t.SetRowsConfig(ys, p)
}

func checkAll(axis grid.Axis, coords []int) error {
	for _, c := range coords {
		if err := grid.CheckCoordinate(axis, c); err != nil {
			return err
		}
	}
	return nil
}
