// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package table

import (
	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/ndtable/ndtable/cell"
	"github.com/ndtable/ndtable/grid"
)

// bounds describes the visible area of a table.
type bounds struct {
	columns, rows  int
	startX, startY int
}

func (b bounds) contains(x, y int) bool {
	return x >= b.startX && x < b.columns && y >= b.startY && y < b.rows
}

// store holds the values and the configuration of every scope.
type store struct {
	values  *grid.Container[cell.Value]
	configs *grid.Container[Config]
	columns map[int]Config
	rows    map[int]Config
	table   Config
	prefs   Preferences
}

func newStore(prefs Preferences) *store {
	return &store{
		values:  grid.New[cell.Value](nil),
		configs: grid.New[Config](nil),
		columns: map[int]Config{},
		rows:    map[int]Config{},
		prefs:   prefs.Sanitize(),
	}
}

func (s *store) clear() {
	s.values.Clear()
	s.configs.Clear()
	clear(s.columns)
	clear(s.rows)
	s.table = Config{}
}

func (s *store) columnCount() int {
	return s.values.Max(func(e *grid.Entry[cell.Value]) int {
		if e.Value.IsEmpty() {
			return 0
		}
		return e.X + 1
	}, 0)
}

func (s *store) rowCount() int {
	return s.values.Max(func(e *grid.Entry[cell.Value]) int {
		if e.Value.IsEmpty() {
			return 0
		}
		return e.Y + 1
	}, 0)
}

// headerValues returns the values of a header lane, or nil if every value in
// the lane is empty. The corner cell is not part of either lane.
func (s *store) headerValues(axis grid.Axis) []cell.Value {
	n := s.columnCount()
	if axis == grid.Y {
		n = s.rowCount()
	}
	values := make([]cell.Value, n)
	found := false
	for i := range values {
		x, y := i, grid.HeaderLane
		if axis == grid.Y {
			x, y = grid.HeaderLane, i
		}
		values[i], _ = s.values.Get(x, y)
		found = found || !values[i].IsEmpty()
	}
	if !found {
		return nil
	}
	return values
}

func (s *store) bounds() bounds {
	b := bounds{columns: s.columnCount(), rows: s.rowCount()}
	if s.headerValues(grid.Y) != nil {
		b.startX = grid.HeaderLane
	}
	if s.headerValues(grid.X) != nil {
		b.startY = grid.HeaderLane
	}
	return b
}

func (s *store) cellConfig(x, y int) Config {
	stored, _ := s.configs.Get(x, y)
	return stored.Merge(s.prefs.scopeDefaults(&x, &y))
}

func (s *store) columnConfig(x int) Config {
	return s.columns[x].Merge(s.prefs.scopeDefaults(&x, nil))
}

func (s *store) rowConfig(y int) Config {
	return s.rows[y].Merge(s.prefs.scopeDefaults(nil, &y))
}

func (s *store) tableConfig() Config {
	return s.table.Merge(s.prefs.scopeDefaults(nil, nil))
}

// borderValue resolves the border on side of the cell at (x, y) without
// consulting neighbors. Column configuration applies to the vertical sides
// and row configuration to the horizontal ones; on the outer edges of the
// table both apply, followed by the table configuration.
func (s *store) borderValue(b bounds, x, y int, side Side) bool {
	var edge bool
	switch side {
	case Top:
		edge = y == b.startY
	case Right:
		edge = x == b.columns-1
	case Bottom:
		edge = y == b.rows-1
	case Left:
		edge = x == b.startX
	}
	vertical := side == Left || side == Right

	v := s.cellConfig(x, y).Border(side)
	if vertical || edge {
		v = v.Alt(s.columnConfig(x).Border(side))
	}
	if !vertical || edge {
		v = v.Alt(s.rowConfig(y).Border(side))
	}
	if edge {
		v = v.Alt(s.tableConfig().Border(side))
	}
	return v.UnwrapOr(false)
}

// renderConfig resolves the configuration used to render the cell at (x, y):
// the table, row, column and cell configuration merged in increasing order
// of precedence. Every border is enabled if either the cell or its visible
// neighbor on that side enables it.
func (s *store) renderConfig(b bounds, x, y int) Config {
	c := s.cellConfig(x, y).
		Merge(s.columnConfig(x)).
		Merge(s.rowConfig(y)).
		Merge(s.tableConfig())

	for _, side := range []Side{Top, Right, Bottom, Left} {
		nx, ny := x, y
		switch side {
		case Top:
			ny--
		case Right:
			nx++
		case Bottom:
			ny++
		case Left:
			nx--
		}
		on := s.borderValue(b, x, y, side)
		if !on && b.contains(nx, ny) {
			on = s.borderValue(b, nx, ny, side.Opposite())
		}
		c.SetBorder(side, fn.Some(on))
	}
	return c
}

func (s *store) splice(axis grid.Axis, i, remove, insert int) error {
	if err := s.values.Splice(axis, i, remove, insert); err != nil {
		return err
	}
	if err := s.configs.Splice(axis, i, remove, insert); err != nil {
		return err
	}
	lanes := &s.rows
	if axis == grid.X {
		lanes = &s.columns
	}
	shifted := make(map[int]Config, len(*lanes))
	for k, c := range *lanes {
		if nk, ok := grid.Shift(k, i, max(remove, 0), max(insert, 0)); ok {
			shifted[nk] = c
		}
	}
	*lanes = shifted
	return nil
}

func (s *store) flip() {
	s.values.Flip()
	s.configs.Flip()
	for e := range s.configs.All() {
		e.Value.FlipBorders()
	}
	s.table.FlipBorders()
	flipLanes := func(lanes map[int]Config) map[int]Config {
		out := make(map[int]Config, len(lanes))
		for k, c := range lanes {
			c.FlipBorders()
			out[k] = c
		}
		return out
	}
	s.columns, s.rows = flipLanes(s.rows), flipLanes(s.columns)
}

// setValue writes e at (x, y). The coordinates are validated by the Table
// methods before they reach the store, so the container errors are ignored.
func (s *store) setValue(x, y int, e Entry) []Dropped {
	_ = s.values.Upsert(x, y, e.Value)
	if e.Patch.IsZero() {
		return nil
	}
	entry, _ := s.configs.GetOrCreate(x, y)
	return e.Patch.Apply(&entry.Value)
}
