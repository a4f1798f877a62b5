// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package table implements a sparse table model: cell values, configuration
// at table, row, column and cell scope, header lanes and the resolution of
// the configuration used to render every cell.
//
// Coordinates are zero based. The coordinate -1 addresses the header lane of
// an axis: cells with y == -1 are column headers and cells with x == -1 are
// row headers. A Table is not safe for concurrent use; Snapshot returns an
// immutable copy that is.
package table

import (
	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/ndtable/ndtable/cell"
	"github.com/ndtable/ndtable/grid"
	"github.com/ndtable/ndtable/logging"
)

// OutputFormat names an output format and its options. The options that do
// not apply to a format are ignored.
type OutputFormat struct {
	Name    string
	ANSI    bool
	Flavor  string
	Styles  bool
	Compact bool
}

// Table is a sparse table of cell values and configuration.
type Table struct {
	store  *store
	logger logging.Logger
	format *OutputFormat
}

// Option configures a Table.
type Option func(*Table)

// WithPreferences sets the preferences of the table.
func WithPreferences(p Preferences) Option {
	return func(t *Table) {
		t.store.prefs = p.Sanitize()
	}
}

// WithLogger sets the logger sanitization notices are reported to.
func WithLogger(l logging.Logger) Option {
	return func(t *Table) {
		t.logger = l
	}
}

// WithColumnHeaders sets the column headers of the table.
func WithColumnHeaders(headers ...any) Option {
	return func(t *Table) {
		t.replaceHeaders(grid.X, entriesOf(headers))
	}
}

// New returns an empty table using the process-wide default preferences.
func New(opts ...Option) *Table {
	t := &Table{
		store:  newStore(DefaultPreferences()),
		logger: logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromData returns a table holding data, one slice per row. If
// firstRowIsHead is set the first row becomes the column headers and if
// firstColumnIsHead is set the first column becomes the row headers.
func FromData(data [][]any, firstRowIsHead, firstColumnIsHead bool, opts ...Option) *Table {
	t := New(opts...)
	pushX, pushY := 0, 0
	if firstColumnIsHead {
		pushX = 1
	}
	if firstRowIsHead {
		pushY = 1
	}
	for y, row := range data {
		for x, v := range row {
			t.setEntry(x-pushX, y-pushY, EntryOf(v))
		}
	}
	return t
}

// Columns returns the number of columns, excluding the row header lane.
func (t *Table) Columns() int {
	return t.store.columnCount()
}

// Rows returns the number of rows, excluding the column header lane.
func (t *Table) Rows() int {
	return t.store.rowCount()
}

func (t *Table) setEntry(x, y int, e Entry) {
	dropped := t.store.setValue(x, y, e)
	t.report("cell", x, y, dropped)
}

func (t *Table) report(scope string, x, y int, dropped []Dropped) {
	for _, d := range dropped {
		t.logger.WithFields(map[string]any{
			"scope": scope,
			"x":     x,
			"y":     y,
			"field": d.Field,
		}).Debug("Dropped configuration field: %v.", d.Reason)
	}
}

// Cell returns the value at (x, y).
func (t *Table) Cell(x, y int) (cell.Value, error) {
	if err := grid.CheckCoordinates(x, y); err != nil {
		return cell.Value{}, err
	}
	v, _ := t.store.values.Get(x, y)
	return v, nil
}

// SetCell writes v to (x, y). See EntryOf for the accepted values.
func (t *Table) SetCell(x, y int, v any) error {
	if err := grid.CheckCoordinates(x, y); err != nil {
		return err
	}
	t.setEntry(x, y, EntryOf(v))
	return nil
}

// AddRow appends a row.
func (t *Table) AddRow(values ...any) {
	t.replaceRow(t.Rows(), Entry{}, entriesOf(values))
}

// AddRowWithHead appends a row with a row header.
func (t *Table) AddRowWithHead(header any, values ...any) {
	t.replaceRow(t.Rows(), EntryOf(header), entriesOf(values))
}

// AddSeparator enables the bottom border of the last row.
func (t *Table) AddSeparator() {
	_ = t.SetRowConfig(t.Rows()-1, Patch{BorderBottom: fn.Some(true)})
}

// InsertRow inserts a row at y, shifting rows at y and below down.
func (t *Table) InsertRow(y int, values ...any) error {
	return t.insertRow(y, Entry{}, entriesOf(values))
}

// InsertRowWithHead inserts a row with a row header at y.
func (t *Table) InsertRowWithHead(y int, header any, values ...any) error {
	return t.insertRow(y, EntryOf(header), entriesOf(values))
}

func (t *Table) insertRow(y int, header Entry, values []Entry) error {
	if err := t.InsertRows(y, 1); err != nil {
		return err
	}
	t.replaceRow(y, header, values)
	return nil
}

// InsertRows inserts count empty rows at y.
func (t *Table) InsertRows(y, count int) error {
	return t.store.splice(grid.Y, y, 0, count)
}

// ReplaceRow replaces the values of row y. The row header is removed.
func (t *Table) ReplaceRow(y int, values ...any) error {
	return t.ReplaceRowWithHead(y, nil, values...)
}

// ReplaceRowWithHead replaces the values and the header of row y.
func (t *Table) ReplaceRowWithHead(y int, header any, values ...any) error {
	if err := grid.CheckCoordinate(grid.Y, y); err != nil {
		return err
	}
	h := Entry{}
	if header != nil {
		h = EntryOf(header)
	}
	t.replaceRow(y, h, entriesOf(values))
	return nil
}

func (t *Table) replaceRow(y int, header Entry, values []Entry) {
	t.store.values.Remove(func(e *grid.Entry[cell.Value]) bool { return e.Y == y })
	t.setEntry(grid.HeaderLane, y, header)
	for x, v := range values {
		t.setEntry(x, y, v)
	}
}

// DeleteRow deletes row y, shifting the rows below up.
func (t *Table) DeleteRow(y int) error {
	return t.DeleteRows(y, 1)
}

// DeleteRows deletes count rows starting at y.
func (t *Table) DeleteRows(y, count int) error {
	return t.store.splice(grid.Y, y, count, 0)
}

// AddColumn appends a column.
func (t *Table) AddColumn(values ...any) {
	t.replaceColumn(t.Columns(), Entry{}, entriesOf(values))
}

// AddColumnWithHead appends a column with a column header.
func (t *Table) AddColumnWithHead(header any, values ...any) {
	t.replaceColumn(t.Columns(), EntryOf(header), entriesOf(values))
}

// InsertColumn inserts a column at x, shifting columns at x and to the
// right.
func (t *Table) InsertColumn(x int, values ...any) error {
	return t.insertColumn(x, Entry{}, entriesOf(values))
}

// InsertColumnWithHead inserts a column with a column header at x.
func (t *Table) InsertColumnWithHead(x int, header any, values ...any) error {
	return t.insertColumn(x, EntryOf(header), entriesOf(values))
}

func (t *Table) insertColumn(x int, header Entry, values []Entry) error {
	if err := t.InsertColumns(x, 1); err != nil {
		return err
	}
	t.replaceColumn(x, header, values)
	return nil
}

// InsertColumns inserts count empty columns at x.
func (t *Table) InsertColumns(x, count int) error {
	return t.store.splice(grid.X, x, 0, count)
}

// ReplaceColumn replaces the values of column x. The column header is
// removed.
func (t *Table) ReplaceColumn(x int, values ...any) error {
	return t.ReplaceColumnWithHead(x, nil, values...)
}

// ReplaceColumnWithHead replaces the values and the header of column x.
func (t *Table) ReplaceColumnWithHead(x int, header any, values ...any) error {
	if err := grid.CheckCoordinate(grid.X, x); err != nil {
		return err
	}
	h := Entry{}
	if header != nil {
		h = EntryOf(header)
	}
	t.replaceColumn(x, h, entriesOf(values))
	return nil
}

func (t *Table) replaceColumn(x int, header Entry, values []Entry) {
	t.store.values.Remove(func(e *grid.Entry[cell.Value]) bool { return e.X == x })
	t.setEntry(x, grid.HeaderLane, header)
	for y, v := range values {
		t.setEntry(x, y, v)
	}
}

// DeleteColumn deletes column x, shifting the columns to the right.
func (t *Table) DeleteColumn(x int) error {
	return t.DeleteColumns(x, 1)
}

// DeleteColumns deletes count columns starting at x.
func (t *Table) DeleteColumns(x, count int) error {
	return t.store.splice(grid.X, x, count, 0)
}

// Clear removes all values, headers and configuration.
func (t *Table) Clear() {
	t.store.clear()
}

// Flip transposes the table. Borders are rotated with it so that, for
// example, a bottom border becomes a right border.
func (t *Table) Flip() {
	t.store.flip()
}

// ColumnHeaders returns the column headers or nil if there are none.
func (t *Table) ColumnHeaders() []cell.Value {
	return t.store.headerValues(grid.X)
}

// RowHeaders returns the row headers or nil if there are none.
func (t *Table) RowHeaders() []cell.Value {
	return t.store.headerValues(grid.Y)
}

// SetColumnHeaders replaces the column headers. Passing no headers removes
// them.
func (t *Table) SetColumnHeaders(headers ...any) {
	t.replaceHeaders(grid.X, entriesOf(headers))
}

// SetRowHeaders replaces the row headers. Passing no headers removes them.
func (t *Table) SetRowHeaders(headers ...any) {
	t.replaceHeaders(grid.Y, entriesOf(headers))
}

// SetHeaders replaces the headers of the lane on axis from a generic value
// as found in decoded data: nil removes the headers and a []any replaces
// them. Any other value is an InvalidArgumentErr.
func (t *Table) SetHeaders(axis grid.Axis, headers any) error {
	switch h := headers.(type) {
	case nil:
		t.replaceHeaders(axis, nil)
	case []any:
		t.replaceHeaders(axis, entriesOf(h))
	default:
		return grid.NewInvalidArgumentError("headers must be a list")
	}
	return nil
}

func (t *Table) replaceHeaders(axis grid.Axis, headers []Entry) {
	t.store.values.Remove(func(e *grid.Entry[cell.Value]) bool {
		if axis == grid.Y {
			return e.X == grid.HeaderLane
		}
		return e.Y == grid.HeaderLane
	})
	for i, h := range headers {
		if axis == grid.Y {
			t.setEntry(grid.HeaderLane, i, h)
		} else {
			t.setEntry(i, grid.HeaderLane, h)
		}
	}
}

// Data returns the values of the visible data area row by row.
func (t *Table) Data() [][]cell.Value {
	return t.Snapshot().Data()
}

// Snapshot returns an immutable copy of the visible area of the table with
// every cell configuration resolved.
func (t *Table) Snapshot() *Snapshot {
	return newSnapshot(t.store)
}

// Preferences returns the preferences of the table.
func (t *Table) Preferences() Preferences {
	return t.store.prefs
}

// SetPreferences replaces the preferences of the table.
func (t *Table) SetPreferences(p Preferences) {
	t.store.prefs = p.Sanitize()
}

// OutputFormat returns the output format set with SetOutputFormat.
func (t *Table) OutputFormat() (OutputFormat, bool) {
	if t.format == nil {
		return OutputFormat{}, false
	}
	return *t.format, true
}

// SetOutputFormat sets the output format used when the table is rendered
// without naming one.
func (t *Table) SetOutputFormat(f OutputFormat) {
	t.format = &f
}
