// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/ndtable/ndtable/cell"
	"github.com/ndtable/ndtable/table"
)

const glyphs = " ╴╷┐╶─┌┬╵┘│┤└┴├┼"

// draw joins the cell grids into text, the way terminal formats do.
func draw(d *Data) string {
	var sb strings.Builder
	g := []rune(glyphs)
	for y := d.StartY(); y < d.Rows(); y++ {
		for i := range d.Cell(d.StartX(), y).Grid {
			for x := d.StartX(); x < d.Columns(); x++ {
				for _, seg := range d.Cell(x, y).Grid[i] {
					switch seg.Kind {
					case BorderSegment:
						sb.WriteString(strings.Repeat(string(g[seg.Mask]), seg.Count))
					case TextSegment:
						sb.WriteString(seg.Text)
					case LineEndSegment:
						sb.WriteByte('\n')
					}
				}
			}
		}
	}
	return sb.String()
}

func TestEmptyTable(t *testing.T) {
	d := New(table.New().Snapshot())
	if d.Columns() != 0 || d.Rows() != 0 {
		t.Fatalf("Expected empty bounds")
	}
	if got := draw(d); got != "" {
		t.Fatalf("Expected empty output but got %q", got)
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		note  string
		build func() *table.Table
		exp   string
	}{
		{
			note: "headers and one row",
			build: func() *table.Table {
				tbl := table.New(table.WithColumnHeaders("A", "B"))
				tbl.AddRow("x", 1)
				return tbl
			},
			exp: "┌─────┐\n" +
				"│ A B │\n" +
				"├─────┤\n" +
				"│ x 1 │\n" +
				"└─────┘\n",
		},
		{
			note: "numeric column is right aligned",
			build: func() *table.Table {
				tbl := table.New(table.WithColumnHeaders("name", "qty"))
				tbl.AddRow("apple", 3)
				tbl.AddRow("kiwi", 12.5)
				return tbl
			},
			exp: "┌────────────┐\n" +
				"│ name  qty  │\n" +
				"├────────────┤\n" +
				"│ apple    3 │\n" +
				"│ kiwi  12.5 │\n" +
				"└────────────┘\n",
		},
		{
			note: "row headers and vertical borders",
			build: func() *table.Table {
				prefs := table.BuiltinPreferences()
				prefs.VerticalBorders = true
				prefs.HorizontalBorders = true
				tbl := table.New(table.WithPreferences(prefs), table.WithColumnHeaders("a", "b"))
				tbl.AddRowWithHead("r1", "x", "y")
				tbl.AddRowWithHead("r2", "z", "w")
				return tbl
			},
			exp: "     ┌───┬───┐\n" +
				"     │ a │ b │\n" +
				"┌────┼───┼───┤\n" +
				"│ r1 │ x │ y │\n" +
				"├────┼───┼───┤\n" +
				"│ r2 │ z │ w │\n" +
				"└────┴───┴───┘\n",
		},
		{
			note: "no borders",
			build: func() *table.Table {
				prefs := table.BuiltinPreferences()
				prefs.TableBorders = false
				prefs.HeaderBorders = false
				tbl := table.New(table.WithPreferences(prefs))
				tbl.AddRow("a", "bb")
				tbl.AddRow("ccc", "d")
				return tbl
			},
			exp: "a   bb\n" +
				"ccc d \n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			got := draw(New(tc.build().Snapshot()))
			if got != tc.exp {
				t.Fatalf("Expected:\n%s\nGot:\n%s", tc.exp, got)
			}
		})
	}
}

func TestClipping(t *testing.T) {
	tbl := table.New()
	tbl.AddRow("line one\nline two\nline three", "short")
	_ = tbl.SetCellConfig(0, 0, table.Patch{MaxHeight: fn.Some(2), MaxWidth: fn.Some(6)})
	_ = tbl.SetCellConfig(1, 0, table.Patch{Width: fn.Some(3)})

	d := New(tbl.Snapshot())
	if diff := cmp.Diff([]string{"line o", "line t"}, d.Cell(0, 0).Lines); diff != "" {
		t.Fatalf("Unexpected lines (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"sho", "   "}, d.Cell(1, 0).Lines); diff != "" {
		t.Fatalf("Unexpected lines (-want, +got):\n%s", diff)
	}
	if d.Cell(0, 0).Rendered != "line one\nline two\nline three" {
		t.Fatalf("Expected rendered text to be kept unclipped")
	}
	if d.ColumnWidth(0) != 6 || d.ColumnWidth(1) != 3 || d.RowHeight(0) != 2 {
		t.Fatalf("Unexpected sizes: %d, %d, %d", d.ColumnWidth(0), d.ColumnWidth(1), d.RowHeight(0))
	}
}

func TestClipCountsCharacters(t *testing.T) {
	if got := clip("äöüß", 2); got != "äö" {
		t.Fatalf("Expected 2 characters but got %q", got)
	}
	if got := clip("ab", 5); got != "ab" {
		t.Fatalf("Expected unchanged string but got %q", got)
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		note   string
		lines  []string
		height int
		valign table.VAlign
		exp    []string
	}{
		{"top", []string{"a"}, 3, table.VAlignTop, []string{"a", "", ""}},
		{"bottom", []string{"a"}, 3, table.VAlignBottom, []string{"", "", "a"}},
		{"middle even", []string{"a"}, 3, table.VAlignMiddle, []string{"", "a", ""}},
		{"middle odd", []string{"a"}, 4, table.VAlignMiddle, []string{"", "", "a", ""}},
		{"full", []string{"a", "b"}, 2, table.VAlignBottom, []string{"a", "b"}},
	}
	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			if diff := cmp.Diff(tc.exp, padLines(tc.lines, tc.height, tc.valign)); diff != "" {
				t.Fatalf("Unexpected lines (-want, +got):\n%s", diff)
			}
		})
	}

	lineTests := []struct {
		line  string
		width int
		align table.Align
		count int
		exp   string
	}{
		{"ab", 5, table.AlignLeft, 0, "ab   "},
		{"ab", 5, table.AlignRight, 0, "   ab"},
		{"ab", 5, table.AlignCenter, 0, " ab  "},
		{"ab", 5, table.AlignCenter, 3, "  ab "},
		{"ab", 6, table.AlignCenter, 0, "  ab  "},
		{"ab", 6, table.AlignCenter, 1, "  ab  "},
		{"ü", 2, table.AlignRight, 0, " ü"},
	}
	for _, tc := range lineTests {
		count := tc.count
		if got := padLine(tc.line, tc.width, tc.align, &count); got != tc.exp {
			t.Errorf("padLine(%q, %d, %v, %d): expected %q but got %q", tc.line, tc.width, tc.align, tc.count, tc.exp, got)
		}
	}
}

func TestCenterAlternatesAcrossLines(t *testing.T) {
	tbl := table.New()
	tbl.AddRow("abcd")
	tbl.AddRow(table.With("a\nb", table.Patch{Align: fn.Some(table.AlignCenter)}))
	tbl.AddRow(table.With("x\ny\nz", table.Patch{Align: fn.Some(table.AlignCenter)}))
	d := New(tbl.Snapshot())

	tests := []struct {
		note string
		y    int
		exp  []string
	}{
		{"two lines", 1, []string{" a  ", "  b "}},
		{"three lines", 2, []string{" x  ", "  y ", " z  "}},
	}
	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			if diff := cmp.Diff(tc.exp, d.Cell(0, tc.y).Lines); diff != "" {
				t.Fatalf("Unexpected lines (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestAutoAlign(t *testing.T) {
	build := func(configure func(*table.Table)) *Data {
		tbl := table.New()
		tbl.AddRow("a", "1", "x")
		tbl.AddRow("b", "2,5%", "10")
		tbl.AddRow("c", "-3", "y")
		configure(tbl)
		return New(tbl.Snapshot())
	}

	d := build(func(*table.Table) {})
	exp := []table.Align{table.AlignLeft, table.AlignRight, table.AlignLeft}
	for x, a := range exp {
		if got := d.Cell(x, 0).Config.Align; got != fn.Some(a) {
			t.Fatalf("Expected column %d aligned %v but got %v", x, a, got)
		}
	}

	d = build(func(tbl *table.Table) {
		_ = tbl.SetColumnConfig(1, table.Patch{Align: fn.Some(table.AlignCenter)})
	})
	if got := d.Cell(1, 1).Config.Align; got != fn.Some(table.AlignCenter) {
		t.Fatalf("Expected explicit column alignment to win but got %v", got)
	}

	d = build(func(tbl *table.Table) {
		tbl.SetTableConfig(table.Patch{Align: fn.Some(table.AlignLeft)})
	})
	if got := d.Cell(1, 1).Config.Align; got != fn.Some(table.AlignLeft) {
		t.Fatalf("Expected table alignment to disable detection but got %v", got)
	}

	d = build(func(tbl *table.Table) {
		_ = tbl.SetCellConfig(1, 2, table.Patch{Align: fn.Some(table.AlignCenter)})
	})
	if got := d.Cell(1, 2).Config.Align; got != fn.Some(table.AlignCenter) {
		t.Fatalf("Expected cell alignment to be kept but got %v", got)
	}
	if got := d.Cell(1, 0).Config.Align; got != fn.Some(table.AlignRight) {
		t.Fatalf("Expected other cells to be right aligned but got %v", got)
	}

	d = build(func(tbl *table.Table) {
		p := tbl.Preferences()
		p.NumberAlign = ""
		tbl.SetPreferences(p)
	})
	if got := d.Cell(1, 0).Config.Align; got != fn.Some(table.AlignLeft) {
		t.Fatalf("Expected detection to be disabled but got %v", got)
	}
}

func TestCrossing(t *testing.T) {
	tbl := table.New()
	tbl.AddRow("a", "b")
	tbl.AddRow("c", "d")
	_ = tbl.SetCellConfig(0, 0, table.Patch{Border: fn.Some(true)})

	b := New(tbl.Snapshot()).Borders()

	tests := []struct {
		x, y int
		exp  Mask
	}{
		{0, 0, MaskRight | MaskBottom},
		{1, 0, MaskLeft | MaskRight | MaskBottom},
		{2, 0, MaskLeft | MaskBottom},
		{1, 1, MaskTop | MaskLeft},
		{0, 1, MaskTop | MaskBottom | MaskRight},
		{2, 2, MaskTop | MaskLeft},
	}
	for _, tc := range tests {
		if got := b.Crossing(tc.x, tc.y); got != tc.exp {
			t.Errorf("Crossing(%d, %d): expected %04b but got %04b", tc.x, tc.y, tc.exp, got)
		}
	}

	if !b.VerticalSeparation(1) || !b.HorizontalSeparation(1) {
		t.Fatalf("Expected interior separation from the cell border")
	}
	if b.Vertical(1, 1) || !b.Vertical(1, 0) {
		t.Fatalf("Expected interior vertical border only next to the bordered cell")
	}
}

func TestRendererReceivesSnapshot(t *testing.T) {
	tbl := table.New()
	tbl.AddRow(1, 2)
	sum := table.RendererFunc(func(_ cell.Value, x, y int, _ table.Config, snap *table.Snapshot) string {
		return snap.Value(0, y).String() + "+" + snap.Value(x-1, y).String()
	})
	_ = tbl.SetCellConfig(1, 0, table.Patch{Renderer: fn.Some[table.Renderer](sum)})

	d := New(tbl.Snapshot())
	if got := d.Cell(1, 0).Lines[0]; got != "1+1" {
		t.Fatalf("Expected custom renderer output but got %q", got)
	}
}
