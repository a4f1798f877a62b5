// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

type point struct {
	X, Y int
	V    string
}

func dump(c *Container[string]) []point {
	var result []point
	for e := range c.All() {
		result = append(result, point{e.X, e.Y, e.Value})
	}
	return result
}

func fill(t *testing.T, pts ...point) *Container[string] {
	t.Helper()
	c := New[string](nil)
	for _, p := range pts {
		if err := c.Upsert(p.X, p.Y, p.V); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestContainerOrdering(t *testing.T) {
	c := fill(t,
		point{2, 1, "c"},
		point{0, 0, "a"},
		point{-1, 1, "h"},
		point{1, -1, "t"},
		point{0, 1, "b"},
	)

	exp := []point{{1, -1, "t"}, {0, 0, "a"}, {-1, 1, "h"}, {0, 1, "b"}, {2, 1, "c"}}
	if diff := cmp.Diff(exp, dump(c)); diff != "" {
		t.Fatalf("Unexpected order (-want, +got):\n%s", diff)
	}
}

func TestContainerGetOrCreate(t *testing.T) {
	n := 0
	c := New(func() int { n++; return 42 })

	e, err := c.GetOrCreate(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if e.Value != 42 || n != 1 {
		t.Fatalf("Expected default value from factory, got %v (calls %d)", e.Value, n)
	}
	e.Value = 7

	again, err := c.GetOrCreate(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if again != e || n != 1 {
		t.Fatalf("Expected existing entry to be returned")
	}

	if v, ok := c.Get(3, 4); !ok || v != 7 {
		t.Fatalf("Expected 7 but got %v (found: %v)", v, ok)
	}
	if _, ok := c.Get(4, 3); ok {
		t.Fatalf("Expected no entry at (4, 3)")
	}
	if c.Len() != 1 {
		t.Fatalf("Expected Get not to create entries, got %d", c.Len())
	}
}

func TestContainerInvalidCoordinate(t *testing.T) {
	c := New[string](nil)
	tests := []struct {
		note string
		x, y int
	}{
		{"x below header", -2, 0},
		{"y below header", 0, -2},
		{"both", -5, -5},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			err := c.Upsert(tc.x, tc.y, "v")
			if !IsInvalidCoordinate(err) {
				t.Fatalf("Expected invalid coordinate error but got: %v", err)
			}
			if c.Len() != 0 {
				t.Fatalf("Expected no mutation")
			}
		})
	}

	if err := c.Splice(Y, -2, 1, 0); !IsInvalidCoordinate(err) {
		t.Fatalf("Expected invalid coordinate error but got: %v", err)
	}
}

func TestContainerRemoveAndClear(t *testing.T) {
	c := fill(t, point{0, 0, "a"}, point{1, 0, "b"}, point{0, 1, "c"})

	n := c.Remove(func(e *Entry[string]) bool { return e.X == 0 })
	if n != 2 {
		t.Fatalf("Expected 2 removed, got %d", n)
	}
	if diff := cmp.Diff([]point{{1, 0, "b"}}, dump(c)); diff != "" {
		t.Fatalf("Unexpected entries (-want, +got):\n%s", diff)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Expected empty container after Clear")
	}
}

func TestContainerMaxAndCount(t *testing.T) {
	c := fill(t, point{0, 0, "a"}, point{4, 2, ""}, point{2, 1, "b"})

	got := c.Max(func(e *Entry[string]) int {
		if e.Value == "" {
			return 0
		}
		return e.X + 1
	}, 0)
	if got != 3 {
		t.Fatalf("Expected 3 but got %d", got)
	}

	if n := c.Count(func(e *Entry[string]) bool { return e.Value != "" }); n != 2 {
		t.Fatalf("Expected 2 but got %d", n)
	}
}

func TestContainerSplice(t *testing.T) {
	base := []point{{-1, -1, "corner"}, {0, -1, "h0"}, {-1, 0, "r0"}, {0, 0, "a"}, {0, 1, "b"}, {0, 2, "c"}}

	tests := []struct {
		note                  string
		index, remove, insert int
		exp                   []point
	}{
		{
			note:   "insert in the middle",
			index:  1,
			insert: 2,
			exp:    []point{{-1, -1, "corner"}, {0, -1, "h0"}, {-1, 0, "r0"}, {0, 0, "a"}, {0, 3, "b"}, {0, 4, "c"}},
		},
		{
			note:   "delete in the middle",
			index:  1,
			remove: 1,
			exp:    []point{{-1, -1, "corner"}, {0, -1, "h0"}, {-1, 0, "r0"}, {0, 0, "a"}, {0, 1, "c"}},
		},
		{
			note:   "replace",
			index:  0,
			remove: 1,
			insert: 1,
			exp:    []point{{-1, -1, "corner"}, {0, -1, "h0"}, {0, 1, "b"}, {0, 2, "c"}},
		},
		{
			note:   "insert before header lane keeps header",
			index:  -1,
			insert: 1,
			exp:    []point{{-1, -1, "corner"}, {0, -1, "h0"}, {-1, 1, "r0"}, {0, 1, "a"}, {0, 2, "b"}, {0, 3, "c"}},
		},
		{
			note:   "remove header lane",
			index:  -1,
			remove: 1,
			exp:    []point{{-1, 0, "r0"}, {0, 0, "a"}, {0, 1, "b"}, {0, 2, "c"}},
		},
		{
			note:   "remove header lane and first row",
			index:  -1,
			remove: 2,
			exp:    []point{{0, 0, "b"}, {0, 1, "c"}},
		},
		{
			note:   "negative counts",
			index:  0,
			remove: -3,
			insert: -1,
			exp:    base,
		},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			c := fill(t, base...)
			if err := c.Splice(Y, tc.index, tc.remove, tc.insert); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.exp, dump(c)); diff != "" {
				t.Fatalf("Unexpected entries (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestContainerSpliceColumns(t *testing.T) {
	c := fill(t, point{0, 0, "a"}, point{1, 0, "b"}, point{2, 0, "c"})
	if err := c.Splice(X, 1, 1, 0); err != nil {
		t.Fatal(err)
	}
	exp := []point{{0, 0, "a"}, {1, 0, "c"}}
	if diff := cmp.Diff(exp, dump(c)); diff != "" {
		t.Fatalf("Unexpected entries (-want, +got):\n%s", diff)
	}
}

func TestContainerFlip(t *testing.T) {
	c := fill(t, point{2, 0, "a"}, point{0, 1, "b"}, point{-1, 3, "c"})
	c.Flip()
	exp := []point{{3, -1, "c"}, {1, 0, "b"}, {0, 2, "a"}}
	if diff := cmp.Diff(exp, dump(c)); diff != "" {
		t.Fatalf("Unexpected entries (-want, +got):\n%s", diff)
	}
}

func genPoints(t *rapid.T) []point {
	coord := rapid.IntRange(-1, 20)
	pts := rapid.SliceOfNDistinct(
		rapid.Custom(func(t *rapid.T) point {
			return point{X: coord.Draw(t, "x"), Y: coord.Draw(t, "y"), V: rapid.StringN(0, 4, -1).Draw(t, "v")}
		}),
		0, 30,
		func(p point) [2]int { return [2]int{p.X, p.Y} },
	).Draw(t, "points")
	return pts
}

func fillRapid(t *rapid.T, pts []point) *Container[string] {
	c := New[string](nil)
	for _, p := range pts {
		if err := c.Upsert(p.X, p.Y, p.V); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestContainerRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pts := genPoints(t)
		c := fillRapid(t, pts)
		for _, p := range pts {
			if v, ok := c.Get(p.X, p.Y); !ok || v != p.V {
				t.Fatalf("Expected %q at (%d, %d) but got %q (found: %v)", p.V, p.X, p.Y, v, ok)
			}
		}
	})
}

func TestContainerFlipInvolutionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := fillRapid(t, genPoints(t))
		before := dump(c)
		c.Flip()
		c.Flip()
		if diff := cmp.Diff(before, dump(c)); diff != "" {
			t.Fatalf("Flip is not an involution (-want, +got):\n%s", diff)
		}
	})
}

func TestContainerSpliceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pts := genPoints(t)
		c := fillRapid(t, pts)
		index := rapid.IntRange(0, 20).Draw(t, "index")
		remove := rapid.IntRange(0, 5).Draw(t, "remove")
		insert := rapid.IntRange(0, 5).Draw(t, "insert")

		if err := c.Splice(Y, index, remove, insert); err != nil {
			t.Fatal(err)
		}

		for _, p := range pts {
			v, ok := c.Get(p.X, p.Y+insert-remove)
			switch {
			case p.Y < index:
				if got, _ := c.Get(p.X, p.Y); got != p.V {
					t.Fatalf("Expected entry above index to stay at (%d, %d)", p.X, p.Y)
				}
			case p.Y < index+remove:
				// removed; the slot may be occupied by a shifted entry
			default:
				if !ok || v != p.V {
					t.Fatalf("Expected entry (%d, %d) shifted by %d", p.X, p.Y, insert-remove)
				}
			}
		}

		removed := 0
		for _, p := range pts {
			if p.Y >= index && p.Y < index+remove {
				removed++
			}
		}
		if c.Len() != len(pts)-removed {
			t.Fatalf("Expected %d entries but got %d", len(pts)-removed, c.Len())
		}
	})
}

func TestShiftHeaderLane(t *testing.T) {
	tests := []struct {
		note                       string
		coord, remove, insert, exp int
		kept                       bool
	}{
		{"header untouched by insert", -1, 0, 3, -1, true},
		{"first lane shifted by insert", 0, 0, 3, 3, true},
		{"header removed", -1, 1, 0, 0, false},
		{"lane 0 kept when only header removed", 0, 1, 0, 0, true},
		{"lane 0 removed", 0, 2, 0, 0, false},
		{"lane 2 shifted", 2, 2, 1, 2, true},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			got, kept := Shift(tc.coord, HeaderLane, tc.remove, tc.insert)
			if kept != tc.kept || (kept && got != tc.exp) {
				t.Fatalf("Expected (%d, %v) but got (%d, %v)", tc.exp, tc.kept, got, kept)
			}
		})
	}
}
