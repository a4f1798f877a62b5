// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package grid implements a sparse two dimensional store keyed by integer
// (x, y) coordinates. The coordinate -1 on either axis addresses the header
// lane of that axis.
package grid

import (
	"cmp"
	"iter"
	"slices"
)

// HeaderLane is the coordinate of the header lane on either axis.
const HeaderLane = -1

// Axis selects the coordinate a splice operates on.
type Axis int

const (
	// X is the column axis.
	X Axis = iota
	// Y is the row axis.
	Y
)

func (a Axis) String() string {
	if a == X {
		return "x"
	}
	return "y"
}

// Entry is a single stored item.
type Entry[T any] struct {
	X     int
	Y     int
	Value T
}

func (e *Entry[T]) coord(a Axis) *int {
	if a == X {
		return &e.X
	}
	return &e.Y
}

// Container is a sparse 2-D store. Entries are kept sorted by y, then by x so
// that iteration order is deterministic. A Container is not safe for
// concurrent use.
type Container[T any] struct {
	entries  []*Entry[T]
	newValue func() T
}

// New returns an empty Container. newValue produces the value of entries
// created by GetOrCreate; when nil the zero value of T is used.
func New[T any](newValue func() T) *Container[T] {
	if newValue == nil {
		newValue = func() T {
			var zero T
			return zero
		}
	}
	return &Container[T]{newValue: newValue}
}

// CheckCoordinate returns an InvalidCoordinateErr if v is below the header
// lane.
func CheckCoordinate(axis Axis, v int) error {
	if v < HeaderLane {
		return invalidCoordinateError(axis.String(), v)
	}
	return nil
}

// CheckCoordinates validates both coordinates of a cell address.
func CheckCoordinates(x, y int) error {
	if err := CheckCoordinate(X, x); err != nil {
		return err
	}
	return CheckCoordinate(Y, y)
}

func compareEntry[T any](e *Entry[T], x, y int) int {
	if c := cmp.Compare(e.Y, y); c != 0 {
		return c
	}
	return cmp.Compare(e.X, x)
}

func (c *Container[T]) find(x, y int) (int, bool) {
	return slices.BinarySearchFunc(c.entries, [2]int{x, y}, func(e *Entry[T], k [2]int) int {
		return compareEntry(e, k[0], k[1])
	})
}

// Len returns the number of stored entries.
func (c *Container[T]) Len() int {
	return len(c.entries)
}

// Get returns the value stored at (x, y). Nothing is created.
func (c *Container[T]) Get(x, y int) (T, bool) {
	if i, ok := c.find(x, y); ok {
		return c.entries[i].Value, true
	}
	var zero T
	return zero, false
}

// GetOrCreate returns the entry at (x, y), creating it with the container's
// default value if it does not exist.
func (c *Container[T]) GetOrCreate(x, y int) (*Entry[T], error) {
	if err := CheckCoordinates(x, y); err != nil {
		return nil, err
	}
	i, ok := c.find(x, y)
	if ok {
		return c.entries[i], nil
	}
	e := &Entry[T]{X: x, Y: y, Value: c.newValue()}
	c.entries = slices.Insert(c.entries, i, e)
	return e, nil
}

// Upsert stores v at (x, y).
func (c *Container[T]) Upsert(x, y int, v T) error {
	e, err := c.GetOrCreate(x, y)
	if err != nil {
		return err
	}
	e.Value = v
	return nil
}

// All iterates over the entries in row-major order.
func (c *Container[T]) All() iter.Seq[*Entry[T]] {
	return func(yield func(*Entry[T]) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Count returns the number of entries matching fn.
func (c *Container[T]) Count(fn func(*Entry[T]) bool) int {
	n := 0
	for _, e := range c.entries {
		if fn(e) {
			n++
		}
	}
	return n
}

// Max returns the largest value fn yields over all entries, or min if that
// is larger.
func (c *Container[T]) Max(fn func(*Entry[T]) int, min int) int {
	m := min
	for _, e := range c.entries {
		if n := fn(e); n > m {
			m = n
		}
	}
	return m
}

// Remove deletes all entries matching fn and returns how many were removed.
func (c *Container[T]) Remove(fn func(*Entry[T]) bool) int {
	before := len(c.entries)
	c.entries = slices.DeleteFunc(c.entries, fn)
	return before - len(c.entries)
}

// Clear removes every entry.
func (c *Container[T]) Clear() {
	c.entries = nil
}

// Splice removes remove lanes starting at index i on axis a, then inserts
// insert empty lanes at the same index. Negative counts are treated as zero.
// See Shift for the treatment of the header lane.
func (c *Container[T]) Splice(a Axis, i, remove, insert int) error {
	if err := CheckCoordinate(a, i); err != nil {
		return err
	}
	remove, insert = max(remove, 0), max(insert, 0)
	c.entries = slices.DeleteFunc(c.entries, func(e *Entry[T]) bool {
		_, keep := Shift(*e.coord(a), i, remove, insert)
		return !keep
	})
	for _, e := range c.entries {
		p := e.coord(a)
		*p, _ = Shift(*p, i, remove, insert)
	}
	c.sort()
	return nil
}

// Flip swaps the x and y coordinate of every entry.
func (c *Container[T]) Flip() {
	for _, e := range c.entries {
		e.X, e.Y = e.Y, e.X
	}
	c.sort()
}

func (c *Container[T]) sort() {
	slices.SortFunc(c.entries, func(a, b *Entry[T]) int {
		return compareEntry(a, b.X, b.Y)
	})
}

// Shift maps a lane coordinate through a splice that removes remove lanes at
// index i and inserts insert lanes in their place. The second return value is
// false when the lane is removed.
//
// Splicing at the header lane never moves the header itself: when remove is
// positive the header is the first lane removed, otherwise it stays in place
// and the inserted lanes are placed before lane 0.
func Shift(coord, i, remove, insert int) (int, bool) {
	if coord >= i && coord < i+remove {
		return 0, false
	}
	if i == HeaderLane {
		if coord == HeaderLane {
			return coord, true
		}
		return coord + insert - max(remove-1, 0), true
	}
	if coord >= i {
		return coord + insert - remove, true
	}
	return coord, true
}
