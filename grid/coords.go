// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package grid

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MaxRangeLength bounds the number of indices a single range in a
// coordinate pattern may expand to.
const MaxRangeLength = 1 << 16

var indexPattern = regexp.MustCompile(`^(-1|[0-9]+)$`)

// ParseCoords parses a coordinate pattern over a single axis. A pattern is a
// comma separated list of indices or inclusive ranges, e.g. "0..2,5" denotes
// the indices 0, 1, 2 and 5. Whitespace is ignored and a range written in
// descending order is accepted. -1 addresses the header lane. Duplicate
// indices are reported once, in order of first appearance.
func ParseCoords(pattern string) ([]int, error) {
	input := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, pattern)

	if input == "" {
		return nil, invalidPatternError(pattern, pattern)
	}

	var result []int
	seen := map[int]struct{}{}
	add := func(v int) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	for _, part := range strings.Split(input, ",") {
		lo, hi, err := parseRange(part)
		if err != nil {
			return nil, invalidPatternError(part, pattern)
		}
		for v := lo; v <= hi; v++ {
			add(v)
		}
	}

	return result, nil
}

func parseRange(part string) (int, int, error) {
	from, to, isRange := strings.Cut(part, "..")
	lo, err := parseIndex(from)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return lo, lo, nil
	}
	hi, err := parseIndex(to)
	if err != nil {
		return 0, 0, err
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi-lo >= MaxRangeLength {
		return 0, 0, errors.New("range too long")
	}
	return lo, hi, nil
}

func parseIndex(s string) (int, error) {
	if !indexPattern.MatchString(s) {
		return 0, errors.New("malformed index")
	}
	return strconv.Atoi(s)
}
