// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package format

import (
	"regexp"
	"strings"

	"github.com/ndtable/ndtable/render"
)

var nonSimple = regexp.MustCompile(`(?i)[^a-z_0-9]`)

// Delimited writes one line per row with the rendered cells separated by
// sep. Cells containing anything but letters, digits and underscores are
// quoted, with embedded quotes doubled.
func Delimited(d *render.Data, sep rune) string {
	var sb strings.Builder
	for y := d.StartY(); y < d.Rows(); y++ {
		for x := d.StartX(); x < d.Columns(); x++ {
			if x > d.StartX() {
				sb.WriteRune(sep)
			}
			s := d.Cell(x, y).Rendered
			if nonSimple.MatchString(s) {
				s = `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
			}
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
