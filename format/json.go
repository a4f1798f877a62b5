// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package format

import (
	"encoding/json"

	"github.com/ndtable/ndtable/cell"
	"github.com/ndtable/ndtable/render"
)

// Values writes the raw values of all visible cells, headers included, as
// a JSON array of rows. Absent values are written as null.
func Values(d *render.Data, compact bool) (string, error) {
	out := make([][]cell.Value, 0, d.Rows()-d.StartY())
	for y := d.StartY(); y < d.Rows(); y++ {
		row := make([]cell.Value, 0, d.Columns()-d.StartX())
		for x := d.StartX(); x < d.Columns(); x++ {
			row = append(row, d.Cell(x, y).Value)
		}
		out = append(out, row)
	}

	var bs []byte
	var err error
	if compact {
		bs, err = json.Marshal(out)
	} else {
		bs, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(bs), nil
}
