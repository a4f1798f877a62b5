// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package table

import (
	"github.com/ndtable/ndtable/cell"
)

// Renderer turns a cell value into text. The result may span several lines.
// cfg is the resolved configuration of the cell at (x, y) and snap the
// snapshot being rendered.
type Renderer interface {
	Render(v cell.Value, x, y int, cfg Config, snap *Snapshot) string
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(v cell.Value, x, y int, cfg Config, snap *Snapshot) string

// Render calls f.
func (f RendererFunc) Render(v cell.Value, x, y int, cfg Config, snap *Snapshot) string {
	return f(v, x, y, cfg, snap)
}

// DefaultRenderer renders values with cell.Value.String.
var DefaultRenderer Renderer = RendererFunc(func(v cell.Value, _, _ int, _ Config, _ *Snapshot) string {
	return v.String()
})

// RendererFor returns the renderer configured in cfg, or DefaultRenderer.
func RendererFor(cfg Config) Renderer {
	return cfg.Renderer.UnwrapOr(DefaultRenderer)
}
