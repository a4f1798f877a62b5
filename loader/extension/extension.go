// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package extension lets programs register parsers for additional data
// file extensions.
package extension

import (
	"strings"
	"sync"
)

// Handler parses the contents of a data file into rows of cell values.
type Handler func([]byte) ([][]any, error)

var (
	mtx      sync.RWMutex
	handlers = map[string]Handler{}
)

// RegisterExtension registers a Handler for a certain file extension, including
// the dot: ".json", not "json". Registering a nil handler removes it.
// Registered handlers take precedence over the built-in formats.
func RegisterExtension(name string, handler Handler) {
	mtx.Lock()
	defer mtx.Unlock()
	name = strings.ToLower(name)
	if handler == nil {
		delete(handlers, name)
		return
	}
	handlers[name] = handler
}

// FindExtension is used to look up a registered extension Handler. It returns
// nil if no handler is registered for ext.
func FindExtension(ext string) Handler {
	mtx.RLock()
	defer mtx.RUnlock()
	return handlers[strings.ToLower(ext)]
}
