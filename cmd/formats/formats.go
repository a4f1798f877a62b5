// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package formats

import (
	"slices"

	"github.com/ndtable/ndtable/format"
	"github.com/ndtable/ndtable/util"
)

// Flag returns an enum flag over all output formats that defaults to
// defaultFormat.
func Flag(defaultFormat string) *util.EnumFlag {
	return util.NewEnumFlag(defaultFormat, format.Names())
}

// Flavor returns an enum flag over the border flavors of the terminal
// formats.
func Flavor() *util.EnumFlag {
	return util.NewEnumFlag(format.FlavorUTF8, format.Flavors())
}

// Terminal returns true if the named format draws boxes.
func Terminal(name string) bool {
	return slices.Contains([]string{format.ASCII, format.UTF8}, name)
}
