// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/ndtable/ndtable/util"
)

func addOutputFormat(fs *pflag.FlagSet, outputFormat *util.EnumFlag) {
	fs.VarP(outputFormat, "format", "f", "set output format")
}

func addInputFormat(fs *pflag.FlagSet, inputFormat *util.EnumFlag) {
	fs.Var(inputFormat, "input-format", "set input format, auto detects it from the file extension")
}

func addFlavor(fs *pflag.FlagSet, flavor *util.EnumFlag) {
	fs.Var(flavor, "flavor", "set border style of the utf8 format")
}

func addPreferencesFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVar(path, "preferences", "", "set path of a YAML, JSON or TOML file with table preferences")
}

func enumUsage(vs []string) string {
	return strings.Join(vs, ", ")
}
