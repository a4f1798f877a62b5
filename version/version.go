// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package version contains version information that is set at build time.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is the canonical version of ndtable.
var Version = "0.3.0-dev"

// GoVersion is the version of Go this was built with
var GoVersion = runtime.Version()

// Platform is the runtime OS and architecture of this binary
var Platform = runtime.GOOS + "/" + runtime.GOARCH

// Additional version information that is displayed by the "version" command.
// Vcs and Timestamp default to the VCS information embedded by the Go
// toolchain when they are not set with -ldflags.
var (
	Vcs       = ""
	Timestamp = ""
	Hostname  = ""
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	var dirty bool
	var vcs, timestamp string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.time":
			timestamp = s.Value
		case "vcs.revision":
			vcs = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if Vcs == "" {
		Vcs = vcs
		if dirty && vcs != "" {
			Vcs += "-dirty"
		}
	}
	if Timestamp == "" {
		Timestamp = timestamp
	}
}
