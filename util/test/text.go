// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package test

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// AssertText fails the test if act differs from exp and prints both texts
// together with a character diff. Control characters are escaped in the
// diff so that ANSI sequences and trailing blanks stay visible.
func AssertText(t *testing.T, exp, act string) {
	t.Helper()
	if exp == act {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(visible(exp), visible(act), false)
	t.Fatalf("expected:\n\n%v\n\nbut got:\n\n%v\n\ndiff (-expected, +got):\n\n%v", exp, act, dmp.DiffPrettyText(diffs))
}

// FatalMismatch fails the test reporting the expected and actual values.
func FatalMismatch(t *testing.T, act, exp any) {
	t.Helper()
	t.Fatalf("expected:\n\n%v\n\nbut got:\n\n%v", exp, act)
}

var escaper = strings.NewReplacer("\x1b", `\e`, "\t", `\t`, " \n", "·\n")

func visible(s string) string {
	return escaper.Replace(s)
}
