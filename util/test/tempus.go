// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package test

import (
	"bytes"
	"sync"
	"testing"
	"time"
)

// Eventually polls f until it returns true or the timeout expires.
func Eventually(t *testing.T, timeout time.Duration, f func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if f() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// EventuallyOrFatal fails the test if f does not return true before the
// timeout expires.
func EventuallyOrFatal(t *testing.T, timeout time.Duration, f func() bool) {
	t.Helper()
	if !Eventually(t, timeout, f) {
		t.Fatal("Timeout")
	}
}

// SyncBuffer is a bytes.Buffer safe for a writer goroutine and a reading
// test.
type SyncBuffer struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (w *SyncBuffer) Write(p []byte) (n int, err error) {
	w.m.Lock()
	defer w.m.Unlock()
	return w.buf.Write(p)
}

func (w *SyncBuffer) String() string {
	w.m.Lock()
	defer w.m.Unlock()
	return w.buf.String()
}
