// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package test contains helpers shared by the tests of several packages.
package test

import (
	"os"
	"path/filepath"
)

// WithTempFS creates a temporary directory structure and invokes f with the
// root directory path. The structure is removed when f returns.
func WithTempFS(files map[string]string, f func(string)) {
	rootDir, cleanup, err := MakeTempFS("", "ndtable_test", files)
	if err != nil {
		panic(err)
	}
	defer cleanup()
	f(rootDir)
}

// MakeTempFS creates a temporary directory structure for test purposes rooted at root.
// If root is empty, the dir is created in the default system temp location.
// If the creation fails, cleanup is nil and the caller does not have to invoke it. If
// creation succeeds, the caller should invoke cleanup when they are done.
func MakeTempFS(root, prefix string, files map[string]string) (rootDir string, cleanup func(), err error) {
	rootDir, err = os.MkdirTemp(root, prefix)
	if err != nil {
		return "", nil, err
	}

	cleanup = func() {
		os.RemoveAll(rootDir)
	}

	for path, content := range files {
		dirname, filename := filepath.Split(path)
		dirPath := filepath.Join(rootDir, dirname)
		if err := os.MkdirAll(dirPath, 0o777); err != nil {
			cleanup()
			return "", nil, err
		}

		f, err := os.Create(filepath.Join(dirPath, filename))
		if err != nil {
			cleanup()
			return "", nil, err
		}

		if _, err := f.WriteString(content); err != nil {
			f.Close()
			cleanup()
			return "", nil, err
		}
		f.Close()
	}

	return rootDir, cleanup, nil
}
