// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package filewatcher re-renders output when the files it was produced from
// change.
package filewatcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/ndtable/ndtable/logging"
)

// Render produces the output for the current state of the watched files.
type Render func(context.Context) (string, error)

// OnReload is invoked with the new output after a change, or with the error
// Render returned.
type OnReload func(ctx context.Context, output string, elapsed time.Duration, err error)

// FileWatcher invokes OnReload whenever a watched file changes and the
// rendered output differs from the output reported last.
type FileWatcher struct {
	paths    []string
	render   Render
	onReload OnReload
	logger   logging.Logger

	mtx     sync.Mutex
	hash    uint64
	hasHash bool
}

// NewFileWatcher returns a FileWatcher for the files at paths.
func NewFileWatcher(paths []string, render Render, onReload OnReload, logger logging.Logger) *FileWatcher {
	clean := make([]string, len(paths))
	for i, p := range paths {
		clean[i] = filepath.Clean(p)
	}
	return &FileWatcher{
		paths:    clean,
		render:   render,
		onReload: onReload,
		logger:   logger,
	}
}

// Start begins watching in the background until ctx is done. Directories
// containing the files are watched so that files replaced by editors keep
// being tracked.
func (w *FileWatcher) Start(ctx context.Context) error {
	watcher, err := w.getWatcher()
	if err != nil {
		return err
	}
	go w.readWatcher(ctx, watcher)
	return nil
}

func (w *FileWatcher) getWatcher() (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := map[string]struct{}{}
	for _, path := range w.paths {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		w.logger.WithFields(map[string]any{"path": dir}).Debug("watching path")
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	return watcher, nil
}

func (w *FileWatcher) readWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	mask := fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if evt.Op&mask == 0 || !w.watches(evt.Name) {
				continue
			}
			w.logger.WithFields(map[string]any{
				"event": evt.String(),
			}).Debug("Registered file event.")
			w.Reload(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher failed: %v.", err)
		}
	}
}

func (w *FileWatcher) watches(name string) bool {
	name = filepath.Clean(name)
	for _, p := range w.paths {
		if p == name {
			return true
		}
	}
	return false
}

// Reload renders the output and reports it unless it equals the output
// reported last. Errors are always reported.
func (w *FileWatcher) Reload(ctx context.Context) {
	t0 := time.Now()
	out, err := w.render(ctx)
	if err != nil {
		w.onReload(ctx, "", time.Since(t0), err)
		return
	}

	h := xxhash.Sum64String(out)
	w.mtx.Lock()
	unchanged := w.hasHash && w.hash == h
	w.hash, w.hasHash = h, true
	w.mtx.Unlock()

	if unchanged {
		w.logger.Debug("Output unchanged, skipping.")
		return
	}
	w.onReload(ctx, out, time.Since(t0), nil)
}
