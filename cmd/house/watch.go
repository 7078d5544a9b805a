// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// watchLag is how long the file must stay unchanged before a
// rebuild; editors often write a file several times in a row.
const watchLag = 100 * time.Millisecond

// watcher calls a rebuild function every time a file is written.
type watcher struct {
	// File is the absolute path of the watched file.
	File string

	// Rebuild is called once at start and after every burst of changes.
	// Its errors are logged and do not stop the watcher.
	Rebuild func() error

	fsw *fsnotify.Watcher
}

// newWatcher watches the directory of the file, so that files
// replaced by a rename are still seen.
func newWatcher(file string, rebuild func() error) (*watcher, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &watcher{File: abs, Rebuild: rebuild, fsw: fsw}, nil
}

// Close stops watching.
func (w *watcher) Close() error {
	return w.fsw.Close()
}

// Run rebuilds, then rebuilds again once the file has been quiet
// for [watchLag] after any change, until the context is done or the
// watcher is closed. The last change of a burst is always built.
func (w *watcher) Run(ctx context.Context) error {
	w.rebuild()
	lag := time.NewTimer(watchLag)
	lag.Stop()
	defer lag.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.File || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("house: schema changed", "file", ev.Name, "op", ev.Op)
			lag.Reset(watchLag)
		case <-lag.C:
			slog.Info("house: rebuilding", "file", w.File)
			w.rebuild()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

func (w *watcher) rebuild() {
	errors.Log(w.Rebuild())
}
