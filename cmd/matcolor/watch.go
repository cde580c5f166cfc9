// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/matcolor/base/errors"
	"github.com/fsnotify/fsnotify"
)

// watchSettle is how long the file must be unchanged
// before it is processed again.
const watchSettle = 100 * time.Millisecond

// watchFile calls fun, and then calls it again whenever the given
// file is written or replaced, until the context is done. Errors from
// fun are logged so that watching continues after a bad write.
func watchFile(ctx context.Context, filename string, fun func() error) error {
	errors.Log(fun())

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	// editors often replace the file, which ends a watch on the file itself
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching", "file", abs)

	timer := time.NewTimer(watchSettle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(watchSettle)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching", "file", abs, "err", err)
		case <-timer.C:
			errors.Log(fun())
		}
	}
}
