// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"path/filepath"

	"cogentcore.org/collide/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn each time the file is written or recreated, until ctx
// is done. Errors from fn are logged.
func Watch(ctx context.Context, filename string, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file rather than writing it
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	name := filepath.Clean(filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			errors.Log(fn())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
