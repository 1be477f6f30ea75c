// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	fn := writeFile(t, "boxes.toml", boxesTOML)
	other := filepath.Join(filepath.Dir(fn), "other.toml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	// keep writing until the watcher is up and reports a change
	tick := time.NewTicker(20 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(10 * time.Second)
	seen := false
	for !seen {
		select {
		case <-calls:
			seen = true
		case <-tick.C:
			require.NoError(t, os.WriteFile(other, []byte("x"), 0666))
			require.NoError(t, os.WriteFile(fn, []byte(boxesTOML), 0666))
		case <-timeout:
			t.Fatal("no change reported")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "scene.toml"), func() error { return nil })
	assert.Error(t, err)
}
