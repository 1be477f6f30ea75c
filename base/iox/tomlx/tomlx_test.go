// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string
	Size  float32
	Flags []string
}

type doc struct {
	Title string
	Items []item
}

const text = `
Title = "scene"

[[Items]]
Name = "a"
Size = 1.5
Flags = ["x", "y"]

[[Items]]
Name = "b"
Size = 2
`

func TestRead(t *testing.T) {
	var d doc
	require.NoError(t, ReadBytes(&d, []byte(text)))
	assert.Equal(t, "scene", d.Title)
	require.Len(t, d.Items, 2)
	assert.Equal(t, item{Name: "a", Size: 1.5, Flags: []string{"x", "y"}}, d.Items[0])
	assert.Equal(t, float32(2), d.Items[1].Size)

	assert.Error(t, ReadBytes(&d, []byte("Title = ")))
}

func TestSaveOpen(t *testing.T) {
	d := doc{Title: "saved", Items: []item{{Name: "c", Size: 3, Flags: []string{"z"}}}}
	fn := filepath.Join(t.TempDir(), "d.toml")
	require.NoError(t, Save(&d, fn))

	var o doc
	require.NoError(t, Open(&o, fn))
	assert.Equal(t, d, o)

	// later files overwrite earlier ones
	over := filepath.Join(t.TempDir(), "over.toml")
	require.NoError(t, Save(&doc{Title: "over"}, over))
	var m doc
	require.NoError(t, OpenFiles(&m, fn, over))
	assert.Equal(t, "over", m.Title)

	assert.Error(t, Open(&o, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"scene.toml": {Data: []byte(text)}}
	var d doc
	require.NoError(t, OpenFS(&d, fsys, "scene.toml"))
	assert.Len(t, d.Items, 2)
}
