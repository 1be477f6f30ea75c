// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/collide/base/tolassert"
	"cogentcore.org/collide/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream(t *testing.T) {
	// interleaved position + texcoord: stride 5, position offset 0, tex offset 3
	data := math32.ArrayF32{
		1, 2, 3, 0, 0,
		4, 5, 6, 1, 0,
		7, 8, 9, 1, 1,
	}
	pos := &Stream{Data: data, Components: 3, Stride: 5}
	assert.Equal(t, 3, pos.Len())
	assert.Equal(t, math32.Vec3(4, 5, 6), pos.Vector3(1))

	tex := &Stream{Data: data, Components: 2, Stride: 5, Offset: 3}
	assert.Equal(t, 3, tex.Len())
	assert.Equal(t, math32.Vec3(1, 1, 0), tex.Vector3(2))

	packed := NewStream(math32.ArrayF32{1, 2, 3, 4, 5, 6, 7}, 3)
	assert.Equal(t, 2, packed.Len())

	var nilStream *Stream
	assert.Equal(t, 0, nilStream.Len())
}

func TestTriMesh(t *testing.T) {
	vtx := math32.ArrayF32{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1}
	tm := NewTriMesh("tet", vtx, math32.ArrayU32{0, 1, 2, 0, 1, 3})
	assert.Equal(t, 2, tm.NumTriangles())
	a, b, c := tm.Triangle(1)
	assert.Equal(t, math32.Vec3(0, 0, 0), a)
	assert.Equal(t, math32.Vec3(1, 0, 0), b)
	assert.Equal(t, math32.Vec3(0, 0, 1), c)
	assert.Equal(t, math32.B3(0, 0, 0, 1, 1, 1), tm.BBox())

	assert.NotNil(t, tm.Stream(Position))
	assert.Nil(t, tm.Stream(Normal))
	assert.Equal(t, 4, tm.Stream(Position).Len())

	// non-indexed: consecutive triples
	flat := NewTriMesh("flat", vtx[:9], nil)
	assert.Equal(t, 1, flat.NumTriangles())
	_, b, _ = flat.Triangle(0)
	assert.Equal(t, math32.Vec3(1, 0, 0), b)
}

func TestBox(t *testing.T) {
	tm := Build("box", NewBox(2, 4, 6))
	nv, ni := BoxN(math32.Vector3iScalar(1))
	assert.Equal(t, 24, nv)
	assert.Equal(t, 36, ni)
	assert.Equal(t, 12, tm.NumTriangles())
	assert.Equal(t, math32.B3(-1, -2, -3, 1, 2, 3), tm.BBox())
	assert.Equal(t, "Position", Position.String())
	assert.Equal(t, 24, tm.Stream(Normal).Len())

	// every vertex lies on the surface of the box
	for i := 0; i < tm.NumVertices(); i++ {
		var v math32.Vector3
		tm.Vertex.GetVector3(i*3, &v)
		onFace := math32.Abs(v.X) == 1 || math32.Abs(v.Y) == 2 || math32.Abs(v.Z) == 3
		assert.True(t, onFace, "vertex %d: %v", i, v)
	}
}

func TestPlane(t *testing.T) {
	pl := NewPlane(math32.Y, 4, 2)
	pl.WidthSegs = 2
	pl.Offset = 1
	tm := Build("plane", pl)
	assert.Equal(t, 4, tm.NumTriangles())
	bb := tm.BBox()
	assert.Equal(t, math32.Vec3(-2, 1, -1), bb.Min)
	assert.Equal(t, math32.Vec3(2, 1, 1), bb.Max)
	assert.Equal(t, bb, pl.BBox())
}

func TestSphere(t *testing.T) {
	sp := NewSphere(2, 16, 8)
	tm := Build("sphere", sp)
	nv, ni := sp.MeshSize()
	assert.Equal(t, 17*9, nv)
	// top and bottom rows have a single triangle per segment
	assert.Equal(t, (8*2-2)*16*3, ni)
	for i := 0; i < tm.NumVertices(); i++ {
		var v math32.Vector3
		tm.Vertex.GetVector3(i*3, &v)
		tolassert.EqualTol(t, 2, v.Length(), 1e-5)
	}
	for i := 0; i < tm.NumTriangles(); i++ {
		a, b, c := tm.Triangle(i)
		tri := math32.NewTriangle(a, b, c)
		assert.Greater(t, tri.Area(), float32(0), "triangle %d", i)
	}
}

func TestTorus(t *testing.T) {
	tr := NewTorus(1, 0.25, 12)
	tm := Build("torus", tr)
	assert.Equal(t, 12*12*2, tm.NumTriangles())
	bb := tm.BBox()
	tolassert.EqualTol(t, 1.25, bb.Max.X, 1e-5)
	tolassert.EqualTol(t, 0.25, bb.Max.Z, 1e-5)
	tolassert.EqualTol(t, -0.25, bb.Min.Z, 1e-5)
}

func TestGroup(t *testing.T) {
	b1 := NewBox(1, 1, 1)
	b2 := NewBox(1, 1, 1)
	b2.Pos = math32.Vec3(3, 0, 0)
	sp := NewSphere(0.5, 8, 8)
	sp.Pos = math32.Vec3(0, 3, 0)
	gp := NewGroup(b1, b2, sp)
	tm := Build("group", gp)

	nv, ni := gp.MeshSize()
	require.Equal(t, nv*3, len(tm.Vertex))
	require.Equal(t, ni, len(tm.Index))
	bb := gp.BBox()
	tolassert.EqualTolSlice(t, []float32{-0.5, -0.5, -0.5}, []float32{bb.Min.X, bb.Min.Y, bb.Min.Z}, 1e-5)
	tolassert.EqualTolSlice(t, []float32{3.5, 3.5, 0.5}, []float32{bb.Max.X, bb.Max.Y, bb.Max.Z}, 1e-5)

	vo, io := b2.Offsets()
	assert.Equal(t, 24, vo)
	assert.Equal(t, 36, io)

	// indexes of the second box refer to its own vertices
	for i := io; i < io+36; i++ {
		assert.GreaterOrEqual(t, int(tm.Index[i]), 24)
		assert.Less(t, int(tm.Index[i]), 48)
	}
}
