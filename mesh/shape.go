// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/collide/math32"

// Shape is an interface for all shape-constructing elements.
type Shape interface {
	// MeshSize returns the number of vertex and index points in this shape element.
	MeshSize() (numVertex, numIndex int)

	// Offsets returns the starting offsets for vertices and indexes in the
	// full shape array, in terms of points, not floats.
	Offsets() (vertexOffset, indexOffset int)

	// SetOffsets sets the starting offsets for vertices and indexes in the
	// full shape array, in terms of points, not floats.
	SetOffsets(vertexOffset, indexOffset int)

	// Set sets points in the given allocated arrays.
	Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32)

	// BBox returns the bounding box for the shape.
	// This is only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base shape element.
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// Offsets returns the starting offsets for vertices and indexes in the
// full shape array, in terms of points, not floats.
func (sb *ShapeBase) Offsets() (vertexOffset, indexOffset int) {
	return sb.VertexOffset, sb.IndexOffset
}

// SetOffsets sets the starting offsets for vertices and indexes.
func (sb *ShapeBase) SetOffsets(vertexOffset, indexOffset int) {
	sb.VertexOffset, sb.IndexOffset = vertexOffset, indexOffset
}

// BBox returns the bounding box for the shape, typically centered around 0.
// This is only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// Build allocates arrays for the given shape, sets its points, and
// returns them as a [TriMesh].
func Build(name string, sh Shape) *TriMesh {
	nv, ni := sh.MeshSize()
	tm := &TriMesh{Name: name}
	tm.Vertex = math32.NewArrayF32(nv*3, nv*3)
	tm.Normal = math32.NewArrayF32(nv*3, nv*3)
	tm.TexCoord = math32.NewArrayF32(nv*2, nv*2)
	tm.Index = math32.NewArrayU32(ni, ni)
	sh.SetOffsets(0, 0)
	sh.Set(tm.Vertex, tm.Normal, tm.TexCoord, tm.Index)
	tm.UpdateBBox()
	return tm
}
