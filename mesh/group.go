// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/collide/math32"

// Group is a group of shapes, composed into one set of arrays.
// Each shape's Pos offset places it within the group.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Shape
}

// NewGroup returns a group of the given shapes.
func NewGroup(shapes ...Shape) *Group {
	return &Group{Shapes: shapes}
}

// MeshSize returns number of vertex, index points in this shape element.
func (sb *Group) MeshSize() (numVertex, numIndex int) {
	for _, sh := range sb.Shapes {
		nv, ni := sh.MeshSize()
		numVertex += nv
		numIndex += ni
	}
	return
}

// Set sets points in given allocated arrays, also updates offsets
func (sb *Group) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	vo := sb.VertexOffset
	io := sb.IndexOffset
	sb.CBBox.SetEmpty()
	for _, sh := range sb.Shapes {
		sh.SetOffsets(vo, io)
		sh.Set(vertex, normal, texcoord, index)
		sb.CBBox.ExpandByBox(sh.BBox())
		nv, ni := sh.MeshSize()
		vo += nv
		io += ni
	}
}
