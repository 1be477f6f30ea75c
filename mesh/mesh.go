// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides triangle mesh data for bounding-volume and
// collision-cell construction: vertex attribute streams, an indexed
// triangle mesh, and standard shape generators (box, plane, sphere, torus).
package mesh

import "cogentcore.org/collide/math32"

// Attributes are the vertex attributes a [Mesh] may provide.
type Attributes int32

const (
	// Position is the vertex position, 3 components.
	Position Attributes = iota

	// Normal is the vertex normal, 3 components.
	Normal

	// TexCoord is the texture coordinate, 2 components.
	TexCoord

	// Color is the vertex color, 4 components.
	Color

	AttributesN
)

var attributeNames = [AttributesN]string{"Position", "Normal", "TexCoord", "Color"}

func (a Attributes) String() string {
	if a < 0 || a >= AttributesN {
		return "Attributes(invalid)"
	}
	return attributeNames[a]
}

// Stream is a vertex attribute stream: a flat float32 buffer holding
// elements of Components floats each, starting at Offset and spaced
// Stride floats apart. A zero Stride means the elements are tightly packed.
type Stream struct {

	// Data is the underlying float buffer.
	Data math32.ArrayF32

	// Components is the number of floats per element.
	Components int

	// Stride is the distance in floats between the start of consecutive elements.
	Stride int

	// Offset is the index of the first float of the first element.
	Offset int
}

// NewStream returns a tightly packed stream over data with the given
// number of components per element.
func NewStream(data math32.ArrayF32, components int) *Stream {
	return &Stream{Data: data, Components: components}
}

func (s *Stream) stride() int {
	if s.Stride > 0 {
		return s.Stride
	}
	return s.Components
}

// Len returns the number of whole elements available in the stream.
// A nil stream has no elements.
func (s *Stream) Len() int {
	if s == nil || s.Components <= 0 {
		return 0
	}
	n := len(s.Data) - s.Offset
	if n < s.Components {
		return 0
	}
	return (n-s.Components)/s.stride() + 1
}

// Vector3 returns element i as a vector. Streams with fewer than 3
// components leave the remaining coordinates zero.
func (s *Stream) Vector3(i int) math32.Vector3 {
	var v math32.Vector3
	idx := s.Offset + i*s.stride()
	nc := min(s.Components, 3)
	for c := 0; c < nc; c++ {
		v.SetDim(math32.Dims(c), s.Data[idx+c])
	}
	return v
}

// Mesh is the triangle source used to build bounding and collision volumes.
type Mesh interface {
	// NumTriangles returns the number of triangles in the mesh.
	NumTriangles() int

	// Triangle returns the vertex positions of triangle i.
	Triangle(i int) (a, b, c math32.Vector3)

	// Stream returns the stream for the given attribute, or nil if
	// the mesh does not have that attribute.
	Stream(attr Attributes) *Stream

	// BBox returns the axis-aligned bounds of the mesh positions.
	BBox() math32.Box3
}

// TriMesh is an indexed triangle mesh. When Index is empty, consecutive
// triples of vertices form the triangles.
type TriMesh struct {

	// Name of the mesh, for reporting.
	Name string

	// Vertex holds the vertex positions, 3 floats per vertex.
	Vertex math32.ArrayF32

	// Normal holds the vertex normals, 3 floats per vertex.
	Normal math32.ArrayF32

	// TexCoord holds the texture coordinates, 2 floats per vertex.
	TexCoord math32.ArrayF32

	// Color holds optional per-vertex colors, 4 floats per vertex.
	Color math32.ArrayF32

	// Index holds triangle vertex indexes, 3 per triangle.
	Index math32.ArrayU32

	bbox math32.Box3
}

// NewTriMesh returns a new mesh over the given positions and
// triangle indexes, with its bounding box computed.
func NewTriMesh(name string, vertex math32.ArrayF32, index math32.ArrayU32) *TriMesh {
	tm := &TriMesh{Name: name, Vertex: vertex, Index: index}
	tm.UpdateBBox()
	return tm
}

// NumVertices returns the number of vertex positions.
func (tm *TriMesh) NumVertices() int {
	return len(tm.Vertex) / 3
}

func (tm *TriMesh) NumTriangles() int {
	if len(tm.Index) > 0 {
		return len(tm.Index) / 3
	}
	return tm.NumVertices() / 3
}

func (tm *TriMesh) Triangle(i int) (a, b, c math32.Vector3) {
	i0, i1, i2 := 3*i, 3*i+1, 3*i+2
	if len(tm.Index) > 0 {
		i0, i1, i2 = int(tm.Index[i0]), int(tm.Index[i1]), int(tm.Index[i2])
	}
	tm.Vertex.GetVector3(3*i0, &a)
	tm.Vertex.GetVector3(3*i1, &b)
	tm.Vertex.GetVector3(3*i2, &c)
	return
}

func (tm *TriMesh) Stream(attr Attributes) *Stream {
	var data math32.ArrayF32
	comps := 3
	switch attr {
	case Position:
		data = tm.Vertex
	case Normal:
		data = tm.Normal
	case TexCoord:
		data, comps = tm.TexCoord, 2
	case Color:
		data, comps = tm.Color, 4
	}
	if len(data) == 0 {
		return nil
	}
	return NewStream(data, comps)
}

func (tm *TriMesh) BBox() math32.Box3 {
	return tm.bbox
}

// UpdateBBox recomputes the bounding box from the vertex positions.
func (tm *TriMesh) UpdateBBox() {
	tm.bbox = BBoxFromVertices(tm.Vertex, 0, tm.NumVertices())
}

// BBoxFromVertices returns the bounding box of the range of vertex points.
func BBoxFromVertices(vertex math32.ArrayF32, vtxOff int, nvtxs int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOff * 3
	var vtx math32.Vector3
	for vi := 0; vi < nvtxs; vi++ {
		vertex.GetVector3(vidx+vi*3, &vtx)
		bb.ExpandByPoint(vtx)
	}
	return bb
}
