// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Frustum represents a frustum
type Frustum struct {
	// Planes are the clipping planes, with normals pointing into the
	// frustum, in the order: right, left, bottom, top, far, near.
	Planes [6]Plane
}

// NewFrustumFromMatrix creates and returns a Frustum based on the provided
// view-projection matrix.
func NewFrustumFromMatrix(m *Matrix4) *Frustum {
	f := new(Frustum)
	f.SetFromMatrix(m)
	return f
}

// NewFrustum returns a pointer to a new Frustum object made of 6 explicit planes
func NewFrustum(p0, p1, p2, p3, p4, p5 *Plane) *Frustum {
	f := new(Frustum)
	f.Set(p0, p1, p2, p3, p4, p5)
	return f
}

// Set sets the frustum's planes
func (f *Frustum) Set(p0, p1, p2, p3, p4, p5 *Plane) {
	if p0 != nil {
		f.Planes[0] = *p0
	}
	if p1 != nil {
		f.Planes[1] = *p1
	}
	if p2 != nil {
		f.Planes[2] = *p2
	}
	if p3 != nil {
		f.Planes[3] = *p3
	}
	if p4 != nil {
		f.Planes[4] = *p4
	}
	if p5 != nil {
		f.Planes[5] = *p5
	}
}

// SetFromMatrix sets the frustum's planes based on the specified
// view-projection Matrix4, using the Gribb/Hartmann extraction.
func (f *Frustum) SetFromMatrix(m *Matrix4) {
	me0 := m[0]
	me1 := m[1]
	me2 := m[2]
	me3 := m[3]
	me4 := m[4]
	me5 := m[5]
	me6 := m[6]
	me7 := m[7]
	me8 := m[8]
	me9 := m[9]
	me10 := m[10]
	me11 := m[11]
	me12 := m[12]
	me13 := m[13]
	me14 := m[14]
	me15 := m[15]

	f.Planes[0].SetDims(me3-me0, me7-me4, me11-me8, me15-me12)
	f.Planes[1].SetDims(me3+me0, me7+me4, me11+me8, me15+me12)
	f.Planes[2].SetDims(me3+me1, me7+me5, me11+me9, me15+me13)
	f.Planes[3].SetDims(me3-me1, me7-me5, me11-me9, me15-me13)
	f.Planes[4].SetDims(me3-me2, me7-me6, me11-me10, me15-me14)
	f.Planes[5].SetDims(me3+me2, me7+me6, me11+me10, me15+me14)

	for i := 0; i < 6; i++ {
		f.Planes[i].Normalize()
	}
}

// ContainsPoint determines whether the frustum contains the specified point.
func (f *Frustum) ContainsPoint(point Vector3) bool {
	for i := 0; i < 6; i++ {
		if f.Planes[i].DistanceToPoint(point) < 0 {
			return false
		}
	}
	return true
}
