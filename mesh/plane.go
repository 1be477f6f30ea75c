// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/geometry
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/collide/math32"

// Plane is a flat 2D plane, which can be oriented along any
// axis facing either positive or negative.
type Plane struct {
	ShapeBase

	// axis along which the normal perpendicular to the plane points.
	// E.g., if the Y axis is specified, then it is a standard X-Z ground plane.
	NormAxis math32.Dims

	// if true, the plane normal faces in the negative direction along NormAxis.
	NormNeg bool

	// width and height of the plane
	Width, Height float32

	// number of segments to divide the plane into along width and height
	WidthSegs, HeightSegs int

	// offset from origin along direction of normal to the plane
	Offset float32
}

// NewPlane returns a Plane shape with given size, with its normal pointing
// by default in the positive Y axis (i.e., a "ground" plane).
func NewPlane(normAxis math32.Dims, width, height float32) *Plane {
	pl := &Plane{}
	pl.Defaults()
	pl.NormAxis = normAxis
	pl.Width = width
	pl.Height = height
	return pl
}

func (pl *Plane) Defaults() {
	pl.NormAxis = math32.Y
	pl.Width, pl.Height = 1, 1
	pl.WidthSegs, pl.HeightSegs = 1, 1
}

func (pl *Plane) MeshSize() (numVertex, numIndex int) {
	return PlaneN(pl.WidthSegs, pl.HeightSegs)
}

// Set sets points in given allocated arrays
func (pl *Plane) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	var waxis, haxis math32.Dims
	switch pl.NormAxis {
	case math32.X:
		waxis, haxis = math32.Y, math32.Z
	case math32.Z:
		waxis, haxis = math32.X, math32.Y
	default:
		waxis, haxis = math32.X, math32.Z
	}
	nsign := float32(1)
	if pl.NormNeg {
		nsign = -1
	}
	SetPlane(vertex, normal, texcoord, index, pl.VertexOffset, pl.IndexOffset, waxis, haxis, nsign, pl.Width, pl.Height, -pl.Width/2, -pl.Height/2, pl.Offset, pl.WidthSegs, pl.HeightSegs, pl.Pos)
	nv, _ := pl.MeshSize()
	pl.CBBox = BBoxFromVertices(vertex, pl.VertexOffset, nv)
}

// PlaneN returns the N's for a single plane's worth of
// vertex and index data with given number of segments.
// Note: In *vertex* units, not float units (i.e., x3 to get
// actual float offset in Vtx array).
func PlaneN(wsegs, hsegs int) (numVertex, numIndex int) {
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)
	numVertex = (wsegs + 1) * (hsegs + 1)
	numIndex = wsegs * hsegs * 6
	return
}

// SetPlane sets plane vertex, norm, tex, index data at
// given starting *vertex* index (i.e., multiply this *3 to get
// actual float offset in Vtx array), and starting Index index.
// The plane spans waxis and haxis, with width and height, starting at
// woff and hoff, and sits at zoff along the remaining axis with its
// normal pointing in the nsign direction of that axis.
// Segments are enforced to be at least 1. pos is a 3D position offset.
func SetPlane(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, waxis, haxis math32.Dims, nsign, width, height, woff, hoff, zoff float32, wsegs, hsegs int, pos math32.Vector3) {
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)
	zaxis := math32.OtherDim(waxis, haxis)

	gridX1 := wsegs + 1
	gridY1 := hsegs + 1
	segWidth := width / float32(wsegs)
	segHeight := height / float32(hsegs)

	var norm math32.Vector3
	norm.SetDim(zaxis, nsign)

	vidx := vtxOff * 3
	tidx := vtxOff * 2
	var vtx math32.Vector3
	for iy := 0; iy < gridY1; iy++ {
		for ix := 0; ix < gridX1; ix++ {
			vtx.SetDim(waxis, float32(ix)*segWidth+woff)
			vtx.SetDim(haxis, float32(iy)*segHeight+hoff)
			vtx.SetDim(zaxis, zoff)
			vertex.SetVector3(vidx, vtx.Add(pos))
			normal.SetVector3(vidx, norm)
			texcoord.Set(tidx, float32(ix)/float32(wsegs), 1-float32(iy)/float32(hsegs))
			vidx += 3
			tidx += 2
		}
	}

	vOff := uint32(vtxOff)
	ii := idxOff
	for iy := 0; iy < hsegs; iy++ {
		for ix := 0; ix < wsegs; ix++ {
			a := uint32(ix + gridX1*iy)
			b := uint32(ix + gridX1*(iy+1))
			c := uint32((ix + 1) + gridX1*(iy+1))
			d := uint32((ix + 1) + gridX1*iy)
			index.Set(ii, vOff+a, vOff+b, vOff+d, vOff+b, vOff+c, vOff+d)
			ii += 6
		}
	}
}
