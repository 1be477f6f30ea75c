// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/collide/math32"

// Box is a rectangular-shaped solid (cuboid)
type Box struct {
	ShapeBase

	// size along each dimension
	Size math32.Vector3

	// number of segments to divide each plane into (enforced to be at least 1)
	Segs math32.Vector3i
}

// NewBox returns a Box shape with given size
func NewBox(width, height, depth float32) *Box {
	bx := &Box{}
	bx.Defaults()
	bx.Size.Set(width, height, depth)
	return bx
}

func (bx *Box) Defaults() {
	bx.Size.Set(1, 1, 1)
	bx.Segs.Set(1, 1, 1)
}

func (bx *Box) MeshSize() (numVertex, numIndex int) {
	return BoxN(bx.Segs)
}

// Set sets points in given allocated arrays
func (bx *Box) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	hSz := SetBox(vertex, normal, texcoord, index, bx.VertexOffset, bx.IndexOffset, bx.Size, bx.Segs, bx.Pos)
	bx.CBBox = math32.Box3{Min: bx.Pos.Sub(hSz), Max: bx.Pos.Add(hSz)}
}

// BoxN returns the N's for a box with the given number of segments
// per side, in *vertex* units.
func BoxN(segs math32.Vector3i) (numVertex, numIndex int) {
	nv, ni := PlaneN(int(segs.X), int(segs.Y))
	numVertex += 2 * nv
	numIndex += 2 * ni
	nv, ni = PlaneN(int(segs.X), int(segs.Z))
	numVertex += 2 * nv
	numIndex += 2 * ni
	nv, ni = PlaneN(int(segs.Z), int(segs.Y))
	numVertex += 2 * nv
	numIndex += 2 * ni
	return
}

// SetBox sets box vertex, norm, tex, index data at
// given starting *vertex* index and starting Index index,
// for given 3D size, and given number of segments per side.
// pos is a 3D position offset. Returns the half size of the box.
func SetBox(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, size math32.Vector3, segs math32.Vector3i, pos math32.Vector3) math32.Vector3 {
	hSz := size.DivScalar(2)

	voff := vtxOff
	ioff := idxOff
	face := func(waxis, haxis math32.Dims, nsign float32, wsegs, hsegs int32) {
		zaxis := math32.OtherDim(waxis, haxis)
		SetPlane(vertex, normal, texcoord, index, voff, ioff, waxis, haxis, nsign,
			size.Dim(waxis), size.Dim(haxis), -hSz.Dim(waxis), -hSz.Dim(haxis), nsign*hSz.Dim(zaxis),
			int(wsegs), int(hsegs), pos)
		nv, ni := PlaneN(int(wsegs), int(hsegs))
		voff += nv
		ioff += ni
	}

	// start with neg z as typically back
	face(math32.X, math32.Y, -1, segs.X, segs.Y) // nz
	face(math32.X, math32.Z, -1, segs.X, segs.Z) // ny
	face(math32.Z, math32.Y, 1, segs.Z, segs.Y)  // px
	face(math32.Z, math32.Y, -1, segs.Z, segs.Y) // nx
	face(math32.X, math32.Z, 1, segs.X, segs.Z)  // py
	face(math32.X, math32.Y, 1, segs.X, segs.Y)  // pz
	return hSz
}
