// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/collide/math32"

// Sphere is a sphere mesh
type Sphere struct {
	ShapeBase

	// radius of the sphere
	Radius float32

	// number of segments around the width of the sphere (32 is reasonable default for full circle)
	WidthSegs int `min:"3"`

	// number of height segments (32 is reasonable default for full height)
	HeightSegs int `min:"3"`

	// starting radial angle in degrees, relative to -1,0,0 left side starting point
	AngStart float32 `min:"0" max:"360" step:"5"`

	// total radial angle to generate in degrees (max = 360)
	AngLen float32 `min:"0" max:"360" step:"5"`

	// starting elevation (height) angle in degrees - 0 = top of sphere, and Pi is bottom
	ElevStart float32 `min:"0" max:"180" step:"5"`

	// total angle to generate in degrees (max = 180)
	ElevLen float32 `min:"0" max:"180" step:"5"`
}

// NewSphere returns a Sphere mesh with the specified radius
// and number of width and height segments (resolution).
func NewSphere(radius float32, widthSegs, heightSegs int) *Sphere {
	sp := &Sphere{}
	sp.Defaults()
	sp.Radius = radius
	sp.WidthSegs = widthSegs
	sp.HeightSegs = heightSegs
	return sp
}

func (sp *Sphere) Defaults() {
	sp.Radius = 1
	sp.WidthSegs = 32
	sp.HeightSegs = 32
	sp.AngStart = 0
	sp.AngLen = 360
	sp.ElevStart = 0
	sp.ElevLen = 180
}

func (sp *Sphere) MeshSize() (numVertex, numIndex int) {
	return SphereSectorN(sp.WidthSegs, sp.HeightSegs, sp.ElevStart, sp.ElevLen)
}

// Set sets points in given allocated arrays
func (sp *Sphere) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	sp.CBBox = SetSphereSector(vertex, normal, texcoord, index, sp.VertexOffset, sp.IndexOffset, sp.Radius, sp.WidthSegs, sp.HeightSegs, sp.AngStart, sp.AngLen, sp.ElevStart, sp.ElevLen, sp.Pos)
}

// sphereCaps returns whether the first and last rows of a sphere sector
// collapse to a pole, where only one triangle per segment is generated.
func sphereCaps(elevStart, elevLen float32) (top, bottom bool) {
	return elevStart <= 0, elevStart+elevLen >= 180
}

// SphereSectorN returns the N's for a sphere sector with the given
// number of width and height segments and elevation range in degrees.
func SphereSectorN(widthSegs, heightSegs int, elevStart, elevLen float32) (numVertex, numIndex int) {
	numVertex = (widthSegs + 1) * (heightSegs + 1)
	top, bottom := sphereCaps(elevStart, elevLen)
	for y := 0; y < heightSegs; y++ {
		if y != 0 || !top {
			numIndex += widthSegs * 3
		}
		if y != heightSegs-1 || !bottom {
			numIndex += widthSegs * 3
		}
	}
	return
}

// SetSphereSector sets sphere sector vertex, norm, tex, index data at
// given starting *vertex* index and starting Index index,
// with the specified radius, number of radial segments in each dimension,
// radial sector start angle and length in degrees (0 - 360), start = -1,0,0,
// elevation start angle and length in degrees (0 - 180), top = 0, bot = 180.
// pos is an arbitrary offset (for composing shapes). Returns the bounding box.
func SetSphereSector(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, radius float32, widthSegs, heightSegs int, angStart, angLen, elevStart, elevLen float32, pos math32.Vector3) math32.Box3 {
	angStRad := math32.DegToRad(angStart)
	angLenRad := math32.DegToRad(angLen)
	elevStRad := math32.DegToRad(elevStart)
	elevLenRad := math32.DegToRad(elevLen)
	top, bottom := sphereCaps(elevStart, elevLen)

	bb := math32.B3Empty()

	idx := 0
	vidx := vtxOff * 3
	tidx := vtxOff * 2
	var pt math32.Vector3
	for y := 0; y <= heightSegs; y++ {
		v := float32(y) / float32(heightSegs)
		for x := 0; x <= widthSegs; x++ {
			u := float32(x) / float32(widthSegs)
			px := -radius * math32.Cos(angStRad+u*angLenRad) * math32.Sin(elevStRad+v*elevLenRad)
			py := radius * math32.Cos(elevStRad+v*elevLenRad)
			pz := radius * math32.Sin(angStRad+u*angLenRad) * math32.Sin(elevStRad+v*elevLenRad)
			pt.Set(px, py, pz)
			normal.SetVector3(vidx+idx*3, pt.Normal())
			pt.SetAdd(pos)
			vertex.SetVector3(vidx+idx*3, pt)
			texcoord.Set(tidx+idx*2, u, v)
			bb.ExpandByPoint(pt)
			idx++
		}
	}

	vOff := uint32(vtxOff)
	row := uint32(widthSegs + 1)
	ii := idxOff
	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			v1 := uint32(y)*row + uint32(x+1)
			v2 := uint32(y)*row + uint32(x)
			v3 := uint32(y+1)*row + uint32(x)
			v4 := uint32(y+1)*row + uint32(x+1)
			if y != 0 || !top {
				index.Set(ii, vOff+v1, vOff+v2, vOff+v4)
				ii += 3
			}
			if y != heightSegs-1 || !bottom {
				index.Set(ii, vOff+v2, vOff+v3, vOff+v4)
				ii += 3
			}
		}
	}
	return bb
}
