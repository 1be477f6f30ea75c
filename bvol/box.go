// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"fmt"

	"cogentcore.org/collide/math32"
	"cogentcore.org/collide/mesh"
)

// Box is an axis-aligned bounding box, stored as a center and the
// half size along each axis.
type Box struct {

	// HalfSize is the extent from the center along each axis, >= 0.
	HalfSize math32.Vector3

	center     math32.Vector3
	checkPlane int
}

// NewBox returns a new box with the given center and half size.
func NewBox(center, halfSize math32.Vector3) *Box {
	return &Box{center: center, HalfSize: halfSize}
}

// NewBoxFromBox3 returns a new box spanning the given min / max box.
func NewBoxFromBox3(b math32.Box3) *Box {
	return &Box{center: b.Center(), HalfSize: b.HalfSize()}
}

func (bx *Box) Type() Types { return TypeBox }

func (bx *Box) Center() math32.Vector3 { return bx.center }

func (bx *Box) SetCenter(c math32.Vector3) { bx.center = c }

func (bx *Box) CheckPlane() int { return bx.checkPlane }

func (bx *Box) SetCheckPlane(plane int) { bx.checkPlane = plane }

func (bx *Box) String() string {
	return fmt.Sprintf("Box{Center: %v, HalfSize: %v}", bx.center, bx.HalfSize)
}

// Box3 returns the box as min / max corners.
func (bx *Box) Box3() math32.Box3 {
	return math32.Box3{Min: bx.center.Sub(bx.HalfSize), Max: bx.center.Add(bx.HalfSize)}
}

// Min returns the minimum corner.
func (bx *Box) Min() math32.Vector3 {
	return bx.center.Sub(bx.HalfSize)
}

// Max returns the maximum corner.
func (bx *Box) Max() math32.Vector3 {
	return bx.center.Add(bx.HalfSize)
}

// SetFromPoints sets the box to the bounds of the points.
// It does nothing for an empty slice.
func (bx *Box) SetFromPoints(points []math32.Vector3) {
	if len(points) == 0 {
		return
	}
	b := math32.B3Empty()
	b.ExpandByPoints(points)
	bx.center = b.Center()
	bx.HalfSize = b.HalfSize()
}

func (bx *Box) ComputeFromPoints(s *mesh.Stream, start, count int) {
	pts, ok := streamPoints(s, start, count)
	if !ok {
		return
	}
	bx.SetFromPoints(pts)
}

func (bx *Box) ComputeFromTris(m mesh.Mesh, start, end int) {
	pts, ok := triPoints(m, start, end)
	if !ok {
		return
	}
	bx.SetFromPoints(pts)
}

// Transform returns the box scaled, then rotated, then translated.
// The half size is the projection of the rotated, scaled box onto each axis.
func (bx *Box) Transform(rot math32.Quat, trans, scale math32.Vector3, dst Volume) Volume {
	bd := boxDst(dst)
	hs := bx.HalfSize.Mul(scale.Abs())
	cx := math32.Vec3(1, 0, 0).MulQuat(rot).Abs()
	cy := math32.Vec3(0, 1, 0).MulQuat(rot).Abs()
	cz := math32.Vec3(0, 0, 1).MulQuat(rot).Abs()
	bd.center = bx.center.Mul(scale).MulQuat(rot).Add(trans)
	bd.HalfSize = cx.MulScalar(hs.X).Add(cy.MulScalar(hs.Y)).Add(cz.MulScalar(hs.Z))
	return bd
}

func (bx *Box) TransformMatrix(m *math32.Matrix4, dst Volume) Volume {
	bd := boxDst(dst)
	var hs math32.Vector3
	for r := math32.X; r <= math32.Z; r++ {
		var s float32
		for c := math32.X; c <= math32.Z; c++ {
			s += math32.Abs(m[int(c)*4+int(r)]) * bx.HalfSize.Dim(c)
		}
		hs.SetDim(r, s)
	}
	bd.center = bx.center.MulMatrix4AsPoint(m)
	bd.HalfSize = hs
	return bd
}

// boxDst returns dst as a box, or a new one.
func boxDst(dst Volume) *Box {
	if bd, ok := dst.(*Box); ok && bd != nil {
		return bd
	}
	return &Box{}
}

func (bx *Box) Merge(other Volume) (Volume, error) {
	return bx.mergeInto(other, &Box{})
}

func (bx *Box) MergeLocal(other Volume) (Volume, error) {
	return bx.mergeInto(other, bx)
}

func (bx *Box) mergeInto(other Volume, dst *Box) (Volume, error) {
	switch ov := other.(type) {
	case nil:
		return bx, nil
	case *Box:
		if ov == nil {
			return bx, nil
		}
		return bx.merge(ov.center, ov.HalfSize, dst), nil
	case *Sphere:
		if ov == nil {
			return bx, nil
		}
		return bx.merge(ov.center, math32.Vector3Scalar(ov.Radius), dst), nil
	}
	return nil, ErrUnsupportedMerge
}

// merge sets dst to the union of this box and the box with the given
// center and half size, and returns it.
func (bx *Box) merge(center2, halfSize2 math32.Vector3, dst *Box) *Box {
	u := bx.Box3().Union(math32.Box3{Min: center2.Sub(halfSize2), Max: center2.Add(halfSize2)})
	dst.center = u.Center()
	dst.HalfSize = u.HalfSize()
	return dst
}

// WhichSide classifies the box against the plane using the box half
// size projected onto the plane normal.
func (bx *Box) WhichSide(p math32.Plane) Sides {
	n := p.Norm.Abs()
	radius := bx.HalfSize.Dot(n)
	return classify(p.DistanceToPoint(bx.center), radius)
}

func (bx *Box) Intersects(other Volume) bool {
	switch ov := other.(type) {
	case *Box:
		return ov != nil && bx.IntersectsBox(ov)
	case *Sphere:
		return ov != nil && ov.IntersectsBoundingBox(bx)
	}
	return false
}

// IntersectsBox returns whether the boxes overlap, including touching.
func (bx *Box) IntersectsBox(other *Box) bool {
	d := other.center.Sub(bx.center).Abs()
	hs := bx.HalfSize.Add(other.HalfSize)
	return d.X <= hs.X && d.Y <= hs.Y && d.Z <= hs.Z
}

func (bx *Box) IntersectsRay(ray math32.Ray) bool {
	return ray.IsIntersectionBox(bx.Box3())
}

func (bx *Box) IntersectsWhere(ray math32.Ray) IntersectionRecord {
	tmin, tmax, ok := ray.IntersectBoxRange(bx.Box3())
	switch {
	case !ok:
		return IntersectionRecord{}
	case tmin <= 0:
		return rayHits(ray, tmax)
	case tmax-tmin < ZeroTolerance:
		return rayHits(ray, tmin)
	}
	return rayHits(ray, tmin, tmax)
}

// Contains returns whether the point is strictly inside the box.
func (bx *Box) Contains(p math32.Vector3) bool {
	d := p.Sub(bx.center).Abs()
	return d.X < bx.HalfSize.X && d.Y < bx.HalfSize.Y && d.Z < bx.HalfSize.Z
}

func (bx *Box) DistanceToEdge(p math32.Vector3) float32 {
	d := p.Sub(bx.center).Abs().Sub(bx.HalfSize)
	outside := d.Max(math32.Vector3{}).Length()
	inside := min(max(d.X, d.Y, d.Z), 0)
	return outside + inside
}

func (bx *Box) DistanceTo(p math32.Vector3) float32 {
	return bx.center.DistanceTo(p)
}

func (bx *Box) Measure() float32 {
	return 8 * bx.HalfSize.X * bx.HalfSize.Y * bx.HalfSize.Z
}

func (bx *Box) Clone(dst Volume) Volume {
	bd := boxDst(dst)
	*bd = *bx
	return bd
}
