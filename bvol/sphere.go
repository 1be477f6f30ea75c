// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"fmt"

	"cogentcore.org/collide/math32"
	"cogentcore.org/collide/mesh"
)

// Sphere is a bounding sphere.
type Sphere struct {

	// Radius of the sphere, >= 0.
	Radius float32

	center     math32.Vector3
	checkPlane int
}

// NewSphere returns a new sphere with the given center and radius.
func NewSphere(center math32.Vector3, radius float32) *Sphere {
	return &Sphere{center: center, Radius: radius}
}

func (sp *Sphere) Type() Types { return TypeSphere }

func (sp *Sphere) Center() math32.Vector3 { return sp.center }

func (sp *Sphere) SetCenter(c math32.Vector3) { sp.center = c }

func (sp *Sphere) CheckPlane() int { return sp.checkPlane }

func (sp *Sphere) SetCheckPlane(plane int) { sp.checkPlane = plane }

func (sp *Sphere) String() string {
	return fmt.Sprintf("Sphere{Center: %v, Radius: %g}", sp.center, sp.Radius)
}

// ComputeFromPoints sets the sphere to the centroid of the points with
// a radius reaching the farthest point.
func (sp *Sphere) ComputeFromPoints(s *mesh.Stream, start, count int) {
	pts, ok := streamPoints(s, start, count)
	if !ok {
		return
	}
	sp.AveragePoints(pts)
}

// ComputeWelzlFromPoints sets the sphere to the minimal sphere enclosing
// the points, using [Sphere.CalcWelzl].
func (sp *Sphere) ComputeWelzlFromPoints(s *mesh.Stream, start, count int) {
	pts, ok := streamPoints(s, start, count)
	if !ok {
		return
	}
	sp.CalcWelzl(pts)
}

// ComputeFromTris sets the sphere from the vertices of the triangles,
// using [Sphere.AveragePoints].
func (sp *Sphere) ComputeFromTris(m mesh.Mesh, start, end int) {
	pts, ok := triPoints(m, start, end)
	if !ok {
		return
	}
	sp.AveragePoints(pts)
}

// AveragePoints sets the center to the centroid of the points and the
// radius to the distance of the farthest point, plus RadiusEpsilon-1.
// It does nothing for an empty slice.
func (sp *Sphere) AveragePoints(points []math32.Vector3) {
	if len(points) == 0 {
		return
	}
	var center math32.Vector3
	for _, p := range points {
		center.SetAdd(p)
	}
	center.SetMulScalar(1 / float32(len(points)))

	var maxSq float32
	for _, p := range points {
		maxSq = max(maxSq, p.DistanceToSquared(center))
	}
	sp.center = center
	sp.Radius = math32.Sqrt(maxSq) + RadiusEpsilon - 1
}

func (sp *Sphere) Transform(rot math32.Quat, trans, scale math32.Vector3, dst Volume) Volume {
	sd := sphereDst(dst)
	sd.center = sp.center.Mul(scale).MulQuat(rot).Add(trans)
	sd.Radius = math32.Abs(scale.MaxAbsComponent()*sp.Radius) + RadiusEpsilon - 1
	return sd
}

func (sp *Sphere) TransformMatrix(m *math32.Matrix4, dst Volume) Volume {
	sd := sphereDst(dst)
	cl := m.ColumnLengths()
	sd.center = sp.center.MulMatrix4AsPoint(m)
	sd.Radius = math32.Abs(max(cl.X, cl.Y, cl.Z)*sp.Radius) + RadiusEpsilon - 1
	return sd
}

// sphereDst returns dst as a sphere, or a new one.
func sphereDst(dst Volume) *Sphere {
	if sd, ok := dst.(*Sphere); ok && sd != nil {
		return sd
	}
	return &Sphere{}
}

func (sp *Sphere) Merge(other Volume) (Volume, error) {
	return sp.mergeInto(other, &Sphere{})
}

func (sp *Sphere) MergeLocal(other Volume) (Volume, error) {
	return sp.mergeInto(other, sp)
}

func (sp *Sphere) mergeInto(other Volume, dst *Sphere) (Volume, error) {
	switch ov := other.(type) {
	case nil:
		return sp, nil
	case *Sphere:
		if ov == nil {
			return sp, nil
		}
		return sp.merge(ov.Radius, ov.center, dst), nil
	case *Box:
		if ov == nil {
			return sp, nil
		}
		return sp.merge(ov.HalfSize.Length(), ov.center, dst), nil
	}
	return nil, ErrUnsupportedMerge
}

// merge sets dst to the smallest sphere enclosing this sphere and the
// sphere with the given radius and center, and returns it.
func (sp *Sphere) merge(radius2 float32, center2 math32.Vector3, dst *Sphere) *Sphere {
	diff := center2.Sub(sp.center)
	lenSq := diff.LengthSquared()
	radiusDiff := radius2 - sp.Radius

	if radiusDiff*radiusDiff >= lenSq {
		if radiusDiff <= 0 {
			dst.center = sp.center
			dst.Radius = sp.Radius
			return dst
		}
		dst.center = center2
		dst.Radius = radius2
		return dst
	}

	length := math32.Sqrt(lenSq)
	if length > RadiusEpsilon {
		coeff := (length + radiusDiff) / (2 * length)
		dst.center = sp.center.Add(diff.MulScalar(coeff))
		dst.Radius = 0.5 * (length + sp.Radius + radius2)
		return dst
	}
	// centers nearly coincide: keep the center and reach the far side of the other
	dst.center = sp.center
	dst.Radius = max(sp.Radius, length+radius2)
	return dst
}

func (sp *Sphere) WhichSide(p math32.Plane) Sides {
	return classify(p.DistanceToPoint(sp.center), sp.Radius)
}

func (sp *Sphere) Intersects(other Volume) bool {
	switch ov := other.(type) {
	case *Sphere:
		return ov != nil && sp.IntersectsSphere(ov)
	case *Box:
		return ov != nil && sp.IntersectsBoundingBox(ov)
	}
	return false
}

// IntersectsSphere returns whether the spheres overlap.
func (sp *Sphere) IntersectsSphere(other *Sphere) bool {
	rsum := sp.Radius + other.Radius
	return sp.center.DistanceToSquared(other.center) <= rsum*rsum
}

// IntersectsBoundingBox returns whether the sphere and box overlap, using
// a per-axis test of the center distance against the radius plus the
// box half size. It is conservative near the box corners.
func (sp *Sphere) IntersectsBoundingBox(bx *Box) bool {
	d := bx.center.Sub(sp.center).Abs()
	return d.X < sp.Radius+bx.HalfSize.X &&
		d.Y < sp.Radius+bx.HalfSize.Y &&
		d.Z < sp.Radius+bx.HalfSize.Z
}

func (sp *Sphere) IntersectsRay(ray math32.Ray) bool {
	diff := ray.Origin.Sub(sp.center)
	a := diff.LengthSquared() - sp.Radius*sp.Radius
	if a <= 0 {
		return true
	}
	b := ray.Dir.Dot(diff)
	if b >= 0 {
		return false
	}
	return b*b >= a
}

func (sp *Sphere) IntersectsWhere(ray math32.Ray) IntersectionRecord {
	diff := ray.Origin.Sub(sp.center)
	a := diff.LengthSquared() - sp.Radius*sp.Radius
	a1 := ray.Dir.Dot(diff)
	if a <= 0 {
		// inside: single exit point
		discr := a1*a1 - a
		root := math32.Sqrt(discr)
		return rayHits(ray, root-a1)
	}
	if a1 >= 0 {
		return IntersectionRecord{}
	}
	discr := a1*a1 - a
	if discr < 0 {
		return IntersectionRecord{}
	}
	if discr >= ZeroTolerance {
		root := math32.Sqrt(discr)
		return rayHits(ray, -a1-root, -a1+root)
	}
	return rayHits(ray, -a1)
}

// Contains returns whether the point is strictly inside the sphere.
func (sp *Sphere) Contains(p math32.Vector3) bool {
	return sp.center.DistanceToSquared(p) < sp.Radius*sp.Radius
}

func (sp *Sphere) DistanceToEdge(p math32.Vector3) float32 {
	return sp.center.DistanceTo(p) - sp.Radius
}

func (sp *Sphere) DistanceTo(p math32.Vector3) float32 {
	return sp.center.DistanceTo(p)
}

func (sp *Sphere) Measure() float32 {
	return 4 * math32.Pi / 3 * sp.Radius * sp.Radius * sp.Radius
}

func (sp *Sphere) Clone(dst Volume) Volume {
	sd := sphereDst(dst)
	*sd = *sp
	return sd
}
