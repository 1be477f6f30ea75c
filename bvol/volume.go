// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bvol provides bounding volumes (spheres and axis-aligned boxes)
// computed from mesh data and used for culling, broad-phase collision,
// and picking. Spheres support the minimal enclosing sphere of a point
// set, computed with Welzl's move-to-front algorithm.
package bvol

import (
	"errors"

	"cogentcore.org/collide/math32"
	"cogentcore.org/collide/mesh"
)

const (
	// RadiusEpsilon is the slack factor applied to computed radii so that
	// floating point error never leaves a source point outside the volume.
	// It is used both multiplicatively and, as RadiusEpsilon-1, additively.
	RadiusEpsilon float32 = 1.00001

	// ZeroTolerance is the discriminant below which a ray is considered
	// tangent to a sphere.
	ZeroTolerance float32 = 0.0001
)

// ErrUnsupportedMerge is returned when merging with a volume type that
// the receiver cannot enclose.
var ErrUnsupportedMerge = errors.New("bvol: unsupported volume type for merge")

// Types are the kinds of bounding volume.
type Types int32

const (
	TypeSphere Types = iota
	TypeBox
	TypeOBB
	TypeCapsule
	TypesN
)

var typeNames = [TypesN]string{"Sphere", "Box", "OBB", "Capsule"}

func (t Types) String() string {
	if t < 0 || t >= TypesN {
		return "Types(invalid)"
	}
	return typeNames[t]
}

// Sides classify a volume relative to a plane.
type Sides int32

const (
	// SideNegative means the volume is entirely behind the plane.
	SideNegative Sides = iota

	// SidePositive means the volume is entirely on the side the normal points to.
	SidePositive

	// SideStraddling means the plane passes through the volume.
	SideStraddling
)

func (s Sides) String() string {
	switch s {
	case SideNegative:
		return "Negative"
	case SidePositive:
		return "Positive"
	case SideStraddling:
		return "Straddling"
	}
	return "Sides(invalid)"
}

// Volume is a bounding volume. It is implemented by [*Sphere] and [*Box].
// Computations from insufficient data are silent no-ops that leave the
// volume unchanged.
type Volume interface {
	// Type returns the kind of volume.
	Type() Types

	// Center returns the reference point of the volume.
	Center() math32.Vector3

	// SetCenter sets the reference point of the volume.
	SetCenter(c math32.Vector3)

	// CheckPlane returns the index of the frustum plane that last
	// culled this volume. It is an advisory hint with no synchronization.
	CheckPlane() int

	// SetCheckPlane sets the frustum plane hint.
	SetCheckPlane(plane int)

	// ComputeFromPoints computes the volume from count elements of the
	// position stream starting at element start. It does nothing if the
	// stream is nil or has fewer than start+count elements.
	ComputeFromPoints(s *mesh.Stream, start, count int)

	// ComputeFromTris computes the volume from triangles [start, end) of
	// the mesh. It does nothing if end <= start.
	ComputeFromTris(m mesh.Mesh, start, end int)

	// Transform returns this volume scaled, then rotated, then translated.
	// dst is reused when it is the same kind of volume; otherwise a new
	// volume is returned. The result encloses the transformed original.
	Transform(rot math32.Quat, trans, scale math32.Vector3, dst Volume) Volume

	// TransformMatrix is Transform for an affine matrix.
	TransformMatrix(m *math32.Matrix4, dst Volume) Volume

	// Merge returns a new volume of this kind enclosing both volumes.
	// It returns the receiver if other is nil, and [ErrUnsupportedMerge]
	// if other cannot be merged into this kind.
	Merge(other Volume) (Volume, error)

	// MergeLocal is Merge that updates the receiver in place.
	MergeLocal(other Volume) (Volume, error)

	// WhichSide classifies the volume against the plane.
	WhichSide(p math32.Plane) Sides

	// Intersects returns whether the volumes overlap.
	Intersects(other Volume) bool

	// IntersectsRay returns whether the ray hits the volume.
	// The ray direction must be unit length.
	IntersectsRay(ray math32.Ray) bool

	// IntersectsWhere returns the ray hit distances and points:
	// none on a miss, one when the origin is inside or the ray is
	// tangent, and two (near, far) otherwise.
	IntersectsWhere(ray math32.Ray) IntersectionRecord

	// Contains returns whether the point is inside the volume.
	Contains(p math32.Vector3) bool

	// DistanceToEdge returns the signed distance from the point to the
	// surface of the volume, negative inside.
	DistanceToEdge(p math32.Vector3) float32

	// DistanceTo returns the distance from the point to the center.
	DistanceTo(p math32.Vector3) float32

	// Measure returns the geometric volume.
	Measure() float32

	// Clone returns a copy of this volume, reusing dst when it is the
	// same kind of volume.
	Clone(dst Volume) Volume
}

// streamPoints returns count points of the stream starting at start,
// and false if the stream cannot supply them.
func streamPoints(s *mesh.Stream, start, count int) ([]math32.Vector3, bool) {
	if s == nil || start < 0 || count <= 0 || s.Len() < start+count {
		return nil, false
	}
	pts := make([]math32.Vector3, count)
	for i := range pts {
		pts[i] = s.Vector3(start + i)
	}
	return pts, true
}

// triPoints returns the vertices of triangles [start, end) of the mesh,
// with end clamped to the number of triangles, and false if the range
// is empty.
func triPoints(m mesh.Mesh, start, end int) ([]math32.Vector3, bool) {
	if m == nil {
		return nil, false
	}
	start = max(start, 0)
	end = min(end, m.NumTriangles())
	if end <= start {
		return nil, false
	}
	pts := make([]math32.Vector3, 0, 3*(end-start))
	for i := start; i < end; i++ {
		a, b, c := m.Triangle(i)
		pts = append(pts, a, b, c)
	}
	return pts, true
}

// rayHits returns the record for the given ray distances.
func rayHits(ray math32.Ray, dists ...float32) IntersectionRecord {
	rec := IntersectionRecord{}
	for _, d := range dists {
		rec.Add(d, ray.At(d))
	}
	return rec
}

// classify returns the side of a plane for a volume whose center lies at
// signed distance dist from the plane and whose extent along the plane
// normal is radius.
func classify(dist, radius float32) Sides {
	switch {
	case dist <= -radius:
		return SideNegative
	case dist >= radius:
		return SidePositive
	}
	return SideStraddling
}
