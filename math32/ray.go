// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir}
}

// Set sets the origin and direction vectors of this Ray.
func (ray *Ray) Set(origin, dir Vector3) {
	ray.Origin = origin
	ray.Dir = dir
}

// At calculates the point in the ray which is at the specified t distance from the origin
// along its direction.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// ClosestPointToPoint calculates the point in the ray which is closest to the specified point.
func (ray *Ray) ClosestPointToPoint(point Vector3) Vector3 {
	dirDist := point.Sub(ray.Origin).Dot(ray.Dir)
	if dirDist < 0 {
		return ray.Origin
	}
	return ray.Dir.MulScalar(dirDist).Add(ray.Origin)
}

// DistanceSquaredToPoint returns the smallest squared distance
// from the ray direction vector to the specified point.
func (ray *Ray) DistanceSquaredToPoint(point Vector3) float32 {
	return ray.ClosestPointToPoint(point).DistanceToSquared(point)
}

// IntersectBoxRange returns the entry and exit distances of this ray
// through the specified box using the slab method. Distances are in units
// of the ray direction length and may be negative when the origin is inside.
// Returns false if the ray misses the box or the box is entirely behind the origin.
func (ray *Ray) IntersectBoxRange(box Box3) (tmin, tmax float32, ok bool) {
	tmin = -MaxFloat32
	tmax = MaxFloat32
	for d := X; d <= Z; d++ {
		o := ray.Origin.Dim(d)
		dir := ray.Dir.Dim(d)
		lo := box.Min.Dim(d)
		hi := box.Max.Dim(d)
		if dir == 0 {
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / dir
		t0 := (lo - o) * inv
		t1 := (hi - o) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = Max(tmin, t0)
		tmax = Min(tmax, t1)
		if tmin > tmax {
			return 0, 0, false
		}
	}
	if tmax < 0 {
		return 0, 0, false
	}
	return tmin, tmax, true
}

// IntersectBox calculates the point which is the intersection of this ray with the specified box.
// If no intersection is found false is returned.
func (ray *Ray) IntersectBox(box Box3) (Vector3, bool) {
	tmin, tmax, ok := ray.IntersectBoxRange(box)
	if !ok {
		return Vector3{}, false
	}
	if tmin >= 0 {
		return ray.At(tmin), true
	}
	return ray.At(tmax), true
}

// IsIntersectionBox returns if this ray intersects the specified box.
func (ray *Ray) IsIntersectionBox(box Box3) bool {
	_, _, ok := ray.IntersectBoxRange(box)
	return ok
}
