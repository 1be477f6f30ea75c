// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cellvol

import "cogentcore.org/collide/math32"

// PickHit is one occupied cell found along a pick ray.
type PickHit struct {

	// Distance along the ray, in units of the ray direction length.
	Distance float32

	// Point is the world-space sample point.
	Point math32.Vector3
}

// Collides returns whether any set cell of this volume, placed in the world
// by pose my, falls in a set cell of ov placed by pose other.
// It returns at the first such cell.
func (cv *Volume) Collides(my, other math32.Pose, ov *Volume) bool {
	found := false
	cv.collide(my, other, ov, func(world math32.Vector3) bool {
		found = true
		return false
	})
	return found
}

// Collisions returns the world-space centers of all set cells of this
// volume, placed in the world by pose my, that fall in a set cell of ov
// placed by pose other.
func (cv *Volume) Collisions(my, other math32.Pose, ov *Volume) []math32.Vector3 {
	var pts []math32.Vector3
	cv.collide(my, other, ov, func(world math32.Vector3) bool {
		pts = append(pts, world)
		return true
	})
	return pts
}

// collide calls fun with the world position of each doubly occupied cell
// center, stopping when fun returns false.
func (cv *Volume) collide(my, other math32.Pose, ov *Volume, fun func(world math32.Vector3) bool) {
	if ov == nil || cv.Cells == nil || ov.Cells == nil {
		return
	}
	for i, ok := cv.Cells.NextSet(0); ok; i, ok = cv.Cells.NextSet(i + 1) {
		world := my.TransformPoint(cv.CellCenter(cv.CellFromIndex(int(i))))
		oc, in := ov.CellOf(other.InverseTransformPoint(world))
		if !in || !ov.Cells.Test(uint(ov.IndexOf(oc))) {
			continue
		}
		if !fun(world) {
			return
		}
	}
}

// Pick returns the distance along the ray to the first set cell of this
// volume placed in the world by pose my, within maxLength.
// The ray direction should be unit length for world-space distances.
func (cv *Volume) Pick(my math32.Pose, ray math32.Ray, maxLength float32) (float32, bool) {
	var dist float32
	found := false
	cv.pick(my, ray, maxLength, func(h PickHit) bool {
		dist = h.Distance
		found = true
		return false
	})
	return dist, found
}

// PickAll returns every set cell along the ray within maxLength,
// nearest first.
func (cv *Volume) PickAll(my math32.Pose, ray math32.Ray, maxLength float32) []PickHit {
	var hits []PickHit
	cv.pick(my, ray, maxLength, func(h PickHit) bool {
		hits = append(hits, h)
		return true
	})
	return hits
}

// pick steps along the ray in grid-local space, at most one cell per
// step, calling fun for each set cell entered, stopping when fun returns
// false. The walk starts where the ray enters the grid and ends when it
// leaves the grid or passes maxLength.
func (cv *Volume) pick(my math32.Pose, ray math32.Ray, maxLength float32, fun func(h PickHit) bool) {
	if cv.Cells == nil {
		return
	}
	// the local ray shares the world ray parameter
	lray := math32.Ray{
		Origin: my.InverseTransformPoint(ray.Origin).Add(cv.Translate),
		Dir:    my.InverseTransformDir(ray.Dir),
	}
	dl := lray.Dir.Length()
	if dl == 0 {
		return
	}
	dt := cv.CellSize.MinComponent() / dl
	grid := math32.Box3{Max: cv.Size.ToVector3().Mul(cv.CellSize)}
	tmin, _, ok := lray.IntersectBoxRange(grid)
	if !ok {
		return
	}
	t0 := max(tmin, 0)
	entered := false
	last := -1
	for i := 0; ; i++ {
		t := t0 + float32(i)*dt
		if t > maxLength {
			return
		}
		c := math32.Vector3iFloor(lray.At(t).Mul(cv.CellScale))
		if !c.InRange(cv.Size) {
			if entered {
				return
			}
			if i > 1 {
				// started at the boundary and never got in
				return
			}
			continue
		}
		entered = true
		idx := cv.IndexOf(c)
		if idx == last || !cv.Cells.Test(uint(idx)) {
			continue
		}
		last = idx
		if !fun(PickHit{Distance: t, Point: ray.At(t)}) {
			return
		}
	}
}
