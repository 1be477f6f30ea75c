// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"math"

	"cogentcore.org/collide/math32"
	"github.com/go-gl/mathgl/mgl64"
)

// diameter returns the largest distance between any two points.
func diameter(pts []math32.Vector3) float32 {
	var d float32
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			d = max(d, pts[i].DistanceTo(pts[j]))
		}
	}
	return d
}

// bruteMinRadius returns the radius of the minimal enclosing sphere of the
// points, in float64, by trying every sphere supported by 2, 3, or 4 of them.
func bruteMinRadius(points []math32.Vector3) float64 {
	pts := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		pts[i] = mgl64.Vec3{float64(p.X), float64(p.Y), float64(p.Z)}
	}
	best := math.Inf(1)
	try := func(c mgl64.Vec3, r float64) {
		if r >= best {
			return
		}
		for _, p := range pts {
			if p.Sub(c).Len() > r*(1+1e-9)+1e-9 {
				return
			}
		}
		best = r
	}
	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := pts[i].Add(pts[j]).Mul(0.5)
			try(c, pts[i].Sub(c).Len())
			for k := j + 1; k < n; k++ {
				if c, ok := circumcenter3(pts[i], pts[j], pts[k]); ok {
					try(c, pts[i].Sub(c).Len())
				}
				for l := k + 1; l < n; l++ {
					if c, ok := circumcenter4(pts[i], pts[j], pts[k], pts[l]); ok {
						try(c, pts[i].Sub(c).Len())
					}
				}
			}
		}
	}
	return best
}

func circumcenter3(o, a, b mgl64.Vec3) (mgl64.Vec3, bool) {
	av := a.Sub(o)
	bv := b.Sub(o)
	axb := av.Cross(bv)
	denom := 2 * axb.Dot(axb)
	if math.Abs(denom) < 1e-12 {
		return mgl64.Vec3{}, false
	}
	c := axb.Cross(av).Mul(bv.Dot(bv)).Add(bv.Cross(axb).Mul(av.Dot(av))).Mul(1 / denom)
	return o.Add(c), true
}

func circumcenter4(o, a, b, c mgl64.Vec3) (mgl64.Vec3, bool) {
	av := a.Sub(o)
	bv := b.Sub(o)
	cv := c.Sub(o)
	denom := 2 * av.Dot(bv.Cross(cv))
	if math.Abs(denom) < 1e-12 {
		return mgl64.Vec3{}, false
	}
	r := bv.Cross(cv).Mul(av.Dot(av)).Add(cv.Cross(av).Mul(bv.Dot(bv))).Add(av.Cross(bv).Mul(cv.Dot(cv))).Mul(1 / denom)
	return o.Add(r), true
}
