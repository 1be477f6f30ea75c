// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"slices"

	"cogentcore.org/collide/math32"
)

// CalcWelzl sets the sphere to the minimal sphere enclosing the points,
// using Welzl's algorithm in its move-to-front form. The points are
// copied, so the caller's slice is not reordered. It does nothing for
// an empty slice.
func (sp *Sphere) CalcWelzl(points []math32.Vector3) {
	if len(points) == 0 {
		return
	}
	buf := slices.Clone(points)
	sp.recurseMini(buf, len(buf), 0, 0)
	// a lone support point leaves the negative marker radius
	if sp.Radius < 0 {
		sp.Radius = 0
	}
}

// recurseMini computes the minimal sphere of the first p free points,
// which start at index ap, with the b support points at indexes
// [ap-b, ap) lying on its boundary. Points found outside are moved to
// the front of the free points and become support points.
func (sp *Sphere) recurseMini(points []math32.Vector3, p, b, ap int) {
	switch b {
	case 0:
		sp.Radius = 0
		sp.center = math32.Vector3{}
	case 1:
		sp.Radius = 1 - RadiusEpsilon
		sp.center = points[ap-1]
	case 2:
		sp.setSphere2(points[ap-1], points[ap-2])
	case 3:
		sp.setSphere3(points[ap-1], points[ap-2], points[ap-3])
	case 4:
		sp.setSphere4(points[ap-1], points[ap-2], points[ap-3], points[ap-4])
		return
	}
	for i := 0; i < p; i++ {
		pt := points[i+ap]
		if pt.DistanceToSquared(sp.center)-sp.Radius*sp.Radius > RadiusEpsilon-1 {
			for j := i; j > 0; j-- {
				points[j+ap], points[j-1+ap] = points[j-1+ap], points[j+ap]
			}
			sp.recurseMini(points, i, b+1, ap+1)
		}
	}
}

// setSphere2 sets the sphere with o and a at the ends of a diameter.
func (sp *Sphere) setSphere2(o, a math32.Vector3) {
	sp.Radius = math32.Sqrt(a.DistanceToSquared(o)/4) + RadiusEpsilon - 1
	sp.center = o.Lerp(a, 0.5)
}

// setSphere3 sets the sphere to the circumsphere of the triangle o, a, b,
// centered in its plane. A degenerate triangle gives a zero sphere at the origin.
func (sp *Sphere) setSphere3(o, a, b math32.Vector3) {
	av := a.Sub(o)
	bv := b.Sub(o)
	axb := av.Cross(bv)
	denom := 2 * axb.Dot(axb)
	if denom == 0 {
		sp.center = math32.Vector3{}
		sp.Radius = 0
		return
	}
	ov := axb.Cross(av).MulScalar(bv.LengthSquared()).
		Add(bv.Cross(axb).MulScalar(av.LengthSquared())).
		DivScalar(denom)
	sp.Radius = ov.Length() * RadiusEpsilon
	sp.center = o.Add(ov)
}

// setSphere4 sets the sphere to the circumsphere of the tetrahedron
// o, a, b, c. Coplanar points give a zero sphere at the origin.
func (sp *Sphere) setSphere4(o, a, b, c math32.Vector3) {
	av := a.Sub(o)
	bv := b.Sub(o)
	cv := c.Sub(o)
	denom := 2 * (av.X*(bv.Y*cv.Z-cv.Y*bv.Z) - bv.X*(av.Y*cv.Z-cv.Y*av.Z) + cv.X*(av.Y*bv.Z-bv.Y*av.Z))
	if denom == 0 {
		sp.center = math32.Vector3{}
		sp.Radius = 0
		return
	}
	ov := av.Cross(bv).MulScalar(cv.LengthSquared()).
		Add(cv.Cross(av).MulScalar(bv.LengthSquared())).
		Add(bv.Cross(cv).MulScalar(av.LengthSquared())).
		DivScalar(denom)
	sp.Radius = ov.Length() * RadiusEpsilon
	sp.center = o.Add(ov)
}
