// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import "cogentcore.org/collide/math32"

// FrustumResults are the outcomes of testing a volume against a frustum.
type FrustumResults int32

const (
	// Outside means the volume is entirely outside at least one plane.
	Outside FrustumResults = iota

	// Inside means the volume is entirely inside all planes.
	Inside

	// Intersecting means the volume straddles at least one plane.
	Intersecting
)

func (fr FrustumResults) String() string {
	switch fr {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case Intersecting:
		return "Intersecting"
	}
	return "FrustumResults(invalid)"
}

// Cull tests the volume against the frustum, whose plane normals point
// inward. The plane recorded by [Volume.CheckPlane] is tested first, and
// the plane that culls the volume is recorded for the next call.
func Cull(f *math32.Frustum, v Volume) FrustumResults {
	np := len(f.Planes)
	start := v.CheckPlane()
	if start < 0 || start >= np {
		start = 0
	}
	res := Inside
	for k := 0; k < np; k++ {
		i := (start + k) % np
		switch v.WhichSide(f.Planes[i]) {
		case SideNegative:
			v.SetCheckPlane(i)
			return Outside
		case SideStraddling:
			res = Intersecting
		}
	}
	return res
}
