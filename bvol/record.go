// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import "cogentcore.org/collide/math32"

// IntersectionRecord holds the distances along a ray and the
// corresponding points where it intersects a volume.
// An empty record means no intersection.
type IntersectionRecord struct {

	// Distances along the ray, in the order found.
	Distances []float32

	// Points at each distance.
	Points []math32.Vector3
}

// Add adds an intersection at the given distance and point.
func (ir *IntersectionRecord) Add(dist float32, pt math32.Vector3) {
	ir.Distances = append(ir.Distances, dist)
	ir.Points = append(ir.Points, pt)
}

// Len returns the number of intersections.
func (ir IntersectionRecord) Len() int {
	return len(ir.Distances)
}

// IsEmpty returns true if there are no intersections.
func (ir IntersectionRecord) IsEmpty() bool {
	return len(ir.Distances) == 0
}

// Closest returns the distance and point of the nearest intersection,
// and false if there are none.
func (ir IntersectionRecord) Closest() (float32, math32.Vector3, bool) {
	if ir.IsEmpty() {
		return 0, math32.Vector3{}, false
	}
	ci := 0
	for i, d := range ir.Distances {
		if d < ir.Distances[ci] {
			ci = i
		}
	}
	return ir.Distances[ci], ir.Points[ci], true
}
