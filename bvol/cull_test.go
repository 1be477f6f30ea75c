// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"testing"

	"cogentcore.org/collide/math32"
	"github.com/stretchr/testify/assert"
)

type countingVolume struct {
	*Sphere
	calls int
}

func (cv *countingVolume) WhichSide(p math32.Plane) Sides {
	cv.calls++
	return cv.Sphere.WhichSide(p)
}

func TestCull(t *testing.T) {
	// the identity view-projection is the cube [-1, 1]
	f := math32.NewFrustumFromMatrix(math32.Identity4())

	assert.Equal(t, Inside, Cull(f, NewSphere(math32.Vector3{}, 0.5)))
	assert.Equal(t, Intersecting, Cull(f, NewSphere(math32.Vec3(0, 0.8, 0), 0.5)))
	assert.Equal(t, Intersecting, Cull(f, NewBox(math32.Vec3(0, 0, 0), math32.Vec3(2, 0.5, 0.5))))
	assert.Equal(t, Outside, Cull(f, NewBox(math32.Vec3(0, 0, -3), math32.Vector3Scalar(1))))

	cv := &countingVolume{Sphere: NewSphere(math32.Vec3(0, 5, 0), 1)}
	assert.Equal(t, Outside, Cull(f, cv))
	assert.Equal(t, 4, cv.calls)
	assert.Equal(t, 3, cv.CheckPlane())

	// the recorded plane is tested first
	cv.calls = 0
	assert.Equal(t, Outside, Cull(f, cv))
	assert.Equal(t, 1, cv.calls)

	// out of range hints are ignored
	cv.SetCheckPlane(42)
	cv.calls = 0
	assert.Equal(t, Outside, Cull(f, cv))
	assert.Equal(t, 4, cv.calls)
	assert.Equal(t, "Outside", Outside.String())
}
