// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"testing"

	"cogentcore.org/collide/base/tolassert"
	"cogentcore.org/collide/math32"
	"cogentcore.org/collide/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxCompute(t *testing.T) {
	bx := NewBoxFromBox3(math32.B3(-1, -2, -3, 1, 2, 3))
	assert.Equal(t, math32.Vector3{}, bx.Center())
	assert.Equal(t, math32.Vec3(1, 2, 3), bx.HalfSize)
	assert.Equal(t, math32.B3(-1, -2, -3, 1, 2, 3), bx.Box3())
	assert.Equal(t, TypeBox, bx.Type())

	s := mesh.NewStream(math32.ArrayF32{0, 0, 0, 4, 2, 0, -2, 0, 6}, 3)
	bx.ComputeFromPoints(s, 0, 3)
	assert.Equal(t, math32.Vec3(1, 1, 3), bx.Center())
	assert.Equal(t, math32.Vec3(3, 1, 3), bx.HalfSize)

	before := *bx
	bx.ComputeFromPoints(s, 1, 3)
	assert.Equal(t, before, *bx)

	tm := mesh.Build("box", mesh.NewBox(2, 4, 6))
	bx.ComputeFromTris(tm, 0, tm.NumTriangles())
	assertVector(t, math32.Vector3{}, bx.Center(), 1e-6)
	assert.Equal(t, math32.Vec3(1, 2, 3), bx.HalfSize)
	before = *bx
	bx.ComputeFromTris(tm, 3, 3)
	assert.Equal(t, before, *bx)
}

func TestBoxMerge(t *testing.T) {
	a := NewBox(math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1))
	b := NewBox(math32.Vec3(4, 0, 0), math32.Vec3(1, 1, 1))
	v, err := a.Merge(b)
	require.NoError(t, err)
	m := v.(*Box)
	assert.Equal(t, math32.Vec3(2, 0, 0), m.Center())
	assert.Equal(t, math32.Vec3(3, 1, 1), m.HalfSize)
	assert.Equal(t, math32.Vec3(1, 1, 1), a.HalfSize)

	v, err = a.MergeLocal(NewSphere(math32.Vec3(0, 5, 0), 1))
	require.NoError(t, err)
	assert.Same(t, a, v)
	assert.Equal(t, math32.B3(-1, -1, -1, 1, 6, 1), a.Box3())

	v, err = a.Merge(nil)
	require.NoError(t, err)
	assert.Same(t, a, v)

	_, err = a.Merge(capsule{NewSphere(math32.Vector3{}, 1)})
	assert.ErrorIs(t, err, ErrUnsupportedMerge)
}

func TestBoxTransform(t *testing.T) {
	bx := NewBox(math32.Vec3(1, 0, 0), math32.Vec3(1, 2, 3))
	rot := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(90))
	v := bx.Transform(rot, math32.Vec3(0, 0, 1), math32.Vec3(1, 1, 2), nil)
	tb := v.(*Box)
	assertVector(t, math32.Vec3(0, 1, 1), tb.Center(), 1e-5)
	assertVector(t, math32.Vec3(2, 1, 6), tb.HalfSize, 1e-5)

	var m math32.Matrix4
	m.SetTransform(math32.Vec3(0, 0, 1), rot, math32.Vec3(1, 1, 2))
	mb := bx.TransformMatrix(&m, &Box{}).(*Box)
	assertVector(t, tb.Center(), mb.Center(), 1e-5)
	assertVector(t, tb.HalfSize, mb.HalfSize, 1e-5)

	// a rotated cube grows to enclose its corners
	cube := NewBox(math32.Vector3{}, math32.Vector3Scalar(1))
	rot45 := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(45))
	rb := cube.Transform(rot45, math32.Vector3{}, math32.Vector3Scalar(1), nil).(*Box)
	assertVector(t, math32.Vec3(math32.Sqrt2, math32.Sqrt2, 1), rb.HalfSize, 1e-5)
}

func TestBoxWhichSide(t *testing.T) {
	bx := NewBox(math32.Vec3(0, 0.5, 0), math32.Vec3(1, 1, 1))
	var p math32.Plane
	p.SetFromNormalAndCoplanarPoint(math32.Vec3(0, 1, 0), math32.Vector3{})
	assert.Equal(t, SideStraddling, bx.WhichSide(p))
	bx.SetCenter(math32.Vec3(0, 2, 0))
	assert.Equal(t, SidePositive, bx.WhichSide(p))
	bx.SetCenter(math32.Vec3(0, -1, 0))
	assert.Equal(t, SideNegative, bx.WhichSide(p))

	// tilted plane: projected radius is 3/sqrt(2)
	p.SetFromNormalAndCoplanarPoint(math32.Vec3(1, 1, 0).Normal(), math32.Vector3{})
	bx.SetCenter(math32.Vec3(1.4, 0, 0))
	assert.Equal(t, SideStraddling, bx.WhichSide(p))
	bx.SetCenter(math32.Vec3(3.1, 0, 0))
	assert.Equal(t, SidePositive, bx.WhichSide(p))
}

func TestBoxRay(t *testing.T) {
	bx := NewBox(math32.Vector3{}, math32.Vector3Scalar(1))
	ray := math32.Ray{Origin: math32.Vec3(5, 0, 0), Dir: math32.Vec3(-1, 0, 0)}
	assert.True(t, bx.IntersectsRay(ray))
	rec := bx.IntersectsWhere(ray)
	require.Equal(t, 2, rec.Len())
	tolassert.EqualTol(t, 4, rec.Distances[0], 1e-5)
	tolassert.EqualTol(t, 6, rec.Distances[1], 1e-5)
	assertVector(t, math32.Vec3(-1, 0, 0), rec.Points[1], 1e-5)

	ray.Origin.Set(0.5, 0, 0)
	rec = bx.IntersectsWhere(ray)
	require.Equal(t, 1, rec.Len())
	tolassert.EqualTol(t, 1.5, rec.Distances[0], 1e-5)

	ray.Origin.Set(5, 3, 0)
	assert.False(t, bx.IntersectsRay(ray))
	assert.True(t, bx.IntersectsWhere(ray).IsEmpty())

	ray.Origin.Set(5, 0, 0)
	ray.Dir.Set(1, 0, 0)
	assert.False(t, bx.IntersectsRay(ray))
}

func TestBoxMisc(t *testing.T) {
	bx := NewBox(math32.Vector3{}, math32.Vec3(1, 2, 3))
	assert.True(t, bx.Contains(math32.Vec3(0.5, 1.5, -2.5)))
	assert.False(t, bx.Contains(math32.Vec3(1, 0, 0)))
	tolassert.EqualTol(t, -0.5, bx.DistanceToEdge(math32.Vec3(0.5, 0, 0)), 1e-6)
	tolassert.EqualTol(t, 2, bx.DistanceToEdge(math32.Vec3(3, 0, 0)), 1e-6)
	tolassert.EqualTol(t, math32.Sqrt2, bx.DistanceToEdge(math32.Vec3(2, 3, 0)), 1e-6)
	tolassert.EqualTol(t, 5, bx.DistanceTo(math32.Vec3(3, 4, 0)), 1e-6)
	assert.Equal(t, float32(48), bx.Measure())

	assert.True(t, bx.Intersects(NewBox(math32.Vec3(2, 0, 0), math32.Vec3(1, 1, 1))))
	assert.False(t, bx.Intersects(NewBox(math32.Vec3(2.5, 0, 0), math32.Vec3(1, 1, 1))))
	assert.True(t, bx.Intersects(NewSphere(math32.Vec3(0, 0, 3.5), 1)))
	assert.False(t, bx.Intersects(NewSphere(math32.Vec3(0, 0, 4.5), 1)))

	cl := bx.Clone(NewSphere(math32.Vector3{}, 1)).(*Box)
	assert.Equal(t, *bx, *cl)
}
