// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/collide/base/tolassert"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

// mglTransform builds the same transform using mathgl as an
// independent reference: T * R * S.
func mglTransform(pos Vector3, axis Vector3, angle float32, scale Vector3) mgl32.Mat4 {
	ax := mgl32.Vec3{axis.X, axis.Y, axis.Z}.Normalize()
	rot := mgl32.QuatRotate(angle, ax).Mat4()
	return mgl32.Translate3D(pos.X, pos.Y, pos.Z).Mul4(rot).Mul4(mgl32.Scale3D(scale.X, scale.Y, scale.Z))
}

func TestMatrix4SetTransform(t *testing.T) {
	pos := Vec3(1, -2, 3)
	axis := Vec3(1, 1, 0)
	angle := DegToRad(30)
	scale := Vec3(2, 0.5, 3)

	var m Matrix4
	m.SetTransform(pos, NewQuatAxisAngle(axis, angle), scale)
	ref := mglTransform(pos, axis, angle, scale)
	for i := 0; i < 16; i++ {
		tolassert.EqualTol(t, ref[i], m[i], StandardTol, "element %d", i)
	}
}

func TestMatrix4Inverse(t *testing.T) {
	pos := Vec3(4, 5, -6)
	axis := Vec3(0, 1, 1)
	angle := DegToRad(-75)
	scale := Vec3(1.5, 2, 0.25)

	var m Matrix4
	m.SetTransform(pos, NewQuatAxisAngle(axis, angle), scale)
	inv, err := m.Inverse()
	require.NoError(t, err)

	ref := mglTransform(pos, axis, angle, scale).Inv()
	for i := 0; i < 16; i++ {
		tolassert.EqualTol(t, ref[i], inv[i], 1e-4, "element %d", i)
	}

	id := m.Mul(inv)
	for i := 0; i < 16; i++ {
		tolassert.EqualTol(t, Identity4()[i], id[i], 1e-4, "element %d", i)
	}
}

func TestMatrix4Singular(t *testing.T) {
	var m Matrix4
	m.SetScale(1, 0, 1)
	inv, err := m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
	assert.Equal(t, *Identity4(), *inv)
}

func TestMatrix4Decompose(t *testing.T) {
	pos := Vec3(-1, 2, 7)
	q := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(45))
	scale := Vec3(3, 1, 2)
	var m Matrix4
	m.SetTransform(pos, q, scale)

	p2, q2, s2 := m.Decompose()
	TolAssertEqualVector(t, 1e-5, pos, p2)
	TolAssertEqualVector(t, 1e-5, scale, s2)
	tolassert.EqualTol(t, 1, Abs(q.Dot(q2)), 1e-5)
}

func TestMatrix4Transpose(t *testing.T) {
	var m Matrix4
	m.SetTranslation(1, 2, 3)
	tr := m.Transpose()
	assert.Equal(t, float32(1), tr[3])
	assert.Equal(t, float32(2), tr[7])
	assert.Equal(t, float32(3), tr[11])
	assert.Equal(t, m, *tr.Transpose())
}

func TestVectorMulMatrix4(t *testing.T) {
	var m Matrix4
	m.SetTransform(Vec3(1, 1, 1), NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90)), Vec3(2, 2, 2))
	// (1,0,0) -> scale 2 -> (2,0,0) -> rotate 90 about z -> (0,2,0) -> translate -> (1,3,1)
	TolAssertEqualVector(t, StandardTol, Vec3(1, 3, 1), Vec3(1, 0, 0).MulMatrix4AsPoint(&m))
	TolAssertEqualVector(t, StandardTol, Vec3(1, 3, 1), Vec3(1, 0, 0).MulMatrix4(&m))
	TolAssertEqualVector(t, StandardTol, Vec3(0, 2, 0), Vec3(1, 0, 0).MulMatrix4AsVector(&m))
}
