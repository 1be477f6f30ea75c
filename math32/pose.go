// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Pose contains the full specification of position, orientation and scale
// of an element relative to world space. Points are transformed by
// applying Scale, then Quat, then Pos.
type Pose struct {

	// position of center of element
	Pos Vector3

	// scale, which can be non-uniform
	Scale Vector3

	// rotation specified as a Quat
	Quat Quat
}

// NewPose returns a new identity pose.
func NewPose() Pose {
	ps := Pose{}
	ps.Defaults()
	return ps
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Matrix returns the transform matrix based on position, quaternion, and scale.
func (ps *Pose) Matrix() Matrix4 {
	ps.Defaults()
	var m Matrix4
	m.SetTransform(ps.Pos, ps.Quat, ps.Scale)
	return m
}

// TransformPoint returns the given local point transformed into world space.
func (ps *Pose) TransformPoint(p Vector3) Vector3 {
	ps.Defaults()
	return p.Mul(ps.Scale).MulQuat(ps.Quat).Add(ps.Pos)
}

// TransformDir returns the given local direction transformed into world space,
// without translation.
func (ps *Pose) TransformDir(d Vector3) Vector3 {
	ps.Defaults()
	return d.Mul(ps.Scale).MulQuat(ps.Quat)
}

// InverseTransformPoint returns the given world point transformed into
// local space: inverse translation, then inverse rotation, then
// reciprocal scale.
func (ps *Pose) InverseTransformPoint(p Vector3) Vector3 {
	ps.Defaults()
	return p.Sub(ps.Pos).MulQuat(ps.Quat.Inverse()).Mul(ps.Scale.Reciprocal())
}

// InverseTransformDir returns the given world direction transformed into
// local space, without translation.
func (ps *Pose) InverseTransformDir(d Vector3) Vector3 {
	ps.Defaults()
	return d.MulQuat(ps.Quat.Inverse()).Mul(ps.Scale.Reciprocal())
}

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(Vec3(x, y, z).MulScalar(DegToRadFactor))
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(Vec3(x, y, z), DegToRad(angle))
}
