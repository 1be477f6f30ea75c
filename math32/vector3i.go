// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Vector3i is a 3D vector/point with X, Y and Z int32 components.
// It is used for integer grid (cell) coordinates.
type Vector3i struct {
	X int32
	Y int32
	Z int32
}

// Vec3i returns a new [Vector3i] with the given x, y and y components.
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// Vector3iScalar returns a new [Vector3i] with all components set to the given scalar value.
func Vector3iScalar(s int32) Vector3i {
	return Vector3i{X: s, Y: s, Z: s}
}

// Vector3iFloor returns a new [Vector3i] from the [Floor] of each
// component of the given [Vector3].
func Vector3iFloor(v Vector3) Vector3i {
	return Vector3i{X: int32(Floor(v.X)), Y: int32(Floor(v.Y)), Z: int32(Floor(v.Z))}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3i) Set(x, y, z int32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector X, Y and Z components to same scalar value.
func (v *Vector3i) SetScalar(s int32) {
	v.X = s
	v.Y = s
	v.Z = s
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3i) SetDim(dim Dims, value int32) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	default:
		panic("dim is out of range: ")
	}
}

// Dim returns this vector component
func (v Vector3i) Dim(dim Dims) int32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

func (v Vector3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// ToVector3 returns the float32 [Vector3] with the same components.
func (v Vector3i) ToVector3() Vector3 {
	return Vector3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3i) Add(other Vector3i) Vector3i {
	return Vector3i{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3i) Sub(other Vector3i) Vector3i {
	return Vector3i{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Min returns min of this vector components vs. other vector.
func (v Vector3i) Min(other Vector3i) Vector3i {
	return Vector3i{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns max of this vector components vs. other vector.
func (v Vector3i) Max(other Vector3i) Vector3i {
	return Vector3i{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// Clamp sets this vector components to be no less than the corresponding components of min
// and not greater than the corresponding component of max.
func (v *Vector3i) Clamp(min, max Vector3i) {
	v.X = Clamp(v.X, min.X, max.X)
	v.Y = Clamp(v.Y, min.Y, max.Y)
	v.Z = Clamp(v.Z, min.Z, max.Z)
}

// InRange returns true if all components are in the half-open range
// [0, size) of the corresponding component of size.
func (v Vector3i) InRange(size Vector3i) bool {
	return v.X >= 0 && v.X < size.X && v.Y >= 0 && v.Y < size.Y && v.Z >= 0 && v.Z < size.Z
}

// Product returns X * Y * Z as an int.
func (v Vector3i) Product() int {
	return int(v.X) * int(v.Y) * int(v.Z)
}

// IsEqual returns if this vector is equal to other.
func (v Vector3i) IsEqual(other Vector3i) bool {
	return (other.X == v.X) && (other.Y == v.Y) && (other.Z == v.Z)
}
