// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cellvol

import (
	"math/rand"
	"testing"

	"cogentcore.org/collide/base/tolassert"
	"cogentcore.org/collide/math32"
	"cogentcore.org/collide/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxVolume(t *testing.T, size, cell float32) *Volume {
	t.Helper()
	cv, err := New(mesh.Build("box", mesh.NewBox(size, size, size)), math32.Vector3Scalar(cell))
	require.NoError(t, err)
	return cv
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, DynamicCellSize)
	assert.ErrorIs(t, err, ErrEmptyMesh)

	_, err = New(mesh.NewTriMesh("empty", nil, nil), DynamicCellSize)
	assert.ErrorIs(t, err, ErrEmptyMesh)

	bx := mesh.Build("box", mesh.NewBox(1, 1, 1))
	_, err = New(bx, math32.Vec3(1, 0, 1))
	assert.ErrorIs(t, err, ErrCellSize)
	_, err = New(bx, math32.Vec3(1, 1, -1))
	assert.ErrorIs(t, err, ErrCellSize)
	_, err = New(bx, math32.Vec3(1, math32.NaN(), 1))
	assert.ErrorIs(t, err, ErrCellSize)
}

func TestTooManyCells(t *testing.T) {
	big := mesh.Build("big", mesh.NewBox(1000, 1000, 1000))
	_, err := New(big, math32.Vector3Scalar(0.001))
	assert.ErrorIs(t, err, ErrCellSize)
	// a single axis alone past the limit
	_, err = New(big, math32.Vec3(1e-7, 1000, 1000))
	assert.ErrorIs(t, err, ErrCellSize)

	// a failed rebuild leaves the volume as it was
	cv := boxVolume(t, 10, 1)
	require.ErrorIs(t, cv.Build(big, math32.Vector3Scalar(0.001)), ErrCellSize)
	assert.Equal(t, math32.Vec3i(11, 11, 11), cv.Size)
	assert.Equal(t, 602, cv.NumSet())
}

func TestDefaultCellSize(t *testing.T) {
	assert.Equal(t, math32.Vec3(3, 3, 3), DefaultCellSize(true))
	assert.Equal(t, math32.Vec3(5, 5, 5), DefaultCellSize(false))
}

func TestGrid(t *testing.T) {
	cv := boxVolume(t, 10, 1)
	assert.Equal(t, math32.Vec3i(11, 11, 11), cv.Size)
	assert.Equal(t, math32.Vec3(5, 5, 5), cv.Translate)
	assert.Equal(t, math32.Vector3Scalar(1), cv.CellScale)
	assert.Equal(t, uint(11*11*11), cv.Cells.Len())
	assert.Equal(t, math32.Vec3(5, 5, 5), cv.LocalBound.HalfSize)

	assert.Equal(t, 0, cv.Index(0, 0, 0))
	assert.Equal(t, 1, cv.Index(0, 0, 1))
	assert.Equal(t, 11, cv.Index(0, 1, 0))
	assert.Equal(t, 121, cv.Index(1, 0, 0))
	for _, c := range []math32.Vector3i{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 7, Z: 2}, {X: 10, Y: 10, Z: 10}, {X: 10, Y: 0, Z: 4}} {
		assert.Equal(t, c, cv.CellFromIndex(cv.IndexOf(c)))
		cc, ok := cv.CellOf(cv.CellCenter(c))
		assert.True(t, ok)
		assert.Equal(t, c, cc)
	}
	assert.Equal(t, math32.Vec3(-4.5, -4.5, -4.5), cv.CellCenter(math32.Vec3i(0, 0, 0)))

	_, ok := cv.CellOf(math32.Vec3(-5.5, 0, 0))
	assert.False(t, ok)
	_, ok = cv.CellOf(math32.Vec3(0, 6.5, 0))
	assert.False(t, ok)

	assert.False(t, cv.Cell(-1, 0, 0))
	assert.False(t, cv.Cell(0, 11, 0))
	n := cv.NumSet()
	cv.SetCell(0, 0, 11)
	assert.Equal(t, n, cv.NumSet())
}

func TestBoxSurface(t *testing.T) {
	cv := boxVolume(t, 10, 1)
	surface := func(c math32.Vector3i) bool {
		return c.X == 0 || c.Y == 0 || c.Z == 0 || c.X == 10 || c.Y == 10 || c.Z == 10
	}
	for x := int32(0); x < 11; x++ {
		for y := int32(0); y < 11; y++ {
			for z := int32(0); z < 11; z++ {
				c := math32.Vec3i(x, y, z)
				assert.Equal(t, surface(c), cv.Cell(x, y, z), "cell %v", c)
			}
		}
	}
	assert.Equal(t, 11*11*11-9*9*9, cv.NumSet())
}

func TestFlatPlane(t *testing.T) {
	cv, err := New(mesh.Build("plane", mesh.NewPlane(math32.Y, 4, 4)), math32.Vector3Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3i(5, 1, 5), cv.Size)
	assert.Equal(t, 25, cv.NumSet())
}

func TestSingleTriangle(t *testing.T) {
	tests := []struct {
		name string
		tri  [3]math32.Vector3
		cell math32.Vector3
	}{
		{"uniform", [3]math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 5, Y: 6, Z: -1}, {X: 10, Y: 3, Z: 2}}, math32.Vector3Scalar(1)},
		{"nonuniform", [3]math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 5, Z: 3}, {X: 6, Y: 2, Z: 1}}, math32.Vec3(0.5, 0.5, 1)},
		{"tiny", [3]math32.Vector3{{X: 1, Y: 1, Z: 1}, {X: 1.2, Y: 1.1, Z: 1}, {X: 1.1, Y: 1.3, Z: 1.05}}, math32.Vector3Scalar(1)},
	}
	rnd := rand.New(rand.NewSource(7))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c := tt.tri[0], tt.tri[1], tt.tri[2]
			vtx := math32.ArrayF32{}
			for _, v := range tt.tri {
				vtx.Append(v.X, v.Y, v.Z)
			}
			cv, err := New(mesh.NewTriMesh("tri", vtx, nil), tt.cell)
			require.NoError(t, err)
			require.Greater(t, cv.NumSet(), 0)

			// every set cell contains part of the triangle
			tri := math32.NewTriangle(a, b, c)
			pl := tri.Plane()
			halfDiag := tt.cell.Length() / 2
			for i, ok := cv.Cells.NextSet(0); ok; i, ok = cv.Cells.NextSet(i + 1) {
				ctr := cv.CellCenter(cv.CellFromIndex(int(i)))
				assert.LessOrEqual(t, math32.Abs(pl.DistanceToPoint(ctr)), halfDiag+1e-4)
			}

			// every point of the triangle is within one cell of a set cell
			for range 200 {
				u, v := rnd.Float32(), rnd.Float32()
				if u+v > 1 {
					u, v = 1-u, 1-v
				}
				p := tri.PointAt(math32.Vec3(1-u-v, u, v))
				pc, _ := cv.CellOf(p)
				pc.Clamp(math32.Vector3i{}, cv.Size.Sub(math32.Vector3iScalar(1)))
				assert.True(t, nearSet(cv, pc, 1), "point %v cell %v", p, pc)
			}
			for _, v := range tt.tri {
				vc, _ := cv.CellOf(v)
				vc.Clamp(math32.Vector3i{}, cv.Size.Sub(math32.Vector3iScalar(1)))
				assert.True(t, nearSet(cv, vc, 1), "vertex %v cell %v", v, vc)
			}
		})
	}
}

// nearSet returns whether a set cell is within d cells of c on every axis.
func nearSet(cv *Volume, c math32.Vector3i, d int32) bool {
	for x := c.X - d; x <= c.X+d; x++ {
		for y := c.Y - d; y <= c.Y+d; y++ {
			for z := c.Z - d; z <= c.Z+d; z++ {
				if cv.Cell(x, y, z) {
					return true
				}
			}
		}
	}
	return false
}

func TestSortVerts(t *testing.T) {
	v := [3]math32.Vector3{{X: 3, Y: 0, Z: 1}, {X: 1, Y: 2, Z: 0}, {X: 2, Y: 1, Z: 2}}
	sortVerts(&v, math32.X)
	assert.Equal(t, [3]math32.Vector3{{X: 1, Y: 2, Z: 0}, {X: 2, Y: 1, Z: 2}, {X: 3, Y: 0, Z: 1}}, v)
	sortVerts(&v, math32.Z)
	assert.Equal(t, [3]math32.Vector3{{X: 1, Y: 2, Z: 0}, {X: 3, Y: 0, Z: 1}, {X: 2, Y: 1, Z: 2}}, v)

	axes := longestExtent([3]math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 5, Z: 2}, {X: -1, Y: 3, Z: 0}})
	assert.Equal(t, [3]math32.Dims{math32.Y, math32.X, math32.Z}, axes)
}

func TestCollides(t *testing.T) {
	a := boxVolume(t, 4, 1)
	b := boxVolume(t, 4, 1)
	id := math32.NewPose()

	assert.True(t, a.Collides(id, id, b))

	far := math32.NewPose()
	far.Pos.Set(100, 0, 0)
	assert.False(t, a.Collides(id, far, b))
	assert.Empty(t, a.Collisions(id, far, b))
	assert.False(t, a.Collides(id, id, nil))

	near := math32.NewPose()
	near.Pos.Set(3, 0, 0)
	assert.True(t, a.Collides(id, near, b))
	pts := a.Collisions(id, near, b)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, float32(0.5))
		assert.LessOrEqual(t, p.X, float32(2.5))
	}

	rot := math32.NewPose()
	rot.SetEulerRotation(0, 90, 0)
	assert.True(t, a.Collides(rot, id, b))

	// zero value pose is treated as identity
	assert.True(t, a.Collides(math32.Pose{}, math32.Pose{}, b))
}

func TestPick(t *testing.T) {
	cv := boxVolume(t, 4, 1)
	id := math32.NewPose()
	ray := math32.Ray{Origin: math32.Vec3(-10, 0, 0), Dir: math32.Vec3(1, 0, 0)}

	d, ok := cv.Pick(id, ray, 100)
	require.True(t, ok)
	tolassert.EqualTol(t, 8, d, 1e-4)

	hits := cv.PickAll(id, ray, 100)
	require.Len(t, hits, 2)
	tolassert.EqualTol(t, 8, hits[0].Distance, 1e-4)
	tolassert.EqualTol(t, 12, hits[1].Distance, 1e-4)
	tolassert.EqualTol(t, 2, hits[1].Point.X, 1e-4)

	_, ok = cv.Pick(id, ray, 5)
	assert.False(t, ok)

	away := math32.Ray{Origin: math32.Vec3(-10, 0, 0), Dir: math32.Vec3(-1, 0, 0)}
	_, ok = cv.Pick(id, away, 100)
	assert.False(t, ok)

	miss := math32.Ray{Origin: math32.Vec3(-10, 10, 0), Dir: math32.Vec3(1, 0, 0)}
	assert.Empty(t, cv.PickAll(id, miss, 100))

	// from inside, the first hit is the far face, to within one cell
	inside := math32.Ray{Origin: math32.Vec3(0.2, 0.2, 0.2), Dir: math32.Vec3(1, 0, 0)}
	d, ok = cv.Pick(id, inside, 100)
	require.True(t, ok)
	tolassert.EqualTol(t, 2, d, 1e-4)
}

func TestPickPose(t *testing.T) {
	cv := boxVolume(t, 4, 1)
	ray := math32.Ray{Origin: math32.Vec3(-10, 0, 0), Dir: math32.Vec3(1, 0, 0)}

	scaled := math32.NewPose()
	scaled.Scale.Set(2, 2, 2)
	d, ok := cv.Pick(scaled, ray, 100)
	require.True(t, ok)
	tolassert.EqualTol(t, 6, d, 1e-4)

	moved := math32.NewPose()
	moved.Pos.Set(0, 0, 20)
	zray := math32.Ray{Origin: math32.Vec3(0, 0, 0), Dir: math32.Vec3(0, 0, 1)}
	d, ok = cv.Pick(moved, zray, 100)
	require.True(t, ok)
	tolassert.EqualTol(t, 18, d, 1e-4)
}
