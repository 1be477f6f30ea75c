// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cellvol provides a collision volume: a voxel grid approximating
// the space occupied by a triangle mesh, built by rasterizing its triangles
// into a dense bit set. It supports coarse mesh-vs-mesh collision and
// ray picking queries.
//
// A Volume is read-only after it is built, so concurrent queries are safe;
// rebuilding requires exclusive access.
package cellvol

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/collide/bvol"
	"cogentcore.org/collide/math32"
	"cogentcore.org/collide/mesh"
	"github.com/bits-and-blooms/bitset"
)

var (
	// DynamicCellSize is the default cell size for animated meshes.
	DynamicCellSize = math32.Vec3(3, 3, 3)

	// StaticCellSize is the default cell size for static meshes.
	StaticCellSize = math32.Vec3(5, 5, 5)
)

// MaxCells is the largest number of cells a volume may hold.
const MaxCells = 1 << 28

var (
	// ErrCellSize is returned when building with a non-positive cell size,
	// or one so small that the grid would exceed [MaxCells].
	ErrCellSize = errors.New("cellvol: invalid cell size")

	// ErrEmptyMesh is returned when building from a mesh without triangles.
	ErrEmptyMesh = errors.New("cellvol: mesh has no triangles")
)

// DefaultCellSize returns the default cell size for dynamic or static meshes.
func DefaultCellSize(dynamic bool) math32.Vector3 {
	if dynamic {
		return DynamicCellSize
	}
	return StaticCellSize
}

// Volume is a voxel grid over the local space of a mesh.
// Cell (x, y, z) covers the grid-local region [x, x+1) * CellSize.X, etc.,
// where grid-local coordinates are mesh-local coordinates plus Translate.
type Volume struct {

	// LocalBound is the axis-aligned bounds of the mesh.
	LocalBound bvol.Box

	// CellSize is the size of one cell along each axis.
	CellSize math32.Vector3

	// CellScale is the reciprocal of CellSize.
	CellScale math32.Vector3

	// Translate maps mesh-local coordinates into grid-local coordinates,
	// moving the minimum corner of the bounds to the origin.
	Translate math32.Vector3

	// Size is the number of cells along each axis.
	Size math32.Vector3i

	// Cells has one bit per cell, set if a triangle passes through the cell.
	Cells *bitset.BitSet
}

// New returns a new collision volume built from the mesh.
func New(m mesh.Mesh, cellSize math32.Vector3) (*Volume, error) {
	cv := &Volume{}
	if err := cv.Build(m, cellSize); err != nil {
		return nil, err
	}
	return cv, nil
}

// Build (re)builds the volume from the mesh with the given cell size.
func (cv *Volume) Build(m mesh.Mesh, cellSize math32.Vector3) error {
	if cellSize.X <= 0 || cellSize.Y <= 0 || cellSize.Z <= 0 {
		return fmt.Errorf("%w: %v", ErrCellSize, cellSize)
	}
	if m == nil || m.NumTriangles() == 0 {
		return ErrEmptyMesh
	}
	bound := bvol.NewBoxFromBox3(m.BBox())
	hs := bound.HalfSize
	var size math32.Vector3i
	total := 1.0
	for d := math32.X; d <= math32.Z; d++ {
		n := float64(math32.Floor(2*hs.Dim(d)/cellSize.Dim(d))) + 1
		total *= n
		if !(total <= MaxCells) {
			return fmt.Errorf("%w: %v over bounds %v needs more than %d cells", ErrCellSize, cellSize, hs.MulScalar(2), MaxCells)
		}
		size.SetDim(d, int32(n))
	}

	cv.LocalBound = *bound
	cv.CellSize = cellSize
	cv.CellScale = cellSize.Reciprocal()
	cv.Translate = hs.Sub(bound.Center())
	cv.Size = size
	cv.Cells = bitset.New(uint(size.Product()))

	ntri := m.NumTriangles()
	for i := 0; i < ntri; i++ {
		a, b, c := m.Triangle(i)
		cv.rasterize(a, b, c)
	}
	slog.Debug("cellvol: built", "triangles", ntri, "size", cv.Size, "cells", cv.Cells.Len(), "set", cv.NumSet())
	return nil
}

// Index returns the bit index of the cell.
func (cv *Volume) Index(x, y, z int32) int {
	return (int(x)*int(cv.Size.Y)+int(y))*int(cv.Size.Z) + int(z)
}

// IndexOf returns the bit index of the cell.
func (cv *Volume) IndexOf(c math32.Vector3i) int {
	return cv.Index(c.X, c.Y, c.Z)
}

// CellFromIndex returns the cell at the given bit index.
func (cv *Volume) CellFromIndex(idx int) math32.Vector3i {
	yz := int(cv.Size.Y) * int(cv.Size.Z)
	x := idx / yz
	rem := idx % yz
	return math32.Vec3i(int32(x), int32(rem/int(cv.Size.Z)), int32(rem%int(cv.Size.Z)))
}

// Cell returns whether the cell is set. Out of range cells are not set.
func (cv *Volume) Cell(x, y, z int32) bool {
	c := math32.Vec3i(x, y, z)
	if cv.Cells == nil || !c.InRange(cv.Size) {
		return false
	}
	return cv.Cells.Test(uint(cv.IndexOf(c)))
}

// SetCell sets the cell. Out of range cells are ignored.
func (cv *Volume) SetCell(x, y, z int32) {
	c := math32.Vec3i(x, y, z)
	if cv.Cells == nil || !c.InRange(cv.Size) {
		return
	}
	cv.Cells.Set(uint(cv.IndexOf(c)))
}

// CellOf returns the cell containing the mesh-local point, and whether
// it is within the grid.
func (cv *Volume) CellOf(local math32.Vector3) (math32.Vector3i, bool) {
	c := math32.Vector3iFloor(local.Add(cv.Translate).Mul(cv.CellScale))
	return c, c.InRange(cv.Size)
}

// CellCenter returns the center of the cell in mesh-local coordinates.
func (cv *Volume) CellCenter(c math32.Vector3i) math32.Vector3 {
	return c.ToVector3().AddScalar(0.5).Mul(cv.CellSize).Sub(cv.Translate)
}

// NumSet returns the number of set cells.
func (cv *Volume) NumSet() int {
	if cv.Cells == nil {
		return 0
	}
	return int(cv.Cells.Count())
}

// setGridCell sets the cell containing the grid-local point,
// clamped to the grid.
func (cv *Volume) setGridCell(p math32.Vector3) {
	c := math32.Vector3iFloor(p.Mul(cv.CellScale))
	c.Clamp(math32.Vector3i{}, cv.Size.Sub(math32.Vector3iScalar(1)))
	cv.Cells.Set(uint(cv.IndexOf(c)))
}
