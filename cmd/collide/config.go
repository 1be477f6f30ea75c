// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/collide/base/errors"
	"cogentcore.org/collide/base/iox/tomlx"
	"cogentcore.org/collide/base/iox/yamlx"
	"cogentcore.org/collide/cellvol"
	"cogentcore.org/collide/math32"
	"cogentcore.org/collide/mesh"
)

// Bounding volume methods for [Scene.Bounds].
const (
	BoundsWelzl   = "sphere-welzl"
	BoundsAverage = "sphere-average"
	BoundsBox     = "box"
)

// Shape names for [Object.Shape].
const (
	ShapeBox    = "box"
	ShapeSphere = "sphere"
	ShapeTorus  = "torus"
	ShapePlane  = "plane"
)

// Scene is the configuration read from a scene file.
type Scene struct {

	// Bounds is the bounding volume method used for the broad phase:
	// sphere-welzl, sphere-average, or box.
	Bounds string

	// Objects are the bodies to collide.
	Objects []Object

	// Rays are picked against the objects.
	Rays []Ray
}

// Object is one body in the scene.
type Object struct {

	// Name identifies the object in the report.
	Name string

	// Shape is box, sphere, torus, or plane.
	Shape string

	// Size of a box, or width and depth (X, Z) of a plane.
	Size math32.Vector3

	// Radius of a sphere or torus.
	Radius float32

	// TubeRadius of a torus.
	TubeRadius float32

	// Segs is the number of segments of a sphere or torus.
	Segs int

	// Pos is the world position.
	Pos math32.Vector3

	// Rot is the rotation as Euler angles in degrees.
	Rot math32.Vector3

	// Scale is the world scale.
	Scale math32.Vector3

	// Dynamic selects the smaller default cell size for moving objects.
	Dynamic bool

	// CellSize overrides the default collision cell size when set.
	CellSize math32.Vector3
}

// Ray is a pick ray in the scene.
type Ray struct {

	// Name identifies the ray in the report.
	Name string

	// Origin of the ray in world space.
	Origin math32.Vector3

	// Dir is the direction, normalized on load.
	Dir math32.Vector3

	// Length is the maximum pick distance.
	Length float32

	// All collects every hit instead of the nearest one.
	All bool
}

// Defaults sets default values for unset fields.
func (sc *Scene) Defaults() {
	if sc.Bounds == "" {
		sc.Bounds = BoundsWelzl
	}
	for i := range sc.Objects {
		sc.Objects[i].Defaults(i)
	}
	for i := range sc.Rays {
		sc.Rays[i].Defaults(i)
	}
}

// Defaults sets default values for unset fields, naming the
// object by its index if it has no name.
func (ob *Object) Defaults(idx int) {
	if ob.Name == "" {
		ob.Name = fmt.Sprintf("object%d", idx)
	}
	if ob.Shape == "" {
		ob.Shape = ShapeBox
	}
	if ob.Size.IsNil() {
		ob.Size.Set(1, 1, 1)
	}
	if ob.Radius == 0 {
		ob.Radius = 0.5
	}
	if ob.TubeRadius == 0 {
		ob.TubeRadius = ob.Radius / 4
	}
	if ob.Segs == 0 {
		ob.Segs = 16
	}
	if ob.Scale.IsNil() {
		ob.Scale.Set(1, 1, 1)
	}
}

// Defaults sets default values for unset fields, naming the
// ray by its index if it has no name.
func (ry *Ray) Defaults(idx int) {
	if ry.Name == "" {
		ry.Name = fmt.Sprintf("ray%d", idx)
	}
	if ry.Dir.IsNil() {
		ry.Dir.Set(0, 0, -1)
	}
	ry.Dir = ry.Dir.Normal()
	if ry.Length == 0 {
		ry.Length = 1000
	}
}

// Validate returns an error for unknown bounds methods or shapes,
// duplicate names, and non-positive sizes.
func (sc *Scene) Validate() error {
	var errs []error
	switch sc.Bounds {
	case BoundsWelzl, BoundsAverage, BoundsBox:
	default:
		errs = append(errs, fmt.Errorf("unknown bounds method %q", sc.Bounds))
	}
	names := map[string]bool{}
	for i := range sc.Objects {
		ob := &sc.Objects[i]
		if names[ob.Name] {
			errs = append(errs, fmt.Errorf("duplicate object name %q", ob.Name))
		}
		names[ob.Name] = true
		if _, err := ob.Shaper(); err != nil {
			errs = append(errs, err)
		}
		if ob.Scale.X == 0 || ob.Scale.Y == 0 || ob.Scale.Z == 0 {
			errs = append(errs, fmt.Errorf("object %q: scale must be non-zero on every axis", ob.Name))
		}
	}
	return errors.Join(errs...)
}

// Shaper returns the mesh shape generator for the object.
func (ob *Object) Shaper() (mesh.Shape, error) {
	switch ob.Shape {
	case ShapeBox:
		return mesh.NewBox(ob.Size.X, ob.Size.Y, ob.Size.Z), nil
	case ShapeSphere:
		return mesh.NewSphere(ob.Radius, ob.Segs, ob.Segs), nil
	case ShapeTorus:
		return mesh.NewTorus(ob.Radius, ob.TubeRadius, ob.Segs), nil
	case ShapePlane:
		return mesh.NewPlane(math32.Y, ob.Size.X, ob.Size.Z), nil
	}
	return nil, fmt.Errorf("object %q: unknown shape %q", ob.Name, ob.Shape)
}

// Pose returns the world pose of the object.
func (ob *Object) Pose() math32.Pose {
	ps := math32.NewPose()
	ps.Pos = ob.Pos
	ps.Scale = ob.Scale
	ps.SetEulerRotation(ob.Rot.X, ob.Rot.Y, ob.Rot.Z)
	return ps
}

// Cells returns the collision cell size for the object.
func (ob *Object) Cells() math32.Vector3 {
	if !ob.CellSize.IsNil() {
		return ob.CellSize
	}
	return cellvol.DefaultCellSize(ob.Dynamic)
}

// Open reads the scene from a TOML or YAML file, chosen by extension,
// then applies defaults and validates it.
func Open(sc *Scene, filename string) error {
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(sc, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(sc, filename)
	default:
		return fmt.Errorf("scene %q: unsupported file type, want .toml, .yaml or .yml", filename)
	}
	if err != nil {
		return fmt.Errorf("scene %q: %w", filename, err)
	}
	sc.Defaults()
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", filename, err)
	}
	return nil
}
