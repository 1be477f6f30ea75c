// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"

	"cogentcore.org/collide/base/errors"
	"cogentcore.org/collide/bvol"
	"cogentcore.org/collide/cellvol"
	"cogentcore.org/collide/math32"
	"cogentcore.org/collide/mesh"
	"golang.org/x/sync/errgroup"
)

// Body is a built scene object.
type Body struct {
	Object *Object

	Mesh *mesh.TriMesh

	// Pose places the mesh in the world.
	Pose math32.Pose

	// Local is the bounding volume in mesh space.
	Local bvol.Volume

	// World is Local transformed by Pose.
	World bvol.Volume

	// Cells is the collision volume in mesh space.
	Cells *cellvol.Volume
}

// Contact is a pair of bodies whose world bounds overlap.
type Contact struct {
	A, B string

	// Collides is whether the collision volumes overlap.
	Collides bool

	// Points are the world positions of the overlapping cells,
	// when requested.
	Points []math32.Vector3
}

// RayHit is a ray hit on a body.
type RayHit struct {
	Object   string
	Distance float32
	Point    math32.Vector3
}

// RayResult is the hits of one ray, nearest first.
type RayResult struct {
	Ray  string
	Hits []RayHit
}

// Result is the outcome of running a scene.
type Result struct {

	// Bounds encloses all world bounds.
	Bounds bvol.Volume

	Contacts []Contact
	Rays     []RayResult
}

// Build builds the meshes, bounds and collision volumes of all objects
// concurrently.
func Build(sc *Scene) ([]*Body, error) {
	bodies := make([]*Body, len(sc.Objects))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range sc.Objects {
		g.Go(func() error {
			bd, err := buildBody(sc.Bounds, &sc.Objects[i])
			bodies[i] = bd
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bodies, nil
}

func buildBody(bounds string, ob *Object) (*Body, error) {
	sh, err := ob.Shaper()
	if err != nil {
		return nil, err
	}
	bd := &Body{Object: ob, Mesh: mesh.Build(ob.Name, sh), Pose: ob.Pose()}
	bd.Local = localBounds(bounds, bd.Mesh)
	bd.World = bd.Local.Transform(bd.Pose.Quat, bd.Pose.Pos, bd.Pose.Scale, nil)
	bd.Cells, err = cellvol.New(bd.Mesh, ob.Cells())
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", ob.Name, err)
	}
	slog.Debug("built object", "name", ob.Name, "shape", ob.Shape, "triangles", bd.Mesh.NumTriangles(), "bounds", bd.World)
	return bd, nil
}

// localBounds computes the bounding volume of the mesh with the method.
func localBounds(method string, m *mesh.TriMesh) bvol.Volume {
	pos := m.Stream(mesh.Position)
	switch method {
	case BoundsBox:
		bx := &bvol.Box{}
		bx.ComputeFromPoints(pos, 0, pos.Len())
		return bx
	case BoundsAverage:
		sp := &bvol.Sphere{}
		sp.ComputeFromPoints(pos, 0, pos.Len())
		return sp
	}
	sp := &bvol.Sphere{}
	sp.ComputeWelzlFromPoints(pos, 0, pos.Len())
	return sp
}

// Collide tests every pair of bodies: the world bounds first,
// then the collision volumes of pairs whose bounds overlap.
func Collide(bodies []*Body, points bool) []Contact {
	var contacts []Contact
	for i, a := range bodies {
		for _, b := range bodies[i+1:] {
			if !a.World.Intersects(b.World) {
				continue
			}
			ct := Contact{A: a.Object.Name, B: b.Object.Name}
			if points {
				ct.Points = a.Cells.Collisions(a.Pose, b.Pose, b.Cells)
				ct.Collides = len(ct.Points) > 0
			} else {
				ct.Collides = a.Cells.Collides(a.Pose, b.Pose, b.Cells)
			}
			contacts = append(contacts, ct)
		}
	}
	return contacts
}

// CastRays picks each ray against the bodies whose world bounds it hits.
func CastRays(bodies []*Body, rays []Ray) []RayResult {
	results := make([]RayResult, 0, len(rays))
	for i := range rays {
		ry := &rays[i]
		r := math32.Ray{Origin: ry.Origin, Dir: ry.Dir}
		rr := RayResult{Ray: ry.Name}
		for _, bd := range bodies {
			if !bd.World.IntersectsRay(r) {
				continue
			}
			if ry.All {
				for _, h := range bd.Cells.PickAll(bd.Pose, r, ry.Length) {
					rr.Hits = append(rr.Hits, RayHit{Object: bd.Object.Name, Distance: h.Distance, Point: h.Point})
				}
				continue
			}
			if d, ok := bd.Cells.Pick(bd.Pose, r, ry.Length); ok {
				rr.Hits = append(rr.Hits, RayHit{Object: bd.Object.Name, Distance: d, Point: r.At(d)})
			}
		}
		slices.SortStableFunc(rr.Hits, func(a, b RayHit) int {
			return cmp.Compare(a.Distance, b.Distance)
		})
		if !ry.All && len(rr.Hits) > 1 {
			rr.Hits = rr.Hits[:1]
		}
		results = append(results, rr)
	}
	return results
}

// SceneBounds returns a volume enclosing all world bounds,
// or nil if there are no bodies.
func SceneBounds(bodies []*Body) bvol.Volume {
	var all bvol.Volume
	for _, bd := range bodies {
		if all == nil {
			all = bd.World.Clone(nil)
			continue
		}
		all = errors.Log1(all.MergeLocal(bd.World))
	}
	return all
}

// Run builds and runs the scene, writing the report to w.
func Run(w io.Writer, sc *Scene, points bool) (*Result, error) {
	bodies, err := Build(sc)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Bounds:   SceneBounds(bodies),
		Contacts: Collide(bodies, points),
		Rays:     CastRays(bodies, sc.Rays),
	}
	slog.Info("scene done", "objects", len(bodies), "contacts", len(res.Contacts), "rays", len(res.Rays))
	Report(w, res, points)
	return res, nil
}
