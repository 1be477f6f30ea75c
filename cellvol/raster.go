// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cellvol

import "cogentcore.org/collide/math32"

// rasterize sets every cell the triangle passes through, to within one
// cell. The triangle is scanned along its longest axis in cell-size steps,
// and each cross-section between the two active edges is swept in
// cell-size steps.
func (cv *Volume) rasterize(a, b, c math32.Vector3) {
	v := [3]math32.Vector3{a.Add(cv.Translate), b.Add(cv.Translate), c.Add(cv.Translate)}
	axes := longestExtent(v)
	a0 := axes[0]
	sortVerts(&v, a0)
	v0, v1, v2 := v[0], v[1], v[2]

	start := v0.Dim(a0)
	end := v2.Dim(a0)
	step := cv.CellSize.Dim(a0)
	if end == start {
		// all on one scan line
		cv.sweep(v0, v1)
		cv.sweep(v1, v2)
		cv.sweep(v0, v2)
		return
	}
	nlines := int(math32.Ceil((end - start) / step))
	for i := 0; i <= nlines; i++ {
		s := min(start+float32(i)*step, end)
		// the long edge v0-v2 is always active
		ls, _ := edgeAt(v0, v2, a0, s)
		p, q := v0, v1
		if s > v1.Dim(a0) {
			p, q = v1, v2
		}
		le, ok := edgeAt(p, q, a0, s)
		if !ok {
			// edge lies in the scan line
			cv.sweep(ls, p)
			cv.sweep(ls, q)
			continue
		}
		cv.sweep(ls, le)
	}
}

// sweep sets the cells along the segment from ls to le, stepping less
// than one cell along the axis of largest span.
func (cv *Volume) sweep(ls, le math32.Vector3) {
	span := le.Sub(ls).Abs().Mul(cv.CellScale)
	// strictly less than one cell between samples
	n := int(math32.Ceil(max(span.X, span.Y, span.Z))) + 1
	for i := 0; i <= n; i++ {
		cv.setGridCell(ls.Lerp(le, float32(i)/float32(n)))
	}
}

// edgeAt returns the point on edge p-q at position s along the axis,
// and false if the edge is perpendicular to the axis.
func edgeAt(p, q math32.Vector3, axis math32.Dims, s float32) (math32.Vector3, bool) {
	d := q.Dim(axis) - p.Dim(axis)
	if d == 0 {
		return p, false
	}
	t := math32.Clamp((s-p.Dim(axis))/d, 0, 1)
	pt := p.Lerp(q, t)
	pt.SetDim(axis, s)
	return pt, true
}

// longestExtent returns the axes ordered by the span of the vertices
// along them, longest first.
func longestExtent(v [3]math32.Vector3) [3]math32.Dims {
	var span math32.Vector3
	for d := math32.X; d <= math32.Z; d++ {
		mn := min(v[0].Dim(d), v[1].Dim(d), v[2].Dim(d))
		mx := max(v[0].Dim(d), v[1].Dim(d), v[2].Dim(d))
		span.SetDim(d, mx-mn)
	}
	axes := [3]math32.Dims{math32.X, math32.Y, math32.Z}
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && span.Dim(axes[j]) > span.Dim(axes[j-1]); j-- {
			axes[j], axes[j-1] = axes[j-1], axes[j]
		}
	}
	return axes
}

// sortVerts sorts the vertices by ascending coordinate on the axis.
func sortVerts(v *[3]math32.Vector3, axis math32.Dims) {
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && v[j].Dim(axis) < v[j-1].Dim(axis); j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}
