// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"slices"

	"cogentcore.org/core/math32"
)

// Extrude returns a solid mesh made by sweeping the shape along +Z
// from z = 0 to z = depth. The result has a bottom cap facing -Z,
// a top cap facing +Z, and flat-shaded side walls around the outline
// and around every hole. Cap texture coordinates are the shape x, y;
// side coordinates are distance along the contour and z.
func Extrude(name string, sh *Shape, depth float32) *Mesh {
	outline := sh.Points()
	if len(outline) < 3 {
		return NewMesh(name, 0, 0)
	}
	// canonical orientations: outline CCW, holes CW
	outline = slices.Clone(outline)
	if SignedArea(outline) < 0 {
		slices.Reverse(outline)
	}
	var holes [][]math32.Vector2
	all := outline
	for _, h := range sh.Holes {
		hp := slices.Clone(h.Points())
		if len(hp) < 3 {
			continue
		}
		if SignedArea(hp) > 0 {
			slices.Reverse(hp)
		}
		holes = append(holes, hp)
		all = append(all, hp...)
	}
	tris := Triangulate(outline, holes...)

	nv := len(all)
	ms := NewMesh(name, 2*nv+4*nv, 2*len(tris)+6*nv)

	down := math32.Vec3(0, 0, -1)
	up := math32.Vec3(0, 0, 1)
	bot := uint32(ms.NumVertex())
	for _, p := range all {
		ms.AddVertex(math32.Vec3(p.X, p.Y, 0), down, p)
	}
	top := uint32(ms.NumVertex())
	for _, p := range all {
		ms.AddVertex(math32.Vec3(p.X, p.Y, depth), up, p)
	}
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		ms.AddTriangle(bot+a, bot+c, bot+b)
		ms.AddTriangle(top+a, top+b, top+c)
	}

	extrudeSides(ms, outline, depth)
	for _, h := range holes {
		extrudeSides(ms, h, depth)
	}
	ms.ComputeBBox()
	return ms
}

// extrudeSides adds one quad per contour edge, with the normal
// pointing to the right of the direction of travel. For a CCW
// outline that is outward, and for a CW hole it points into the hole.
func extrudeSides(ms *Mesh, contour []math32.Vector2, depth float32) {
	n := len(contour)
	var dist float32
	for i := range n {
		p, q := contour[i], contour[(i+1)%n]
		d := q.Sub(p)
		l := math32.Sqrt(d.X*d.X + d.Y*d.Y)
		if l == 0 {
			continue
		}
		nrm := math32.Vec3(d.Y/l, -d.X/l, 0)
		a := ms.AddVertex(math32.Vec3(p.X, p.Y, 0), nrm, math32.Vec2(dist, 0))
		b := ms.AddVertex(math32.Vec3(q.X, q.Y, 0), nrm, math32.Vec2(dist+l, 0))
		c := ms.AddVertex(math32.Vec3(q.X, q.Y, depth), nrm, math32.Vec2(dist+l, depth))
		e := ms.AddVertex(math32.Vec3(p.X, p.Y, depth), nrm, math32.Vec2(dist, depth))
		ms.AddTriangle(a, b, c)
		ms.AddTriangle(a, c, e)
		dist += l
	}
}
