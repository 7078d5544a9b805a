// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Path is a 2D polyline contour built by MoveTo and LineTo calls.
type Path struct {
	points []math32.Vector2
}

// MoveTo starts the path at x, y, discarding any existing points.
func (p *Path) MoveTo(x, y float32) *Path {
	p.points = append(p.points[:0], math32.Vec2(x, y))
	return p
}

// LineTo adds a straight segment to x, y.
func (p *Path) LineTo(x, y float32) *Path {
	p.points = append(p.points, math32.Vec2(x, y))
	return p
}

// Close adds a segment back to the first point, if not already there.
func (p *Path) Close() *Path {
	if n := len(p.points); n > 1 && p.points[n-1] != p.points[0] {
		p.points = append(p.points, p.points[0])
	}
	return p
}

// IsClosed returns whether the last point coincides with the first.
func (p *Path) IsClosed() bool {
	n := len(p.points)
	return n > 2 && p.points[n-1] == p.points[0]
}

// Points returns the distinct contour points: a closing point equal
// to the first one is dropped.
func (p *Path) Points() []math32.Vector2 {
	pts := p.points
	if n := len(pts); n > 1 && pts[n-1] == pts[0] {
		pts = pts[:n-1]
	}
	return pts
}

// RectPath returns a closed rectangular path with corners min and max,
// traversed counter-clockwise.
func RectPath(min, max math32.Vector2) *Path {
	p := &Path{}
	p.MoveTo(min.X, min.Y).LineTo(max.X, min.Y).LineTo(max.X, max.Y).LineTo(min.X, max.Y).Close()
	return p
}

// Shape is a planar region: an outer contour minus zero or more holes.
type Shape struct {
	Path
	Holes []*Path
}

// NewShape returns a shape with the given outline.
func NewShape(outline *Path) *Shape {
	return &Shape{Path: *outline}
}

// AddHole registers a contour to be subtracted from the shape.
func (sh *Shape) AddHole(hole *Path) *Shape {
	sh.Holes = append(sh.Holes, hole)
	return sh
}

// Area returns the area of the outline minus the area of the holes.
func (sh *Shape) Area() float32 {
	a := math32.Abs(SignedArea(sh.Points()))
	for _, h := range sh.Holes {
		a -= math32.Abs(SignedArea(h.Points()))
	}
	return a
}

// SignedArea returns the area of the polygon, positive when its
// points run counter-clockwise.
func SignedArea(pts []math32.Vector2) float32 {
	var a float32
	n := len(pts)
	for i := range n {
		p, q := pts[i], pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
