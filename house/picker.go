// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import (
	"slices"

	"cogentcore.org/core/math32"
)

// DefaultLineThreshold is the distance within which a ray hits a line.
const DefaultLineThreshold = 0.1

// Hit is a ray intersection with a node.
type Hit struct {
	Node Node

	// Point is where the ray meets the node.
	Point math32.Vector3

	// Distance is from the ray origin to Point.
	Distance float32
}

// Picker intersects rays with scene nodes.
type Picker struct {
	// LineThreshold is the distance within which a ray hits a [Line].
	LineThreshold float32
}

// NewPicker returns a picker with the default line threshold.
func NewPicker() *Picker {
	return &Picker{LineThreshold: DefaultLineThreshold}
}

// Intersect returns the hits of the ray on the given nodes, and on
// the children of any groups among them, sorted nearest first.
func (pk *Picker) Intersect(ray math32.Ray, nodes ...Node) []Hit {
	var hits []Hit
	for _, n := range nodes {
		switch x := n.(type) {
		case *Group:
			hits = append(hits, pk.Intersect(ray, x.Nodes()...)...)
		case *Solid:
			if h, ok := pk.IntersectSolid(ray, x); ok {
				hits = append(hits, h)
			}
		case *Line:
			if h, ok := pk.IntersectLine(ray, x); ok {
				hits = append(hits, h)
			}
		}
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// IntersectSolid returns the nearest hit of the ray on the solid's
// triangles, from either side, testing its bounding box first.
func (pk *Picker) IntersectSolid(ray math32.Ray, sd *Solid) (Hit, bool) {
	ms := sd.WorldMesh()
	if _, ok := ray.IntersectBox(ms.BBox); !ok && !ms.BBox.ContainsPoint(ray.Origin) {
		return Hit{}, false
	}
	best := Hit{Distance: math32.Infinity}
	for i := range ms.NumTriangles() {
		a, b, c := ms.Triangle(i)
		pt, ok := ray.IntersectTriangle(a, b, c, false)
		if !ok {
			continue
		}
		if d := pt.Sub(ray.Origin).Length(); d < best.Distance {
			best = Hit{Node: sd, Point: pt, Distance: d}
		}
	}
	return best, best.Node != nil
}

// IntersectLine returns the hit on the line segment that passes
// nearest to the ray, if within the line threshold.
func (pk *Picker) IntersectLine(ray math32.Ray, ln *Line) (Hit, bool) {
	th2 := pk.LineThreshold * pk.LineThreshold
	best := Hit{Distance: math32.Infinity}
	for i := range ln.Lines.NumSegments() {
		a, b := ln.Lines.Segment(i)
		var onRay, onSeg math32.Vector3
		if ray.DistanceSquaredToSegment(a, b, &onRay, &onSeg) > th2 {
			continue
		}
		if d := onRay.Sub(ray.Origin).Length(); d < best.Distance {
			best = Hit{Node: ln, Point: onSeg, Distance: d}
		}
	}
	return best, best.Node != nil
}
