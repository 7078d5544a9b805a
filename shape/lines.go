// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Lines is an open polyline through a sequence of 3D points, drawn
// as connected 1-pixel line segments with no thickness.
type Lines struct {
	// Name identifies the polyline within a scene.
	Name string

	// Points are the vertexes, at least 2.
	Points []math32.Vector3

	// BBox is the bounding box of the points.
	BBox math32.Box3
}

// NewLines returns a polyline through pts.
func NewLines(name string, pts []math32.Vector3) *Lines {
	ln := &Lines{Name: name, Points: pts}
	ln.BBox = math32.B3Empty()
	for _, p := range pts {
		ln.BBox.ExpandByPoint(p)
	}
	return ln
}

// NumSegments returns the number of line segments.
func (ln *Lines) NumSegments() int {
	return max(len(ln.Points)-1, 0)
}

// Segment returns the end points of segment i.
func (ln *Lines) Segment(i int) (a, b math32.Vector3) {
	return ln.Points[i], ln.Points[i+1]
}

// Length returns the total length of the polyline.
func (ln *Lines) Length() float32 {
	var l float32
	for i := range ln.NumSegments() {
		a, b := ln.Segment(i)
		l += b.Sub(a).Length()
	}
	return l
}
