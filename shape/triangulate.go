// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"
)

// Triangulate triangulates the polygon with the given outer contour
// and holes by ear clipping. Holes are merged into the outer contour
// from left to right, each through a bridge edge to the nearest
// visible outline vertex to its left. The returned indexes refer to
// the concatenation of contour followed by each hole in order, and
// triangles are counter-clockwise. Contours may be given in either
// orientation and must not be closed (no repeated last point).
func Triangulate(contour []math32.Vector2, holes ...[]math32.Vector2) []uint32 {
	outer := linkedRing(contour, 0, true)
	if outer == nil || outer.next == outer.prev {
		return nil
	}
	off := len(contour)
	var queue []*node
	for _, h := range holes {
		if len(h) < 3 {
			off += len(h)
			continue
		}
		ring := linkedRing(h, off, false)
		off += len(h)
		if ring == nil {
			continue
		}
		if ring == ring.next {
			ring.steiner = true
		}
		queue = append(queue, leftmost(ring))
	}
	slices.SortStableFunc(queue, func(a, b *node) int {
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		}
		return 0
	})
	for _, h := range queue {
		outer = eliminateHole(h, outer)
	}
	tris := make([]uint32, 0, 3*(off-2+2*len(queue)))
	earClip(outer, &tris, 0)
	return tris
}

// node is a vertex of a doubly linked polygon ring.
type node struct {
	// i is the index of the point in the concatenated input.
	i    int
	x, y float32

	prev, next *node

	// steiner marks a single point hole, which is never filtered.
	steiner bool
}

// cross returns the z component of (a - o) × (b - o),
// positive when o, a, b turn counter-clockwise.
func cross(o, a, b math32.Vector2) float32 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// turn returns the signed area of p, q, r, negative when
// they turn counter-clockwise.
func turn(p, q, r *node) float32 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

func equals(a, b *node) bool {
	return a.x == b.x && a.y == b.y
}

// linkedRing returns a ring of the points, counter-clockwise if ccw
// and clockwise otherwise, with a repeated closing point removed.
func linkedRing(pts []math32.Vector2, off int, ccw bool) *node {
	if len(pts) == 0 {
		return nil
	}
	var last *node
	if ccw == (SignedArea(pts) > 0) {
		for i, p := range pts {
			last = insertNode(off+i, p, last)
		}
	} else {
		for i := len(pts) - 1; i >= 0; i-- {
			last = insertNode(off+i, pts[i], last)
		}
	}
	if last != nil && equals(last, last.next) {
		removeNode(last)
		last = last.next
	}
	return last
}

func insertNode(i int, p math32.Vector2, last *node) *node {
	n := &node{i: i, x: p.X, y: p.Y}
	if last == nil {
		n.prev = n
		n.next = n
		return n
	}
	n.next = last.next
	n.prev = last
	last.next.prev = n
	last.next = n
	return n
}

func removeNode(n *node) {
	n.next.prev = n.prev
	n.prev.next = n.next
}

// filterPoints removes duplicate and collinear points between
// start and end, and returns the new end.
func filterPoints(start, end *node) *node {
	if start == nil {
		return nil
	}
	if end == nil {
		end = start
	}
	p := start
	for {
		again := false
		if !p.steiner && (equals(p, p.next) || turn(p.prev, p, p.next) == 0) {
			removeNode(p)
			p = p.prev
			end = p
			if p == p.next {
				break
			}
			again = true
		} else {
			p = p.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

// earClip clips ears off the ring starting at ear, appending the
// triangles. When no ear can be found it first filters degenerate
// points, then cures small self-intersections, and finally splits
// the ring in two along a valid diagonal.
func earClip(ear *node, tris *[]uint32, pass int) {
	if ear == nil {
		return
	}
	stop := ear
	for ear.prev != ear.next {
		prev, next := ear.prev, ear.next
		if isEar(ear) {
			*tris = append(*tris, uint32(prev.i), uint32(ear.i), uint32(next.i))
			removeNode(ear)
			ear = next.next
			stop = next.next
			continue
		}
		ear = next
		if ear != stop {
			continue
		}
		switch pass {
		case 0:
			earClip(filterPoints(ear, nil), tris, 1)
		case 1:
			ear = cureLocalIntersections(filterPoints(ear, nil), tris)
			earClip(ear, tris, 2)
		case 2:
			splitEarClip(ear, tris)
		}
		break
	}
}

// isEar returns whether the convex corner at ear contains no
// reflex vertex of the ring.
func isEar(ear *node) bool {
	a, b, c := ear.prev, ear, ear.next
	if turn(a, b, c) >= 0 {
		return false
	}
	for p := c.next; p != a; p = p.next {
		if pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, p.x, p.y) && turn(p.prev, p, p.next) >= 0 {
			return false
		}
	}
	return true
}

// cureLocalIntersections clips the triangle around any edge whose
// neighbors cross each other.
func cureLocalIntersections(start *node, tris *[]uint32) *node {
	p := start
	for {
		a, b := p.prev, p.next.next
		if !equals(a, b) && intersects(a, p, p.next, b) && locallyInside(a, b) && locallyInside(b, a) {
			*tris = append(*tris, uint32(a.i), uint32(p.i), uint32(b.i))
			removeNode(p)
			removeNode(p.next)
			p = b
			start = b
		}
		p = p.next
		if p == start {
			break
		}
	}
	return filterPoints(p, nil)
}

// splitEarClip splits the ring along the first valid diagonal
// and clips each half.
func splitEarClip(start *node, tris *[]uint32) {
	a := start
	for {
		for b := a.next.next; b != a.prev; b = b.next {
			if a.i != b.i && isValidDiagonal(a, b) {
				c := splitPolygon(a, b)
				a = filterPoints(a, a.next)
				c = filterPoints(c, c.next)
				earClip(a, tris, 0)
				earClip(c, tris, 0)
				return
			}
		}
		a = a.next
		if a == start {
			return
		}
	}
}

// eliminateHole links the hole into the outer ring through a bridge
// and returns the outer ring.
func eliminateHole(hole, outer *node) *node {
	bridge := findHoleBridge(hole, outer)
	if bridge == nil {
		slog.Warn("shape: hole is not inside the outline; ignoring it")
		return outer
	}
	rev := splitPolygon(bridge, hole)
	filterPoints(rev, rev.next)
	return filterPoints(bridge, bridge.next)
}

// findHoleBridge returns the outer ring vertex to connect to the
// leftmost hole vertex: the vertex of the nearest edge to the left,
// or a reflex vertex inside the triangle it spans that is closest in
// angle to the horizontal.
func findHoleBridge(hole, outer *node) *node {
	hx, hy := hole.x, hole.y
	qx := -math32.Infinity
	var m *node
	p := outer
	for {
		if hy <= p.y && hy >= p.next.y && p.next.y != p.y {
			x := p.x + (hy-p.y)*(p.next.x-p.x)/(p.next.y-p.y)
			if x <= hx && x > qx {
				qx = x
				m = p
				if p.next.x < p.x {
					m = p.next
				}
				if x == hx {
					return m
				}
			}
		}
		p = p.next
		if p == outer {
			break
		}
	}
	if m == nil {
		return nil
	}

	stop := m
	mx, my := m.x, m.y
	tanMin := math32.Infinity
	ax, cx := qx, hx
	if hy < my {
		ax, cx = hx, qx
	}
	p = m
	for {
		if hx >= p.x && p.x >= mx && hx != p.x && pointInTriangle(ax, hy, mx, my, cx, hy, p.x, p.y) {
			tan := math32.Abs(hy-p.y) / (hx - p.x)
			if locallyInside(p, hole) && (tan < tanMin || (tan == tanMin && (p.x > m.x || (p.x == m.x && sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = p.next
		if p == stop {
			break
		}
	}
	return m
}

// sectorContainsSector returns whether the interior sector at m
// contains the one at p, for coincident m and p.
func sectorContainsSector(m, p *node) bool {
	return turn(m.prev, m, p.prev) < 0 && turn(p.next, m, m.next) < 0
}

// leftmost returns the ring vertex with the smallest x,
// then the smallest y.
func leftmost(start *node) *node {
	lm := start
	for p := start.next; p != start; p = p.next {
		if p.x < lm.x || (p.x == lm.x && p.y < lm.y) {
			lm = p
		}
	}
	return lm
}

func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float32) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

// isValidDiagonal returns whether a, b splits the ring into two
// simple rings.
func isValidDiagonal(a, b *node) bool {
	if a.next.i == b.i || a.prev.i == b.i || intersectsPolygon(a, b) {
		return false
	}
	if locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b) &&
		(turn(a.prev, a, b.prev) != 0 || turn(a, b.prev, b) != 0) {
		return true
	}
	return equals(a, b) && turn(a.prev, a, a.next) > 0 && turn(b.prev, b, b.next) > 0
}

func sign(v float32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// intersects returns whether segments p1 q1 and p2 q2 intersect.
func intersects(p1, q1, p2, q2 *node) bool {
	o1 := sign(turn(p1, q1, p2))
	o2 := sign(turn(p1, q1, q2))
	o3 := sign(turn(p2, q2, p1))
	o4 := sign(turn(p2, q2, q1))
	switch {
	case o1 != o2 && o3 != o4:
		return true
	case o1 == 0 && onSegment(p1, p2, q1):
		return true
	case o2 == 0 && onSegment(p1, q2, q1):
		return true
	case o3 == 0 && onSegment(p2, p1, q2):
		return true
	case o4 == 0 && onSegment(p2, q1, q2):
		return true
	}
	return false
}

// onSegment returns whether q lies in the bounding box of p, r,
// for collinear p, q, r.
func onSegment(p, q, r *node) bool {
	return q.x <= max(p.x, r.x) && q.x >= min(p.x, r.x) && q.y <= max(p.y, r.y) && q.y >= min(p.y, r.y)
}

func intersectsPolygon(a, b *node) bool {
	p := a
	for {
		if p.i != a.i && p.next.i != a.i && p.i != b.i && p.next.i != b.i && intersects(p, p.next, a, b) {
			return true
		}
		p = p.next
		if p == a {
			return false
		}
	}
}

// locallyInside returns whether the diagonal a, b starts into the
// interior of the ring at a.
func locallyInside(a, b *node) bool {
	if turn(a.prev, a, a.next) < 0 {
		return turn(a, b, a.next) >= 0 && turn(a, a.prev, b) >= 0
	}
	return turn(a, b, a.prev) < 0 || turn(a, a.next, b) < 0
}

// middleInside returns whether the midpoint of a, b is inside the ring.
func middleInside(a, b *node) bool {
	px, py := (a.x+b.x)/2, (a.y+b.y)/2
	inside := false
	p := a
	for {
		if (p.y > py) != (p.next.y > py) && p.next.y != p.y && px < (p.next.x-p.x)*(py-p.y)/(p.next.y-p.y)+p.x {
			inside = !inside
		}
		p = p.next
		if p == a {
			return inside
		}
	}
}

// splitPolygon links a to b with two copies of each, splitting the
// ring in two, or joining two rings in one. It returns the copy of b.
func splitPolygon(a, b *node) *node {
	a2 := &node{i: a.i, x: a.x, y: a.y}
	b2 := &node{i: b.i, x: b.x, y: b.y}
	an, bp := a.next, b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp
	return b2
}
