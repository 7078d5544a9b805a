// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// CurveDivisions is the number of samples used to approximate
// arc lengths of a [CatmullRom] curve.
const CurveDivisions = 200

// CatmullRom is a centripetal Catmull-Rom spline through a sequence
// of 3D control points. It passes exactly through every point, in
// order, and does not overshoot at sharp corners the way the uniform
// variant does.
type CatmullRom struct {
	// Points are the control points, at least 2. They must not
	// change once arc lengths have been computed.
	Points []math32.Vector3

	lengths []float32
}

// NewCatmullRom returns an open centripetal Catmull-Rom curve
// through pts.
func NewCatmullRom(pts []math32.Vector3) *CatmullRom {
	return &CatmullRom{Points: pts}
}

// Point returns the point at curve parameter t in [0, 1], where the
// control points sit at t = i / (n - 1). Parameter
// spacing is uniform per segment, not by arc length; see [CatmullRom.PointAt].
func (c *CatmullRom) Point(t float32) math32.Vector3 {
	pts := c.Points
	l := len(pts)
	switch l {
	case 0:
		return math32.Vector3{}
	case 1:
		return pts[0]
	}
	p := float32(l-1) * t
	ip := int(math32.Floor(p))
	w := p - float32(ip)
	if ip >= l-1 {
		ip = l - 2
		w = 1
	}
	ip = max(ip, 0)

	// the end segments reflect their neighbor for a missing point
	var p0, p3 math32.Vector3
	if ip > 0 {
		p0 = pts[ip-1]
	} else {
		p0 = pts[0].MulScalar(2).Sub(pts[1])
	}
	p1 := pts[ip]
	p2 := pts[ip+1]
	if ip+2 < l {
		p3 = pts[ip+2]
	} else {
		p3 = pts[l-1].MulScalar(2).Sub(pts[l-2])
	}

	dt0 := math32.Pow(distSq(p0, p1), 0.25)
	dt1 := math32.Pow(distSq(p1, p2), 0.25)
	dt2 := math32.Pow(distSq(p2, p3), 0.25)
	// repeated points
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}
	return math32.Vec3(
		nonUniformCubic(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2, w),
		nonUniformCubic(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2, w),
		nonUniformCubic(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2, w),
	)
}

// nonUniformCubic evaluates the Hermite cubic between x1 and x2 whose
// tangents come from the knot spacings dt0, dt1, dt2.
func nonUniformCubic(x0, x1, x2, x3, dt0, dt1, dt2, t float32) float32 {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1
	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	t2p := t * t
	return c0 + c1*t + c2*t2p + c3*t2p*t
}

func distSq(a, b math32.Vector3) float32 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Lengths returns the cumulative arc lengths at [CurveDivisions]+1
// evenly spaced parameter values, computing them on first use.
func (c *CatmullRom) Lengths() []float32 {
	if len(c.lengths) == CurveDivisions+1 {
		return c.lengths
	}
	c.lengths = make([]float32, CurveDivisions+1)
	last := c.Point(0)
	var sum float32
	for i := 1; i <= CurveDivisions; i++ {
		p := c.Point(float32(i) / CurveDivisions)
		sum += p.Sub(last).Length()
		c.lengths[i] = sum
		last = p
	}
	return c.lengths
}

// Length returns the approximate arc length of the curve.
func (c *CatmullRom) Length() float32 {
	ls := c.Lengths()
	return ls[len(ls)-1]
}

// UToT maps the arc-length fraction u in [0, 1] to the curve parameter t.
func (c *CatmullRom) UToT(u float32) float32 {
	ls := c.Lengths()
	target := u * ls[len(ls)-1]
	lo, hi := 0, len(ls)-1
	for lo <= hi {
		i := lo + (hi-lo)/2
		switch d := ls[i] - target; {
		case d < 0:
			lo = i + 1
		case d > 0:
			hi = i - 1
		default:
			return float32(i) / float32(len(ls)-1)
		}
	}
	i := max(hi, 0)
	if ls[i] == target || i >= len(ls)-1 {
		return float32(i) / float32(len(ls)-1)
	}
	seg := ls[i+1] - ls[i]
	frac := float32(0)
	if seg > 0 {
		frac = (target - ls[i]) / seg
	}
	return (float32(i) + frac) / float32(len(ls)-1)
}

// PointAt returns the point at arc-length fraction u in [0, 1].
func (c *CatmullRom) PointAt(u float32) math32.Vector3 {
	return c.Point(c.UToT(u))
}

// TangentAt returns the unit tangent at arc-length fraction u,
// estimated by a small finite difference.
func (c *CatmullRom) TangentAt(u float32) math32.Vector3 {
	const delta = 1e-4
	t := c.UToT(u)
	t1 := max(t-delta, 0)
	t2 := min(t+delta, 1)
	return c.Point(t2).Sub(c.Point(t1)).Normal()
}
