// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Default tube tessellation.
const (
	TubularSegments = 200
	RadialSegments  = 8
)

// Frames are the Frenet frames sampled along a curve: the tangent,
// normal and binormal at each of segments+1 points.
type Frames struct {
	Tangents  []math32.Vector3
	Normals   []math32.Vector3
	Binormals []math32.Vector3
}

// ComputeFrames returns frames at segments+1 evenly spaced arc-length
// positions of the curve. Normals are propagated from one sample to
// the next by the minimal rotation between successive tangents, so
// the tube surface does not twist.
func ComputeFrames(c *CatmullRom, segments int) *Frames {
	fr := &Frames{
		Tangents:  make([]math32.Vector3, segments+1),
		Normals:   make([]math32.Vector3, segments+1),
		Binormals: make([]math32.Vector3, segments+1),
	}
	for i := range segments + 1 {
		fr.Tangents[i] = c.TangentAt(float32(i) / float32(segments))
	}

	// initial normal: perpendicular to the tangent, seeded from the
	// axis along which the tangent is smallest
	t0 := fr.Tangents[0]
	tx, ty, tz := math32.Abs(t0.X), math32.Abs(t0.Y), math32.Abs(t0.Z)
	axis := math32.Vec3(0, 0, 1)
	mn := math32.Infinity
	if tx <= mn {
		mn = tx
		axis = math32.Vec3(1, 0, 0)
	}
	if ty <= mn {
		mn = ty
		axis = math32.Vec3(0, 1, 0)
	}
	if tz <= mn {
		axis = math32.Vec3(0, 0, 1)
	}
	vec := t0.Cross(axis).Normal()
	fr.Normals[0] = t0.Cross(vec)
	fr.Binormals[0] = t0.Cross(fr.Normals[0])

	for i := 1; i <= segments; i++ {
		fr.Normals[i] = fr.Normals[i-1]
		fr.Binormals[i] = fr.Binormals[i-1]
		ax := fr.Tangents[i-1].Cross(fr.Tangents[i])
		if ax.Length() > 1e-6 {
			ax = ax.Normal()
			th := math32.Acos(math32.Clamp(fr.Tangents[i-1].Dot(fr.Tangents[i]), -1, 1))
			fr.Normals[i] = fr.Normals[i].MulQuat(math32.NewQuatAxisAngle(ax, th))
		}
		fr.Binormals[i] = fr.Tangents[i].Cross(fr.Normals[i])
	}
	return fr
}

// NewTube returns a tube mesh of the given radius swept along the
// curve, with tubularSegs rings along the length and radialSegs
// sides around. The ends are left open.
func NewTube(name string, c *CatmullRom, tubularSegs int, radius float32, radialSegs int) *Mesh {
	tubularSegs = max(tubularSegs, 1)
	radialSegs = max(radialSegs, 3)
	nv := (tubularSegs + 1) * (radialSegs + 1)
	ms := NewMesh(name, nv, 6*tubularSegs*radialSegs)
	fr := ComputeFrames(c, tubularSegs)

	for i := range tubularSegs + 1 {
		u := float32(i) / float32(tubularSegs)
		p := c.PointAt(u)
		n, b := fr.Normals[i], fr.Binormals[i]
		for j := range radialSegs + 1 {
			v := float32(j) / float32(radialSegs) * 2 * math32.Pi
			sin, cos := math32.Sincos(v)
			nrm := n.MulScalar(-cos).Add(b.MulScalar(sin)).Normal()
			ms.AddVertex(p.Add(nrm.MulScalar(radius)), nrm, math32.Vec2(u, float32(j)/float32(radialSegs)))
		}
	}
	rs := uint32(radialSegs + 1)
	for j := 1; j <= tubularSegs; j++ {
		for i := 1; i <= radialSegs; i++ {
			a := rs*uint32(j-1) + uint32(i-1)
			b := rs*uint32(j) + uint32(i-1)
			c := rs*uint32(j) + uint32(i)
			d := rs*uint32(j-1) + uint32(i)
			ms.AddTriangle(a, b, d)
			ms.AddTriangle(b, c, d)
		}
	}
	ms.ComputeBBox()
	return ms
}
