// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import "cogentcore.org/core/math32"

// Camera is a perspective camera looking from Pos at Target.
type Camera struct {
	Pos    math32.Vector3
	Target math32.Vector3
	Up     math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32
}

// DefaultCamera returns the initial camera looking at the house
// from the front left corner.
func DefaultCamera() *Camera {
	return &Camera{
		Pos:    math32.Vec3(-8.97, 7.46, -13.82),
		Target: math32.Vec3(0, 0, 0),
		Up:     math32.Vec3(0, 1, 0),
		FOV:    75,
	}
}

// basis returns the forward, right and true up unit vectors.
func (cm *Camera) basis() (fwd, right, up math32.Vector3) {
	fwd = cm.Target.Sub(cm.Pos).Normal()
	right = fwd.Cross(cm.Up).Normal()
	up = right.Cross(fwd)
	return
}

// Ray returns the ray from the camera through the given point in
// normalized device coordinates: x and y in [-1, 1] with y up.
// Aspect is the viewport width over height.
func (cm *Camera) Ray(ndc math32.Vector2, aspect float32) math32.Ray {
	fwd, right, up := cm.basis()
	th := math32.Tan(math32.DegToRad(cm.FOV) / 2)
	dir := fwd.Add(right.MulScalar(ndc.X * th * aspect)).Add(up.MulScalar(ndc.Y * th))
	return math32.Ray{Origin: cm.Pos, Dir: dir.Normal()}
}

// Project returns the normalized device coordinates of p and whether
// it is in front of the camera.
func (cm *Camera) Project(p math32.Vector3, aspect float32) (math32.Vector2, bool) {
	fwd, right, up := cm.basis()
	d := p.Sub(cm.Pos)
	z := d.Dot(fwd)
	if z <= 0 {
		return math32.Vector2{}, false
	}
	th := math32.Tan(math32.DegToRad(cm.FOV) / 2)
	return math32.Vec2(d.Dot(right)/(z*th*aspect), d.Dot(up)/(z*th)), true
}

// PixelToNDC converts a pixel position in a viewport of the given
// size to normalized device coordinates.
func PixelToNDC(x, y, width, height float32) math32.Vector2 {
	return math32.Vec2(x/width*2-1, -(y/height*2 - 1))
}

// NDCToPixel is the inverse of [PixelToNDC].
func NDCToPixel(ndc math32.Vector2, width, height float32) math32.Vector2 {
	return math32.Vec2((ndc.X+1)/2*width, (1-ndc.Y)/2*height)
}
