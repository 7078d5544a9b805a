// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import gshape "cogentcore.org/core/gpu/shape"

// NewCone returns a cone mesh with its apex up the Y axis,
// centered vertically on the origin, with the given number of
// radial segments around the base. With 4 segments it is a square
// pyramid whose base corners lie on the X and Z axes.
// If bottom is true the base is closed.
func NewCone(name string, height, radius float32, radialSegs int, bottom bool) *Mesh {
	ms := fromShape(name, gshape.NewCone(height, radius, max(radialSegs, 3), 1, bottom))
	ms.DropDegenerate()
	return ms
}
