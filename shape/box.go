// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	gshape "cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// NewBox returns a box (cuboid) mesh of the given size,
// centered at the origin: X is the width, Y the height, Z the depth.
// Each face has its own 4 vertexes so that normals are flat.
func NewBox(name string, size math32.Vector3) *Mesh {
	return fromShape(name, gshape.NewBox(size.X, size.Y, size.Z))
}
