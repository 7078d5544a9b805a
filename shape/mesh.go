// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates mesh descriptors for the primitive shapes
// used to draw a house: boxes, cones, extruded outlines with holes,
// and tubes swept along smooth curves, plus straight polylines.
// All meshes are indexed triangle lists in local coordinates; placing
// them in a scene is up to the caller.
package shape

import (
	gshape "cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// Mesh is an indexed triangle mesh with per-vertex normals and
// texture coordinates, stored as flat arrays.
type Mesh struct {
	// Name identifies the mesh within a scene.
	Name string

	// Vertex has 3 floats per vertex.
	Vertex []float32

	// Normal has 3 floats per vertex.
	Normal []float32

	// TexCoord has 2 floats per vertex.
	TexCoord []float32

	// Index has 3 indexes per triangle.
	Index []uint32

	// BBox is the bounding box of the vertices, valid after
	// [Mesh.ComputeBBox], which every constructor calls.
	BBox math32.Box3
}

// NewMesh returns an empty mesh with room for the given number
// of vertexes and indexes.
func NewMesh(name string, nVtx, nIdx int) *Mesh {
	return &Mesh{
		Name:     name,
		Vertex:   make([]float32, 0, nVtx*3),
		Normal:   make([]float32, 0, nVtx*3),
		TexCoord: make([]float32, 0, nVtx*2),
		Index:    make([]uint32, 0, nIdx),
	}
}

// NumVertex returns the number of vertexes.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex) / 3
}

// NumIndex returns the number of indexes.
func (ms *Mesh) NumIndex() int {
	return len(ms.Index)
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

// AddVertex appends a vertex and returns its index.
func (ms *Mesh) AddVertex(pos, norm math32.Vector3, uv math32.Vector2) uint32 {
	idx := uint32(ms.NumVertex())
	ms.Vertex = append(ms.Vertex, pos.X, pos.Y, pos.Z)
	ms.Normal = append(ms.Normal, norm.X, norm.Y, norm.Z)
	ms.TexCoord = append(ms.TexCoord, uv.X, uv.Y)
	return idx
}

// AddTriangle appends a triangle of existing vertexes,
// counter-clockwise when seen from the front.
func (ms *Mesh) AddTriangle(a, b, c uint32) {
	ms.Index = append(ms.Index, a, b, c)
}

// Position returns the position of vertex i.
func (ms *Mesh) Position(i int) math32.Vector3 {
	return math32.Vec3(ms.Vertex[i*3], ms.Vertex[i*3+1], ms.Vertex[i*3+2])
}

// NormalAt returns the normal of vertex i.
func (ms *Mesh) NormalAt(i int) math32.Vector3 {
	return math32.Vec3(ms.Normal[i*3], ms.Normal[i*3+1], ms.Normal[i*3+2])
}

// Triangle returns the vertex positions of triangle i.
func (ms *Mesh) Triangle(i int) (a, b, c math32.Vector3) {
	return ms.Position(int(ms.Index[i*3])), ms.Position(int(ms.Index[i*3+1])), ms.Position(int(ms.Index[i*3+2]))
}

// ComputeBBox updates [Mesh.BBox] from the vertexes.
func (ms *Mesh) ComputeBBox() {
	ms.BBox = gshape.BBoxFromVtxs(ms.Vertex, 0, ms.NumVertex())
}

// fromShape returns a mesh holding the data of a gpu shape.
func fromShape(name string, sh gshape.Mesh) *Mesh {
	md := gshape.NewMeshData(sh)
	ms := &Mesh{
		Name:     name,
		Vertex:   md.Vertex,
		Normal:   md.Normal,
		TexCoord: md.TexCoord,
		Index:    md.Index,
	}
	ms.ComputeBBox()
	return ms
}

// DropDegenerate removes the triangles with zero area, such as the
// ones a cone has at its apex.
func (ms *Mesh) DropDegenerate() {
	idx := ms.Index[:0]
	for i := range ms.NumTriangles() {
		a, b, c := ms.Triangle(i)
		if TriangleArea(a, b, c) > 0 {
			idx = append(idx, ms.Index[i*3:i*3+3]...)
		}
	}
	ms.Index = idx
}

// Transform returns a copy of the mesh with every vertex rotated by
// q and then translated by pos. Normals are rotated.
func (ms *Mesh) Transform(pos math32.Vector3, q math32.Quat) *Mesh {
	nm := &Mesh{
		Name:     ms.Name,
		Vertex:   make([]float32, len(ms.Vertex)),
		Normal:   make([]float32, len(ms.Normal)),
		TexCoord: ms.TexCoord,
		Index:    ms.Index,
	}
	for i := range ms.NumVertex() {
		p := ms.Position(i).MulQuat(q).Add(pos)
		n := ms.NormalAt(i).MulQuat(q)
		nm.Vertex[i*3], nm.Vertex[i*3+1], nm.Vertex[i*3+2] = p.X, p.Y, p.Z
		nm.Normal[i*3], nm.Normal[i*3+1], nm.Normal[i*3+2] = n.X, n.Y, n.Z
	}
	nm.ComputeBBox()
	return nm
}

// SurfaceArea returns the total area of all triangles.
func (ms *Mesh) SurfaceArea() float32 {
	var area float32
	for i := range ms.NumTriangles() {
		a, b, c := ms.Triangle(i)
		area += TriangleArea(a, b, c)
	}
	return area
}

// FacingArea returns the total area of the triangles whose face
// normal points along dir within the given cosine tolerance.
// For a horizontal slab and dir = +Y this is the footprint area.
func (ms *Mesh) FacingArea(dir math32.Vector3, cosTol float32) float32 {
	dir = dir.Normal()
	var area float32
	for i := range ms.NumTriangles() {
		a, b, c := ms.Triangle(i)
		n := math32.Normal(a, b, c)
		if n.Dot(dir) >= cosTol {
			area += TriangleArea(a, b, c)
		}
	}
	return area
}

// TriangleArea returns the area of the triangle a, b, c.
func TriangleArea(a, b, c math32.Vector3) float32 {
	return 0.5 * b.Sub(a).Cross(c.Sub(a)).Length()
}
