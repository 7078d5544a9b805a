// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio writes built house scenes as Wavefront OBJ and
// binary STL files, with every solid in world coordinates.
package meshio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/house/house"
	"cogentcore.org/house/shape"
)

//go:generate core generate

// Formats are the supported mesh file formats.
type Formats int32 //enums:enum -transform lower

const (
	OBJ Formats = iota
	STL
)

// FormatFromFilename returns the mesh format implied by the
// extension of the file name.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".obj":
		return OBJ, nil
	case ".stl":
		return STL, nil
	}
	return OBJ, fmt.Errorf("meshio: unsupported file extension %q", filepath.Ext(filename))
}

// Save writes the scene to the named file in the format
// implied by its extension.
func Save(root *house.Group, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	if f == STL {
		err = WriteSTL(fp, root)
	} else {
		err = WriteOBJ(fp, root)
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

func objectName(nb *house.NodeBase) string {
	name := nb.Name
	if name == "" {
		name = nb.Kind.String()
	}
	return strings.Join(strings.Fields(name), "_")
}

// WriteOBJ writes every solid of the scene as an OBJ object with
// positions, normals and faces, and every line as an OBJ polyline.
func WriteOBJ(w io.Writer, root *house.Group) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", root.Name)
	base := 1
	for _, sd := range root.Solids() {
		ms := sd.WorldMesh()
		fmt.Fprintf(bw, "o %s\n", objectName(sd.AsNode()))
		n := ms.NumVertex()
		for i := range n {
			p := ms.Position(i)
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		for i := range n {
			nm := ms.NormalAt(i)
			fmt.Fprintf(bw, "vn %g %g %g\n", nm.X, nm.Y, nm.Z)
		}
		for i := 0; i < len(ms.Index); i += 3 {
			a, b, c := base+int(ms.Index[i]), base+int(ms.Index[i+1]), base+int(ms.Index[i+2])
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		base += n
	}
	for _, ln := range root.Lines() {
		fmt.Fprintf(bw, "o %s\n", objectName(ln.AsNode()))
		for _, p := range ln.Lines.Points {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		bw.WriteString("l")
		for i := range ln.Lines.Points {
			fmt.Fprintf(bw, " %d", base+i)
		}
		bw.WriteString("\n")
		base += len(ln.Lines.Points)
	}
	return bw.Flush()
}

// stlHeader is the fixed header of a binary STL file.
type stlHeader struct {
	H    [80]byte
	NTri uint32
}

// WriteSTL writes every solid triangle of the scene as a binary STL
// file. Lines have no surface and are skipped.
func WriteSTL(w io.Writer, root *house.Group) error {
	solids := root.Solids()
	meshes := make([]*shape.Mesh, len(solids))
	var hdr stlHeader
	for i, sd := range solids {
		meshes[i] = sd.WorldMesh()
		hdr.NTri += uint32(meshes[i].NumTriangles())
	}
	copy(hdr.H[:], root.Name)
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	buf := make([]byte, 4*3*4+2)
	put := func(off int, v math32.Vector3) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(v.Z))
	}
	for _, ms := range meshes {
		for t := range ms.NumTriangles() {
			a, b, c := ms.Triangle(t)
			put(0, math32.Normal(a, b, c))
			put(12, a)
			put(24, b)
			put(36, c)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// stlPrealloc is the most triangles [ReadSTL] allocates room for
// before reading them, whatever the header claims.
const stlPrealloc = 1 << 16

// ReadSTL reads the triangles of a binary STL file as a mesh with
// one vertex per triangle corner and the stored facet normals.
// A file with fewer triangles than its header claims is an error.
func ReadSTL(r io.Reader) (*shape.Mesh, error) {
	var hdr stlHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	n := int(min(hdr.NTri, stlPrealloc))
	ms := shape.NewMesh(strings.TrimRight(string(hdr.H[:]), "\x00 "), n*3, n*3)
	buf := make([]byte, 4*3*4+2)
	get := func(off int) math32.Vector3 {
		return math32.Vec3(
			math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])),
			math.Float32frombits(binary.LittleEndian.Uint32(buf[off+4:])),
			math.Float32frombits(binary.LittleEndian.Uint32(buf[off+8:])))
	}
	for i := range hdr.NTri {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("meshio.ReadSTL: triangle %d of %d: %w", i, hdr.NTri, err)
		}
		nm := get(0)
		a := ms.AddVertex(get(12), nm, math32.Vector2{})
		b := ms.AddVertex(get(24), nm, math32.Vector2{})
		c := ms.AddVertex(get(36), nm, math32.Vector2{})
		ms.AddTriangle(a, b, c)
	}
	ms.ComputeBBox()
	return ms, nil
}
