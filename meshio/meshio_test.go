// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/house/house"
	"cogentcore.org/house/schema"
	"cogentcore.org/house/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() (*house.Group, *house.Solid) {
	root := house.NewGroup("test", house.KindsN)
	box := house.NewSolid("a box", house.Walls, shape.NewBox("box", math32.Vec3(2, 2, 2)), house.NewPose(math32.Vec3(0, 1, 0)), house.Material{})
	root.Add(box)
	root.Add(&house.Line{
		NodeBase: house.NodeBase{Name: "w", Kind: house.Wires},
		Lines:    shape.NewLines("w", []math32.Vector3{{X: 0, Y: 0.1, Z: 0}, {X: 1, Y: 0.1, Z: 0}, {X: 1, Y: 0.1, Z: 1}}),
	})
	return root, box
}

func countPrefix(s, prefix string) int {
	n := 0
	for _, ln := range strings.Split(s, "\n") {
		if strings.HasPrefix(ln, prefix) {
			n++
		}
	}
	return n
}

func TestWriteOBJ(t *testing.T) {
	root, box := testScene()
	var b bytes.Buffer
	require.NoError(t, WriteOBJ(&b, root))
	s := b.String()

	nv := box.Mesh.NumVertex()
	assert.Equal(t, nv+3, countPrefix(s, "v "))
	assert.Equal(t, nv, countPrefix(s, "vn "))
	assert.Equal(t, box.Mesh.NumTriangles(), countPrefix(s, "f "))
	assert.Contains(t, s, "o a_box\n")
	assert.Contains(t, s, "o w\n")
	assert.Contains(t, s, fmt.Sprintf("l %d %d %d\n", nv+1, nv+2, nv+3))
	assert.Contains(t, s, "f 1//1 ")
}

func TestSTLRoundTrip(t *testing.T) {
	root, box := testScene()
	var b bytes.Buffer
	require.NoError(t, WriteSTL(&b, root))
	nt := box.Mesh.NumTriangles()
	assert.Equal(t, 84+50*nt, b.Len())

	ms, err := ReadSTL(&b)
	require.NoError(t, err)
	assert.Equal(t, "test", ms.Name)
	assert.Equal(t, nt, ms.NumTriangles())
	tolassert.EqualTol(t, 24, ms.SurfaceArea(), 1e-4)
	tolassert.EqualTol(t, 0, ms.BBox.Min.Y, 1e-4)
	tolassert.EqualTol(t, 2, ms.BBox.Max.Y, 1e-4)

	// stored normals face outward
	for i := range ms.NumVertex() {
		p := ms.Position(i)
		assert.Greater(t, ms.NormalAt(i).Dot(p.Sub(math32.Vec3(0, 1, 0))), float32(0))
	}

	_, err = ReadSTL(bytes.NewReader(make([]byte, 10)))
	assert.Error(t, err)
}

func TestReadSTLTruncated(t *testing.T) {
	// the header claims far more triangles than follow
	var b bytes.Buffer
	hdr := stlHeader{NTri: math.MaxUint32}
	copy(hdr.H[:], "huge")
	require.NoError(t, binary.Write(&b, binary.LittleEndian, &hdr))
	b.Write(make([]byte, 50*2+7))
	_, err := ReadSTL(&b)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorContains(t, err, "triangle 2 of 4294967295")

	b.Reset()
	hdr.NTri = 3
	require.NoError(t, binary.Write(&b, binary.LittleEndian, &hdr))
	_, err = ReadSTL(&b)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSave(t *testing.T) {
	root := house.Build(schema.Default(), house.NewParams(schema.Default()))
	dir := t.TempDir()
	for _, name := range []string{"house.obj", "house.stl"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(root, fn))
		st, err := os.Stat(fn)
		require.NoError(t, err)
		assert.Greater(t, st.Size(), int64(84))
	}

	fp, err := os.Open(filepath.Join(dir, "house.stl"))
	require.NoError(t, err)
	defer fp.Close()
	ms, err := ReadSTL(fp)
	require.NoError(t, err)
	nt := 0
	for _, sd := range root.Solids() {
		nt += sd.Mesh.NumTriangles()
	}
	assert.Equal(t, nt, ms.NumTriangles())

	assert.Error(t, Save(root, filepath.Join(dir, "house.fbx")))
	f, err := FormatFromFilename("X.STL")
	require.NoError(t, err)
	assert.Equal(t, STL, f)
}
