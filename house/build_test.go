// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import (
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/house/schema"
	"cogentcore.org/house/shape"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-4)

func assertVec3(t *testing.T, expected, actual math32.Vector3, tol float32) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

func TestWallScenario(t *testing.T) {
	pr := NewParams(nil)
	w := &schema.WallSegment{Start: schema.Point2{0, 0}, End: schema.Point2{10, 0}, Height: 3, Thickness: 0.2}
	sd, err := BuildWall(w, nil, pr)
	require.NoError(t, err)

	assertVec3(t, math32.Vec3(10, 3, 0.2), sd.Mesh.BBox.Size(), tol)
	assertVec3(t, math32.Vec3(5, 1.5, 0), sd.Pose.Pos, tol)
	tolassert.EqualTol(t, 0, w.Angle(), tol)
	assertVec3(t, math32.Vec3(1, 0, 0), math32.Vec3(1, 0, 0).MulQuat(sd.Pose.Quat), tol)

	bb := sd.WorldBBox()
	assertVec3(t, math32.Vec3(5, 1.5, 0), bb.Center(), tol)
	assertVec3(t, math32.Vec3(10, 3, 0.2), bb.Size(), tol)

	assert.Equal(t, DefaultColor, sd.Material.Color)
	assert.True(t, sd.Material.Transparent)
	tolassert.EqualTol(t, 1, sd.Material.Opacity, tol)
}

func TestWallAngle(t *testing.T) {
	pr := NewParams(nil)
	ends := []schema.Point2{{10, 0}, {0, 5}, {-3, 0}, {3, 4}, {-2, -2}, {1, -7}}
	for _, e := range ends {
		w := &schema.WallSegment{Start: schema.Point2{0, 0}, End: e, Height: 2.5, Thickness: 0.15, BaseHeight: 3}
		sd, err := BuildWall(w, nil, pr)
		require.NoError(t, err)

		// the long axis of the box follows the wall direction in plan
		dir := math32.Vec3(1, 0, 0).MulQuat(sd.Pose.Quat)
		sin, cos := math32.Sincos(w.Angle())
		tolassert.EqualTol(t, cos, dir.X, tol)
		tolassert.EqualTol(t, sin, dir.Z, tol)
		tolassert.EqualTol(t, 0, dir.Y, tol)

		// the box end faces are centered on the wall endpoints
		hl := w.Length() / 2
		assertVec3(t, math32.Vec3(0, 4.25, 0), sd.Pose.Apply(math32.Vec3(-hl, 0, 0)), 1e-3)
		assertVec3(t, math32.Vec3(e[0], 4.25, e[1]), sd.Pose.Apply(math32.Vec3(hl, 0, 0)), 1e-3)
	}
}

func TestBuildWalls(t *testing.T) {
	pr := NewParams(nil)
	walls := []schema.WallSegment{
		{ID: "a", Start: schema.Point2{0, 0}, End: schema.Point2{10, 0}, Height: 3, Thickness: 0.2},
		{ID: "bad", Start: schema.Point2{1, 1}, End: schema.Point2{1, 1}, Height: 3, Thickness: 0.2},
		{ID: "c", Start: schema.Point2{10, 0}, End: schema.Point2{10, 8}, Height: 3, Thickness: 0.2},
		{Start: schema.Point2{10, 8}, End: schema.Point2{0, 8}, Height: 3, Thickness: 0},
	}
	sds := BuildWalls(walls, nil, pr)
	require.Len(t, sds, 2)
	assert.Equal(t, "a", sds[0].Name)
	assert.Equal(t, "c", sds[1].Name)

	red := NewMaterial("#ff0000")
	sds = BuildWalls(walls, red, pr)
	assert.Equal(t, red.Color, sds[0].Material.Color)

	pr.ToggleWalls()
	assert.Len(t, BuildWalls(walls, nil, pr), 0)
	assert.Len(t, BuildWalls(schema.Default().Walls, nil, pr), 0)
	assert.Equal(t, 0, BuildKind(Walls, schema.Default(), pr).Len())
}

func TestBuildFloor(t *testing.T) {
	up := math32.Vec3(0, 1, 0)
	f := &schema.FloorSlab{ID: "f", Width: 10, Depth: 8, Thickness: 0.2, Position: schema.Point3{5, 3, 4}}
	sd, err := BuildFloor(f)
	require.NoError(t, err)
	ms := sd.WorldMesh()
	tolassert.EqualTol(t, 80, ms.FacingArea(up, 0.99), 1e-3)
	assertVec3(t, math32.Vec3(5, 3, 4), ms.BBox.Center(), tol)
	assertVec3(t, math32.Vec3(10, 0.2, 8), ms.BBox.Size(), tol)
	assert.True(t, sd.Material.DoubleSided)

	f.Holes = []schema.Hole{{Position: schema.Point2{5, 6}, Size: schema.Point2{3, 3}}}
	sd, err = BuildFloor(f)
	require.NoError(t, err)
	ms = sd.WorldMesh()
	tolassert.EqualTol(t, 71, ms.FacingArea(up, 0.99), 1e-3)
	tolassert.EqualTol(t, 71, ms.FacingArea(up.MulScalar(-1), 0.99), 1e-3)
	assertVec3(t, math32.Vec3(10, 0.2, 8), ms.BBox.Size(), tol)

	// a ray straight down through the hole center misses the slab,
	// and one through solid floor hits it
	pk := NewPicker()
	// hole center (5, 6) in slab coordinates is scene (5, ·, 4 + 4 - 6)
	_, hit := pk.IntersectSolid(math32.Ray{Origin: math32.Vec3(5, 10, 2), Dir: math32.Vec3(0, -1, 0)}, sd)
	assert.False(t, hit)
	h, hit := pk.IntersectSolid(math32.Ray{Origin: math32.Vec3(1, 10, 1), Dir: math32.Vec3(0, -1, 0)}, sd)
	assert.True(t, hit)
	tolassert.EqualTol(t, 3.1, h.Point.Y, tol)

	// invalid holes are dropped, the slab is still built
	f.Holes = append(f.Holes,
		schema.Hole{Position: schema.Point2{5.5, 6}, Size: schema.Point2{1, 1}},
		schema.Hole{Position: schema.Point2{9.5, 1}, Size: schema.Point2{2, 1}},
		schema.Hole{Position: schema.Point2{2, 2}, Size: schema.Point2{0, 1}},
		schema.Hole{Position: schema.Point2{2, 2}, Size: schema.Point2{1, 1}},
	)
	sd, err = BuildFloor(f)
	require.NoError(t, err)
	tolassert.EqualTol(t, 70, sd.WorldMesh().FacingArea(up, 0.99), 1e-3)

	// a hole sharing an edge with an accepted one is dropped
	f.Holes = []schema.Hole{
		{Position: schema.Point2{3, 4}, Size: schema.Point2{2, 2}},
		{Position: schema.Point2{5, 4}, Size: schema.Point2{2, 2}},
	}
	sd, err = BuildFloor(f)
	require.NoError(t, err)
	tolassert.EqualTol(t, 76, sd.WorldMesh().FacingArea(up, 0.99), 1e-3)

	// a grid of holes
	f.Holes = nil
	for _, y := range []float32{1.5, 3.5, 5.5} {
		for _, x := range []float32{1.5, 3.5, 5.5, 7.5} {
			f.Holes = append(f.Holes, schema.Hole{Position: schema.Point2{x, y}, Size: schema.Point2{1, 1}})
		}
	}
	sd, err = BuildFloor(f)
	require.NoError(t, err)
	ms = sd.WorldMesh()
	tolassert.EqualTol(t, 68, ms.FacingArea(up, 0.99), 1e-3)
	tolassert.EqualTol(t, 68, ms.FacingArea(up.MulScalar(-1), 0.99), 1e-3)

	_, err = BuildFloor(&schema.FloorSlab{Width: 0, Depth: 8, Thickness: 0.2})
	assert.ErrorIs(t, err, schema.ErrSize)
}

func TestBuildTube(t *testing.T) {
	pr := NewParams(nil)
	p := &schema.PathEntity{ID: "t", Type: "water", Points: []schema.Point3{{1, 0, 0}, {1, 0, 3}, {4, 0, 3}, {4, 2, 3}}}
	sd, err := BuildTube(p, pr)
	require.NoError(t, err)
	ms := sd.WorldMesh()
	assert.Equal(t, (shape.TubularSegments+1)*(shape.RadialSegments+1), ms.NumVertex())
	assert.True(t, sd.Material.DoubleSided)
	c, _ := ParseColor("#0000ff")
	assert.Equal(t, c, sd.Material.Color)

	// the sweep passes through every point, in order
	curve := shape.NewCatmullRom(TubePoints(p))
	for i, pt := range p.Points {
		assertVec3(t, pt.V(), curve.Point(float32(i)/3), tol)
	}

	// the radius follows the parameter
	first := ms.Position(0).Sub(p.Points[0].V()).Length()
	tolassert.EqualTol(t, 0.15, first, 1e-3)
	require.NoError(t, pr.Set("thicknessTubes", 0.5))
	sd, err = BuildTube(p, pr)
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.5, sd.WorldMesh().Position(0).Sub(p.Points[0].V()).Length(), 1e-3)

	_, err = BuildTube(&schema.PathEntity{Points: []schema.Point3{{1, 1, 1}}}, pr)
	assert.ErrorIs(t, err, schema.ErrTooFewPoints)
	_, err = BuildTube(&schema.PathEntity{Points: []schema.Point3{{1, 1, 1}, {1, 1, 1}}}, pr)
	assert.ErrorIs(t, err, schema.ErrZeroLength)
}

func TestBuildWire(t *testing.T) {
	pr := NewParams(nil)
	require.NoError(t, pr.Set("opacityWire", 0.5))
	p := &schema.PathEntity{Label: "lights", Type: "electric", Gauge: 1.5, Points: []schema.Point3{{0.2, 2, 0}, {0.2, 4, 0}, {0.2, 4, 2}}}
	ln, err := BuildWire(p, pr)
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector3{{X: 0.2, Y: 0.1, Z: 2}, {X: 0.2, Y: 0.1, Z: 4}, {X: 0.2, Y: 2, Z: 4}}, ln.Lines.Points)
	assert.Equal(t, 2, ln.Lines.NumSegments())
	tolassert.EqualTol(t, 0.5, ln.Material.Opacity, tol)
	assert.True(t, ln.Material.Transparent)
	assert.Equal(t, "lights (electric) ⌀1.5", ln.Label)

	_, err = BuildWire(&schema.PathEntity{}, pr)
	assert.ErrorIs(t, err, schema.ErrTooFewPoints)
}

func TestBuildOpenings(t *testing.T) {
	sc := schema.Default()
	door, err := BuildOpening(sc.Door)
	require.NoError(t, err)
	assert.Equal(t, Doors, door.Kind)
	wood, _ := ParseColor("#8b5a2b")
	assert.Equal(t, wood, door.Material.Color)
	assert.Nil(t, door.Material.Glass)
	assertVec3(t, math32.Vec3(1, 2, 0.1), door.WorldBBox().Size(), tol)

	win, err := BuildOpening(&sc.Windows[0])
	require.NoError(t, err)
	assert.Equal(t, Windows, win.Kind)
	require.NotNil(t, win.Material.Glass)
	tolassert.EqualTol(t, 0.5, win.Material.Opacity, tol)
	tolassert.EqualTol(t, 1.5, win.Material.Glass.IOR, tol)
	assert.True(t, win.Material.DoubleSided)
}

func TestBuildRoof(t *testing.T) {
	sc := schema.Default()
	pr := NewParams(sc)
	sd, err := BuildRoof(sc.Roof, pr)
	require.NoError(t, err)
	bb := sd.WorldBBox()
	tolassert.EqualTol(t, 8, bb.Max.Y, tol)
	tolassert.EqualTol(t, 6, bb.Min.Y, tol)
	// turned 45°, the square base is aligned with the axes
	half := float32(7.5 / math32.Sqrt2)
	tolassert.EqualTol(t, 5+half, bb.Max.X, 1e-3)
	tolassert.EqualTol(t, 4-half, bb.Min.Z, 1e-3)

	require.NoError(t, pr.Set("heightRoof", 4))
	require.NoError(t, pr.Set("positionY", 10))
	require.NoError(t, pr.Set("opacityRoof", 0.3))
	sd, err = BuildRoof(sc.Roof, pr)
	require.NoError(t, err)
	bb = sd.WorldBBox()
	tolassert.EqualTol(t, 12, bb.Max.Y, tol)
	tolassert.EqualTol(t, 8, bb.Min.Y, tol)
	tolassert.EqualTol(t, 0.3, sd.Material.Opacity, tol)
	c, _ := ParseColor("#b35c1e")
	assert.Equal(t, c, sd.Material.Color)
}

func TestBuildDefault(t *testing.T) {
	sc := schema.Default()
	pr := NewParams(sc)
	root := Build(sc, pr)
	counts := map[Kinds]int{
		Walls: 16, Floors: 3, Tubes: 3, Wires: 5, Doors: 1,
		Windows: 2, Roofs: 1, Rooms: 0, Fixtures: 0,
	}
	require.Equal(t, int(KindsN), root.Len())
	for k, n := range counts {
		gp, ok := root.Child(k.String()).(*Group)
		require.True(t, ok, k.String())
		assert.Equal(t, n, gp.Len(), k.String())
		for _, c := range gp.Nodes() {
			assert.Equal(t, k, c.AsNode().Kind)
		}
	}
	assert.Len(t, root.Lines(), 5)
	assert.Len(t, root.Solids(), 16+3+3+1+2+1)
}

func TestBuildHouseJSON(t *testing.T) {
	sc, err := schema.Open(filepath.Join("..", "schema", "testdata", "cottage.json"))
	require.NoError(t, err)
	root := Build(sc, NewParams(sc))
	rooms := root.Child(Rooms.String()).(*Group)
	require.Equal(t, 1, rooms.Len())
	kitchen := rooms.Nodes()[0].(*Solid)
	assert.Equal(t, "Kitchen", kitchen.Label)
	tolassert.EqualTol(t, RoomOpacity, kitchen.Material.Opacity, tol)
	assertVec3(t, math32.Vec3(3, 3, 4), kitchen.WorldBBox().Size(), tol)

	fixtures := root.Child(Fixtures.String()).(*Group)
	require.Equal(t, 1, fixtures.Len())
	outlet := fixtures.Nodes()[0].(*Solid)
	assertVec3(t, math32.Vec3(0.08, 0.08, 0.08), outlet.WorldBBox().Size(), tol)
	c, _ := ParseColor(FixtureColors[schema.Outlet])
	assert.Equal(t, c, outlet.Material.Color)

	assert.Equal(t, 2, root.Child(Walls.String()).(*Group).Len())
	assert.Equal(t, 1, root.Child(Wires.String()).(*Group).Len())
	assert.Equal(t, 1, root.Child(Tubes.String()).(*Group).Len())
}

func TestBuildIdempotent(t *testing.T) {
	sc := schema.Default()
	orig := sc.Clone()
	pr := NewParams(sc)
	a := Build(sc, pr)
	b := Build(sc, pr)
	assert.Empty(t, cmp.Diff(orig, sc), "building must not modify the schema")
	sa, sb := a.Solids(), b.Solids()
	require.Equal(t, len(sa), len(sb))
	for i := range sa {
		assert.Equal(t, sa[i].Name, sb[i].Name)
		assert.Equal(t, sa[i].WorldMesh().NumVertex(), sb[i].WorldMesh().NumVertex())
		assert.Equal(t, sa[i].WorldMesh().Vertex, sb[i].WorldMesh().Vertex)
		assert.Equal(t, sa[i].WorldBBox(), sb[i].WorldBBox())
	}
	la, lb := a.Lines(), b.Lines()
	require.Equal(t, len(la), len(lb))
	for i := range la {
		assert.Equal(t, la[i].Lines.Points, lb[i].Lines.Points)
	}
}

func TestBuildSkipsBadEntities(t *testing.T) {
	sc := schema.Default()
	sc.Wires = append(sc.Wires, schema.PathEntity{Points: []schema.Point3{{1, 1, 1}}})
	sc.Tubes = append(sc.Tubes, schema.PathEntity{})
	sc.Fixtures = []schema.Fixture{{ID: "x", Type: "lamp", Position: schema.Point3{1, 1, 1}}}
	root := Build(sc, NewParams(sc))
	assert.Equal(t, 5, root.Child(Wires.String()).(*Group).Len())
	assert.Equal(t, 3, root.Child(Tubes.String()).(*Group).Len())
	assert.Equal(t, 0, root.Child(Fixtures.String()).(*Group).Len())
}

func TestBuildDuplicateIDs(t *testing.T) {
	sc := schema.Default()
	sc.Walls = []schema.WallSegment{
		{ID: "w", Start: schema.Point2{0, 0}, End: schema.Point2{4, 0}, Height: 3, Thickness: 0.2},
		{ID: "w", Start: schema.Point2{4, 0}, End: schema.Point2{4, 4}, Height: 3, Thickness: 0.2},
		{ID: "w-1", Start: schema.Point2{4, 4}, End: schema.Point2{0, 4}, Height: 3, Thickness: 0.2},
	}
	assert.ErrorIs(t, sc.Validate(), schema.ErrDuplicateID)

	ws := BuildKind(Walls, sc, NewParams(sc))
	require.Equal(t, 3, ws.Len())
	names := []string{}
	for _, n := range ws.Nodes() {
		names = append(names, n.AsNode().Name)
	}
	assert.Equal(t, []string{"w", "w-1", "w-1-1"}, names)
	// each wall keeps its own geometry
	tolassert.EqualTol(t, 2, ws.Child("w").WorldBBox().Center().X, tol)
	tolassert.EqualTol(t, 4, ws.Child("w-1").WorldBBox().Center().X, tol)

	// replacing a whole group by name still works
	root := Build(sc, NewParams(sc))
	root.Replace(NewGroup(Walls.String(), Walls))
	assert.Equal(t, 0, root.Child(Walls.String()).(*Group).Len())
	assert.Equal(t, int(KindsN), root.Len())
}

func TestKinds(t *testing.T) {
	assert.Equal(t, "walls", Walls.String())
	assert.Equal(t, "fixtures", Fixtures.String())
	assert.Equal(t, "9", KindsN.String())
	assert.Equal(t, "Tubes are swept along smooth curves.", Tubes.Desc())
	var k Kinds
	require.NoError(t, k.SetString("tubes"))
	assert.Equal(t, Tubes, k)
	assert.Error(t, k.SetString("chimney"))
	assert.Equal(t, Tubes, k)
	assert.Len(t, KindsValues(), int(KindsN))
	for _, k := range KindsValues() {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var got Kinds
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, k, got)
		assert.NotNil(t, Builders[k], k.String())
	}
}
