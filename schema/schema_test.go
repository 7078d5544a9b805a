// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	sc := Default()
	assert.Len(t, sc.Walls, 16)
	assert.Len(t, sc.Floors, 3)
	assert.Len(t, sc.Wires, 5)
	assert.Len(t, sc.Tubes, 3)
	assert.Len(t, sc.Windows, 2)
	require.NotNil(t, sc.Door)
	require.NotNil(t, sc.Roof)
	assert.Equal(t, Door, sc.Door.Kind)
	assert.Equal(t, Window, sc.Windows[1].Kind)
	assert.NoError(t, sc.Validate())

	for _, w := range sc.Walls[8:] {
		assert.Equal(t, float32(3), w.BaseHeight)
	}

	// ids are unique and stable across calls
	ids := map[string]bool{}
	for _, w := range sc.Walls {
		assert.False(t, ids[w.ID], w.ID)
		ids[w.ID] = true
	}
	assert.Empty(t, cmp.Diff(sc, Default()))
}

func TestClone(t *testing.T) {
	sc := Default()
	cp := sc.Clone()
	assert.Empty(t, cmp.Diff(sc, cp))

	cp.Walls[0].Height = 9
	cp.Floors[1].Holes[0].Size = Point2{1, 1}
	cp.Roof.Height = 5
	cp.Wires[0].Points[0] = Point3{1, 1, 1}
	assert.Equal(t, float32(3), sc.Walls[0].Height)
	assert.Equal(t, Point2{3, 3}, sc.Floors[1].Holes[0].Size)
	assert.Equal(t, float32(2), sc.Roof.Height)
	assert.Equal(t, Point3{0.2, 2, 0}, sc.Wires[0].Points[0])

	sc.Roof = nil
	assert.Nil(t, sc.Clone().Roof)
}

func TestWallGeometry(t *testing.T) {
	w := WallSegment{Start: Point2{0, 0}, End: Point2{3, 4}, Height: 3, Thickness: 0.2}
	assert.InDelta(t, 5, w.Length(), 1e-6)
	assert.InDelta(t, 0.9272952, w.Angle(), 1e-6)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		err  error
		val  func() error
	}{
		{"zero length wall", ErrZeroLength, func() error {
			w := WallSegment{Start: Point2{1, 1}, End: Point2{1, 1}, Height: 3, Thickness: 0.2}
			return w.Validate()
		}},
		{"thin wall", ErrThickness, func() error {
			w := WallSegment{Start: Point2{0, 0}, End: Point2{1, 0}, Height: 3}
			return w.Validate()
		}},
		{"flat wall", ErrHeight, func() error {
			w := WallSegment{Start: Point2{0, 0}, End: Point2{1, 0}, Thickness: 0.2}
			return w.Validate()
		}},
		{"single point path", ErrTooFewPoints, func() error {
			p := PathEntity{Points: []Point3{{1, 2, 3}}}
			return p.Validate()
		}},
		{"empty slab", ErrSize, func() error {
			f := FloorSlab{Depth: 3, Thickness: 0.2}
			return f.Validate()
		}},
		{"bad fixture", ErrFixtureType, func() error {
			f := Fixture{Type: "lamp"}
			return f.Validate()
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.ErrorIs(t, c.val(), c.err)
		})
	}
}

func TestValidHoles(t *testing.T) {
	f := FloorSlab{ID: "f", Width: 10, Depth: 8, Thickness: 0.2, Holes: []Hole{
		{Position: Point2{5, 6}, Size: Point2{3, 3}},
		{Position: Point2{9.5, 1}, Size: Point2{2, 1}},   // outside
		{Position: Point2{6, 6}, Size: Point2{1, 1}},     // overlaps first
		{Position: Point2{1, 1}, Size: Point2{0, 1}},     // degenerate
		{Position: Point2{2, 2}, Size: Point2{2, 2}},     // inside
	}}
	ok, errs := f.ValidHoles()
	require.Len(t, ok, 2)
	assert.Equal(t, f.Holes[0], ok[0])
	assert.Equal(t, f.Holes[4], ok[1])
	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], ErrHoleBounds)
	assert.ErrorIs(t, errs[1], ErrHoleOverlap)
	assert.ErrorIs(t, errs[2], ErrHoleSize)

	var ee *EntityError
	require.True(t, errors.As(errs[1], &ee))
	assert.Equal(t, 2, ee.Index)
	assert.Contains(t, ee.Error(), `hole "f" (#2)`)
}

func TestValidHolesTouching(t *testing.T) {
	cases := []struct {
		name string
		hole Hole
		err  error
	}{
		{"shared edge", Hole{Position: Point2{4, 3}, Size: Point2{2, 2}}, ErrHoleOverlap},
		{"shared corner", Hole{Position: Point2{4, 5}, Size: Point2{2, 2}}, ErrHoleOverlap},
		{"slab edge", Hole{Position: Point2{1, 3}, Size: Point2{2, 2}}, ErrHoleBounds},
		{"slab corner", Hole{Position: Point2{9, 7}, Size: Point2{2, 2}}, ErrHoleBounds},
		{"apart", Hole{Position: Point2{4.5, 3}, Size: Point2{2, 2}}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := FloorSlab{ID: "f", Width: 10, Depth: 8, Thickness: 0.2, Holes: []Hole{
				{Position: Point2{2, 3}, Size: Point2{2, 2}},
				c.hole,
			}}
			ok, errs := f.ValidHoles()
			if c.err == nil {
				assert.Len(t, ok, 2)
				assert.Empty(t, errs)
				return
			}
			require.Len(t, ok, 1)
			require.Len(t, errs, 1)
			assert.ErrorIs(t, errs[0], c.err)
		})
	}
}

func TestSchemaValidateJoins(t *testing.T) {
	sc := Default()
	sc.Walls[3].End = sc.Walls[3].Start
	sc.Tubes[1].Points = sc.Tubes[1].Points[:1]
	err := sc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroLength)
	assert.ErrorIs(t, err, ErrTooFewPoints)
	assert.Equal(t, 2, len(strings.Split(err.Error(), "\n")))
}

func TestOpenInline(t *testing.T) {
	for _, fn := range []string{"shed.yaml", "shed.toml"} {
		t.Run(fn, func(t *testing.T) {
			sc, err := Open(filepath.Join("testdata", fn))
			require.NoError(t, err)
			assert.Equal(t, "shed", sc.Name)
			require.Len(t, sc.Walls, 2)
			assert.Equal(t, Point2{4, 3}, sc.Walls[1].End)
			require.Len(t, sc.Floors, 1)
			require.Len(t, sc.Floors[0].Holes, 1)
			assert.Equal(t, Point2{0.5, 0.5}, sc.Floors[0].Holes[0].Size)
			require.Len(t, sc.Tubes, 1)
			assert.Equal(t, "water", sc.Tubes[0].Type)
			assert.NotEmpty(t, sc.Tubes[0].ID)
			assert.NoError(t, sc.Validate())
		})
	}
}

func TestOpenHouseJSON(t *testing.T) {
	sc, err := Open(filepath.Join("testdata", "cottage.json"))
	require.NoError(t, err)
	assert.Equal(t, "cottage", sc.Name)
	assert.Equal(t, "m", sc.Units)

	require.Len(t, sc.Walls, 2)
	s := sc.Walls[0]
	assert.Equal(t, "south", s.ID)
	assert.InDelta(t, 6, s.End[0], 1e-5)
	assert.InDelta(t, 3, s.Height, 1e-5)
	assert.InDelta(t, DefaultWallThickness, s.Thickness, 1e-6)
	assert.InDelta(t, 0.15, sc.Walls[1].Thickness, 1e-6)
	assert.InDelta(t, 4, sc.Walls[1].End[1], 1e-5)

	require.Len(t, sc.Wires, 1)
	w := sc.Wires[0]
	assert.Equal(t, DefaultWireColor, w.Color)
	// scene (x, y, z) becomes plan (x, z, y)
	assert.InDelta(t, 2, w.Points[1][1], 1e-5)
	assert.InDelta(t, 0.3, w.Points[1][2], 1e-5)

	require.Len(t, sc.Tubes, 1)
	assert.Equal(t, "#3355ff", sc.Tubes[0].Color)
	assert.InDelta(t, 0.02, sc.Tubes[0].Gauge, 1e-6)
	assert.InDelta(t, 2, sc.Tubes[0].Points[1][1], 1e-5)

	require.Len(t, sc.Rooms, 1)
	assert.InDelta(t, 3, sc.Rooms[0].Size[0], 1e-5)
	require.Len(t, sc.Fixtures, 1)
	assert.Equal(t, Outlet, sc.Fixtures[0].Type)
	assert.InDelta(t, 0.08, sc.Fixtures[0].Size, 1e-6)
	require.NotNil(t, sc.Bounds)
	assert.NoError(t, sc.Validate())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{"meta": {"units": "ft"}}`), JSON)
	assert.ErrorContains(t, err, "unknown units")

	_, err = Decode([]byte(`{"units": "cm", "walls": []}`), JSON)
	assert.ErrorContains(t, err, "meters")

	_, err = Decode([]byte(`walls: [`), YAML)
	assert.Error(t, err)

	_, err = Open("house.obj")
	assert.ErrorContains(t, err, "unsupported file extension")
}

func TestIsHouseJSON(t *testing.T) {
	assert.True(t, IsHouseJSON(map[string]any{"walls": []any{map[string]any{"from": []any{0, 0, 0}}}}))
	assert.True(t, IsHouseJSON(map[string]any{"fixtures": []any{}}))
	assert.False(t, IsHouseJSON(map[string]any{"walls": []any{map[string]any{"start": []any{0, 0}}}}))
	assert.False(t, IsHouseJSON(map[string]any{}))
}

func TestEncodeRoundTrip(t *testing.T) {
	sc := Default()
	for _, f := range []Formats{JSON, YAML, TOML} {
		t.Run(f.String(), func(t *testing.T) {
			b, err := sc.Encode(f)
			require.NoError(t, err)
			got, err := Decode(b, f)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(sc, got))
		})
	}
}
