// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

// Default returns the built-in two storey house: a 10 x 8 plan with
// interior walls on each storey, three slabs (the middle one with a
// stair well), a door, two windows, wiring, plumbing, and a roof.
// Each call returns a new Schema.
func Default() *Schema {
	sc := &Schema{
		Name:  "default house",
		Units: "m",
		Door: &Opening{
			Width:     1,
			Height:    2,
			Thickness: 0.1,
			Position:  Point3{5, 1, -0.1},
			Material:  "wood",
		},
		Windows: []Opening{
			{Width: 1.5, Height: 1.5, Thickness: 0.3, Position: Point3{2, 1.7, 0}, Material: "glass"},
			{Width: 1.5, Height: 1.5, Thickness: 0.3, Position: Point3{8, 1.7, 0}, Material: "glass"},
		},
		Walls: defaultWalls(),
		Floors: []FloorSlab{
			{ID: "ground", Width: 10, Depth: 8, Thickness: 0.2, Position: Point3{5, 0, 4}},
			{ID: "first", Width: 10, Depth: 8, Thickness: 0.2, Position: Point3{5, 3, 4}, Material: "concrete",
				Holes: []Hole{{Position: Point2{5, 6}, Size: Point2{3, 3}}}},
			{ID: "attic", Width: 10, Depth: 8, Thickness: 0.2, Position: Point3{5, 6, 4}},
		},
		Wires: []PathEntity{
			{Points: []Point3{{0.2, 2, 0}, {0.2, 4, 0}, {0.2, 4, 2}, {0.2, 6, 2}, {0.2, 6, 0}}},
			{Points: []Point3{{8, 6, 0}, {8, 8, 0}, {8, 8, 4}, {6, 8, 4}}},
			{Points: []Point3{{0.2, 2, 4}, {0.2, 0, 4}, {2, 0, 4}}},
			{Points: []Point3{{0.2, 2, 0}, {0.2, 2, 2}, {0.2, 2, 4}, {0.2, 7, 4}}},
			{Type: "electric", Points: []Point3{{0.2, 2, 0}, {8, 2, 0}, {8, 6, 0}, {2, 6, 0}, {2, 0, 0}}},
		},
		Tubes: []PathEntity{
			{Type: "water", Points: []Point3{
				{1, 0, 0}, {1, 0, 1}, {1, 0, 2}, {1, 0, 3}, {1, 0, 4}, {1, 0, 5}, {1, 0, 6}, {1, 0, 7},
				{2, 0, 7}, {3, 0, 7}, {4, 0, 7}, {5, 0, 7}, {6, 0, 7}, {7, 0, 7}, {8, 0, 7},
				{9, 0, 7}, {9, 0, 6}, {9, 0, 5}, {9, 0, 4}, {9, 0, 0.1},
			}},
			{Points: []Point3{{9, 0, 0.1}, {9, 1, 0.1}, {9, 2, 0.1}, {9, 3, 0.1}, {9, 4, 0.1}, {9, 5, 0.1}}},
			{Points: []Point3{
				{1, 0, 7}, {1, 0, 7.1}, {1, 0, 7.2}, {1, 0, 7.3}, {1, 0, 7.4}, {1, 0, 7.5}, {1, 0, 7.8},
				{1, 0, 7.9}, {1, 0, 8}, {1, 1, 8}, {1, 2, 8}, {1, 3, 8}, {1, 4, 8}, {2, 4, 8}, {3, 4, 8},
			}},
		},
		Roof: &Roof{
			Width:    15,
			Depth:    8,
			Height:   2,
			Position: Point3{5, 7, 4},
			Color:    "#b35c1e",
			Material: "tile",
		},
	}
	sc.finish()
	return sc
}

func defaultWalls() []WallSegment {
	storey := func(base float32, interior ...WallSegment) []WallSegment {
		ws := []WallSegment{
			{Start: Point2{0, 0}, End: Point2{10, 0}, Height: 3, Thickness: 0.2},
			{Start: Point2{10, 0}, End: Point2{10, 8}, Height: 3, Thickness: 0.2},
			{Start: Point2{10, 8}, End: Point2{0, 8}, Height: 3, Thickness: 0.2},
			{Start: Point2{0, 8}, End: Point2{0, 0}, Height: 3, Thickness: 0.2},
		}
		ws = append(ws, interior...)
		for i := range ws {
			ws[i].BaseHeight = base
		}
		return ws
	}
	inner := func(x0, y0, x1, y1 float32) WallSegment {
		return WallSegment{Start: Point2{x0, y0}, End: Point2{x1, y1}, Height: 3, Thickness: 0.15}
	}
	ws := storey(0, inner(7, 0, 7, 5), inner(7, 5, 10, 5), inner(3, 8, 3, 3), inner(3, 3, 0, 3))
	ws = append(ws, storey(3, inner(0, 5, 5, 5), inner(5, 5, 5, 8), inner(8, 3, 10, 3), inner(8, 3, 8, 0))...)
	return ws
}
