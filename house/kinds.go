// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

//go:generate core generate

// Kinds are the kinds of schema entity, each of which has its own
// builder function. The name of a kind is also the name of its
// scene group.
type Kinds int32 //enums:enum -transform lower

const (
	// Walls are boxes along wall segments.
	Walls Kinds = iota

	// Floors are extruded slabs, possibly with holes.
	Floors

	// Tubes are swept along smooth curves.
	Tubes

	// Wires are straight polylines.
	Wires

	// Doors are boxes.
	Doors

	// Windows are glass boxes.
	Windows

	// Roofs are four-sided cones.
	Roofs

	// Rooms are translucent boxes.
	Rooms

	// Fixtures are small cubes.
	Fixtures
)
