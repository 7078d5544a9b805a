// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema provides the declarative description of a house:
// walls, floor slabs with holes, openings, roof, wire and tube paths,
// and optionally rooms and fixtures. A [Schema] is immutable once
// loaded; geometry is generated from it by package house.
package schema

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/jinzhu/copier"
)

// Point2 is a 2D point as written in schema documents: [x, y].
type Point2 [2]float32

// V returns the point as a [math32.Vector2].
func (p Point2) V() math32.Vector2 {
	return math32.Vec2(p[0], p[1])
}

// Point3 is a 3D point as written in schema documents: [x, y, z].
type Point3 [3]float32

// V returns the point as a [math32.Vector3].
func (p Point3) V() math32.Vector3 {
	return math32.Vec3(p[0], p[1], p[2])
}

// WallSegment is a straight wall between two plan points.
// Plan coordinates (x, y) map to scene coordinates (x, ·, y).
type WallSegment struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`

	// Start and End are the plan endpoints of the wall center line.
	Start Point2 `json:"start" yaml:"start" toml:"start"`
	End   Point2 `json:"end" yaml:"end" toml:"end"`

	Height    float32 `json:"height" yaml:"height" toml:"height"`
	Thickness float32 `json:"thickness" yaml:"thickness" toml:"thickness"`

	// BaseHeight is the elevation of the bottom of the wall,
	// used to stack storeys.
	BaseHeight float32 `json:"baseHeight,omitempty" yaml:"baseHeight,omitempty" toml:"baseHeight,omitempty"`
}

// Length returns the plan length of the wall.
func (w *WallSegment) Length() float32 {
	return math32.Hypot(w.End[0]-w.Start[0], w.End[1]-w.Start[1])
}

// Angle returns the plan direction of the wall in radians, atan2(Δy, Δx).
func (w *WallSegment) Angle() float32 {
	return math32.Atan2(w.End[1]-w.Start[1], w.End[0]-w.Start[0])
}

// Hole is a rectangular cut-out in a [FloorSlab].
type Hole struct {
	// Position is the hole center in slab-local coordinates,
	// with the origin at the slab minimum corner, x along the width
	// and y along the depth.
	Position Point2 `json:"position" yaml:"position" toml:"position"`

	// Size is the width and depth of the hole.
	Size Point2 `json:"size" yaml:"size" toml:"size"`
}

// Bounds returns the slab-local min and max corners of the hole.
func (h *Hole) Bounds() (min, max math32.Vector2) {
	hs := h.Size.V().MulScalar(0.5)
	ctr := h.Position.V()
	return ctr.Sub(hs), ctr.Add(hs)
}

// Area returns the area of the hole.
func (h *Hole) Area() float32 {
	return h.Size[0] * h.Size[1]
}

// FloorSlab is a horizontal rectangular slab, optionally perforated
// by rectangular holes (stair wells and the like).
type FloorSlab struct {
	ID        string  `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Width     float32 `json:"width" yaml:"width" toml:"width"`
	Depth     float32 `json:"depth" yaml:"depth" toml:"depth"`
	Thickness float32 `json:"thickness" yaml:"thickness" toml:"thickness"`

	// Position is the center of the slab in scene coordinates.
	Position Point3 `json:"position" yaml:"position" toml:"position"`

	Material string `json:"material,omitempty" yaml:"material,omitempty" toml:"material,omitempty"`
	Holes    []Hole `json:"holes,omitempty" yaml:"holes,omitempty" toml:"holes,omitempty"`
}

// OpeningKinds are the kinds of [Opening].
type OpeningKinds int32 //enums:enum -transform lower

const (
	Door OpeningKinds = iota
	Window
)

// GlassParams are the optical parameters used to render window glass.
type GlassParams struct {
	Transmission       float32 `json:"transmission" yaml:"transmission" toml:"transmission"`
	IOR                float32 `json:"ior" yaml:"ior" toml:"ior"`
	Roughness          float32 `json:"roughness" yaml:"roughness" toml:"roughness"`
	Metalness          float32 `json:"metalness" yaml:"metalness" toml:"metalness"`
	Thickness          float32 `json:"thickness" yaml:"thickness" toml:"thickness"`
	Reflectivity       float32 `json:"reflectivity" yaml:"reflectivity" toml:"reflectivity"`
	Clearcoat          float32 `json:"clearcoat" yaml:"clearcoat" toml:"clearcoat"`
	ClearcoatRoughness float32 `json:"clearcoatRoughness" yaml:"clearcoatRoughness" toml:"clearcoatRoughness"`
	Opacity            float32 `json:"opacity" yaml:"opacity" toml:"opacity"`
}

// DefaultGlass returns the clear glass used for windows.
func DefaultGlass() *GlassParams {
	return &GlassParams{
		Transmission: 1,
		IOR:          1.5,
		Thickness:    0.2,
		Reflectivity: 0.8,
		Clearcoat:    1,
		Opacity:      0.5,
	}
}

// Opening is a door or a window, rendered as a box.
type Opening struct {
	ID        string       `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Kind      OpeningKinds `json:"-" yaml:"-" toml:"-"`
	Width     float32      `json:"width" yaml:"width" toml:"width"`
	Height    float32      `json:"height" yaml:"height" toml:"height"`
	Thickness float32      `json:"thickness" yaml:"thickness" toml:"thickness"`

	// Position is the center of the opening in scene coordinates.
	Position Point3 `json:"position" yaml:"position" toml:"position"`

	// Material is a material tag such as "wood" or "glass".
	Material string `json:"material,omitempty" yaml:"material,omitempty" toml:"material,omitempty"`

	// Glass is only used for windows; nil means [DefaultGlass].
	Glass *GlassParams `json:"glass,omitempty" yaml:"glass,omitempty" toml:"glass,omitempty"`
}

// PathEntity is a wire or a tube: an ordered list of points.
type PathEntity struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`

	// Type is a descriptive tag such as "electric" or "water".
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`

	// Points are the path points. For wires these are plan points
	// with elevation (x, y, z); for tubes they are scene points.
	Points []Point3 `json:"path" yaml:"path" toml:"path"`

	// Gauge is the nominal wire gauge or tube diameter, for labels.
	Gauge float32 `json:"gauge,omitempty" yaml:"gauge,omitempty" toml:"gauge,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// Roof is rendered as a four-sided cone over the house.
type Roof struct {
	Width  float32 `json:"width" yaml:"width" toml:"width"`
	Depth  float32 `json:"depth" yaml:"depth" toml:"depth"`
	Height float32 `json:"height" yaml:"height" toml:"height"`

	// Position is the center of the roof in scene coordinates.
	Position Point3 `json:"position" yaml:"position" toml:"position"`

	Color    string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Material string `json:"material,omitempty" yaml:"material,omitempty" toml:"material,omitempty"`
}

// Room is a labeled volume, drawn as a translucent box.
type Room struct {
	ID   string `json:"id" yaml:"id" toml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Position is the room center; Size is width, height, depth.
	Position Point3 `json:"position" yaml:"position" toml:"position"`
	Size     Point3 `json:"size" yaml:"size" toml:"size"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// FixtureTypes are the kinds of fixture.
type FixtureTypes string

const (
	Outlet   FixtureTypes = "outlet"
	Switch   FixtureTypes = "switch"
	Junction FixtureTypes = "junction"
	Valve    FixtureTypes = "valve"
	Sensor   FixtureTypes = "sensor"
)

// IsValid returns whether the fixture type is known.
func (ft FixtureTypes) IsValid() bool {
	switch ft {
	case Outlet, Switch, Junction, Valve, Sensor:
		return true
	}
	return false
}

// Fixture is a small point device attached to wiring or piping.
type Fixture struct {
	ID       string       `json:"id" yaml:"id" toml:"id"`
	Type     FixtureTypes `json:"type" yaml:"type" toml:"type"`
	Position Point3       `json:"position" yaml:"position" toml:"position"`

	// Size is the edge length of the fixture cube.
	Size  float32 `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// Bounds is the overall extent of the building.
type Bounds struct {
	Size   Point3 `json:"size" yaml:"size" toml:"size"`
	Origin Point3 `json:"origin,omitempty" yaml:"origin,omitempty" toml:"origin,omitempty"`
}

// Schema is the full declarative description of a building.
type Schema struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Units string `json:"units,omitempty" yaml:"units,omitempty" toml:"units,omitempty"`

	Bounds *Bounds `json:"bounds,omitempty" yaml:"bounds,omitempty" toml:"bounds,omitempty"`

	Door    *Opening  `json:"door,omitempty" yaml:"door,omitempty" toml:"door,omitempty"`
	Windows []Opening `json:"windows,omitempty" yaml:"windows,omitempty" toml:"windows,omitempty"`

	Walls  []WallSegment `json:"walls,omitempty" yaml:"walls,omitempty" toml:"walls,omitempty"`
	Floors []FloorSlab   `json:"floors,omitempty" yaml:"floors,omitempty" toml:"floors,omitempty"`
	Wires  []PathEntity  `json:"wires,omitempty" yaml:"wires,omitempty" toml:"wires,omitempty"`
	Tubes  []PathEntity  `json:"tubes,omitempty" yaml:"tubes,omitempty" toml:"tubes,omitempty"`
	Roof   *Roof         `json:"roof,omitempty" yaml:"roof,omitempty" toml:"roof,omitempty"`

	Rooms    []Room    `json:"rooms,omitempty" yaml:"rooms,omitempty" toml:"rooms,omitempty"`
	Fixtures []Fixture `json:"fixtures,omitempty" yaml:"fixtures,omitempty" toml:"fixtures,omitempty"`
}

// Clone returns a deep copy of the schema.
func (sc *Schema) Clone() *Schema {
	if sc == nil {
		return nil
	}
	cp := &Schema{}
	errors.Log(copier.CopyWithOption(cp, sc, copier.Option{DeepCopy: true}))
	return cp
}
