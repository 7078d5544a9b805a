// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// HouseJSON is the alternative document format, describing walls by
// 3D endpoints and adding rooms and fixtures. All points are scene
// coordinates (Y up). Use [HouseJSON.Normalize] to convert it to a [Schema].
type HouseJSON struct {
	Meta     *HouseMeta  `json:"meta,omitempty" yaml:"meta,omitempty" toml:"meta,omitempty"`
	Bounds   *Bounds     `json:"bounds,omitempty" yaml:"bounds,omitempty" toml:"bounds,omitempty"`
	Rooms    []Room      `json:"rooms,omitempty" yaml:"rooms,omitempty" toml:"rooms,omitempty"`
	Walls    []HouseWall `json:"walls,omitempty" yaml:"walls,omitempty" toml:"walls,omitempty"`
	Wires    []HouseWire `json:"wires,omitempty" yaml:"wires,omitempty" toml:"wires,omitempty"`
	Tubes    []HouseTube `json:"tubes,omitempty" yaml:"tubes,omitempty" toml:"tubes,omitempty"`
	Fixtures []Fixture   `json:"fixtures,omitempty" yaml:"fixtures,omitempty" toml:"fixtures,omitempty"`
}

// HouseMeta holds the document name and unit system.
type HouseMeta struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Units is one of "m", "cm", or "mm"; empty means meters.
	Units string `json:"units,omitempty" yaml:"units,omitempty" toml:"units,omitempty"`
}

// HouseWall is a wall between two 3D points.
type HouseWall struct {
	ID        string  `json:"id" yaml:"id" toml:"id"`
	From      Point3  `json:"from" yaml:"from" toml:"from"`
	To        Point3  `json:"to" yaml:"to" toml:"to"`
	Height    float32 `json:"height" yaml:"height" toml:"height"`
	Thickness float32 `json:"thickness,omitempty" yaml:"thickness,omitempty" toml:"thickness,omitempty"`
}

// HouseWire is a wire path with a visual gauge.
type HouseWire struct {
	ID    string   `json:"id" yaml:"id" toml:"id"`
	Label string   `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Path  []Point3 `json:"path" yaml:"path" toml:"path"`
	Gauge float32  `json:"gauge,omitempty" yaml:"gauge,omitempty" toml:"gauge,omitempty"`
	Color string   `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// HouseTube is a tube path with a diameter.
type HouseTube struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Path     []Point3 `json:"path" yaml:"path" toml:"path"`
	Diameter float32  `json:"diameter,omitempty" yaml:"diameter,omitempty" toml:"diameter,omitempty"`
	Color    string   `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

const (
	// DefaultWallThickness is used for HouseJSON walls without a thickness.
	DefaultWallThickness = 0.2

	// DefaultWireColor and DefaultTubeColor are the HouseJSON
	// fallback colors (orange and steel gray).
	DefaultWireColor = "#ffa500"
	DefaultTubeColor = "#71797e"
)

// UnitScale returns the factor converting the given unit to meters.
func UnitScale(units string) (float32, error) {
	switch units {
	case "", "m":
		return 1, nil
	case "cm":
		return 0.01, nil
	case "mm":
		return 0.001, nil
	}
	return 0, fmt.Errorf("schema: unknown units %q", units)
}

// Normalize converts the document to a [Schema] in meters.
// Wall endpoints map to plan points (x, z) with the lower y as the
// base height. Wire paths are converted to plan points with elevation
// (x, z, y) so that wires from both formats are built the same way.
func (hj *HouseJSON) Normalize() (*Schema, error) {
	sc := &Schema{Units: "m"}
	units := ""
	if hj.Meta != nil {
		sc.Name = hj.Meta.Name
		units = hj.Meta.Units
	}
	s, err := UnitScale(units)
	if err != nil {
		return nil, err
	}
	p3 := func(p Point3) Point3 { return Point3{p[0] * s, p[1] * s, p[2] * s} }

	if hj.Bounds != nil {
		sc.Bounds = &Bounds{Size: p3(hj.Bounds.Size), Origin: p3(hj.Bounds.Origin)}
	}
	for _, w := range hj.Walls {
		th := w.Thickness * s
		if th == 0 {
			th = DefaultWallThickness
		}
		sc.Walls = append(sc.Walls, WallSegment{
			ID:         w.ID,
			Start:      Point2{w.From[0] * s, w.From[2] * s},
			End:        Point2{w.To[0] * s, w.To[2] * s},
			Height:     w.Height * s,
			Thickness:  th,
			BaseHeight: min(w.From[1], w.To[1]) * s,
		})
	}
	for _, w := range hj.Wires {
		pe := PathEntity{ID: w.ID, Label: w.Label, Type: "electric", Gauge: w.Gauge * s, Color: w.Color}
		if pe.Color == "" {
			pe.Color = DefaultWireColor
		}
		for _, p := range w.Path {
			pe.Points = append(pe.Points, Point3{p[0] * s, p[2] * s, p[1] * s})
		}
		sc.Wires = append(sc.Wires, pe)
	}
	for _, t := range hj.Tubes {
		pe := PathEntity{ID: t.ID, Label: t.Label, Type: "water", Gauge: t.Diameter * s, Color: t.Color}
		if pe.Color == "" {
			pe.Color = DefaultTubeColor
		}
		for _, p := range t.Path {
			pe.Points = append(pe.Points, p3(p))
		}
		sc.Tubes = append(sc.Tubes, pe)
	}
	for _, r := range hj.Rooms {
		r.Position = p3(r.Position)
		r.Size = p3(r.Size)
		sc.Rooms = append(sc.Rooms, r)
	}
	for _, f := range hj.Fixtures {
		f.Position = p3(f.Position)
		f.Size *= s
		sc.Fixtures = append(sc.Fixtures, f)
	}
	sc.finish()
	slog.Debug("schema: normalized HouseJSON", "name", sc.Name, "units", units,
		"walls", len(sc.Walls), "wires", len(sc.Wires), "tubes", len(sc.Tubes),
		"rooms", len(sc.Rooms), "fixtures", len(sc.Fixtures))
	return sc, nil
}

// idSpace is the namespace for generated entity ids.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("cogentcore.org/house/schema"))

// entityID returns a stable id for an unnamed entity, derived from
// its kind, index, and content, so that rebuilding the same schema
// always yields the same names.
func entityID(kind string, i int, content any) string {
	u := uuid.NewSHA1(idSpace, fmt.Appendf(nil, "%s/%d/%v", kind, i, content))
	return fmt.Sprintf("%s-%s", kind, u.String()[:8])
}

// finish assigns opening kinds and ids for entities that lack them.
func (sc *Schema) finish() {
	if sc.Door != nil {
		sc.Door.Kind = Door
		if sc.Door.ID == "" {
			sc.Door.ID = "door"
		}
	}
	for i := range sc.Windows {
		w := &sc.Windows[i]
		w.Kind = Window
		if w.ID == "" {
			w.ID = entityID("window", i, *w)
		}
	}
	for i := range sc.Walls {
		if sc.Walls[i].ID == "" {
			sc.Walls[i].ID = entityID("wall", i, sc.Walls[i])
		}
	}
	for i := range sc.Floors {
		if sc.Floors[i].ID == "" {
			sc.Floors[i].ID = entityID("floor", i, sc.Floors[i].Position)
		}
	}
	for i := range sc.Wires {
		if sc.Wires[i].ID == "" {
			sc.Wires[i].ID = entityID("wire", i, sc.Wires[i].Points)
		}
	}
	for i := range sc.Tubes {
		if sc.Tubes[i].ID == "" {
			sc.Tubes[i].ID = entityID("tube", i, sc.Tubes[i].Points)
		}
	}
	for i := range sc.Rooms {
		if sc.Rooms[i].ID == "" {
			sc.Rooms[i].ID = entityID("room", i, sc.Rooms[i].Position)
		}
	}
	for i := range sc.Fixtures {
		if sc.Fixtures[i].ID == "" {
			sc.Fixtures[i].ID = entityID("fixture", i, sc.Fixtures[i].Position)
		}
	}
}
