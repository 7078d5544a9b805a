// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package house generates the 3D scene for a [schema.Schema]:
// one builder function per entity kind turns schema entries and the
// current [Params] into meshes and lines, and a [Composer] assembles
// them into a scene, rebuilds it when parameters change, and reports
// what the pointer is hovering over.
package house

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/house/schema"
	"cogentcore.org/house/shape"
)

// Fixed appearance values.
const (
	// FloorOpacity is the opacity of floor slabs.
	FloorOpacity = 0.8

	// RoomOpacity is the opacity of room volumes.
	RoomOpacity = 0.15

	// DefaultFixtureSize is the edge of a fixture cube with no size.
	DefaultFixtureSize = 0.1

	// WireLift is the elevation given to wire points at z = 0,
	// so that they are not hidden inside the ground slab.
	WireLift = 0.1

	// RoofSegments is the number of sides of the roof cone.
	RoofSegments = 4
)

var (
	yAxis = math32.Vec3(0, 1, 0)
	xAxis = math32.Vec3(1, 0, 0)
)

// entityName returns the node name for an entity: its ID,
// or the kind and index if it has none.
func entityName(k Kinds, id string, i int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", k, i)
}

func skip(k Kinds, id string, i int, err error) {
	slog.Warn("house: skipping entity", "kind", k, "id", id, "index", i, "err", err)
}

// WallMaterial returns the default wall material for the parameters.
func WallMaterial(pr *Params) *Material {
	mt := &Material{Color: DefaultColor}
	return mt.SetOpacity(pr.OpacityWalls)
}

// BuildWall returns a box for the wall: length × height × thickness,
// centered on the wall midpoint at half height above its base, and
// turned about the vertical axis by minus the plan angle so that its
// long axis runs from start to end. A nil material means
// [WallMaterial].
func BuildWall(w *schema.WallSegment, mt *Material, pr *Params) (*Solid, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if mt == nil {
		mt = WallMaterial(pr)
	}
	l := w.Length()
	ms := shape.NewBox("wall", math32.Vec3(l, w.Height, w.Thickness))
	mid := w.Start.V().Add(w.End.V()).MulScalar(0.5)
	ps := NewPose(math32.Vec3(mid.X, w.BaseHeight+w.Height/2, mid.Y))
	ps.SetAxisRotation(yAxis, -w.Angle())
	sd := NewSolid("", Walls, ms, ps, *mt)
	sd.ID = w.ID
	sd.Label = fmt.Sprintf("wall %.2f × %.2f", l, w.Height)
	return sd, nil
}

// BuildWalls returns one box per valid wall, in order. Invalid walls
// are skipped with a warning. It returns nothing when the walls are
// hidden by the parameters.
func BuildWalls(walls []schema.WallSegment, mt *Material, pr *Params) []*Solid {
	if !pr.ShowWalls {
		return nil
	}
	sds := make([]*Solid, 0, len(walls))
	for i := range walls {
		w := &walls[i]
		sd, err := BuildWall(w, mt, pr)
		if err != nil {
			skip(Walls, w.ID, i, err)
			continue
		}
		sd.Name = entityName(Walls, w.ID, i)
		sds = append(sds, sd)
	}
	return sds
}

// BuildFloor returns the slab extruded from its outline minus its
// valid holes, laid flat and centered at its position. Invalid holes
// are dropped with a warning.
func BuildFloor(f *schema.FloorSlab) (*Solid, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	holes, errs := f.ValidHoles()
	for _, err := range errs {
		slog.Warn("house: dropping hole", "floor", f.ID, "err", err)
	}
	sh := shape.NewShape(shape.RectPath(math32.Vec2(0, 0), math32.Vec2(f.Width, f.Depth)))
	for i := range holes {
		mn, mx := holes[i].Bounds()
		sh.AddHole(shape.RectPath(mn, mx))
	}
	ms := shape.Extrude("floor", sh, f.Thickness)
	// lying flat, the slab spans x in [0, w], y in [0, t], z in [-d, 0]
	pos := f.Position.V().Add(math32.Vec3(-f.Width/2, -f.Thickness/2, f.Depth/2))
	ps := NewPose(pos)
	ps.SetAxisRotation(xAxis, -math32.Pi/2)
	mt := Material{Color: TagColor(f.Material, DefaultColor), DoubleSided: true}
	mt.SetOpacity(FloorOpacity)
	sd := NewSolid("", Floors, ms, ps, mt)
	sd.ID = f.ID
	sd.Label = fmt.Sprintf("floor %g × %g, %d holes", f.Width, f.Depth, len(holes))
	return sd, nil
}

// TubePoints returns the scene points of a tube path.
func TubePoints(p *schema.PathEntity) []math32.Vector3 {
	pts := make([]math32.Vector3, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.V()
	}
	return pts
}

// BuildTube returns the tube swept with radius ThicknessTubes along a
// centripetal Catmull-Rom curve through the path points, open at both
// ends, colored by the tube parameters.
func BuildTube(p *schema.PathEntity, pr *Params) (*Solid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	curve := shape.NewCatmullRom(TubePoints(p))
	if curve.Length() == 0 {
		return nil, schema.ErrZeroLength
	}
	ms := shape.NewTube("tube", curve, shape.TubularSegments, pr.ThicknessTubes, shape.RadialSegments)
	mt := NewMaterial(pr.TubeColor).SetOpacity(pr.OpacityTubes)
	mt.DoubleSided = true
	sd := NewSolid("", Tubes, ms, NewPose(math32.Vector3{}), *mt)
	sd.ID = p.ID
	sd.Label = pathLabel("tube", p)
	return sd, nil
}

// WirePoints returns the scene points of a wire path: plan point
// (x, y, z) maps to (x, z, y), with z = 0 lifted by [WireLift].
func WirePoints(p *schema.PathEntity) []math32.Vector3 {
	pts := make([]math32.Vector3, len(p.Points))
	for i, pt := range p.Points {
		el := pt[2]
		if el == 0 {
			el = WireLift
		}
		pts[i] = math32.Vec3(pt[0], el, pt[1])
	}
	return pts
}

// BuildWire returns the straight polyline through the wire points,
// colored by the wire parameters.
func BuildWire(p *schema.PathEntity, pr *Params) (*Line, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ln := &Line{
		NodeBase: NodeBase{Kind: Wires, ID: p.ID, Label: pathLabel("wire", p)},
		Lines:    shape.NewLines("wire", WirePoints(p)),
		Material: *NewMaterial(pr.WireColor).SetOpacity(pr.OpacityWire),
	}
	return ln, nil
}

func pathLabel(kind string, p *schema.PathEntity) string {
	s := kind
	if p.Label != "" {
		s = p.Label
	} else if p.ID != "" {
		s += " " + p.ID
	}
	if p.Type != "" {
		s += " (" + p.Type + ")"
	}
	if p.Gauge > 0 {
		s += fmt.Sprintf(" ⌀%g", p.Gauge)
	}
	return s
}

// BuildOpening returns a box for a door or window. Windows get a glass
// material; doors are colored by their material tag.
func BuildOpening(o *schema.Opening) (*Solid, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ms := shape.NewBox(o.Kind.String(), math32.Vec3(o.Width, o.Height, o.Thickness))
	kind := Doors
	mt := Material{Color: TagColor(o.Material, TagColor("wood", DefaultColor)), Opacity: 1}
	if o.Kind == schema.Window {
		kind = Windows
		gl := o.Glass
		if gl == nil {
			gl = schema.DefaultGlass()
		}
		mt = Material{Color: TagColor(o.Material, TagColor("glass", DefaultColor)), Glass: gl, DoubleSided: true}
		mt.SetOpacity(gl.Opacity)
	}
	sd := NewSolid("", kind, ms, NewPose(o.Position.V()), mt)
	sd.ID = o.ID
	sd.Label = fmt.Sprintf("%s %g × %g", o.Kind, o.Width, o.Height)
	return sd, nil
}

// BuildRoof returns the roof as a four-sided cone of radius half the
// roof width and height HeightRoof, turned 45° so that its faces are
// square to the walls, centered at elevation PositionY.
func BuildRoof(r *schema.Roof, pr *Params) (*Solid, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if pr.HeightRoof <= 0 {
		return nil, schema.ErrHeight
	}
	ms := shape.NewCone("roof", pr.HeightRoof, r.Width/2, RoofSegments, true)
	ps := NewPose(math32.Vec3(r.Position[0], pr.PositionY, r.Position[2]))
	ps.SetAxisRotation(yAxis, math32.DegToRad(45))
	col := TagColor(r.Color, TagColor(r.Material, DefaultColor))
	mt := Material{Color: col}
	mt.SetOpacity(pr.OpacityRoof)
	sd := NewSolid("roof", Roofs, ms, ps, mt)
	sd.Label = "roof"
	return sd, nil
}

// BuildRoom returns a translucent box filling the room volume.
// Rooms without a color get a distinct one by index.
func BuildRoom(r *schema.Room, i int) (*Solid, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	ms := shape.NewBox("room", r.Size.V())
	mt := Material{Color: TagColor(r.Color, colors.Spaced(i))}
	mt.SetOpacity(RoomOpacity)
	mt.DoubleSided = true
	sd := NewSolid("", Rooms, ms, NewPose(r.Position.V()), mt)
	sd.ID = r.ID
	sd.Label = r.Name
	return sd, nil
}

// BuildFixture returns a small cube at the fixture position,
// colored by its own color or else by its type.
func BuildFixture(f *schema.Fixture) (*Solid, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	sz := f.Size
	if sz == 0 {
		sz = DefaultFixtureSize
	}
	ms := shape.NewBox("fixture", math32.Vec3(sz, sz, sz))
	col := TagColor(FixtureColors[f.Type], DefaultColor)
	mt := Material{Color: TagColor(f.Color, col), Opacity: 1}
	sd := NewSolid("", Fixtures, ms, NewPose(f.Position.V()), mt)
	sd.ID = f.ID
	sd.Label = string(f.Type)
	return sd, nil
}
