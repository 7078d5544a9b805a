// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"fmt"
)

// Validate returns an error if the wall is degenerate.
func (w *WallSegment) Validate() error {
	switch {
	case w.Start == w.End:
		return ErrZeroLength
	case w.Thickness <= 0:
		return ErrThickness
	case w.Height <= 0:
		return ErrHeight
	}
	return nil
}

// Validate returns an error if the slab itself is degenerate.
// Holes are checked separately by [FloorSlab.ValidHoles].
func (f *FloorSlab) Validate() error {
	switch {
	case f.Width <= 0 || f.Depth <= 0:
		return ErrSize
	case f.Thickness <= 0:
		return ErrThickness
	}
	return nil
}

// ValidHoles returns the holes that lie strictly inside the slab
// and neither overlap nor touch any earlier accepted hole, along with
// an error for each rejected hole. A hole sharing an edge or a corner
// with the slab outline or with another hole is rejected, since the
// outline would no longer be a polygon with separate holes.
func (f *FloorSlab) ValidHoles() ([]Hole, []error) {
	var ok []Hole
	var errs []error
	for i := range f.Holes {
		h := &f.Holes[i]
		err := f.checkHole(h, ok)
		if err != nil {
			errs = append(errs, &EntityError{Kind: "hole", ID: f.ID, Index: i, Err: err})
			continue
		}
		ok = append(ok, *h)
	}
	return ok, errs
}

func (f *FloorSlab) checkHole(h *Hole, accepted []Hole) error {
	if h.Size[0] <= 0 || h.Size[1] <= 0 {
		return ErrHoleSize
	}
	mn, mx := h.Bounds()
	if mn.X <= 0 || mn.Y <= 0 || mx.X >= f.Width || mx.Y >= f.Depth {
		return ErrHoleBounds
	}
	for _, o := range accepted {
		omn, omx := o.Bounds()
		if mn.X <= omx.X && omn.X <= mx.X && mn.Y <= omx.Y && omn.Y <= mx.Y {
			return ErrHoleOverlap
		}
	}
	return nil
}

// Validate returns an error if the opening is degenerate.
func (o *Opening) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return ErrSize
	case o.Thickness <= 0:
		return ErrThickness
	}
	return nil
}

// Validate returns an error if the path has fewer than two points.
func (p *PathEntity) Validate() error {
	if len(p.Points) < 2 {
		return ErrTooFewPoints
	}
	return nil
}

// Validate returns an error if the roof is degenerate.
func (r *Roof) Validate() error {
	if r.Width <= 0 {
		return ErrSize
	}
	return nil
}

// Validate returns an error if the room has a non-positive size.
func (r *Room) Validate() error {
	if r.Size[0] <= 0 || r.Size[1] <= 0 || r.Size[2] <= 0 {
		return ErrSize
	}
	return nil
}

// Validate returns an error for an unknown type or negative size.
func (f *Fixture) Validate() error {
	if !f.Type.IsValid() {
		return fmt.Errorf("%w %q", ErrFixtureType, f.Type)
	}
	if f.Size < 0 {
		return ErrSize
	}
	return nil
}

// Validate checks every entity in the schema and returns all problems
// joined together, or nil. A schema with problems can still be built:
// builders skip the offending entities, and give entities with a
// duplicate id a unique name.
func (sc *Schema) Validate() error {
	var errs []error
	seen := map[[2]string]bool{}
	add := func(kind, id string, i int, err error) {
		if err == nil && id != "" {
			if seen[[2]string{kind, id}] {
				err = ErrDuplicateID
			}
			seen[[2]string{kind, id}] = true
		}
		if err != nil {
			errs = append(errs, &EntityError{Kind: kind, ID: id, Index: i, Err: err})
		}
	}
	if sc.Door != nil {
		add("door", sc.Door.ID, 0, sc.Door.Validate())
	}
	for i := range sc.Windows {
		add("window", sc.Windows[i].ID, i, sc.Windows[i].Validate())
	}
	for i := range sc.Walls {
		add("wall", sc.Walls[i].ID, i, sc.Walls[i].Validate())
	}
	for i := range sc.Floors {
		fl := &sc.Floors[i]
		add("floor", fl.ID, i, fl.Validate())
		_, herrs := fl.ValidHoles()
		errs = append(errs, herrs...)
	}
	for i := range sc.Wires {
		add("wire", sc.Wires[i].ID, i, sc.Wires[i].Validate())
	}
	for i := range sc.Tubes {
		add("tube", sc.Tubes[i].ID, i, sc.Tubes[i].Validate())
	}
	if sc.Roof != nil {
		add("roof", "", 0, sc.Roof.Validate())
	}
	for i := range sc.Rooms {
		add("room", sc.Rooms[i].ID, i, sc.Rooms[i].Validate())
	}
	for i := range sc.Fixtures {
		add("fixture", sc.Fixtures[i].ID, i, sc.Fixtures[i].Validate())
	}
	return errors.Join(errs...)
}
