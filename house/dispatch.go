// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import (
	"cogentcore.org/house/schema"
)

// KindBuilder builds the nodes of one kind of entity from a schema.
type KindBuilder func(sc *schema.Schema, pr *Params) []Node

// Builders are the builder functions for each kind.
var Builders = [KindsN]KindBuilder{
	Walls:    buildWalls,
	Floors:   buildFloors,
	Tubes:    buildTubes,
	Wires:    buildWires,
	Doors:    buildDoors,
	Windows:  buildWindows,
	Roofs:    buildRoofs,
	Rooms:    buildRooms,
	Fixtures: buildFixtures,
}

// BuildKind returns a group holding the nodes of the given kind.
func BuildKind(k Kinds, sc *schema.Schema, pr *Params) *Group {
	gp := NewGroup(k.String(), k)
	for _, n := range Builders[k](sc, pr) {
		gp.Add(n)
	}
	return gp
}

// Build returns the whole scene: a root group with one child group
// per kind, in [KindsValues] order. Building the same schema with
// equal parameters always gives the same geometry.
func Build(sc *schema.Schema, pr *Params) *Group {
	root := NewGroup(sc.Name, KindsN)
	for _, k := range KindsValues() {
		root.Add(BuildKind(k, sc, pr))
	}
	return root
}

func buildWalls(sc *schema.Schema, pr *Params) []Node {
	var ns []Node
	for _, sd := range BuildWalls(sc.Walls, nil, pr) {
		ns = append(ns, sd)
	}
	return ns
}

func buildFloors(sc *schema.Schema, pr *Params) []Node {
	var ns []Node
	for i := range sc.Floors {
		f := &sc.Floors[i]
		sd, err := BuildFloor(f)
		if err != nil {
			skip(Floors, f.ID, i, err)
			continue
		}
		sd.Name = entityName(Floors, f.ID, i)
		ns = append(ns, sd)
	}
	return ns
}

func buildTubes(sc *schema.Schema, pr *Params) []Node {
	var ns []Node
	for i := range sc.Tubes {
		p := &sc.Tubes[i]
		sd, err := BuildTube(p, pr)
		if err != nil {
			skip(Tubes, p.ID, i, err)
			continue
		}
		sd.Name = entityName(Tubes, p.ID, i)
		ns = append(ns, sd)
	}
	return ns
}

func buildWires(sc *schema.Schema, pr *Params) []Node {
	var ns []Node
	for i := range sc.Wires {
		p := &sc.Wires[i]
		ln, err := BuildWire(p, pr)
		if err != nil {
			skip(Wires, p.ID, i, err)
			continue
		}
		ln.Name = entityName(Wires, p.ID, i)
		ns = append(ns, ln)
	}
	return ns
}

func buildDoors(sc *schema.Schema, pr *Params) []Node {
	if sc.Door == nil {
		return nil
	}
	sd, err := BuildOpening(sc.Door)
	if err != nil {
		skip(Doors, sc.Door.ID, 0, err)
		return nil
	}
	sd.Name = entityName(Doors, sc.Door.ID, 0)
	return []Node{sd}
}

func buildWindows(sc *schema.Schema, pr *Params) []Node {
	var ns []Node
	for i := range sc.Windows {
		o := sc.Windows[i]
		o.Kind = schema.Window
		sd, err := BuildOpening(&o)
		if err != nil {
			skip(Windows, o.ID, i, err)
			continue
		}
		sd.Name = entityName(Windows, o.ID, i)
		ns = append(ns, sd)
	}
	return ns
}

func buildRoofs(sc *schema.Schema, pr *Params) []Node {
	if sc.Roof == nil {
		return nil
	}
	sd, err := BuildRoof(sc.Roof, pr)
	if err != nil {
		skip(Roofs, "", 0, err)
		return nil
	}
	return []Node{sd}
}

func buildRooms(sc *schema.Schema, pr *Params) []Node {
	var ns []Node
	for i := range sc.Rooms {
		r := &sc.Rooms[i]
		sd, err := BuildRoom(r, i)
		if err != nil {
			skip(Rooms, r.ID, i, err)
			continue
		}
		sd.Name = entityName(Rooms, r.ID, i)
		ns = append(ns, sd)
	}
	return ns
}

func buildFixtures(sc *schema.Schema, pr *Params) []Node {
	var ns []Node
	for i := range sc.Fixtures {
		f := &sc.Fixtures[i]
		sd, err := BuildFixture(f)
		if err != nil {
			skip(Fixtures, f.ID, i, err)
			continue
		}
		sd.Name = entityName(Fixtures, f.ID, i)
		ns = append(ns, sd)
	}
	return ns
}
