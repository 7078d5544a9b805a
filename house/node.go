// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
	"cogentcore.org/house/shape"
)

// Node is an element of the scene tree: a [Group], [Solid] or [Line].
type Node interface {
	// AsNode returns the common fields of the node.
	AsNode() *NodeBase

	// WorldBBox returns the bounding box of the node in scene coordinates.
	WorldBBox() math32.Box3
}

// NodeBase has the fields common to all nodes.
type NodeBase struct {
	// Name is unique among siblings.
	Name string

	// Kind is the kind of entity the node was built from.
	Kind Kinds

	// ID is the schema ID of the entity, if any.
	ID string

	// Label is a human readable description for hover info.
	Label string
}

func (nb *NodeBase) AsNode() *NodeBase { return nb }

// Pose is a rigid placement: a rotation followed by a translation.
type Pose struct {
	Pos  math32.Vector3
	Quat math32.Quat
}

// NewPose returns a pose with no rotation at the given position.
func NewPose(pos math32.Vector3) Pose {
	return Pose{Pos: pos, Quat: math32.Quat{W: 1}}
}

// SetAxisRotation sets the rotation from an axis and an angle in radians.
func (ps *Pose) SetAxisRotation(axis math32.Vector3, angle float32) *Pose {
	ps.Quat = math32.NewQuatAxisAngle(axis, angle)
	return ps
}

// Apply returns p placed by the pose.
func (ps *Pose) Apply(p math32.Vector3) math32.Vector3 {
	return p.MulQuat(ps.Quat).Add(ps.Pos)
}

// Solid is a triangle mesh placed in the scene with a material.
type Solid struct {
	NodeBase

	// Mesh is in local coordinates.
	Mesh *shape.Mesh

	Pose     Pose
	Material Material

	world *shape.Mesh
}

// NewSolid returns a solid with the given mesh, pose and material.
func NewSolid(name string, kind Kinds, ms *shape.Mesh, ps Pose, mt Material) *Solid {
	return &Solid{NodeBase: NodeBase{Name: name, Kind: kind}, Mesh: ms, Pose: ps, Material: mt}
}

// WorldMesh returns the mesh transformed into scene coordinates,
// computing it on first use.
func (sd *Solid) WorldMesh() *shape.Mesh {
	if sd.world == nil {
		sd.world = sd.Mesh.Transform(sd.Pose.Pos, sd.Pose.Quat)
	}
	return sd.world
}

func (sd *Solid) WorldBBox() math32.Box3 {
	return sd.WorldMesh().BBox
}

// Line is a polyline in scene coordinates.
type Line struct {
	NodeBase
	Lines    *shape.Lines
	Material Material
}

func (ln *Line) WorldBBox() math32.Box3 {
	return ln.Lines.BBox
}

// Group is an ordered set of named child nodes.
type Group struct {
	NodeBase

	// Children are keyed by name, in insertion order.
	Children *ordmap.Map[string, Node]
}

// NewGroup returns an empty group.
func NewGroup(name string, kind Kinds) *Group {
	return &Group{NodeBase: NodeBase{Name: name, Kind: kind}, Children: ordmap.New[string, Node]()}
}

// Add adds the node. A node whose name is already taken by another
// child is renamed with the first free numeric suffix, so that no
// child is ever replaced.
func (gp *Group) Add(n Node) {
	nb := n.AsNode()
	if old := gp.Child(nb.Name); old != nil && old != n {
		name := nb.Name
		for i := 1; gp.Child(name) != nil; i++ {
			name = fmt.Sprintf("%s-%d", nb.Name, i)
		}
		slog.Warn("house: duplicate name", "group", gp.Name, "name", nb.Name, "renamed", name)
		nb.Name = name
	}
	gp.Children.Add(nb.Name, n)
}

// Replace adds the node, replacing any child with the same name.
func (gp *Group) Replace(n Node) {
	gp.Children.Add(n.AsNode().Name, n)
}

// Child returns the child with the given name, or nil.
func (gp *Group) Child(name string) Node {
	n, _ := gp.Children.ValueByKeyTry(name)
	return n
}

// Len returns the number of children.
func (gp *Group) Len() int {
	return gp.Children.Len()
}

// Nodes returns the children in order.
func (gp *Group) Nodes() []Node {
	return gp.Children.Values()
}

func (gp *Group) WorldBBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, n := range gp.Nodes() {
		nbb := n.WorldBBox()
		if nbb.IsEmpty() {
			continue
		}
		bb.ExpandByPoint(nbb.Min)
		bb.ExpandByPoint(nbb.Max)
	}
	return bb
}

// Walk calls fn for every node under the group, depth first,
// starting with the group itself.
func (gp *Group) Walk(fn func(n Node)) {
	fn(gp)
	for _, n := range gp.Nodes() {
		if sg, ok := n.(*Group); ok {
			sg.Walk(fn)
			continue
		}
		fn(n)
	}
}

// Solids returns all solids under the group, in order.
func (gp *Group) Solids() []*Solid {
	var sds []*Solid
	gp.Walk(func(n Node) {
		if sd, ok := n.(*Solid); ok {
			sds = append(sds, sd)
		}
	})
	return sds
}

// Lines returns all lines under the group, in order.
func (gp *Group) Lines() []*Line {
	var lns []*Line
	gp.Walk(func(n Node) {
		if ln, ok := n.(*Line); ok {
			lns = append(lns, ln)
		}
	})
	return lns
}
