// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import (
	"errors"
	"fmt"
	"html"
	"log/slog"

	cerrors "cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/house/schema"
)

// ErrMounted is returned when mounting a composer that is already mounted.
var ErrMounted = errors.New("house: composer is already mounted")

// Composer assembles the scene for a schema, keeps it in sync with
// the parameters, and reports hovering over wires and tubes.
// It is driven by calling [Composer.Frame] once per rendered frame,
// all on one goroutine.
type Composer struct {
	// Schema is the composer's own copy of the building.
	Schema *schema.Schema

	// Params are the live overrides.
	Params *Params

	// Picker does the hover hit tests.
	Picker *Picker

	// WallMaterial overrides the default wall material if non-nil.
	WallMaterial *Material

	// Hover is the current hover state.
	Hover Hover

	// WireHits and TubeHits are the hits of the last frame,
	// nearest first.
	WireHits []Hit
	TubeHits []Hit

	root    *Group
	built   uint64
	builds  int
	env     Env
	remove  func()
	pointer math32.Vector2
	moved   bool
}

// NewComposer returns a composer for a copy of the schema, with
// parameters initialized from it.
func NewComposer(sc *schema.Schema) *Composer {
	return &Composer{
		Schema: sc.Clone(),
		Params: NewParams(sc),
		Picker: NewPicker(),
	}
}

// Build builds the scene from the current parameters and returns it.
func (cp *Composer) Build() *Group {
	root := Build(cp.Schema, cp.Params)
	if cp.WallMaterial != nil {
		ws := NewGroup(Walls.String(), Walls)
		for _, sd := range BuildWalls(cp.Schema.Walls, cp.WallMaterial, cp.Params) {
			ws.Add(sd)
		}
		root.Replace(ws)
	}
	cp.root = root
	cp.built = cp.Params.Version()
	cp.builds++
	return root
}

// Root returns the current scene, building it if needed.
func (cp *Composer) Root() *Group {
	if cp.root == nil {
		cp.Build()
	}
	return cp.root
}

// Builds returns how many times the scene has been built.
func (cp *Composer) Builds() int {
	return cp.builds
}

// Mounted returns whether the composer is mounted.
func (cp *Composer) Mounted() bool {
	return cp.remove != nil
}

// Mount builds the scene, hands it to the renderer, adds the
// parameter controls to the panel, and starts listening to the
// pointer. Exactly one pointer listener is held until [Composer.Close].
func (cp *Composer) Mount(env Env) error {
	if cp.Mounted() {
		return ErrMounted
	}
	if env.Renderer == nil || env.Pointer == nil {
		return fmt.Errorf("house: mount needs a renderer and a pointer source")
	}
	cp.env = env
	if env.Panel != nil {
		cp.addControls(env.Panel)
	}
	cp.remove = env.Pointer.AddPointerListener(func(pos math32.Vector2) {
		cp.pointer = pos
		cp.moved = true
	})
	if cp.remove == nil {
		cp.remove = func() {}
	}
	env.Renderer.SetScene(cp.Build())
	return nil
}

// Close stops listening to the pointer and hides any hover info.
// It is safe to call more than once, and on a composer that was
// never mounted.
func (cp *Composer) Close() {
	if cp.remove == nil {
		return
	}
	cp.remove()
	cp.remove = nil
	if cp.env.Overlay != nil {
		cp.env.Overlay.Hide()
	}
	cp.Hover.Reset()
	cp.moved = false
	cp.env = Env{}
}

func (cp *Composer) addControls(pn Panel) {
	pr := cp.Params
	for _, c := range pr.Controls() {
		key := c.Key
		v, _ := pr.Get(key)
		switch c.Type {
		case Slider:
			pn.Slider(c.Folder, c.Label, v.(float32), c.Min, c.Max, c.Step, func(v float32) {
				cerrors.Log(pr.Set(key, v))
			})
		case ColorPicker:
			pn.Color(c.Folder, c.Label, v.(string), func(hex string) {
				cerrors.Log(pr.Set(key, hex))
			})
		case Toggle:
			pn.Button(c.Folder, c.Label, pr.ToggleWalls)
		}
	}
	pn.Button("", "reset", pr.Reset)
}

// Frame does the per-frame work: it rebuilds the scene if the
// parameters changed since the last build, then hit tests the
// pointer ray against the wires and tubes and updates the hover info.
func (cp *Composer) Frame() {
	if cp.root == nil || cp.Params.Version() != cp.built {
		root := cp.Build()
		if cp.env.Renderer != nil {
			cp.env.Renderer.SetScene(root)
		}
	}
	if !cp.Mounted() || !cp.moved {
		return
	}
	cam := cp.env.Renderer.Camera()
	sz := cp.env.Pointer.Size()
	if cam == nil || sz.X <= 0 || sz.Y <= 0 {
		return
	}
	ray := cam.Ray(PixelToNDC(cp.pointer.X, cp.pointer.Y, sz.X, sz.Y), sz.X/sz.Y)
	cp.hoverTest(ray)
	cp.updateOverlay(cam, sz)
}

// hoverTest intersects the ray with the wire group as a whole and
// with each tube separately.
func (cp *Composer) hoverTest(ray math32.Ray) {
	cp.WireHits = nil
	cp.TubeHits = nil
	if wires, ok := cp.root.Child(Wires.String()).(*Group); ok {
		cp.WireHits = cp.Picker.Intersect(ray, wires)
		if len(cp.WireHits) > 0 {
			slog.Debug("house: wire hit", "point", cp.WireHits[0].Point, "wire", cp.WireHits[0].Node.AsNode().Name)
		}
	}
	if tubes, ok := cp.root.Child(Tubes.String()).(*Group); ok {
		for i, n := range tubes.Nodes() {
			sd := n.(*Solid)
			if h, ok := cp.Picker.IntersectSolid(ray, sd); ok {
				slog.Debug("house: tube hit", "index", i, "point", h.Point, "tube", sd.Name)
				cp.TubeHits = append(cp.TubeHits, h)
			}
		}
	}
	cp.Hover.Update(len(cp.WireHits) > 0, len(cp.TubeHits) > 0)
}

// HoverHit returns the hit whose info is shown, if any.
func (cp *Composer) HoverHit() (Hit, bool) {
	var hits []Hit
	switch cp.Hover.Category {
	case HoverWire:
		hits = cp.WireHits
	case HoverTube:
		hits = cp.TubeHits
	}
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

func (cp *Composer) updateOverlay(cam *Camera, sz math32.Vector2) {
	ov := cp.env.Overlay
	if ov == nil {
		return
	}
	h, ok := cp.HoverHit()
	if !ok {
		ov.Hide()
		return
	}
	ndc, vis := cam.Project(h.Point, sz.X/sz.Y)
	if !vis {
		ov.Hide()
		return
	}
	ov.Show(NDCToPixel(ndc, sz.X, sz.Y), HoverHTML(cp.Hover.Category, h.Node))
}

// HoverHTML returns the info snippet for a hovered node.
func HoverHTML(cat HoverCategories, n Node) string {
	return fmt.Sprintf(`<div class="hover-info %s">%s</div>`, cat, html.EscapeString(n.AsNode().Label))
}
