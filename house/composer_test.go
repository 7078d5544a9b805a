// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import (
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/house/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRenderer struct {
	cam    *Camera
	root   *Group
	scenes int
}

func (tr *testRenderer) SetScene(root *Group) {
	tr.root = root
	tr.scenes++
}

func (tr *testRenderer) Camera() *Camera { return tr.cam }

type testPointer struct {
	listeners map[int]func(pos math32.Vector2)
	next      int
	size      math32.Vector2
}

func newTestPointer() *testPointer {
	return &testPointer{listeners: map[int]func(math32.Vector2){}, size: math32.Vec2(100, 100)}
}

func (tp *testPointer) AddPointerListener(fn func(pos math32.Vector2)) func() {
	id := tp.next
	tp.next++
	tp.listeners[id] = fn
	return func() { delete(tp.listeners, id) }
}

func (tp *testPointer) Size() math32.Vector2 { return tp.size }

func (tp *testPointer) move(pos math32.Vector2) {
	for _, fn := range tp.listeners {
		fn(pos)
	}
}

type testPanel struct {
	sliders map[string]func(float32)
	colors  map[string]func(string)
	buttons map[string]func()
}

func newTestPanel() *testPanel {
	return &testPanel{sliders: map[string]func(float32){}, colors: map[string]func(string){}, buttons: map[string]func(){}}
}

func (tp *testPanel) Slider(folder, label string, value, min, max, step float32, set func(v float32)) {
	tp.sliders[label] = set
}

func (tp *testPanel) Color(folder, label string, value string, set func(hex string)) {
	tp.colors[label] = set
}

func (tp *testPanel) Button(folder, label string, press func()) {
	tp.buttons[label] = press
}

type testOverlay struct {
	shown  bool
	html   string
	anchor math32.Vector2
}

func (to *testOverlay) Show(anchor math32.Vector2, html string) {
	to.shown = true
	to.anchor = anchor
	to.html = html
}

func (to *testOverlay) Hide() {
	to.shown = false
	to.html = ""
}

type testEnv struct {
	Env
	renderer *testRenderer
	pointer  *testPointer
	panel    *testPanel
	overlay  *testOverlay
}

func newTestEnv(cam *Camera) *testEnv {
	te := &testEnv{
		renderer: &testRenderer{cam: cam},
		pointer:  newTestPointer(),
		panel:    newTestPanel(),
		overlay:  &testOverlay{},
	}
	te.Env = Env{Renderer: te.renderer, Pointer: te.pointer, Panel: te.panel, Overlay: te.overlay}
	return te
}

func TestMountClose(t *testing.T) {
	cp := NewComposer(schema.Default())
	te := newTestEnv(DefaultCamera())
	require.NoError(t, cp.Mount(te.Env))
	assert.True(t, cp.Mounted())
	assert.Len(t, te.pointer.listeners, 1)
	assert.Equal(t, 1, te.renderer.scenes)
	assert.ErrorIs(t, cp.Mount(te.Env), ErrMounted)
	assert.Len(t, te.pointer.listeners, 1)

	cp.Close()
	assert.False(t, cp.Mounted())
	assert.Len(t, te.pointer.listeners, 0)
	cp.Close()
	assert.Len(t, te.pointer.listeners, 0)

	// remounting acquires a single listener again
	require.NoError(t, cp.Mount(te.Env))
	assert.Len(t, te.pointer.listeners, 1)
	cp.Close()

	assert.Error(t, NewComposer(schema.Default()).Mount(Env{}))
	NewComposer(schema.Default()).Close()
}

func TestComposerRebuild(t *testing.T) {
	cp := NewComposer(schema.Default())
	te := newTestEnv(DefaultCamera())
	require.NoError(t, cp.Mount(te.Env))
	defer cp.Close()

	cp.Frame()
	cp.Frame()
	assert.Equal(t, 1, cp.Builds())
	assert.Equal(t, 1, te.renderer.scenes)

	// the panel drives the parameters; the next frame rebuilds
	te.panel.sliders["Tube Thickness"](0.3)
	cp.Frame()
	assert.Equal(t, 2, cp.Builds())
	assert.Equal(t, 2, te.renderer.scenes)
	tube := te.renderer.root.Child(Tubes.String()).(*Group).Nodes()[0].(*Solid)
	first := cp.Schema.Tubes[0].Points[0].V()
	assert.InDelta(t, 0.3, tube.WorldMesh().Position(0).Sub(first).Length(), 1e-3)

	te.panel.buttons["Toggle Walls"]()
	cp.Frame()
	assert.Equal(t, 0, te.renderer.root.Child(Walls.String()).(*Group).Len())

	te.panel.colors["Wire Color"]("#00ff00")
	te.panel.buttons["reset"]()
	cp.Frame()
	assert.Equal(t, 16, te.renderer.root.Child(Walls.String()).(*Group).Len())
	assert.Equal(t, "#ff0000", cp.Params.WireColor)
	assert.Equal(t, 4, cp.Builds())

	// a bad value from the panel is logged and ignored
	te.panel.colors["Tube Color"]("bogus")
	cp.Frame()
	assert.Equal(t, 4, cp.Builds())
}

func TestComposerWallMaterial(t *testing.T) {
	cp := NewComposer(schema.Default())
	cp.WallMaterial = NewMaterial("#336699")
	root := cp.Root()
	walls := root.Child(Walls.String()).(*Group)
	require.Equal(t, 16, walls.Len())
	assert.Equal(t, "#336699", walls.Nodes()[0].(*Solid).Material.Hex())
	assert.Equal(t, int(KindsN), root.Len())
}

// hoverSchema has a wire along x at z = 2 and a tube along z at x = 8.
func hoverSchema() *schema.Schema {
	return &schema.Schema{
		Wires: []schema.PathEntity{{ID: "w", Label: "lights", Points: []schema.Point3{{0, 2, 0}, {10, 2, 0}}}},
		Tubes: []schema.PathEntity{{ID: "t", Label: "cold water", Points: []schema.Point3{{8, 1, 0}, {8, 1, 10}}}},
	}
}

func TestComposerHover(t *testing.T) {
	cam := &Camera{Pos: math32.Vec3(5, 10, 5), Target: math32.Vec3(5, 0, 5), Up: math32.Vec3(0, 0, -1), FOV: 75}
	cp := NewComposer(hoverSchema())
	te := newTestEnv(cam)
	require.NoError(t, cp.Mount(te.Env))
	defer cp.Close()

	pointAt := func(p math32.Vector3) {
		ndc, ok := cam.Project(p, 1)
		require.True(t, ok)
		te.pointer.move(NDCToPixel(ndc, 100, 100))
	}

	// no pointer movement yet: nothing hovered
	cp.Frame()
	assert.Equal(t, HoverNone, cp.Hover.Category)

	pointAt(math32.Vec3(5, 0.1, 2))
	cp.Frame()
	assert.Equal(t, HoverWire, cp.Hover.Category)
	require.Len(t, cp.WireHits, 1)
	assert.InDelta(t, 2, cp.WireHits[0].Point.Z, 1e-3)
	assert.Empty(t, cp.TubeHits)
	assert.True(t, te.overlay.shown)
	assert.True(t, strings.Contains(te.overlay.html, "lights"))
	assert.True(t, strings.Contains(te.overlay.html, "wire"))

	pointAt(math32.Vec3(8, 1.15, 5))
	cp.Frame()
	assert.Equal(t, HoverTube, cp.Hover.Category)
	assert.Empty(t, cp.WireHits)
	require.Len(t, cp.TubeHits, 1)
	assert.Equal(t, "t", cp.TubeHits[0].Node.AsNode().Name)
	assert.True(t, strings.Contains(te.overlay.html, "cold water"))

	pointAt(math32.Vec3(2, 0, 8))
	cp.Frame()
	assert.Equal(t, HoverNone, cp.Hover.Category)
	assert.False(t, te.overlay.shown)

	cp.Close()
	assert.Equal(t, HoverNone, cp.Hover.Category)
	assert.Len(t, te.pointer.listeners, 0)
}

func TestHoverLastEventWins(t *testing.T) {
	var hv Hover
	assert.True(t, hv.Update(true, false))
	assert.Equal(t, HoverWire, hv.Category)

	// the tube enters while the wire is still hit: tube wins,
	// even though nothing says it is nearer
	assert.True(t, hv.Update(true, true))
	assert.Equal(t, HoverTube, hv.Category)

	// the tube leaves: the category is cleared, not restored to wire
	assert.True(t, hv.Update(true, false))
	assert.Equal(t, HoverNone, hv.Category)

	assert.False(t, hv.Update(true, false))
	assert.False(t, hv.Update(false, false))
	assert.Equal(t, HoverNone, hv.Category)

	// both enter in the same frame: tubes are handled last
	assert.True(t, hv.Update(true, true))
	assert.Equal(t, HoverTube, hv.Category)
	assert.Equal(t, "tube", hv.Category.String())

	hv.Reset()
	assert.Equal(t, HoverNone, hv.Category)
}
