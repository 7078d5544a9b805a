// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import "cogentcore.org/core/math32"

// Renderer is the rendering engine that draws the scene.
type Renderer interface {
	// SetScene replaces the scene to draw.
	SetScene(root *Group)

	// Camera returns the active camera.
	Camera() *Camera
}

// Panel is a control panel of labeled controls.
type Panel interface {
	// Slider adds a numeric slider in the given folder that calls
	// set with each new value.
	Slider(folder, label string, value, min, max, step float32, set func(v float32))

	// Color adds a color picker that calls set with each new hex color.
	Color(folder, label string, value string, set func(hex string))

	// Button adds a momentary button that calls press when pressed.
	Button(folder, label string, press func())
}

// Overlay shows small HTML snippets anchored to screen positions.
type Overlay interface {
	// Show shows html anchored at the given pixel position,
	// replacing anything already shown.
	Show(anchor math32.Vector2, html string)

	// Hide removes anything shown.
	Hide()
}

// PointerSource delivers pointer moves in pixel coordinates.
type PointerSource interface {
	// AddPointerListener registers fn to be called on every pointer
	// move and returns a function that removes it.
	AddPointerListener(fn func(pos math32.Vector2)) (remove func())

	// Size returns the viewport size in pixels.
	Size() math32.Vector2
}

// Env bundles the capabilities a [Composer] is mounted in.
// Panel and Overlay may be nil.
type Env struct {
	Renderer Renderer
	Panel    Panel
	Overlay  Overlay
	Pointer  PointerSource
}
