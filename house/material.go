// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/house/schema"
	"github.com/lucasb-eyer/go-colorful"
)

// Material describes the surface of a [Solid] or the stroke of a [Line].
type Material struct {

	// Color is the base color; its alpha is always opaque,
	// with transparency given by Opacity.
	Color color.RGBA

	// Opacity is 1 for fully opaque.
	Opacity float32

	// Transparent is whether the renderer should blend this surface.
	Transparent bool

	// DoubleSided is whether back faces are drawn.
	DoubleSided bool

	// Glass gives physical glass parameters, or nil for a plain surface.
	Glass *schema.GlassParams
}

// SetColor sets the color from a hex string, logging and keeping
// the current color if the string is invalid.
func (mt *Material) SetColor(hex string) *Material {
	c, err := ParseColor(hex)
	if errors.Log(err) == nil {
		mt.Color = c
	}
	return mt
}

// SetOpacity sets the opacity and marks the material transparent.
func (mt *Material) SetOpacity(op float32) *Material {
	mt.Opacity = op
	mt.Transparent = true
	return mt
}

// RGBA returns the color with its alpha set from the opacity.
func (mt *Material) RGBA() color.RGBA {
	c := mt.Color
	a := float32(255) * min(max(mt.Opacity, 0), 1)
	// premultiplied
	c.R = uint8(float32(c.R) * a / 255)
	c.G = uint8(float32(c.G) * a / 255)
	c.B = uint8(float32(c.B) * a / 255)
	c.A = uint8(a)
	return c
}

// Hex returns the color as a #rrggbb string.
func (mt *Material) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", mt.Color.R, mt.Color.G, mt.Color.B)
}

// NewMaterial returns an opaque material of the given color.
func NewMaterial(hex string) *Material {
	mt := &Material{Color: DefaultColor, Opacity: 1}
	return mt.SetColor(hex)
}

// Default colors.
var (
	// DefaultColor is the gray of walls and floors.
	DefaultColor = color.RGBA{0xa0, 0xa0, 0xa0, 0xff}

	// DefaultWireColor is the initial color of wires.
	DefaultWireColor = "#ff0000"

	// DefaultTubeColor is the initial color of tubes.
	DefaultTubeColor = "#0000ff"
)

// MaterialColors are the colors of named material tags.
var MaterialColors = map[string]string{
	"wood":     "#8b5a2b",
	"concrete": "#a0a0a0",
	"brick":    "#b35c44",
	"tile":     "#b35c1e",
	"glass":    "#add8e6",
	"metal":    "#8c8c8c",
	"plaster":  "#f0ebe0",
}

// FixtureColors are the default colors of fixture types.
var FixtureColors = map[schema.FixtureTypes]string{
	schema.Outlet:   "#ffd700",
	schema.Switch:   "#ffffff",
	schema.Junction: "#ffa500",
	schema.Valve:    "#1e90ff",
	schema.Sensor:   "#32cd32",
}

// ParseColor parses a color given as "#rgb", "#rrggbb", or a
// material tag from [MaterialColors].
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := MaterialColors[strings.ToLower(s)]; ok {
		s = hex
	}
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("house: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// TagColor returns the color for a material tag or hex string,
// or the fallback if it is empty or unknown.
func TagColor(tag string, fallback color.RGBA) color.RGBA {
	if tag == "" {
		return fallback
	}
	c, err := ParseColor(tag)
	if err != nil {
		return fallback
	}
	return c
}
