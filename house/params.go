// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/math32"
	"cogentcore.org/house/schema"
)

// Params are the live visual overrides applied on top of a schema.
// They are owned by a [Composer] and changed only through [Params.Set],
// [Params.Reset] and [Params.ToggleWalls], each of which bumps
// [Params.Version] so that the next frame rebuilds the scene.
// Field tags describe the control for each value: its store key,
// label, panel folder, default, and range.
type Params struct {

	// OpacityWalls is the opacity of the walls.
	OpacityWalls float32 `key:"opacityWalls" label:"Walls Opacity" folder:"walls" default:"1" min:"0" max:"1" step:"0.1"`

	// OpacityRoof is the opacity of the roof.
	OpacityRoof float32 `key:"opacityRoof" label:"Roof Opacity" folder:"roof" default:"1" min:"0" max:"1" step:"0.1"`

	// OpacityWire is the opacity of the wires.
	OpacityWire float32 `key:"opacityWire" label:"Wires Opacity" folder:"wire" default:"1" min:"0" max:"1" step:"0.1"`

	// OpacityTubes is the opacity of the tubes.
	OpacityTubes float32 `key:"opacityTubes" label:"Tubes Opacity" folder:"tubes" default:"1" min:"0" max:"1" step:"0.1"`

	// WireColor is the color of all wires, as a hex string.
	WireColor string `key:"wireColor" label:"Wire Color" folder:"wire" default:"#ff0000" color:"+"`

	// TubeColor is the color of all tubes, as a hex string.
	TubeColor string `key:"tubeColor" label:"Tube Color" folder:"tubes" default:"#0000ff" color:"+"`

	// ThicknessTubes is the tube radius.
	ThicknessTubes float32 `key:"thicknessTubes" label:"Tube Thickness" folder:"tubes" default:"0.15" min:"0.01" max:"1" step:"0.01"`

	// HeightRoof is the height of the roof cone, from the schema.
	HeightRoof float32 `key:"heightRoof" label:"Roof Height" folder:"roof" min:"1" max:"10" step:"0.1"`

	// PositionY is the elevation of the roof center, from the schema.
	PositionY float32 `key:"positionY" label:"positionY" folder:"roof" min:"0" max:"20" step:"0.1"`

	// ShowWalls is whether walls are built at all.
	ShowWalls bool `key:"showWalls" label:"Toggle Walls" folder:"walls" default:"true"`

	// version counts changes.
	version uint64
}

// Default roof height and elevation when the schema has no roof.
const (
	DefaultHeightRoof = 2
	DefaultPositionY  = 7
)

// NewParams returns parameters initialized from their defaults,
// with the roof values taken from the schema roof if any.
func NewParams(sc *schema.Schema) *Params {
	pr := &Params{}
	pr.Defaults()
	pr.HeightRoof = DefaultHeightRoof
	pr.PositionY = DefaultPositionY
	if sc != nil && sc.Roof != nil {
		pr.HeightRoof = sc.Roof.Height
		pr.PositionY = sc.Roof.Position[1]
	}
	return pr
}

// Defaults sets all fields with a default tag to that default.
func (pr *Params) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(pr))
	pr.version++
}

// Reset restores the opacities, colors and tube thickness to their
// defaults and makes the walls visible. The roof height and
// elevation are left as they are.
func (pr *Params) Reset() {
	hr, py := pr.HeightRoof, pr.PositionY
	pr.Defaults()
	pr.HeightRoof, pr.PositionY = hr, py
	pr.ShowWalls = true
}

// ToggleWalls flips wall visibility.
func (pr *Params) ToggleWalls() {
	pr.ShowWalls = !pr.ShowWalls
	pr.version++
}

// Version returns a counter that changes whenever a value changes.
func (pr *Params) Version() uint64 {
	return pr.version
}

// Set sets the value with the given store key, converting it to the
// field type and clamping numbers to the field range.
func (pr *Params) Set(key string, value any) error {
	f, ok := paramFields()[key]
	if !ok {
		return fmt.Errorf("house.Params.Set: unknown key %q", key)
	}
	if f.Tag.Get("color") != "" {
		if _, err := ParseColor(fmt.Sprint(value)); err != nil {
			return fmt.Errorf("house.Params.Set %q: %w", key, err)
		}
	}
	fv := reflect.ValueOf(pr).Elem().FieldByIndex(f.Index)
	if err := reflectx.SetRobust(fv.Addr().Interface(), value); err != nil {
		return fmt.Errorf("house.Params.Set %q: %w", key, err)
	}
	if fv.Kind() == reflect.Float32 {
		c := controlFor(f)
		fv.SetFloat(float64(math32.Clamp(float32(fv.Float()), c.Min, c.Max)))
	}
	pr.version++
	return nil
}

// Get returns the value with the given store key.
func (pr *Params) Get(key string) (any, bool) {
	f, ok := paramFields()[key]
	if !ok {
		return nil, false
	}
	return reflect.ValueOf(pr).Elem().FieldByIndex(f.Index).Interface(), true
}

// Values returns all values by store key.
func (pr *Params) Values() map[string]any {
	vals := map[string]any{}
	for k := range paramFields() {
		vals[k], _ = pr.Get(k)
	}
	return vals
}

// ControlTypes are the kinds of panel control.
type ControlTypes int32 //enums:enum -transform lower

const (
	// Slider is a numeric slider.
	Slider ControlTypes = iota

	// ColorPicker is a color chooser.
	ColorPicker

	// Toggle is a boolean driven by a button.
	Toggle
)

// Control describes one panel control bound to a [Params] value.
type Control struct {
	Key    string
	Label  string
	Folder string
	Type   ControlTypes

	// Min, Max and Step give the range of a [Slider].
	Min, Max, Step float32
}

// Controls returns the panel controls for all values, in field order.
func (pr *Params) Controls() []Control {
	var cs []Control
	typ := reflect.TypeOf(*pr)
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		cs = append(cs, controlFor(f))
	}
	return cs
}

func controlFor(f reflect.StructField) Control {
	c := Control{
		Key:    f.Tag.Get("key"),
		Label:  f.Tag.Get("label"),
		Folder: f.Tag.Get("folder"),
	}
	switch {
	case f.Type.Kind() == reflect.Bool:
		c.Type = Toggle
	case f.Tag.Get("color") != "":
		c.Type = ColorPicker
	default:
		c.Type = Slider
		c.Min = tagFloat(f, "min")
		c.Max = tagFloat(f, "max")
		c.Step = tagFloat(f, "step")
	}
	return c
}

func tagFloat(f reflect.StructField, tag string) float32 {
	v, err := strconv.ParseFloat(f.Tag.Get(tag), 32)
	if err != nil {
		return 0
	}
	return float32(v)
}

// paramFields returns the Params fields by store key.
func paramFields() map[string]reflect.StructField {
	fs := map[string]reflect.StructField{}
	typ := reflect.TypeFor[Params]()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if k := f.Tag.Get("key"); k != "" {
			fs[k] = f
		}
	}
	return fs
}
