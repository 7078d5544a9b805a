// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planview draws a top-down plan of a house schema:
// walls, floor slab outlines with their holes, wires, tubes
// and fixtures, saved as an SVG, PNG or PDF file.
package planview

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/house/house"
	"cogentcore.org/house/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultSize is the default edge length of the saved drawing.
const DefaultSize = 6 * vg.Inch

// WallPoints is the drawn line width in points per unit of wall thickness.
const WallPoints = 10

// Options control what is drawn.
type Options struct {
	// Title of the plot; the schema name if empty.
	Title string

	// Params supplies the wire and tube colors; defaults if nil.
	Params *house.Params

	// Floors, Wires, Tubes and Fixtures select optional layers.
	// Walls are always drawn.
	Floors   bool
	Wires    bool
	Tubes    bool
	Fixtures bool
}

// DefaultOptions draws every layer.
func DefaultOptions() *Options {
	return &Options{Floors: true, Wires: true, Tubes: true, Fixtures: true}
}

// Plot returns the plan of the schema. The horizontal axis is scene x
// and the vertical axis is scene z (plan y).
func Plot(sc *schema.Schema, opts *Options) (*plot.Plot, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	pr := opts.Params
	if pr == nil {
		pr = house.NewParams(sc)
	}
	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = sc.Name
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "z"
	p.Add(plotter.NewGrid())

	if opts.Floors {
		for i := range sc.Floors {
			if err := addFloor(p, &sc.Floors[i]); err != nil {
				return nil, err
			}
		}
	}
	wallColor := color.RGBA{60, 60, 60, 255}
	for i := range sc.Walls {
		w := &sc.Walls[i]
		pts := plotter.XYs{
			{X: float64(w.Start[0]), Y: float64(w.Start[1])},
			{X: float64(w.End[0]), Y: float64(w.End[1])},
		}
		if err := addLine(p, pts, wallColor, vg.Points(max(1, WallPoints*float64(w.Thickness)))); err != nil {
			return nil, err
		}
	}
	if opts.Wires {
		if err := addPaths(p, "wires", sc.Wires, house.WirePoints, house.TagColor(pr.WireColor, house.DefaultColor)); err != nil {
			return nil, err
		}
	}
	if opts.Tubes {
		if err := addPaths(p, "tubes", sc.Tubes, house.TubePoints, house.TagColor(pr.TubeColor, house.DefaultColor)); err != nil {
			return nil, err
		}
	}
	if opts.Fixtures && len(sc.Fixtures) > 0 {
		pts := make(plotter.XYs, len(sc.Fixtures))
		for i, f := range sc.Fixtures {
			pts[i] = plotter.XY{X: float64(f.Position[0]), Y: float64(f.Position[2])}
		}
		sp, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sp.GlyphStyle.Shape = draw.BoxGlyph{}
		sp.GlyphStyle.Color = color.RGBA{20, 120, 20, 255}
		p.Add(sp)
		p.Legend.Add("fixtures", sp)
	}
	return p, nil
}

// Render draws the plan of the schema and saves it to filename,
// whose extension selects the image format.
func Render(sc *schema.Schema, opts *Options, filename string, size vg.Length) error {
	p, err := Plot(sc, opts)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = DefaultSize
	}
	if err := p.Save(size, size, filename); err != nil {
		return fmt.Errorf("planview: saving %s: %w", filename, err)
	}
	return nil
}

// FloorOutline returns the scene-plane outline of the slab followed
// by the outline of each hole, as closed (x, z) polylines.
// The slab is centered on its position, and hole positions are
// relative to the slab minimum corner with the depth axis pointing
// toward -z, matching how [house.BuildFloor] places them.
func FloorOutline(f *schema.FloorSlab) []plotter.XYs {
	x0 := f.Position[0] - f.Width/2
	z0 := f.Position[2] + f.Depth/2
	rect := func(mn, mx math32.Vector2) plotter.XYs {
		return plotter.XYs{
			{X: float64(x0 + mn.X), Y: float64(z0 - mn.Y)},
			{X: float64(x0 + mx.X), Y: float64(z0 - mn.Y)},
			{X: float64(x0 + mx.X), Y: float64(z0 - mx.Y)},
			{X: float64(x0 + mn.X), Y: float64(z0 - mx.Y)},
			{X: float64(x0 + mn.X), Y: float64(z0 - mn.Y)},
		}
	}
	out := []plotter.XYs{rect(math32.Vector2{}, math32.Vec2(f.Width, f.Depth))}
	for i := range f.Holes {
		out = append(out, rect(f.Holes[i].Bounds()))
	}
	return out
}

func addFloor(p *plot.Plot, f *schema.FloorSlab) error {
	c := house.TagColor(f.Material, color.RGBA{128, 128, 128, 255})
	for i, pts := range FloorOutline(f) {
		wd := vg.Points(1)
		if i > 0 {
			wd = vg.Points(0.5)
		}
		ln, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		ln.Color = c
		ln.Width = wd
		if i > 0 {
			ln.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		}
		p.Add(ln)
	}
	return nil
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, wd vg.Length) error {
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	ln.Color = c
	ln.Width = wd
	p.Add(ln)
	return nil
}

// addPaths draws each path entity projected onto the scene plane,
// using pointsFunc to map schema points to scene points.
func addPaths(p *plot.Plot, name string, ps []schema.PathEntity, pointsFunc func(pe *schema.PathEntity) []math32.Vector3, c color.RGBA) error {
	for i := range ps {
		sp := pointsFunc(&ps[i])
		if len(sp) < 2 {
			continue
		}
		pts := make(plotter.XYs, len(sp))
		for j, v := range sp {
			pts[j] = plotter.XY{X: float64(v.X), Y: float64(v.Z)}
		}
		ln, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		ln.Color = c
		ln.Width = vg.Points(1.5)
		p.Add(ln)
		if i == 0 {
			p.Legend.Add(name, ln)
		}
	}
	return nil
}
