// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"text/tabwriter"

	"cogentcore.org/house/house"
	"cogentcore.org/house/meshio"
	"cogentcore.org/house/planview"
	"cogentcore.org/house/schema"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [schema]",
		Short: "summarize a house",
		Long:  "info validates the schema and prints the number of entities and triangles of each kind and the overall bounds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := load(args)
			if err != nil {
				return err
			}
			pr, err := opts.params(sc)
			if err != nil {
				return err
			}
			return writeInfo(cmd.OutOrStdout(), sc, house.Build(sc, pr))
		},
	}
}

func writeInfo(w io.Writer, sc *schema.Schema, root *house.Group) error {
	name := sc.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "house: %s\n", name)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "kind\tnodes\ttriangles\n")
	total := 0
	for _, k := range house.KindsValues() {
		gp, ok := root.Child(k.String()).(*house.Group)
		if !ok {
			continue
		}
		nt := 0
		for _, sd := range gp.Solids() {
			nt += sd.Mesh.NumTriangles()
		}
		total += nt
		fmt.Fprintf(tw, "%s\t%d\t%d\n", k, gp.Len(), nt)
	}
	fmt.Fprintf(tw, "total\t\t%d\n", total)
	if err := tw.Flush(); err != nil {
		return err
	}
	bb := root.WorldBBox()
	if !bb.IsEmpty() {
		sz := bb.Size()
		fmt.Fprintf(w, "bounds: %.2f x %.2f x %.2f at %v\n", sz.X, sz.Y, sz.Z, bb.Min)
	}
	if err := sc.Validate(); err != nil {
		fmt.Fprintf(w, "problems:\n%v\n", err)
	}
	return nil
}

func newExportCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export [schema]",
		Short: "export the house mesh",
		Long:  "export builds the house and writes it as a Wavefront OBJ or binary STL file, selected by the output extension",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := load(args)
			if err != nil {
				return err
			}
			return export(opts, sc, out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "house.obj", "output file (.obj or .stl)")
	return cmd
}

func export(opts *options, sc *schema.Schema, out string) error {
	pr, err := opts.params(sc)
	if err != nil {
		return err
	}
	if err := meshio.Save(house.Build(sc, pr), out); err != nil {
		return err
	}
	slog.Info("house: exported", "file", out)
	return nil
}

func newPlanCmd(opts *options) *cobra.Command {
	var out string
	var size float64
	cmd := &cobra.Command{
		Use:   "plan [schema]",
		Short: "draw the floor plan",
		Long:  "plan draws a top-down view of the walls, floor slabs, wires, tubes and fixtures as an SVG, PNG or PDF file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := load(args)
			if err != nil {
				return err
			}
			pr, err := opts.params(sc)
			if err != nil {
				return err
			}
			po := planview.DefaultOptions()
			po.Params = pr
			if err := planview.Render(sc, po, out, vg.Length(size)*vg.Inch); err != nil {
				return err
			}
			slog.Info("house: drew plan", "file", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "plan.svg", "output file (.svg, .png or .pdf)")
	cmd.Flags().Float64Var(&size, "size", 6, "edge length of the drawing in inches")
	return cmd
}

func newParamsCmd(opts *options) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "params [schema]",
		Short: "list the parameters",
		Long:  "params prints every parameter with its control, range and current value, after applying any --set overrides",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := load(args)
			if err != nil {
				return err
			}
			pr, err := opts.params(sc)
			if err != nil {
				return err
			}
			return writeParams(cmd.OutOrStdout(), pr, asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the values as a YAML document")
	return cmd
}

func writeParams(w io.Writer, pr *house.Params, asYAML bool) error {
	if asYAML {
		return yaml.NewEncoder(w).Encode(pr.Values())
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "key\tlabel\tfolder\tcontrol\trange\tvalue\n")
	for _, c := range pr.Controls() {
		v, _ := pr.Get(c.Key)
		rng := ""
		if c.Type == house.Slider {
			rng = fmt.Sprintf("%g..%g/%g", c.Min, c.Max, c.Step)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%v\n", c.Key, c.Label, c.Folder, c.Type, rng, v)
	}
	return tw.Flush()
}

func newWatchCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "watch schema",
		Short: "re-export the house when the schema changes",
		Long:  "watch exports the house, then watches the schema file and exports it again every time it is written, until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := args[0]
			ext := filepath.Ext(out)
			if !slices.Contains([]string{".obj", ".stl", ".svg", ".png", ".pdf"}, ext) {
				return fmt.Errorf("house: unsupported output %q", out)
			}
			rebuild := func() error {
				sc, err := schema.Open(fn)
				if err != nil {
					return err
				}
				if ext == ".obj" || ext == ".stl" {
					return export(opts, sc, out)
				}
				pr, err := opts.params(sc)
				if err != nil {
					return err
				}
				po := planview.DefaultOptions()
				po.Params = pr
				return planview.Render(sc, po, out, 0)
			}
			w, err := newWatcher(fn, rebuild)
			if err != nil {
				return err
			}
			defer w.Close()
			return w.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "house.obj", "output file (.obj, .stl, .svg, .png or .pdf)")
	return cmd
}
