// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command house inspects, exports and draws parametric house models.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"cogentcore.org/house/house"
	"cogentcore.org/house/schema"
	"github.com/spf13/cobra"
)

// logLevel is the level of the default logger; -v lowers it to debug.
var logLevel = new(slog.LevelVar)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// options are the flags shared by all commands.
type options struct {
	verbose bool

	// sets are key=value parameter overrides.
	sets []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "house",
		Short:        "parametric house models",
		Long:         "house builds 3D house models from schema documents (JSON, YAML or TOML) and exports or draws them",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	root.PersistentFlags().StringArrayVar(&opts.sets, "set", nil, "set a parameter, as key=value (repeatable)")
	root.AddCommand(
		newInfoCmd(opts),
		newExportCmd(opts),
		newPlanCmd(opts),
		newParamsCmd(opts),
		newWatchCmd(opts),
	)
	return root
}

// load opens the schema document named by the first argument,
// or returns the default house if there is none.
func load(args []string) (*schema.Schema, error) {
	if len(args) == 0 {
		slog.Debug("house: using the default schema")
		return schema.Default(), nil
	}
	sc, err := schema.Open(args[0])
	if err != nil {
		return nil, err
	}
	slog.Debug("house: opened schema", "file", args[0], "walls", len(sc.Walls), "floors", len(sc.Floors))
	return sc, nil
}

// params returns the parameters for the schema with the
// --set overrides applied.
func (opts *options) params(sc *schema.Schema) (*house.Params, error) {
	pr := house.NewParams(sc)
	for _, kv := range opts.sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("house: --set %q is not key=value", kv)
		}
		if err := pr.Set(k, v); err != nil {
			return nil, err
		}
	}
	return pr, nil
}
