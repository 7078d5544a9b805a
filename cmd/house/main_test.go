// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/house/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "house: ")
	assert.Regexp(t, `walls\s+16\s+192`, out)
	assert.Regexp(t, `floors\s+3\s+`, out)
	assert.Regexp(t, `wires\s+5\s+0`, out)
	assert.Contains(t, out, "bounds: ")
	assert.NotContains(t, out, "problems:")

	out, err = run(t, "info", "--set", "showWalls=false")
	require.NoError(t, err)
	assert.Regexp(t, `walls\s+0\s+0`, out)

	_, err = run(t, "info", "--set", "showWalls")
	assert.Error(t, err)
	_, err = run(t, "info", "--set", "roofColor=#fff")
	assert.Error(t, err)
	_, err = run(t, "info", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	out, err := run(t, "params", "--set", "thicknessTubes=0.3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 11)
	assert.Regexp(t, `thicknessTubes\s+Tube Thickness\s+tubes\s+slider\s+0.01..1/0.01\s+0.3`, out)
	assert.Regexp(t, `wireColor\s+.*colorpicker\s+#ff0000`, out)

	out, err = run(t, "params", "--yaml", "--set", "opacityWalls=0.5")
	require.NoError(t, err)
	vals := map[string]any{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &vals))
	assert.Equal(t, 0.5, vals["opacityWalls"])
	assert.Equal(t, true, vals["showWalls"])
}

func TestExportAndPlan(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "house.obj")
	_, err := run(t, "export", "-o", obj)
	require.NoError(t, err)
	b, err := os.ReadFile(obj)
	require.NoError(t, err)
	assert.Contains(t, string(b), "o wall-")

	_, err = run(t, "export", "-o", filepath.Join(dir, "house.3ds"))
	assert.Error(t, err)

	svg := filepath.Join(dir, "plan.svg")
	_, err = run(t, "plan", "-o", svg, "--size", "4")
	require.NoError(t, err)
	_, err = os.Stat(svg)
	assert.NoError(t, err)
}

// saveAs replaces the file with the default schema under a new name,
// through a rename so that the watcher never reads a partial file.
func saveAs(t *testing.T, fn, name string) {
	t.Helper()
	sc := schema.Default()
	sc.Name = name
	next := filepath.Join(filepath.Dir(fn), "next-"+filepath.Base(fn))
	require.NoError(t, sc.Save(next))
	require.NoError(t, os.Rename(next, fn))
}

// startWatcher watches the file and returns the schema names seen by
// each rebuild, and a function that stops the watcher.
func startWatcher(t *testing.T, fn string) (<-chan string, func()) {
	t.Helper()
	names := make(chan string, 20)
	w, err := newWatcher(fn, func() error {
		sc, err := schema.Open(fn)
		if err != nil {
			return err
		}
		names <- sc.Name
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- w.Run(ctx) }()
	return names, func() {
		cancel()
		require.NoError(t, <-done)
		w.Close()
	}
}

func nextBuild(t *testing.T, names <-chan string) string {
	t.Helper()
	select {
	case n := <-names:
		return n
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a rebuild")
	}
	return ""
}

func TestWatcher(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "house.yaml")
	saveAs(t, fn, "start")
	names, stop := startWatcher(t, fn)
	defer stop()

	assert.Equal(t, "start", nextBuild(t, names))
	saveAs(t, fn, "renamed")
	assert.Equal(t, "renamed", nextBuild(t, names))
}

func TestWatcherBurst(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "house.yaml")
	saveAs(t, fn, "start")
	names, stop := startWatcher(t, fn)
	defer stop()
	assert.Equal(t, "start", nextBuild(t, names))

	// two writes closer together than the lag: the second one is
	// always built, and the first is folded into it
	saveAs(t, fn, "first")
	time.Sleep(20 * time.Millisecond)
	saveAs(t, fn, "final")
	assert.Equal(t, "final", nextBuild(t, names))

	time.Sleep(3 * watchLag)
	assert.Empty(t, names)
}
