// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:generate core generate

// Formats are the supported document encodings.
type Formats int32 //enums:enum -transform lower

const (
	JSON Formats = iota
	YAML
	TOML
)

// FormatFromFilename returns the document format implied by
// the extension of the given file name.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return JSON, fmt.Errorf("schema: unsupported file extension %q", filepath.Ext(filename))
}

// Open reads a schema document from the given file, using its
// extension to select the format. Both inline schema documents and
// [HouseJSON] documents are accepted.
func Open(filename string) (*Schema, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc, err := Decode(b, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// Read reads a schema document in the given format from r.
func Read(r io.Reader, f Formats) (*Schema, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(b, f)
}

// Decode decodes a schema document in the given format, detecting
// whether it is an inline schema or a [HouseJSON] document.
func Decode(b []byte, f Formats) (*Schema, error) {
	var raw map[string]any
	if err := unmarshal(b, f, &raw); err != nil {
		return nil, fmt.Errorf("schema: decoding %s: %w", f, err)
	}
	if IsHouseJSON(raw) {
		hj := &HouseJSON{}
		if err := unmarshal(b, f, hj); err != nil {
			return nil, fmt.Errorf("schema: decoding HouseJSON %s: %w", f, err)
		}
		return hj.Normalize()
	}
	sc := &Schema{}
	if err := unmarshal(b, f, sc); err != nil {
		return nil, fmt.Errorf("schema: decoding %s: %w", f, err)
	}
	if sc.Units != "" && sc.Units != "m" {
		return nil, fmt.Errorf("schema: inline documents must use meters, not %q", sc.Units)
	}
	sc.finish()
	return sc, nil
}

// IsHouseJSON reports whether a generically decoded document is in
// the [HouseJSON] format: it has meta, bounds, rooms or fixtures,
// or its walls are given by from/to points.
func IsHouseJSON(raw map[string]any) bool {
	for _, k := range []string{"meta", "bounds", "rooms", "fixtures"} {
		if _, has := raw[k]; has {
			return true
		}
	}
	walls, ok := raw["walls"].([]any)
	if !ok {
		return false
	}
	for _, w := range walls {
		if wm, ok := w.(map[string]any); ok {
			if _, has := wm["from"]; has {
				return true
			}
		}
	}
	return false
}

func unmarshal(b []byte, f Formats, v any) error {
	switch f {
	case YAML:
		return yaml.Unmarshal(b, v)
	case TOML:
		return toml.Unmarshal(b, v)
	}
	return json.Unmarshal(b, v)
}

// Save writes the schema to the given file, using its extension to
// select the format.
func (sc *Schema) Save(filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	b, err := sc.Encode(f)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}

// Encode encodes the schema as an inline schema document.
func (sc *Schema) Encode(f Formats) ([]byte, error) {
	switch f {
	case YAML:
		return yaml.Marshal(sc)
	case TOML:
		return toml.Marshal(sc)
	}
	return json.MarshalIndent(sc, "", "\t")
}
