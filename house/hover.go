// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package house

// HoverCategories are the groups whose info can be shown on hover.
type HoverCategories int32 //enums:enum -trim-prefix Hover -transform lower

const (
	// HoverNone shows nothing.
	HoverNone HoverCategories = iota

	// HoverWire shows wire info.
	HoverWire

	// HoverTube shows tube info.
	HoverTube
)

// Hover tracks pointer enter and leave on the wire and tube groups.
// The category shown is set by whichever group last had the pointer
// enter, and cleared whenever either group has the pointer leave,
// regardless of which is nearer.
type Hover struct {
	// Category is the current category.
	Category HoverCategories

	inWires bool
	inTubes bool
}

// Update applies the hit state of one frame, with wire events
// handled before tube events. It returns whether Category changed.
func (hv *Hover) Update(wireHit, tubeHit bool) bool {
	prev := hv.Category
	hv.inWires = hv.transition(hv.inWires, wireHit, HoverWire)
	hv.inTubes = hv.transition(hv.inTubes, tubeHit, HoverTube)
	return hv.Category != prev
}

func (hv *Hover) transition(was, is bool, cat HoverCategories) bool {
	switch {
	case is && !was:
		hv.Category = cat
	case was && !is:
		hv.Category = HoverNone
	}
	return is
}

// Reset clears all hover state.
func (hv *Hover) Reset() {
	*hv = Hover{}
}
