// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroLength is returned for a wall whose start and end coincide.
	ErrZeroLength = errors.New("zero length")

	// ErrThickness is returned for a non-positive thickness.
	ErrThickness = errors.New("thickness must be positive")

	// ErrHeight is returned for a non-positive height.
	ErrHeight = errors.New("height must be positive")

	// ErrSize is returned for a non-positive width, depth, or size.
	ErrSize = errors.New("size must be positive")

	// ErrTooFewPoints is returned for a path with fewer than two points.
	ErrTooFewPoints = errors.New("path needs at least 2 points")

	// ErrHoleSize is returned for a hole with a non-positive size.
	ErrHoleSize = errors.New("hole size must be positive")

	// ErrHoleBounds is returned for a hole that extends outside its slab
	// or touches its edge.
	ErrHoleBounds = errors.New("hole extends outside slab")

	// ErrHoleOverlap is returned for a hole that overlaps or touches
	// an earlier hole.
	ErrHoleOverlap = errors.New("hole overlaps another hole")

	// ErrDuplicateID is returned for an entity whose id is already
	// used by an earlier entity of the same kind.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrFixtureType is returned for an unknown fixture type.
	ErrFixtureType = errors.New("unknown fixture type")
)

// EntityError records why a single schema entity was rejected.
type EntityError struct {
	// Kind is the entity kind, e.g. "wall" or "tube".
	Kind string

	// ID is the entity id, if any.
	ID string

	// Index is the position of the entity in its collection.
	Index int

	Err error
}

func (e *EntityError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q (#%d): %v", e.Kind, e.ID, e.Index, e.Err)
	}
	return fmt.Sprintf("%s #%d: %v", e.Kind, e.Index, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}
