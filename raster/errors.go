// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRaster indicates the input grid has no rows or no columns.
	ErrEmptyRaster = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrOutsideValue indicates the reserved Outside value was found in the data.
	ErrOutsideValue = errors.New("raster: reserved outside value present in data")
	// ErrReservedGlyph indicates a text rune whose code point is a reserved pixel value.
	ErrReservedGlyph = errors.New("raster: rune collides with a reserved pixel value")
	// ErrAdjacencyViolation indicates two distinct regions touch without a bond pixel in between.
	ErrAdjacencyViolation = errors.New("raster: two regions touch without bond in between")
	// ErrMissingLabel indicates the traced label is absent among a bond pixel's neighbours.
	ErrMissingLabel = errors.New("raster: label not found among neighbours")
)

// TraceError reports a failed boundary step. It unwraps to Kind, which is
// ErrAdjacencyViolation or ErrMissingLabel.
type TraceError struct {
	Kind  error
	Pos   Position // bond pixel whose neighbourhood was scanned
	Touch Position // neighbour where the offending run starts (adjacency only)
	Label Label    // label being traced
	Prev  Label    // label of the run ending just before Touch (adjacency only)
	Other Label    // label of the run starting at Touch (adjacency only)
}

func (e *TraceError) Error() string {
	if errors.Is(e.Kind, ErrAdjacencyViolation) {
		return fmt.Sprintf("%v: %v meets %v at %v (around %v)", e.Kind, e.Prev, e.Other, e.Touch, e.Pos)
	}
	return fmt.Sprintf("%v: %v around %v", e.Kind, e.Label, e.Pos)
}

func (e *TraceError) Unwrap() error { return e.Kind }
