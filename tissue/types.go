// SPDX-License-Identifier: MIT

package tissue

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/tissuenet/raster"
)

// VertexID indexes Graph's vertex arena.
type VertexID int

// BondID indexes Graph's bond arena.
type BondID int

// CellID indexes Graph's cell arena.
type CellID int

// Empty references.
const (
	NoVertex VertexID = -1
	NoBond   BondID   = -1
	NoCell   CellID   = -1
)

// Vertex is a junction where three or more regions meet.
//
// Pixels is the resolved thick-vertex cluster, row-major. Position is its
// centroid. Bonds lists the outgoing bonds in clockwise order on screen.
type Vertex struct {
	// Pixels is the bond-pixel cluster this vertex was resolved from.
	Pixels []raster.Position

	// Position is the centroid of Pixels.
	Position r2.Vec

	// Bonds are the outgoing bonds, clockwise around Position.
	Bonds []BondID

	// Margin is set when the cluster touches the canvas border.
	Margin bool
}

// DirectedBond is one oriented boundary segment from Tail to Head. Its cell
// lies on its left; Conjugate runs the same segment the other way and bounds
// the neighbouring cell, or is NoBond when that side is the canvas exterior.
type DirectedBond struct {
	Tail, Head VertexID
	Conjugate  BondID
	Cell       CellID

	// Pixels are the bond pixels strictly between the two vertex clusters,
	// in walking order. Empty when the clusters touch.
	Pixels []raster.Position

	// Margin is set when the segment runs along the canvas border.
	Margin bool

	exit  raster.Position  // last pixel of the tail cluster
	first raster.Direction // step leaving the tail cluster
	entry raster.Position  // first pixel of the head cluster
	last  raster.Direction // step entering the head cluster
	seq   int              // position in the owning cell's cycle
}

// toward is the first pixel after leaving the tail cluster.
func (b *DirectedBond) toward() raster.Position {
	return b.exit.Add(b.first.Offset())
}

// Cell is one labeled region bounded by a closed cycle of bonds.
type Cell struct {
	Label raster.CellIndex

	// Bonds is the cycle, counterclockwise on screen; each bond's Head is the
	// next bond's Tail.
	Bonds []BondID

	// Margin is set when any bond or vertex of the cell is margin.
	Margin bool
}

// Graph owns the vertex, bond and cell arenas of one image.
// It is read-only after Build except for RemoveMarginCells, and not safe for
// concurrent mutation.
type Graph struct {
	frame int
	time  float64

	vertices []Vertex
	bonds    []DirectedBond
	cells    []Cell

	byLabel    map[raster.CellIndex]CellID
	ignored    map[raster.CellIndex]struct{}
	fragmented []raster.CellIndex
}

func newGraph(o options) *Graph {
	return &Graph{
		frame:   o.frame,
		time:    o.time,
		byLabel: make(map[raster.CellIndex]CellID),
		ignored: make(map[raster.CellIndex]struct{}),
	}
}
