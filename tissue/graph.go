// SPDX-License-Identifier: MIT

package tissue

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tissuenet/raster"
)

// Frame returns the frame number the graph was built for, or -1.
func (g *Graph) Frame() int { return g.frame }

// Time returns the time point the graph was built for.
func (g *Graph) Time() float64 { return g.time }

// Vertices returns the vertex arena, indexed by VertexID.
// The slice is shared; callers must not modify it.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// Bonds returns the bond arena, indexed by BondID.
// The slice is shared; callers must not modify it.
func (g *Graph) Bonds() []DirectedBond { return g.bonds }

// Cells returns the cell arena, indexed by CellID.
// The slice is shared; callers must not modify it.
func (g *Graph) Cells() []Cell { return g.cells }

// Vertex returns the vertex with the given id.
// Returns ErrUnknownVertex if id is out of range.
func (g *Graph) Vertex(id VertexID) (Vertex, error) {
	if id < 0 || int(id) >= len(g.vertices) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	return g.vertices[id], nil
}

// Bond returns the bond with the given id.
// Returns ErrUnknownBond if id is out of range.
func (g *Graph) Bond(id BondID) (DirectedBond, error) {
	if id < 0 || int(id) >= len(g.bonds) {
		return DirectedBond{}, fmt.Errorf("%w: %d", ErrUnknownBond, id)
	}
	return g.bonds[id], nil
}

// Cell returns the cell with the given id.
// Returns ErrUnknownCell if id is out of range.
func (g *Graph) Cell(id CellID) (Cell, error) {
	if id < 0 || int(id) >= len(g.cells) {
		return Cell{}, fmt.Errorf("%w: %d", ErrUnknownCell, id)
	}
	return g.cells[id], nil
}

// CellByLabel looks up the cell built for label.
func (g *Graph) CellByLabel(label raster.CellIndex) (CellID, bool) {
	id, ok := g.byLabel[label]
	return id, ok
}

// Contains reports whether a cell exists for label.
func (g *Graph) Contains(label raster.CellIndex) bool {
	_, ok := g.byLabel[label]
	return ok
}

// Next returns the bond following id in its cell's cycle.
func (g *Graph) Next(id BondID) BondID {
	b := &g.bonds[id]
	cycle := g.cells[b.Cell].Bonds
	return cycle[(b.seq+1)%len(cycle)]
}

// CellVertices returns the tail vertices of the cell's bonds, in cycle order.
func (g *Graph) CellVertices(id CellID) []VertexID {
	bonds := g.cells[id].Bonds
	out := make([]VertexID, len(bonds))
	for i, b := range bonds {
		out[i] = g.bonds[b].Tail
	}
	return out
}

// Fragmented returns the labels whose pixels form more than one
// 4-connected patch, ascending. Only the patch containing the label's first
// pixel is traced.
func (g *Graph) Fragmented() []raster.CellIndex { return g.fragmented }

// IsOnImageMargin reports whether label was dropped by RemoveMarginCells.
func (g *Graph) IsOnImageMargin(label raster.CellIndex) bool {
	_, ok := g.ignored[label]
	return ok
}

// Ignored returns the labels dropped by RemoveMarginCells, ascending.
func (g *Graph) Ignored() []raster.CellIndex {
	out := make([]raster.CellIndex, 0, len(g.ignored))
	for l := range g.ignored {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
