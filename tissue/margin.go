// SPDX-License-Identifier: MIT

package tissue

import (
	"fmt"

	"github.com/katalvlaran/tissuenet/raster"
)

// RemoveMarginCells removes every margin cell together with its bonds and
// returns how many cells were removed. Their labels are recorded and
// reported by IsOnImageMargin and Ignored.
//
// Bonds whose conjugate was removed lose it and become margin bonds;
// vertices left without bonds are dropped, and vertices and cells on the new
// border are flagged margin. The arenas are compacted, so IDs obtained
// before the call are invalid afterwards.
//
// Complexity: O(V + B + C).
func (g *Graph) RemoveMarginCells() int {
	for _, c := range g.cells {
		if c.Margin {
			g.ignored[c.Label] = struct{}{}
		}
	}
	return g.removeCells(func(c Cell) bool { return c.Margin })
}

// RemoveCell removes the cell built for label together with its bonds, with
// the same compaction and margin updates as RemoveMarginCells. The label is
// not recorded as ignored. Returns ErrUnknownCell if no cell has label.
//
// Complexity: O(V + B + C).
func (g *Graph) RemoveCell(label raster.CellIndex) error {
	if !g.Contains(label) {
		return fmt.Errorf("%w: label %#x", ErrUnknownCell, uint32(label))
	}
	g.removeCells(func(c Cell) bool { return c.Label == label })
	return nil
}

// removeCells drops the cells matched by drop, compacts the arenas and
// returns how many cells were removed.
func (g *Graph) removeCells(drop func(Cell) bool) int {
	cellMap := make([]CellID, len(g.cells))
	cells := g.cells[:0:0]
	for i, c := range g.cells {
		if drop(c) {
			cellMap[i] = NoCell
			continue
		}
		cellMap[i] = CellID(len(cells))
		cells = append(cells, c)
	}
	removed := len(g.cells) - len(cells)
	if removed == 0 {
		return 0
	}

	bondMap := make([]BondID, len(g.bonds))
	bonds := make([]DirectedBond, 0, len(g.bonds))
	used := make([]bool, len(g.vertices))
	for i, b := range g.bonds {
		if cellMap[b.Cell] == NoCell {
			bondMap[i] = NoBond
			continue
		}
		bondMap[i] = BondID(len(bonds))
		bonds = append(bonds, b)
		used[b.Tail], used[b.Head] = true, true
	}

	vertexMap := make([]VertexID, len(g.vertices))
	vertices := make([]Vertex, 0, len(g.vertices))
	for i, v := range g.vertices {
		if !used[i] {
			vertexMap[i] = NoVertex
			continue
		}
		vertexMap[i] = VertexID(len(vertices))
		kept := v.Bonds[:0:0]
		for _, bid := range v.Bonds {
			if nb := bondMap[bid]; nb != NoBond {
				kept = append(kept, nb)
			}
		}
		v.Bonds = kept
		vertices = append(vertices, v)
	}

	for i := range bonds {
		b := &bonds[i]
		b.Tail, b.Head = vertexMap[b.Tail], vertexMap[b.Head]
		b.Cell = cellMap[b.Cell]
		if b.Conjugate != NoBond {
			if b.Conjugate = bondMap[b.Conjugate]; b.Conjugate == NoBond {
				b.Margin = true
			}
		}
		if b.Margin {
			vertices[b.Tail].Margin = true
			vertices[b.Head].Margin = true
		}
	}

	g.byLabel = make(map[raster.CellIndex]CellID, len(cells))
	for i := range cells {
		c := &cells[i]
		ids := make([]BondID, len(c.Bonds))
		for j, bid := range c.Bonds {
			ids[j] = bondMap[bid]
		}
		c.Bonds = ids
		g.byLabel[c.Label] = CellID(i)
	}

	g.vertices, g.bonds, g.cells = vertices, bonds, cells
	for i := range g.cells {
		g.cells[i].Margin = g.touchesMargin(CellID(i))
	}
	return removed
}
