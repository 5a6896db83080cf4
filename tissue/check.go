// SPDX-License-Identifier: MIT

package tissue

import "fmt"

// CheckConsistency validates the graph and returns every violation found,
// nil when the graph is consistent.
//
// Bonds: the conjugate's conjugate is the bond itself, it bounds another
// cell and runs between the same vertices the other way; a bond without
// conjugate lies on the margin.
//
// Vertices: every listed bond starts at the vertex; the bonds are in
// strictly clockwise order of their directions; away from the margin, the
// clockwise successor of b is the bond following b's conjugate in its cell.
//
// Cells: the cycle has at least three bonds owned by the cell, each bond
// ends where the next starts, and no vertex or bond repeats.
//
// Complexity: O(V + B + C).
func (g *Graph) CheckConsistency() []Violation {
	var out []Violation
	out = g.checkBonds(out)
	out = g.checkVertices(out)
	out = g.checkCells(out)
	return out
}

func (g *Graph) checkBonds(out []Violation) []Violation {
	bad := func(id BondID, format string, args ...any) {
		out = append(out, Violation{
			Kind: BondViolation, Vertex: NoVertex, Bond: id, Cell: g.bonds[id].Cell,
			Detail: fmt.Sprintf(format, args...),
		})
	}
	for i := range g.bonds {
		id, b := BondID(i), &g.bonds[i]
		if b.Conjugate == NoBond {
			if !b.Margin {
				bad(id, "no conjugate away from the margin")
			}
			continue
		}
		if b.Conjugate < 0 || int(b.Conjugate) >= len(g.bonds) {
			bad(id, "conjugate %d out of range", b.Conjugate)
			continue
		}
		c := &g.bonds[b.Conjugate]
		if c.Conjugate != id {
			bad(id, "conjugate %d pairs with %d", b.Conjugate, c.Conjugate)
		}
		if c.Cell == b.Cell {
			bad(id, "conjugate %d bounds the same cell", b.Conjugate)
		}
		if c.Tail != b.Head || c.Head != b.Tail {
			bad(id, "conjugate %d runs %d->%d, want %d->%d", b.Conjugate, c.Tail, c.Head, b.Head, b.Tail)
		}
	}
	return out
}

func (g *Graph) checkVertices(out []Violation) []Violation {
	bad := func(id VertexID, bond BondID, format string, args ...any) {
		out = append(out, Violation{
			Kind: VertexViolation, Vertex: id, Bond: bond, Cell: NoCell,
			Detail: fmt.Sprintf(format, args...),
		})
	}
	listed := make([]int, len(g.bonds))
	for i := range g.vertices {
		id, v := VertexID(i), &g.vertices[i]
		k := len(v.Bonds)
		for _, bid := range v.Bonds {
			listed[bid]++
			if g.bonds[bid].Tail != id {
				bad(id, bid, "listed bond starts at vertex %d", g.bonds[bid].Tail)
			}
		}
		if k < 2 {
			continue
		}

		descents := 0
		for j, bid := range v.Bonds {
			next := v.Bonds[(j+1)%k]
			a, b := g.bondAngle(bid), g.bondAngle(next)
			switch {
			case a == b:
				bad(id, bid, "bond leaves in the same direction as bond %d", next)
			case b < a:
				descents++
			}
		}
		if descents > 1 {
			bad(id, NoBond, "bonds not in clockwise order")
		}

		if v.Margin {
			continue
		}
		for j, bid := range v.Bonds {
			conj := g.bonds[bid].Conjugate
			if conj == NoBond {
				continue
			}
			want := v.Bonds[(j+1)%k]
			if got := g.Next(conj); got != want {
				bad(id, bid, "clockwise successor is %d, conjugate cycle continues with %d", want, got)
			}
		}
	}
	for bid, n := range listed {
		if n != 1 {
			tail := g.bonds[bid].Tail
			bad(tail, BondID(bid), "bond listed %d times", n)
		}
	}
	return out
}

func (g *Graph) checkCells(out []Violation) []Violation {
	bad := func(id CellID, bond BondID, format string, args ...any) {
		out = append(out, Violation{
			Kind: CellViolation, Vertex: NoVertex, Bond: bond, Cell: id,
			Detail: fmt.Sprintf(format, args...),
		})
	}
	for i := range g.cells {
		id, c := CellID(i), &g.cells[i]
		k := len(c.Bonds)
		if k < 3 {
			bad(id, NoBond, "cycle of %d bonds", k)
			if k == 0 {
				continue
			}
		}
		vertices := make(map[VertexID]struct{}, k)
		bonds := make(map[BondID]struct{}, k)
		for j, bid := range c.Bonds {
			b := &g.bonds[bid]
			if b.Cell != id {
				bad(id, bid, "bond owned by cell %d", b.Cell)
			}
			if _, ok := bonds[bid]; ok {
				bad(id, bid, "bond repeats")
			}
			bonds[bid] = struct{}{}
			if _, ok := vertices[b.Tail]; ok {
				bad(id, bid, "vertex %d repeats", b.Tail)
			}
			vertices[b.Tail] = struct{}{}

			next := &g.bonds[c.Bonds[(j+1)%k]]
			if b.Head != next.Tail {
				if j == k-1 {
					bad(id, bid, "cycle does not close: ends at %d, starts at %d", b.Head, next.Tail)
				} else {
					bad(id, bid, "bond ends at %d, next starts at %d", b.Head, next.Tail)
				}
			}
		}
	}
	return out
}
