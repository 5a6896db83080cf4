// SPDX-License-Identifier: MIT

package raster

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Component is one contiguous patch of pixels sharing a cell label.
type Component struct {
	Label  CellIndex
	Pixels []Position // BFS order, first pixel is the row-major first
}

// Components finds all contiguous patches of cell pixels with equal labels,
// according to conn. Bond, Dividing and Outside pixels never belong to a
// component. Components are returned in row-major order of their first pixel.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (r *Raster) Components(conn Connectivity) []Component {
	step := 2
	if conn == Conn8 {
		step = 1
	}
	seen := make([]bool, len(r.labels))
	var comps []Component

	for i0, l := range r.labels {
		if !l.IsCell() || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		comp := Component{Label: l.Index}

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := r.Coordinate(queue[qi])
			u := Position{X: ux, Y: uy}
			comp.Pixels = append(comp.Pixels, u)
			for d := Direction(0); d < NumberOfNeighbors; d += Direction(step) {
				v := u.Add(d.Offset())
				if !r.InBounds(v) {
					continue
				}
				vi := r.index(v.X, v.Y)
				if !seen[vi] && r.labels[vi] == l {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
