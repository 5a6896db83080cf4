// SPDX-License-Identifier: MIT

package raster

// NextBoundaryDirection returns the direction of the next bond pixel when
// walking along the boundary of cell v, having entered the pixel by a step
// in direction in. The walk keeps v on its left, so a cell's perimeter is
// traversed counterclockwise on screen.
//
// Behavior:
//  1. Scan the 8 neighbours clockwise, starting after Opposite(in) and ending
//     on it; off-canvas neighbours read as Outside.
//  2. At every change of label between consecutive neighbours:
//     • into a bond pixel, after a run of v, with no candidate yet:
//     record that neighbour as the candidate;
//     • between two non-bond labels: fail with ErrAdjacencyViolation.
//     A later second run of v is tolerated.
//  3. No candidate: fail with ErrMissingLabel.
//  4. If the candidate's clockwise neighbour is an orthogonal bond pixel,
//     step there instead, keeping the path 4-connected.
//
// Errors are *TraceError values.
// Complexity: O(1).
func (p Pixel) NextBoundaryDirection(in Direction, v Label) (Direction, error) {
	start := in.Opposite()
	candidate, found := Direction(0), false

	last := p.NeighborLabel(start)
	for k := 1; k <= NumberOfNeighbors; k++ {
		d := start.Rotate(k)
		cur := p.NeighborLabel(d)
		if cur == last {
			continue
		}
		if cur.IsBond() {
			if last == v && !found {
				candidate, found = d, true
			}
		} else if !last.IsBond() {
			return 0, &TraceError{
				Kind:  ErrAdjacencyViolation,
				Pos:   p.Pos,
				Touch: p.Pos.Add(d.Offset()),
				Label: v,
				Prev:  last,
				Other: cur,
			}
		}
		last = cur
	}
	if !found {
		return 0, &TraceError{Kind: ErrMissingLabel, Pos: p.Pos, Label: v}
	}

	// the clockwise neighbour of the candidate is a common neighbour of this
	// pixel and cell v only if it is orthogonal
	next := candidate.Cw()
	if !next.IsDiagonal() && p.NeighborLabel(next).IsBond() {
		return next, nil
	}
	return candidate, nil
}
