// SPDX-License-Identifier: MIT

package raster

import "sort"

// ThickVertex expands the pixel into the full set of bond pixels forming one
// junction blob. A pixel grows into its neighbours i, i+1, i+2 (i even) when
// all three are bond pixels; pixels on the canvas margin never grow.
// The result contains the pixel itself and is sorted row-major.
//
// Complexity: O(k) time and memory for a blob of k pixels.
func (p Pixel) ThickVertex() []Position {
	visited := map[Position]struct{}{p.Pos: {}}
	stack := []Position{p.Pos}

	for len(stack) > 0 {
		cur := p.raster.Pixel(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
		if cur.IsOnMargin() {
			continue
		}
		for i := Direction(0); i < NumberOfNeighbors; i += 2 {
			triple := [3]Direction{i, i.Cw(), i.Rotate(2)}
			if !cur.NeighborLabel(triple[0]).IsBond() ||
				!cur.NeighborLabel(triple[1]).IsBond() ||
				!cur.NeighborLabel(triple[2]).IsBond() {
				continue
			}
			for _, d := range triple {
				q := cur.Pos.Add(d.Offset())
				if _, ok := visited[q]; ok {
					continue
				}
				visited[q] = struct{}{}
				stack = append(stack, q)
			}
		}
	}

	out := make([]Position, 0, len(visited))
	for q := range visited {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
