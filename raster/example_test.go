// SPDX-License-Identifier: MIT

package raster_test

import (
	"fmt"

	"github.com/katalvlaran/tissuenet/raster"
)

// ExamplePixel_NextBoundaryDirection walks once around a single cell framed
// by bond pixels and prints the corners it turns at.
func ExamplePixel_NextBoundaryDirection() {
	r, _ := raster.FromStrings(
		"#####",
		"#AAA#",
		"#AAA#",
		"#####",
	)
	label := raster.CellLabel('A')

	// start on the bond pixel above the cell's first pixel, as if entered from it
	px := r.Pixel(raster.Position{X: 1, Y: 0})
	d, _ := px.NextBoundaryDirection(raster.N, label)
	for i := 0; i < 14; i++ {
		next := px.Neighbor(d)
		nd, err := next.NextBoundaryDirection(d, label)
		if err != nil {
			fmt.Println(err)
			return
		}
		if nd != d {
			fmt.Printf("turn %v -> %v at %v\n", d, nd, next.Pos)
		}
		px, d = next, nd
	}

	// Output:
	// turn W -> S at (0,0)
	// turn S -> E at (0,3)
	// turn E -> N at (4,3)
	// turn N -> W at (4,0)
}

// ExamplePixel_ThickVertex merges a 2×2 junction blob.
func ExamplePixel_ThickVertex() {
	r, _ := raster.FromStrings(
		"########",
		"#11#222#",
		"#11##22#",
		"########",
		"#333#44#",
		"#333#44#",
		"########",
	)
	fmt.Println(r.Pixel(raster.Position{X: 4, Y: 3}).ThickVertex())

	// Output:
	// [(3,2) (4,2) (3,3) (4,3)]
}
