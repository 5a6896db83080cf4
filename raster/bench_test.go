// SPDX-License-Identifier: MIT

package raster_test

import (
	"testing"

	"github.com/katalvlaran/tissuenet/raster"
)

// honeycomb returns an n×n raster of square cells of side 'side' separated
// by one-pixel bonds, framed by bonds on the canvas border.
func honeycomb(n, side int) [][]uint32 {
	size := n*(side+1) + 1
	grid := make([][]uint32, size)
	for y := 0; y < size; y++ {
		grid[y] = make([]uint32, size)
		for x := 0; x < size; x++ {
			if x%(side+1) == 0 || y%(side+1) == 0 {
				grid[y][x] = raster.BondValue
				continue
			}
			grid[y][x] = uint32(1 + (y/(side+1))*n + x/(side+1))
		}
	}
	return grid
}

// BenchmarkComponents measures Components on a 100×100 grid of cells.
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	r, err := raster.New(honeycomb(100, 8))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Components(raster.Conn4)
	}
}

// BenchmarkNextBoundaryDirection measures one tracer step on a straight bond.
func BenchmarkNextBoundaryDirection(b *testing.B) {
	r, err := raster.New(honeycomb(4, 8))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	px := r.Pixel(raster.Position{X: 9, Y: 4})
	label := raster.CellLabel(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = px.NextBoundaryDirection(raster.N, label)
	}
}
