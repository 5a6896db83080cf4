// SPDX-License-Identifier: MIT

package tissue_test

import (
	"testing"

	"github.com/katalvlaran/tissuenet/raster"
	"github.com/katalvlaran/tissuenet/tissue"
)

// squareGrid lays out n×n square cells of the given side,
// separated by one-pixel bonds, and labeled from 256 upward to stay clear
// of the dividing marker value.
func squareGrid(b *testing.B, n, side int) *raster.Raster {
	b.Helper()
	size := n*(side+1) + 1
	values := make([][]uint32, size)
	for y := range values {
		values[y] = make([]uint32, size)
		for x := range values[y] {
			if x%(side+1) == 0 || y%(side+1) == 0 {
				values[y][x] = raster.BondValue
				continue
			}
			values[y][x] = uint32((y/(side+1))*n + x/(side+1) + 256)
		}
	}
	r, err := raster.New(values)
	if err != nil {
		b.Fatal(err)
	}
	return r
}

func BenchmarkBuild(b *testing.B) {
	r := squareGrid(b, 32, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tissue.Build(r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheckConsistency(b *testing.B) {
	g, err := tissue.Build(squareGrid(b, 32, 8))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.CheckConsistency()
	}
}
