// SPDX-License-Identifier: MIT

package tissue_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tissuenet/raster"
	"github.com/katalvlaran/tissuenet/tissue"
)

// Fixtures: '#' is a bond pixel, every other rune is the cell with that
// code point as index.
var (
	singleRect = []string{
		"#####",
		"#AAA#",
		"#AAA#",
		"#AAA#",
		"#####",
	}

	twoRects = []string{
		"#######",
		"#AA#BB#",
		"#AA#BB#",
		"#AA#BB#",
		"#######",
	}

	// A and C above D, meeting at (3,3).
	tJunction = []string{
		"#######",
		"#AA#CC#",
		"#AA#CC#",
		"#######",
		"#DDDDD#",
		"#DDDDD#",
		"#######",
	}

	// 1, 2, 3 and 4 meet at the 2×2 blob (3,2),(4,2),(3,3),(4,3).
	fourCellBlob = []string{
		"########",
		"#11#222#",
		"#11##22#",
		"########",
		"#333#44#",
		"#333#44#",
		"########",
	}

	// E is the only cell off the margin.
	grid3x3 = []string{
		"##########",
		"#AA#BB#CC#",
		"#AA#BB#CC#",
		"##########",
		"#DD#EE#FF#",
		"#DD#EE#FF#",
		"##########",
		"#GG#HH#II#",
		"#GG#HH#II#",
		"##########",
	}

	// A touches C with no bond pixel between them.
	touching = []string{
		"######",
		"#AACC#",
		"#AACC#",
		"######",
	}

	// B sits in a hole of A.
	nested = []string{
		"#######",
		"#AAAAA#",
		"#A###A#",
		"#A#B#A#",
		"#A###A#",
		"#AAAAA#",
		"#######",
	}
)

func label(r rune) raster.CellIndex { return raster.CellIndex(r) }

func mustRaster(t testing.TB, rows ...string) *raster.Raster {
	t.Helper()
	r, err := raster.FromStrings(rows...)
	require.NoError(t, err)
	return r
}

func mustBuild(t testing.TB, rows []string, opts ...tissue.Option) *tissue.Graph {
	t.Helper()
	g, err := tissue.Build(mustRaster(t, rows...), opts...)
	require.NoError(t, err)
	require.NotNil(t, g)
	return g
}

// vertexAt finds the vertex whose cluster holds p.
func vertexAt(t testing.TB, g *tissue.Graph, p raster.Position) tissue.VertexID {
	t.Helper()
	for i, v := range g.Vertices() {
		if slices.Contains(v.Pixels, p) {
			return tissue.VertexID(i)
		}
	}
	require.Failf(t, "no vertex", "at %v", p)
	return tissue.NoVertex
}

func cellOf(t testing.TB, g *tissue.Graph, r rune) tissue.CellID {
	t.Helper()
	id, ok := g.CellByLabel(label(r))
	require.True(t, ok, "cell %q", r)
	return id
}

// pairedBonds returns the bonds that have a conjugate.
func pairedBonds(g *tissue.Graph) []tissue.BondID {
	var out []tissue.BondID
	for i, b := range g.Bonds() {
		if b.Conjugate != tissue.NoBond {
			out = append(out, tissue.BondID(i))
		}
	}
	return out
}
