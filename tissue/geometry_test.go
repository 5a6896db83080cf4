// SPDX-License-Identifier: MIT

package tissue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tissuenet/tissue"
)

func TestGeometry_Rectangle(t *testing.T) {
	g := mustBuild(t, singleRect)

	assert.InDelta(t, 16.0, g.CellArea(0), 1e-9)
	c := g.CellCentroid(0)
	assert.InDelta(t, 2.0, c.X, 1e-9)
	assert.InDelta(t, 2.0, c.Y, 1e-9)

	for i := range g.Bonds() {
		assert.InDelta(t, 4.0, g.BondLength(tissue.BondID(i)), 1e-9)
	}
}

func TestGeometry_InnerCell(t *testing.T) {
	g := mustBuild(t, grid3x3)
	e := cellOf(t, g, 'E')

	assert.InDelta(t, 9.0, g.CellArea(e), 1e-9)
	c := g.CellCentroid(e)
	assert.InDelta(t, 4.5, c.X, 1e-9)
	assert.InDelta(t, 4.5, c.Y, 1e-9)
}

func TestGeometry_ThickVertexBond(t *testing.T) {
	g := mustBuild(t, fourCellBlob)
	one := g.Cells()[cellOf(t, g, '1')]

	var total float64
	for _, bid := range one.Bonds {
		total += g.BondLength(bid)
	}
	// the outline passes through the blob centroid instead of its corner
	assert.Greater(t, total, 11.0)
	assert.Less(t, total, 13.0)
}
