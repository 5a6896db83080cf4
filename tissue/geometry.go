// SPDX-License-Identifier: MIT

package tissue

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/tissuenet/raster"
)

// vec places a pixel at its centre in continuous coordinates.
func vec(p raster.Position) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// bondAngle is the screen angle from the tail vertex centroid to the bond's
// first pixel; it grows clockwise since Y points down.
func (g *Graph) bondAngle(id BondID) float64 {
	b := &g.bonds[id]
	d := r2.Sub(vec(b.toward()), g.vertices[b.Tail].Position)
	return math.Atan2(d.Y, d.X)
}

// bondPolyline runs from the tail vertex centroid through the interior
// pixels to the head vertex centroid.
func (g *Graph) bondPolyline(id BondID) []r2.Vec {
	b := &g.bonds[id]
	pts := make([]r2.Vec, 0, len(b.Pixels)+2)
	pts = append(pts, g.vertices[b.Tail].Position)
	for _, p := range b.Pixels {
		pts = append(pts, vec(p))
	}
	return append(pts, g.vertices[b.Head].Position)
}

// BondLength returns the length of the bond's polyline in pixels.
// id must be a valid BondID.
func (g *Graph) BondLength(id BondID) float64 {
	pts := g.bondPolyline(id)
	segs := make([]float64, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		segs = append(segs, r2.Norm(r2.Sub(pts[i], pts[i-1])))
	}
	return floats.Sum(segs)
}

// cellPolygon lists the outline of a cell: each bond's tail centroid followed
// by its interior pixels.
func (g *Graph) cellPolygon(id CellID) []r2.Vec {
	var pts []r2.Vec
	for _, bid := range g.cells[id].Bonds {
		pl := g.bondPolyline(bid)
		pts = append(pts, pl[:len(pl)-1]...)
	}
	return pts
}

// shoelace returns the signed area of a closed polygon and its first moment
// scaled by 6; the area is negative for counterclockwise outlines on screen.
func shoelace(pts []r2.Vec) (area float64, moment r2.Vec) {
	cross := make([]float64, len(pts))
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		cross[i] = r2.Cross(p, q)
		moment = r2.Add(moment, r2.Scale(cross[i], r2.Add(p, q)))
	}
	return floats.Sum(cross) / 2, moment
}

// CellArea returns the area enclosed by the cell's outline through pixel
// centres. id must be a valid CellID.
func (g *Graph) CellArea(id CellID) float64 {
	a, _ := shoelace(g.cellPolygon(id))
	return math.Abs(a)
}

// CellCentroid returns the centroid of the area enclosed by the cell's
// outline, or the mean outline point when that area is zero.
// id must be a valid CellID.
func (g *Graph) CellCentroid(id CellID) r2.Vec {
	pts := g.cellPolygon(id)
	if len(pts) == 0 {
		return r2.Vec{}
	}
	a, m := shoelace(pts)
	if a == 0 {
		var sum r2.Vec
		for _, p := range pts {
			sum = r2.Add(sum, p)
		}
		return r2.Scale(1/float64(len(pts)), sum)
	}
	return r2.Scale(1/(6*a), m)
}
