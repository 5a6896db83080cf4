// SPDX-License-Identifier: MIT

package raster

// Pixel is a read-only view into a Raster at one on-canvas position.
// Off-canvas neighbours are never read; they report Outside.
type Pixel struct {
	raster *Raster
	Pos    Position
}

// Label returns the label at the pixel's position.
func (p Pixel) Label() Label {
	return p.raster.labels[p.raster.index(p.Pos.X, p.Pos.Y)]
}

// Neighbor returns the view one step in direction d. The caller must check
// IsNeighborOnCanvas before reading the neighbour's label.
func (p Pixel) Neighbor(d Direction) Pixel {
	return Pixel{raster: p.raster, Pos: p.Pos.Add(d.Offset())}
}

// IsNeighborOnCanvas reports whether the neighbour in direction d exists.
func (p Pixel) IsNeighborOnCanvas(d Direction) bool {
	return p.raster.InBounds(p.Pos.Add(d.Offset()))
}

// NeighborLabel returns the neighbour's label in direction d, substituting
// Outside for off-canvas positions.
func (p Pixel) NeighborLabel(d Direction) Label {
	if !p.IsNeighborOnCanvas(d) {
		return Outside
	}
	return p.Neighbor(d).Label()
}

// IsOnMargin reports whether any neighbour lies off canvas.
func (p Pixel) IsOnMargin() bool {
	for d := Direction(0); d < NumberOfNeighbors; d++ {
		if !p.IsNeighborOnCanvas(d) {
			return true
		}
	}
	return false
}

// IsCanvasCorner reports whether the pixel sits in one of the four canvas corners.
func (p Pixel) IsCanvasCorner() bool {
	r := p.raster
	return (p.Pos.X == 0 || p.Pos.X == r.Width-1) && (p.Pos.Y == 0 || p.Pos.Y == r.Height-1)
}

// Regions returns the distinct non-bond labels around the pixel, in
// clockwise order of first appearance starting at north. Off-canvas
// neighbours contribute Outside.
func (p Pixel) Regions() []Label {
	var out []Label
	for d := Direction(0); d < NumberOfNeighbors; d++ {
		l := p.NeighborLabel(d)
		if l.IsBond() || containsLabel(out, l) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func containsLabel(ls []Label, l Label) bool {
	for _, x := range ls {
		if x == l {
			return true
		}
	}
	return false
}
