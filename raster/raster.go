// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/color"
	"sort"
)

// Raster is a rectangular grid of decoded labels. It is immutable once built.
// Width and Height define dimensions; labels are stored row-major.
type Raster struct {
	Width, Height int
	labels        []Label
}

// New constructs a Raster from a non-empty, rectangular 2D slice of raw
// pixel values, values[y][x]. Every value is decoded once.
// Returns ErrEmptyRaster if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrOutsideValue if the reserved Outside value occurs.
// Complexity: O(W×H) time and memory.
func New(values [][]uint32) (*Raster, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyRaster
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	r := &Raster{Width: w, Height: h, labels: make([]Label, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y][x] == OutsideValue {
				return nil, ErrOutsideValue
			}
			r.labels[r.index(x, y)] = Decode(values[y][x])
		}
	}

	return r, nil
}

// FromImage decodes img into a Raster. Each pixel's 8-bit non-premultiplied
// RGB channels are packed as 0xRRGGBB; alpha is ignored.
// Complexity: O(W×H) time and memory.
func FromImage(img image.Image) (*Raster, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyRaster
	}
	w, h := b.Dx(), b.Dy()
	r := &Raster{Width: w, Height: h, labels: make([]Label, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			v := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
			r.labels[r.index(x, y)] = Decode(v)
		}
	}

	return r, nil
}

// InBounds reports whether p lies within the raster.
// Complexity: O(1).
func (r *Raster) InBounds(p Position) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

// At returns the label at p, or Outside if p is off canvas.
// Complexity: O(1).
func (r *Raster) At(p Position) Label {
	if !r.InBounds(p) {
		return Outside
	}
	return r.labels[r.index(p.X, p.Y)]
}

// Pixel returns a view at p. p must be on canvas.
func (r *Raster) Pixel(p Position) Pixel {
	return Pixel{raster: r, Pos: p}
}

// CellLabels returns the distinct cell indices present, ascending.
// Complexity: O(W×H + C log C).
func (r *Raster) CellLabels() []CellIndex {
	seen := make(map[CellIndex]struct{})
	var out []CellIndex
	for _, l := range r.labels {
		if !l.IsCell() {
			continue
		}
		if _, ok := seen[l.Index]; ok {
			continue
		}
		seen[l.Index] = struct{}{}
		out = append(out, l.Index)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Seeds returns, for every cell index, its first pixel in row-major order.
// That pixel has no pixel of the same cell above it.
// Complexity: O(W×H).
func (r *Raster) Seeds() map[CellIndex]Position {
	seeds := make(map[CellIndex]Position)
	for i, l := range r.labels {
		if !l.IsCell() {
			continue
		}
		if _, ok := seeds[l.Index]; !ok {
			x, y := r.Coordinate(i)
			seeds[l.Index] = Position{X: x, Y: y}
		}
	}
	return seeds
}

// DividingMarkers returns the positions of all dividing-cell marker pixels,
// row-major.
func (r *Raster) DividingMarkers() []Position {
	var out []Position
	for i, l := range r.labels {
		if l.Kind == KindDividing {
			x, y := r.Coordinate(i)
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (r *Raster) index(x, y int) int {
	return y*r.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (r *Raster) Coordinate(idx int) (x, y int) {
	return idx % r.Width, idx / r.Width
}
