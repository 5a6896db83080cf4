// SPDX-License-Identifier: MIT

package raster

import "fmt"

// ASCII glyphs understood by FromStrings.
const (
	BondGlyph     = '#'
	DividingGlyph = '*'
)

// FromStrings builds a Raster from text rows, one rune per pixel:
// '#' is a bond pixel, '*' a dividing marker and any other rune is the cell
// whose index is the rune's code point. 'ÿ' (U+00FF) is rejected with
// ErrReservedGlyph since its code point is DividingValue. Handy for fixtures
// and examples:
//
//	#####
//	#AAA#
//	#####
func FromStrings(rows ...string) (*Raster, error) {
	values := make([][]uint32, len(rows))
	for y, row := range rows {
		for _, c := range row {
			switch c {
			case BondGlyph:
				values[y] = append(values[y], BondValue)
			case DividingGlyph:
				values[y] = append(values[y], DividingValue)
			case rune(DividingValue):
				return nil, fmt.Errorf("%w: %q in row %d", ErrReservedGlyph, c, y)
			default:
				values[y] = append(values[y], uint32(c))
			}
		}
	}
	return New(values)
}
