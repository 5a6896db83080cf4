// SPDX-License-Identifier: MIT

package raster

import "fmt"

// Raw pixel values with a reserved meaning. Every other value is a cell index.
const (
	BondValue     uint32 = 0x00FFFFFF
	OutsideValue  uint32 = 0xFF000000
	DividingValue uint32 = 0x000000FF
)

// CellIndex identifies a cell by its raw pixel value.
type CellIndex uint32

// Kind classifies a decoded pixel value.
type Kind uint8

const (
	// KindCell marks a pixel inside a cell; Label.Index holds the cell index.
	KindCell Kind = iota
	// KindBond marks a one-pixel-wide boundary pixel.
	KindBond
	// KindOutside is the synthetic value of off-canvas positions.
	KindOutside
	// KindDividing marks a dividing-cell marker pixel.
	KindDividing
)

func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindBond:
		return "bond"
	case KindOutside:
		return "outside"
	case KindDividing:
		return "dividing"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Label is a decoded pixel value. Labels are comparable; two labels are the
// same region iff they are equal.
type Label struct {
	Kind  Kind
	Index CellIndex // meaningful only for KindCell
}

// Predefined non-cell labels.
var (
	Bond     = Label{Kind: KindBond}
	Outside  = Label{Kind: KindOutside}
	Dividing = Label{Kind: KindDividing}
)

// CellLabel returns the label of cell idx.
func CellLabel(idx CellIndex) Label {
	return Label{Kind: KindCell, Index: idx}
}

// Decode maps a raw pixel value onto its Label.
func Decode(v uint32) Label {
	switch v {
	case BondValue:
		return Bond
	case OutsideValue:
		return Outside
	case DividingValue:
		return Dividing
	default:
		return CellLabel(CellIndex(v))
	}
}

// Raw returns the raw pixel value encoding l.
func (l Label) Raw() uint32 {
	switch l.Kind {
	case KindBond:
		return BondValue
	case KindOutside:
		return OutsideValue
	case KindDividing:
		return DividingValue
	default:
		return uint32(l.Index)
	}
}

// IsBond reports whether l is the bond label.
func (l Label) IsBond() bool { return l.Kind == KindBond }

// IsCell reports whether l identifies a cell.
func (l Label) IsCell() bool { return l.Kind == KindCell }

func (l Label) String() string {
	if l.Kind == KindCell {
		return fmt.Sprintf("cell(%#x)", uint32(l.Index))
	}
	return l.Kind.String()
}
