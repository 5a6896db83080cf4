// SPDX-License-Identifier: MIT

package tissue

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRaster indicates Build was called without a raster.
	ErrNilRaster = errors.New("tissue: raster is nil")
	// ErrUnclosedPerimeter indicates a perimeter walk exceeded its step budget.
	ErrUnclosedPerimeter = errors.New("tissue: perimeter walk did not close")
	// ErrConsistencyViolation is wrapped by every Violation.
	ErrConsistencyViolation = errors.New("tissue: consistency violation")
	// ErrUnknownVertex indicates a VertexID outside the vertex arena.
	ErrUnknownVertex = errors.New("tissue: unknown vertex")
	// ErrUnknownBond indicates a BondID outside the bond arena.
	ErrUnknownBond = errors.New("tissue: unknown bond")
	// ErrUnknownCell indicates a CellID outside the cell arena.
	ErrUnknownCell = errors.New("tissue: unknown cell")
)

// ViolationKind groups consistency violations by the entity they concern.
type ViolationKind int

const (
	// BondViolation: broken conjugate pairing.
	BondViolation ViolationKind = iota
	// VertexViolation: outgoing bonds out of geometric or topological order.
	VertexViolation
	// CellViolation: bond cycle does not close or is not simple.
	CellViolation
)

func (k ViolationKind) String() string {
	switch k {
	case BondViolation:
		return "bond"
	case VertexViolation:
		return "vertex"
	case CellViolation:
		return "cell"
	default:
		return fmt.Sprintf("violation(%d)", int(k))
	}
}

// Violation describes one failed structural invariant. Fields not
// concerned are NoVertex, NoBond or NoCell.
type Violation struct {
	Kind   ViolationKind
	Vertex VertexID
	Bond   BondID
	Cell   CellID
	Detail string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%v: %v (vertex %d, bond %d, cell %d): %s",
		ErrConsistencyViolation, v.Kind, v.Vertex, v.Bond, v.Cell, v.Detail)
}

func (v Violation) Unwrap() error { return ErrConsistencyViolation }
