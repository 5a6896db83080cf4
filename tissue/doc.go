// SPDX-License-Identifier: MIT

// Package tissue reconstructs the cell graph of a segmented tissue image:
// vertices where three or more regions meet, directed bonds along the
// boundary segments between them, and cells bounded by closed bond cycles.
//
// What:
//
//   - Build walks the perimeter of every cell of a raster.Raster once,
//     resolving junctions into Vertex values and boundary segments into
//     DirectedBond values. Vertices and bonds are memoised so that adjacent
//     cells share the identical vertex and pair their bonds as conjugates.
//   - CheckConsistency verifies conjugate pairing, the clockwise order of
//     bonds around each vertex and the closure of each cell's bond cycle,
//     returning every violation found.
//   - RemoveMarginCells drops cells touching the canvas border.
//
// Storage:
//
// Vertices, bonds and cells live in three arenas owned by Graph; all cross
// references are indices (VertexID, BondID, CellID). NoVertex, NoBond and
// NoCell mark absent references, e.g. the conjugate of a bond running along
// the canvas border.
//
// Orientation:
//
// A cell's bonds are listed counterclockwise on screen: the cell lies on the
// left of each of its bonds. A vertex lists its outgoing bonds clockwise on
// screen, so the clockwise successor of bond b is the bond following
// b's conjugate in the neighbouring cell.
//
// Errors:
//
//   - raster.ErrAdjacencyViolation, raster.ErrMissingLabel: tracing failed;
//     Build returns no graph.
//   - ErrUnclosedPerimeter: a perimeter walk never returned to its start.
//   - ErrConsistencyViolation: wrapped by every Violation.
//
// Complexity: Build is O(W×H) time and memory; CheckConsistency is
// O(V + B log B + C).
package tissue
