// SPDX-License-Identifier: MIT

// Package raster treats a segmented tissue image as a 2D grid of labels and
// provides the pixel-level primitives needed to turn it into a cell graph.
//
// What:
//
//   - Raster wraps a rectangular grid of raw 24-bit pixel values, decoded once
//     into Label values: Bond, Outside, Dividing or Cell(index).
//   - Pixel is a read-only view at one position with 8-neighbourhood access.
//   - NextBoundaryDirection walks along the bond pixels around one cell.
//   - ThickVertex merges multi-pixel junction blobs into one pixel cluster.
//
// Neighbourhood:
//
//	NW(7) N(0) NE(1)
//	W(6)   ·   E(2)
//	SW(5) S(4) SE(3)
//
// Directions run clockwise on screen (Y grows downward), alternating
// orthogonal (even) and diagonal (odd) steps.
//
// Complexity:
//
//   - New, FromImage:       O(W×H), Memory: O(W×H).
//   - NextBoundaryDirection: O(1) (8 neighbours).
//   - ThickVertex:          O(k) for a cluster of k pixels.
//   - Components:           O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyRaster: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutsideValue: the reserved Outside value appears in the data.
//   - ErrAdjacencyViolation: two regions touch without a bond pixel between them.
//   - ErrMissingLabel: the traced cell is not among a bond pixel's neighbours.
package raster
