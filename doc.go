// SPDX-License-Identifier: MIT

// Package tissuenet rebuilds the cell graph of a segmented epithelial tissue
// image: where the segmentation draws one-pixel-wide boundaries between
// labeled cells, tissuenet recovers the planar subdivision behind it.
//
// What is in the box?
//
//	• Raster ingestion: PNG, GIF, JPEG, TIFF and BMP label images
//	• Boundary tracing: perimeter walks that keep the cell on their left
//	• Thick vertices: multi-pixel junction blobs merged into one vertex
//	• Graph arenas: vertices, directed bonds with conjugates, cells
//	• Consistency checks: conjugate pairing, clockwise vertex order, closed cycles
//	• Margin bookkeeping: border cells flagged and removable
//
// Under the hood the work is split into:
//
//	raster/          label decoding, pixel neighbourhoods, tracer, thick-vertex resolver
//	tissue/          graph builder, consistency checker, margin removal, geometry
//	cmd/tissuenet/   command line: parse and check
//	internal/        configuration, logging, metrics
//
// Quick ASCII example ('#' marks bond pixels):
//
//	#######
//	#AA#BB#
//	#AA#BB#
//	#######
//
//	yields two cells, six vertices and one conjugate pair of bonds along the
//	shared column.
//
//	go install github.com/katalvlaran/tissuenet/cmd/tissuenet@latest
package tissuenet
