// SPDX-License-Identifier: MIT

package tissue

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/tissuenet/raster"
)

// state is one step of a perimeter walk: the pixel reached and the
// direction of the step that reached it.
type state struct {
	pos raster.Position
	in  raster.Direction
}

// stepKey identifies a bond by the pixel it leaves its tail cluster from and
// the direction of that step.
type stepKey struct {
	pos raster.Position
	dir raster.Direction
}

type builder struct {
	r      *raster.Raster
	g      *Graph
	log    *slog.Logger
	vertex map[raster.Position]VertexID
	bond   map[stepKey]BondID

	// maxSteps caps a perimeter walk. Every walk state is a (pixel, step
	// direction) pair, so a walk on a valid raster closes well within it.
	maxSteps int
}

// Build reconstructs the cell graph of r.
//
// Cells are traced in ascending label order, each once, starting from the
// bond pixel above the label's first pixel. Junction pixels are resolved
// into shared vertices and the segments between them into bonds; a segment
// already created by the neighbouring cell becomes the conjugate of the new
// bond. When every cell is traced, each vertex's bonds are sorted clockwise.
//
// Any tracing failure aborts the build: Build returns a nil graph and the
// error, a *raster.TraceError for adjacency and missing-label failures.
//
// Complexity: O(W×H) time and memory.
func Build(r *raster.Raster, opts ...Option) (*Graph, error) {
	if r == nil {
		return nil, ErrNilRaster
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	started := time.Now()
	b := &builder{
		r:      r,
		g:      newGraph(o),
		log:    o.logger.With(slog.Int("frame", o.frame)),
		vertex: make(map[raster.Position]VertexID),
		bond:   make(map[stepKey]BondID),

		maxSteps: 8 * r.Width * r.Height,
	}
	labels := r.CellLabels()
	b.log.Debug("building tissue graph",
		slog.Int("width", r.Width), slog.Int("height", r.Height), slog.Int("labels", len(labels)))

	b.findFragmented()
	seeds := r.Seeds()
	for _, idx := range labels {
		if b.g.Contains(idx) {
			continue
		}
		if err := b.addCell(idx, seeds[idx]); err != nil {
			b.log.Debug("trace failed", slog.Uint64("label", uint64(idx)), slog.Any("error", err))
			return nil, fmt.Errorf("tissue: build cell %#x: %w", uint32(idx), err)
		}
	}
	b.finish()

	b.log.Info("tissue graph built",
		slog.Int("vertices", len(b.g.vertices)),
		slog.Int("bonds", len(b.g.bonds)),
		slog.Int("cells", len(b.g.cells)),
		slog.Duration("elapsed", time.Since(started)))

	return b.g, nil
}

// findFragmented records labels split into several 4-connected patches.
func (b *builder) findFragmented() {
	patches := make(map[raster.CellIndex]int)
	for _, c := range b.r.Components(raster.Conn4) {
		patches[c.Label]++
	}
	for idx, n := range patches {
		if n > 1 {
			b.g.fragmented = append(b.g.fragmented, idx)
			b.log.Warn("label split into several patches, tracing the first only",
				slog.Uint64("label", uint64(idx)), slog.Int("patches", n))
		}
	}
	sort.Slice(b.g.fragmented, func(i, j int) bool { return b.g.fragmented[i] < b.g.fragmented[j] })
}

// perimeter walks the boundary of cell v from the bond pixel above seed and
// returns the visited states, starting with the state after the first step.
func (b *builder) perimeter(v raster.Label, seed raster.Position) ([]state, error) {
	start := seed.Add(raster.N.Offset())
	if l := b.r.At(start); !l.IsBond() {
		return nil, &raster.TraceError{
			Kind:  raster.ErrAdjacencyViolation,
			Pos:   seed,
			Touch: start,
			Label: v,
			Prev:  v,
			Other: l,
		}
	}

	px := b.r.Pixel(start)
	d, err := px.NextBoundaryDirection(raster.N, v)
	if err != nil {
		return nil, err
	}
	var path []state
	for {
		px = px.Neighbor(d)
		st := state{pos: px.Pos, in: d}
		if len(path) > 0 && st == path[0] {
			return path, nil
		}
		if len(path) == b.maxSteps {
			return nil, fmt.Errorf("%w: %v after %d steps", ErrUnclosedPerimeter, v, b.maxSteps)
		}
		path = append(path, st)
		if d, err = px.NextBoundaryDirection(d, v); err != nil {
			return nil, err
		}
	}
}

// vertexAt returns the vertex containing p, creating it when p's cluster is
// a junction, or NoVertex.
func (b *builder) vertexAt(p raster.Position) VertexID {
	if id, ok := b.vertex[p]; ok {
		return id
	}
	cluster := b.r.Pixel(p).ThickVertex()
	for _, q := range cluster {
		if id, ok := b.vertex[q]; ok {
			// a margin pixel resolved on its own earlier
			b.vertex[p] = id
			return id
		}
	}
	if !b.isJunction(cluster) {
		return NoVertex
	}
	return b.addVertex(cluster)
}

// isJunction reports whether the cluster touches three or more regions or
// holds a canvas corner.
func (b *builder) isJunction(cluster []raster.Position) bool {
	var regions []raster.Label
	for _, q := range cluster {
		px := b.r.Pixel(q)
		if px.IsCanvasCorner() {
			return true
		}
		for _, l := range px.Regions() {
			if !slices.Contains(regions, l) {
				regions = append(regions, l)
			}
		}
	}
	return len(regions) >= 3
}

func (b *builder) addVertex(cluster []raster.Position) VertexID {
	id := VertexID(len(b.g.vertices))
	v := Vertex{Pixels: cluster}
	for _, q := range cluster {
		v.Position = r2.Add(v.Position, vec(q))
		if b.r.Pixel(q).IsOnMargin() {
			v.Margin = true
		}
		b.vertex[q] = id
	}
	v.Position = r2.Scale(1/float64(len(cluster)), v.Position)
	b.g.vertices = append(b.g.vertices, v)
	return id
}

// addCell traces cell idx and splits its perimeter into bonds at vertices.
func (b *builder) addCell(idx raster.CellIndex, seed raster.Position) error {
	path, err := b.perimeter(raster.CellLabel(idx), seed)
	if err != nil {
		return err
	}
	n := len(path)
	vids := make([]VertexID, n)
	for i, st := range path {
		vids[i] = b.vertexAt(st.pos)
	}

	// rotate the walk to start where it enters a vertex
	entry := -1
	for i := range vids {
		if vids[i] != NoVertex && vids[(i+n-1)%n] != vids[i] {
			entry = i
			break
		}
	}
	if entry < 0 && vids[0] == NoVertex {
		// no junction on the perimeter: pin one at its first pixel
		id := b.addVertex([]raster.Position{path[0].pos})
		for i, st := range path {
			if st.pos == path[0].pos {
				vids[i] = id
			}
		}
		entry = 0
	}

	cid := CellID(len(b.g.cells))
	b.g.cells = append(b.g.cells, Cell{Label: idx})
	b.g.byLabel[idx] = cid
	if entry < 0 {
		b.log.Warn("perimeter lies inside one vertex", slog.Uint64("label", uint64(idx)))
		return nil
	}

	at := func(k int) int { return (entry + k) % n }
	for k := 0; k < n; {
		tail := vids[at(k)]
		for k+1 < n && vids[at(k+1)] == tail {
			k++
		}
		j := k + 1
		for j < n && vids[at(j)] == NoVertex {
			j++
		}
		interior := make([]raster.Position, 0, j-k-1)
		for m := k + 1; m < j; m++ {
			interior = append(interior, path[at(m)].pos)
		}
		exit, head := path[at(k)], path[at(j)]
		b.addBond(cid, tail, vids[at(j)], interior,
			stepKey{pos: exit.pos, dir: path[at(k+1)].in},
			stepKey{pos: head.pos, dir: head.in.Opposite()})
		k = j
	}
	b.log.Debug("cell traced",
		slog.Uint64("label", uint64(idx)), slog.Int("bonds", len(b.g.cells[cid].Bonds)))

	return nil
}

// addBond appends a bond of cell cid. fwd keys the new bond; rev is the key
// its conjugate was stored under if the neighbouring cell traced it first.
func (b *builder) addBond(cid CellID, tail, head VertexID, interior []raster.Position, fwd, rev stepKey) {
	g := b.g
	id := BondID(len(g.bonds))
	cell := &g.cells[cid]
	bond := DirectedBond{
		Tail:      tail,
		Head:      head,
		Conjugate: NoBond,
		Cell:      cid,
		Pixels:    interior,
		exit:      fwd.pos,
		first:     fwd.dir,
		entry:     rev.pos,
		last:      rev.dir.Opposite(),
		seq:       len(cell.Bonds),
	}
	for _, q := range interior {
		if b.r.Pixel(q).IsOnMargin() {
			bond.Margin = true
			break
		}
	}
	if len(interior) == 0 {
		bond.Margin = g.vertices[tail].Margin && g.vertices[head].Margin
	}
	if c, ok := b.bond[rev]; ok && g.bonds[c].Conjugate == NoBond {
		bond.Conjugate = c
		g.bonds[c].Conjugate = id
	}

	g.bonds = append(g.bonds, bond)
	b.bond[fwd] = id
	cell.Bonds = append(cell.Bonds, id)
	g.vertices[tail].Bonds = append(g.vertices[tail].Bonds, id)
}

// finish orders every vertex's bonds clockwise and flags margin cells.
func (b *builder) finish() {
	g := b.g
	for i := range g.vertices {
		g.sortBonds(VertexID(i))
	}
	for i := range g.cells {
		g.cells[i].Margin = g.touchesMargin(CellID(i))
	}
}

func (g *Graph) sortBonds(v VertexID) {
	bonds := g.vertices[v].Bonds
	sort.SliceStable(bonds, func(i, j int) bool {
		return g.bondAngle(bonds[i]) < g.bondAngle(bonds[j])
	})
}

func (g *Graph) touchesMargin(id CellID) bool {
	for _, bid := range g.cells[id].Bonds {
		b := &g.bonds[bid]
		if b.Margin || g.vertices[b.Tail].Margin {
			return true
		}
	}
	return false
}
