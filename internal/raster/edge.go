package raster

import "math"

// Point represents a 2D point (internal copy to avoid an import cycle
// with the root package).
type Point struct {
	X, Y float64
}

// horizontalEps is the slope cutoff below which an edge is treated as
// horizontal and skipped. Horizontal edges never cross a scanline and
// would divide by a near-zero dy.
const horizontalEps = 1e-9

// Edge represents a line segment for scanline rasterization, stored with
// y0 < y1 and the original winding direction.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int // +1 if the segment pointed down, -1 if up
}

// NewEdge creates an edge from two points. The direction is captured
// before normalizing so the non-zero winding rule sees the original
// orientation.
func NewEdge(p0, p1 Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: dir}
}

// XAtY calculates the x coordinate where the edge crosses the given y.
func (e *Edge) XAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// buildEdges converts closed polygon rings into an edge list. Open rings
// are closed implicitly with a segment from the last point to the first.
func buildEdges(polys [][]Point) []Edge {
	var edges []Edge
	for _, ring := range polys {
		n := len(ring)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := ring[i]
			p1 := ring[(i+1)%n]
			if math.Abs(p1.Y-p0.Y) < horizontalEps {
				continue
			}
			edges = append(edges, NewEdge(p0, p1))
		}
	}
	return edges
}

// ActiveEdgeTable holds the edges crossing the current scanline.
type ActiveEdgeTable struct {
	edges []ActiveEdge
}

// ActiveEdge is an edge's crossing on the current scanline.
type ActiveEdge struct {
	x   float64
	dir int
}

// NewActiveEdgeTable creates an empty active edge table.
func NewActiveEdgeTable() *ActiveEdgeTable {
	return &ActiveEdgeTable{edges: make([]ActiveEdge, 0, 32)}
}

// AddAtY records an edge's crossing of the scanline at y.
func (aet *ActiveEdgeTable) AddAtY(edge Edge, y float64) {
	aet.edges = append(aet.edges, ActiveEdge{x: edge.XAtY(y), dir: edge.dir})
}

// Sort orders crossings by x (insertion sort; the table is small).
func (aet *ActiveEdgeTable) Sort() {
	for i := 1; i < len(aet.edges); i++ {
		key := aet.edges[i]
		j := i - 1
		for j >= 0 && aet.edges[j].x > key.x {
			aet.edges[j+1] = aet.edges[j]
			j--
		}
		aet.edges[j+1] = key
	}
}

// Edges returns the crossings collected for the current scanline.
func (aet *ActiveEdgeTable) Edges() []ActiveEdge {
	return aet.edges
}

// Clear empties the table for the next scanline.
func (aet *ActiveEdgeTable) Clear() {
	aet.edges = aet.edges[:0]
}
