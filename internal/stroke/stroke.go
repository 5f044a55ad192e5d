// Package stroke converts stroked polylines into closed outline rings
// suitable for non-zero winding fill.
//
// Each segment contributes an offset quad, each interior vertex a join
// wedge on the outer side, and each open end a cap. Overlaps between
// pieces are harmless because every ring is oriented the same way
// before filling, so the non-zero rule unions them.
package stroke

import "math"

// Point represents a 2D point (internal copy to avoid an import cycle).
type Point struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z component).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the vector length.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns a unit vector, or zero for degenerate input.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// LineCap specifies the shape of open line endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound extends the stroke with a half disc.
	LineCapRound
	// LineCapSquare extends the stroke with a half square.
	LineCapSquare
)

// LineJoin specifies the shape of interior vertices.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges to a sharp point, falling
	// back to bevel beyond the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills the outer corner with an arc.
	LineJoinRound
	// LineJoinBevel cuts the outer corner with a straight edge.
	LineJoinBevel
)

// Style defines stroke geometry parameters. A non-positive Width is a
// hairline and strokes one pixel wide.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

// DefaultStyle returns a 1-wide butt/miter stroke.
func DefaultStyle() Style {
	return Style{Width: 1, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4}
}

// SubPath is a flattened run of points. Closed subpaths carry their
// first point duplicated at the end.
type SubPath struct {
	Points []Point
	Closed bool
}

// arcTolerance bounds the sagitta of arc polygon approximations for
// round caps and joins.
const arcTolerance = 0.25

// Expand converts flattened subpaths into closed outline rings. The
// result is filled with the non-zero winding rule; all rings share one
// orientation.
func Expand(subs []SubPath, style Style) [][]Point {
	width := style.Width
	if width <= 0 {
		width = 1
	}
	half := width / 2
	miterLimit := style.MiterLimit
	if miterLimit < 1 {
		miterLimit = 1
	}

	var rings [][]Point
	for _, sub := range subs {
		pts := dedupe(sub.Points)
		if len(pts) == 0 {
			continue
		}

		if len(style.Dash) > 0 {
			for _, piece := range applyDash(pts, style.Dash, style.DashPhase) {
				rings = strokePiece(rings, piece, false, half, style.Cap, style.Join, miterLimit)
			}
			continue
		}
		rings = strokePiece(rings, pts, sub.Closed, half, style.Cap, style.Join, miterLimit)
	}

	for i := range rings {
		if signedArea(rings[i]) < 0 {
			reverseRing(rings[i])
		}
	}
	return rings
}

// strokePiece appends the outline rings for one polyline.
func strokePiece(rings [][]Point, pts []Point, closed bool, half float64, capStyle LineCap, join LineJoin, miterLimit float64) [][]Point {
	pts = dedupe(pts)
	if len(pts) == 0 {
		return rings
	}
	if len(pts) == 1 {
		// Degenerate subpath: round and square caps still paint a dot
		// of the stroke width.
		switch capStyle {
		case LineCapRound:
			rings = append(rings, circleRing(pts[0], half))
		case LineCapSquare:
			p := pts[0]
			rings = append(rings, []Point{
				{p.X - half, p.Y - half},
				{p.X + half, p.Y - half},
				{p.X + half, p.Y + half},
				{p.X - half, p.Y + half},
			})
		}
		return rings
	}

	// Segment quads.
	for i := 0; i+1 < len(pts); i++ {
		t := pts[i+1].Sub(pts[i]).Normalize()
		n := t.perp().Scale(half)
		rings = append(rings, []Point{
			pts[i].Add(n), pts[i+1].Add(n),
			pts[i+1].Sub(n), pts[i].Sub(n),
		})
	}

	// Joins at interior vertices. A closed piece also joins at its
	// start/end vertex (pts[0] == pts[len-1]).
	for i := 1; i+1 < len(pts); i++ {
		rings = appendJoin(rings, pts[i], pts[i].Sub(pts[i-1]), pts[i+1].Sub(pts[i]), half, join, miterLimit)
	}
	if closed {
		rings = appendJoin(rings, pts[0], pts[0].Sub(pts[len(pts)-2]), pts[1].Sub(pts[0]), half, join, miterLimit)
		return rings
	}

	// Caps at open ends. The cap direction points away from the piece.
	startDir := pts[0].Sub(pts[1]).Normalize()
	endDir := pts[len(pts)-1].Sub(pts[len(pts)-2]).Normalize()
	rings = appendCap(rings, pts[0], startDir, half, capStyle)
	rings = appendCap(rings, pts[len(pts)-1], endDir, half, capStyle)
	return rings
}

// appendJoin adds the outer corner geometry at vertex p between the
// incoming direction d0 and outgoing direction d1.
func appendJoin(rings [][]Point, p, d0, d1 Point, half float64, join LineJoin, miterLimit float64) [][]Point {
	t0 := d0.Normalize()
	t1 := d1.Normalize()
	cross := t0.Cross(t1)
	dot := t0.Dot(t1)
	if math.Abs(cross) < 1e-12 && dot >= 0 {
		return rings // collinear, segment quads already meet
	}

	// Outer offsets at the vertex. Left normals rotate with the
	// tangent; the gap opens on the right when turning left and vice
	// versa.
	n0 := t0.perp().Scale(half)
	n1 := t1.perp().Scale(half)
	a, b := n0, n1
	if cross >= 0 {
		a, b = n0.Scale(-1), n1.Scale(-1)
	}

	switch join {
	case LineJoinRound:
		sweep := math.Atan2(a.Cross(b), a.Dot(b))
		ring := []Point{p}
		ring = appendArc(ring, p, half, math.Atan2(a.Y, a.X), sweep)
		return append(rings, ring)

	case LineJoinMiter:
		// Miter ratio is 1/cos(phi/2) where phi is the turn angle.
		cosHalf := math.Sqrt(math.Max(0, (1+dot)/2))
		if cosHalf > 1e-9 && 1/cosHalf <= miterLimit {
			m := p.Add(a.Add(b).Normalize().Scale(half / cosHalf))
			return append(rings, []Point{p, p.Add(a), m, p.Add(b)})
		}
		fallthrough

	default: // LineJoinBevel
		return append(rings, []Point{p, p.Add(a), p.Add(b)})
	}
}

// appendCap adds cap geometry at endpoint p. dir is the outward unit
// direction of the stroke end.
func appendCap(rings [][]Point, p, dir Point, half float64, capStyle LineCap) [][]Point {
	n := dir.perp().Scale(half)
	switch capStyle {
	case LineCapRound:
		// Half disc beyond the endpoint, from one offset edge to the
		// other, passing through p + dir*half.
		ring := []Point{p.Sub(n)}
		ring = appendArc(ring, p, half, math.Atan2(-n.Y, -n.X), math.Pi)
		return append(rings, ring)

	case LineCapSquare:
		ext := dir.Scale(half)
		return append(rings, []Point{
			p.Add(n), p.Add(n).Add(ext),
			p.Sub(n).Add(ext), p.Sub(n),
		})

	default: // LineCapButt
		return rings
	}
}

// appendArc appends points along a circular arc. The arc starts at
// startAngle and covers sweep radians; the start point is assumed
// already present in dst.
func appendArc(dst []Point, center Point, radius, startAngle, sweep float64) []Point {
	if radius <= 0 || sweep == 0 {
		return dst
	}
	// Step so the chord sagitta stays within arcTolerance.
	maxStep := math.Pi / 4
	if radius > arcTolerance {
		maxStep = 2 * math.Acos(1-arcTolerance/radius)
	}
	n := int(math.Ceil(math.Abs(sweep) / maxStep))
	if n < 2 {
		n = 2
	}
	for i := 1; i <= n; i++ {
		angle := startAngle + sweep*float64(i)/float64(n)
		dst = append(dst, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return dst
}

// circleRing builds a full circle polygon.
func circleRing(center Point, radius float64) []Point {
	start := Point{X: center.X + radius, Y: center.Y}
	return appendArc([]Point{start}, center, radius, 0, 2*math.Pi)
}

// dedupe removes consecutive duplicate points.
func dedupe(pts []Point) []Point {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// signedArea computes twice the signed area of a ring (shoelace).
func signedArea(ring []Point) float64 {
	var sum float64
	for i := range ring {
		j := (i + 1) % len(ring)
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum
}

// reverseRing reverses a ring in place.
func reverseRing(ring []Point) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}
