package kanvas

import "math"

// SubPath is a flattened run of connected points from one MoveTo to the
// next (or to a Close).
type SubPath struct {
	Points []Point
	Closed bool
}

// defaultFlattenTolerance is the maximum distance, in the coordinate space
// of the flattened path, between a curve and its polyline approximation.
const defaultFlattenTolerance = 0.25

// Flatten converts the path into polyline subpaths. Curves are subdivided
// uniformly with a segment count chosen so the deviation from the true
// curve stays within tol (curves with huge or non-finite control polygons
// are clamped to a fixed maximum subdivision, degrading gracefully rather
// than looping).
func (p *Path) Flatten(tol float64) []SubPath {
	if tol <= 0 {
		tol = defaultFlattenTolerance
	}

	var subs []SubPath
	var cur []Point
	var start, last Point
	flush := func(closed bool) {
		if len(cur) >= 2 {
			subs = append(subs, SubPath{Points: cur, Closed: closed})
		} else if len(cur) == 1 {
			// Degenerate subpath: a single point. Kept so strokes can
			// render cap dots.
			subs = append(subs, SubPath{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			start = e.Point
			last = e.Point
			cur = append(cur, e.Point)
		case LineTo:
			cur = appendPoint(cur, e.Point)
			last = e.Point
		case QuadTo:
			n := quadSegments(last, e.Control, e.Point, tol)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				cur = appendPoint(cur, evalQuad(last, e.Control, e.Point, t))
			}
			last = e.Point
		case ConicTo:
			n := quadSegments(last, e.Control, e.Point, tol)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				cur = appendPoint(cur, evalConic(last, e.Control, e.Point, e.Weight, t))
			}
			last = e.Point
		case CubicTo:
			n := cubicSegments(last, e.Control1, e.Control2, e.Point, tol)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				cur = appendPoint(cur, evalCubic(last, e.Control1, e.Control2, e.Point, t))
			}
			last = e.Point
		case Close:
			if len(cur) > 0 {
				cur = appendPoint(cur, start)
				flush(true)
			}
			last = start
		}
	}
	flush(false)
	return subs
}

// appendPoint appends pt unless it duplicates the previous point.
func appendPoint(pts []Point, pt Point) []Point {
	if n := len(pts); n > 0 && pts[n-1] == pt {
		return pts
	}
	return append(pts, pt)
}

// maxCurveSegments bounds uniform subdivision so degenerate or enormous
// control polygons cannot make flattening unbounded.
const maxCurveSegments = 128

// quadSegments picks the uniform segment count for a quadratic (or conic)
// from the standard deviation bound dev <= |p0 - 2c + p2| / 4, solved for
// segment count n with dev/n^2 <= tol.
func quadSegments(p0, c, p2 Point, tol float64) int {
	dx := p0.X - 2*c.X + p2.X
	dy := p0.Y - 2*c.Y + p2.Y
	dev := math.Hypot(dx, dy) / 4
	return segmentsForDeviation(dev, tol)
}

// cubicSegments picks the uniform segment count for a cubic from its two
// second differences.
func cubicSegments(p0, c1, c2, p3 Point, tol float64) int {
	d1 := math.Hypot(p0.X-2*c1.X+c2.X, p0.Y-2*c1.Y+c2.Y)
	d2 := math.Hypot(c1.X-2*c2.X+p3.X, c1.Y-2*c2.Y+p3.Y)
	dev := 3 * math.Max(d1, d2) / 4
	return segmentsForDeviation(dev, tol)
}

func segmentsForDeviation(dev, tol float64) int {
	if !(dev > tol) { // also catches NaN
		return 1
	}
	n := int(math.Ceil(math.Sqrt(dev / tol)))
	if n < 1 {
		return 1
	}
	if n > maxCurveSegments {
		return maxCurveSegments
	}
	return n
}

// evalQuad evaluates a quadratic Bezier at parameter t.
func evalQuad(p0, p1, p2 Point, t float64) Point {
	s := 1 - t
	return Point{
		X: s*s*p0.X + 2*s*t*p1.X + t*t*p2.X,
		Y: s*s*p0.Y + 2*s*t*p1.Y + t*t*p2.Y,
	}
}

// evalConic evaluates a rational quadratic Bezier with weight w at t.
func evalConic(p0, p1, p2 Point, w, t float64) Point {
	s := 1 - t
	b0 := s * s
	b1 := 2 * s * t * w
	b2 := t * t
	den := b0 + b1 + b2
	if den == 0 {
		return p2
	}
	return Point{
		X: (b0*p0.X + b1*p1.X + b2*p2.X) / den,
		Y: (b0*p0.Y + b1*p1.Y + b2*p2.Y) / den,
	}
}

// evalCubic evaluates a cubic Bezier at parameter t.
func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	s := 1 - t
	s2 := s * s
	s3 := s2 * s
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: s3*p0.X + 3*s2*t*p1.X + 3*s*t2*p2.X + t3*p3.X,
		Y: s3*p0.Y + 3*s2*t*p1.Y + 3*s*t2*p2.Y + t3*p3.Y,
	}
}
