package kanvas

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// ConicTo draws a weighted rational quadratic Bezier segment.
// A weight of 1 is an ordinary quadratic; weight sqrt(2)/2 traces a
// quarter circle arc.
type ConicTo struct {
	Control Point
	Point   Point
	Weight  float64
}

func (ConicTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// FillType specifies how to determine which areas are inside a path.
type FillType int

const (
	// FillWinding uses the non-zero winding rule.
	FillWinding FillType = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// Path represents a vector path as a sequence of tagged element records.
type Path struct {
	elements []PathElement
	fillType FillType
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path with winding fill.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// FillType returns the path's fill rule.
func (p *Path) FillType() FillType {
	return p.fillType
}

// SetFillType sets the path's fill rule.
func (p *Path) SetFillType(ft FillType) {
	p.fillType = ft
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.ensureMove()
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ensureMove()
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// ConicTo draws a conic (weighted quadratic) segment.
// A non-positive weight degenerates to a line; weight 1 is a plain quad.
func (p *Path) ConicTo(cx, cy, x, y, weight float64) {
	p.ensureMove()
	switch {
	case weight <= 0:
		p.LineTo(x, y)
		return
	case weight == 1:
		p.QuadTo(cx, cy, x, y)
		return
	}
	p.elements = append(p.elements, ConicTo{Control: Pt(cx, cy), Point: Pt(x, y), Weight: weight})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureMove()
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// ensureMove inserts the implicit MoveTo(0,0) required when a path begins
// with a drawing verb.
func (p *Path) ensureMove() {
	if len(p.elements) == 0 {
		p.MoveTo(0, 0)
	}
}

// Reset removes all elements from the path. The fill type is kept.
func (p *Path) Reset() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform returns a copy of the path with all points mapped through m.
// Conic weights are preserved; a perspective matrix changes a conic's
// shape only through its control points, which is accepted here since
// flattening happens after the transform.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	result.fillType = p.fillType
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case ConicTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.ConicTo(ctrl.X, ctrl.Y, pt.X, pt.Y, e.Weight)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Bounds returns the bounding box of the path's control points. This is a
// conservative bound: curve control points may lie outside the curve.
func (p *Path) Bounds() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	grow := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case ConicTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		case Close:
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.fillType = p.fillType
	result.start = p.start
	result.current = p.current
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.Right(), r.Y)
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.X, r.Bottom())
	p.Close()
}

// ovalK is the control point distance for approximating a quarter circle
// with a single cubic: 4/3 * (sqrt(2) - 1). The maximum radial error of
// the approximation is about 0.00027 * radius.
const ovalK = 0.5522847498307936

// Oval adds the oval inscribed in r to the path, built from four cubic
// segments (see ovalK for the error bound).
func (p *Path) Oval(r Rect) {
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	rx := r.W / 2
	ry := r.H / 2
	ox := rx * ovalK
	oy := ry * ovalK

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Circle adds a circle to the path.
func (p *Path) Circle(cx, cy, r float64) {
	p.Oval(Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r})
}

// RoundedRectangle adds a rectangle with rounded corners. The radius is
// clamped to half the smaller dimension; corners use cubic arcs.
func (p *Path) RoundedRectangle(r Rect, radius float64) {
	maxR := math.Min(r.W, r.H) / 2
	if radius > maxR {
		radius = maxR
	}
	if radius <= 0 {
		p.Rectangle(r)
		return
	}
	k := ovalK * radius
	x, y, w, h := r.X, r.Y, r.W, r.H

	p.MoveTo(x+radius, y)
	p.LineTo(x+w-radius, y)
	p.CubicTo(x+w-radius+k, y, x+w, y+radius-k, x+w, y+radius)
	p.LineTo(x+w, y+h-radius)
	p.CubicTo(x+w, y+h-radius+k, x+w-radius+k, y+h, x+w-radius, y+h)
	p.LineTo(x+radius, y+h)
	p.CubicTo(x+radius-k, y+h, x, y+h-radius+k, x, y+h-radius)
	p.LineTo(x, y+radius)
	p.CubicTo(x, y+radius-k, x+radius-k, y, x+radius, y)
	p.Close()
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 (radians),
// split into cubic segments of at most 90 degrees each. The per-segment
// radial error is bounded by the ovalK approximation.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		p.arcSegment(cx, cy, r, a1, a2)
	}
}

// arcSegment adds a single arc segment (<= 90 degrees).
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	half := (a2 - a1) / 2
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan(half)*math.Tan(half)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	} else {
		p.LineTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}
