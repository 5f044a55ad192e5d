package kanvas

import "math"

// Matrix represents a 3x3 transformation matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//	| G  H  I |
//
// The first two rows carry the affine part, the third row the perspective
// part (G = H = 0, I = 1 for affine transforms). A point maps as:
//
//	x' = (A*x + B*y + C) / (G*x + H*y + I)
//	y' = (D*x + E*y + F) / (G*x + H*y + I)
type Matrix struct {
	A, B, C float64
	D, E, F float64
	G, H, I float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
		G: 0, H: 0, I: 1,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Multiply multiplies two matrices (m * other). The combined transform
// applies other first, then m; Device.Concat relies on this order.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D + m.C*other.G,
		B: m.A*other.B + m.B*other.E + m.C*other.H,
		C: m.A*other.C + m.B*other.F + m.C*other.I,
		D: m.D*other.A + m.E*other.D + m.F*other.G,
		E: m.D*other.B + m.E*other.E + m.F*other.H,
		F: m.D*other.C + m.E*other.F + m.F*other.I,
		G: m.G*other.A + m.H*other.D + m.I*other.G,
		H: m.G*other.B + m.H*other.E + m.I*other.H,
		I: m.G*other.C + m.H*other.F + m.I*other.I,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	if m.IsAffine() {
		return Point{
			X: m.A*p.X + m.B*p.Y + m.C,
			Y: m.D*p.X + m.E*p.Y + m.F,
		}
	}
	w := m.G*p.X + m.H*p.Y + m.I
	if w == 0 {
		return Point{}
	}
	return Point{
		X: (m.A*p.X + m.B*p.Y + m.C) / w,
		Y: (m.D*p.X + m.E*p.Y + m.F) / w,
	}
}

// TransformVector applies the transformation to a vector (no translation,
// no perspective).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// TransformRect returns the bounding box of the transformed corners.
func (m Matrix) TransformRect(r Rect) Rect {
	p0 := m.TransformPoint(Pt(r.X, r.Y))
	p1 := m.TransformPoint(Pt(r.Right(), r.Y))
	p2 := m.TransformPoint(Pt(r.Right(), r.Bottom()))
	p3 := m.TransformPoint(Pt(r.X, r.Bottom()))

	minX := math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X))
	maxX := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	minY := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	maxY := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))

	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Invert returns the inverse matrix and whether the matrix was invertible.
func (m Matrix) Invert() (Matrix, bool) {
	// Cofactor expansion along the first row.
	c00 := m.E*m.I - m.F*m.H
	c01 := m.F*m.G - m.D*m.I
	c02 := m.D*m.H - m.E*m.G

	det := m.A*c00 + m.B*c01 + m.C*c02
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	inv := 1.0 / det

	return Matrix{
		A: c00 * inv,
		B: (m.C*m.H - m.B*m.I) * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: c01 * inv,
		E: (m.A*m.I - m.C*m.G) * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
		G: c02 * inv,
		H: (m.B*m.G - m.A*m.H) * inv,
		I: (m.A*m.E - m.B*m.D) * inv,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsAffine returns true if the matrix has no perspective component.
func (m Matrix) IsAffine() bool {
	return m.G == 0 && m.H == 0 && m.I == 1
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1 && m.IsAffine()
}

// IsAxisAligned reports whether the matrix maps axis-aligned rectangles to
// axis-aligned rectangles (no rotation, shear, or perspective).
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.D == 0 && m.IsAffine()
}

// MaxScale returns an upper bound on the scale factor the matrix applies to
// any direction. Used to pick flattening tolerances in device space.
func (m Matrix) MaxScale() float64 {
	sx := math.Hypot(m.A, m.D)
	sy := math.Hypot(m.B, m.E)
	return math.Max(sx, sy)
}
