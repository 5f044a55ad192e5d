package kanvas

import "github.com/ygdrasil-io/kanvas/internal/blend"

// ColorFilter transforms shaded colors before compositing.
type ColorFilter interface {
	Apply(c Color) Color
}

// MatrixColorFilter multiplies colors by a 4x5 matrix in row-major
// order. Each output channel is a weighted sum of the straight-alpha
// input channels plus an offset (the fifth column), clamped to [0, 1]:
//
//	R' = m[0]*R + m[1]*G + m[2]*B + m[3]*A + m[4]
//	G' = m[5]*R + ...
type MatrixColorFilter struct {
	m [20]float64
}

// NewMatrixColorFilter creates a color matrix filter.
func NewMatrixColorFilter(m [20]float64) *MatrixColorFilter {
	return &MatrixColorFilter{m: m}
}

// NewGrayscaleFilter creates a luminance-preserving grayscale filter
// (Rec. 709 weights).
func NewGrayscaleFilter() *MatrixColorFilter {
	const lr, lg, lb = 0.2126, 0.7152, 0.0722
	return NewMatrixColorFilter([20]float64{
		lr, lg, lb, 0, 0,
		lr, lg, lb, 0, 0,
		lr, lg, lb, 0, 0,
		0, 0, 0, 1, 0,
	})
}

// Apply transforms the color through the matrix.
func (f *MatrixColorFilter) Apply(c Color) Color {
	m := &f.m
	return Color{
		R: clamp01(m[0]*c.R + m[1]*c.G + m[2]*c.B + m[3]*c.A + m[4]),
		G: clamp01(m[5]*c.R + m[6]*c.G + m[7]*c.B + m[8]*c.A + m[9]),
		B: clamp01(m[10]*c.R + m[11]*c.G + m[12]*c.B + m[13]*c.A + m[14]),
		A: clamp01(m[15]*c.R + m[16]*c.G + m[17]*c.B + m[18]*c.A + m[19]),
	}
}

// BlendColorFilter blends a fixed color over each shaded color with the
// given mode.
type BlendColorFilter struct {
	color Color
	mode  BlendMode
}

// NewBlendColorFilter creates a blend color filter.
func NewBlendColorFilter(c Color, mode BlendMode) *BlendColorFilter {
	return &BlendColorFilter{color: c, mode: mode}
}

// Apply blends the filter color (source) over c (destination).
func (f *BlendColorFilter) Apply(c Color) Color {
	sr, sg, sb, sa := f.color.premulBytes()
	dr, dg, db, da := c.premulBytes()
	r, g, b, a := blend.FuncFor(f.mode.mode())(sr, sg, sb, sa, dr, dg, db, da)
	return colorFromPremulBytes(r, g, b, a)
}
