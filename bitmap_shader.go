package kanvas

// BitmapShader paints with the contents of a pixmap. The matrix maps
// shading coordinates to bitmap coordinates, so drawing an image under
// a transform is a rectangle fill through this shader with the inverse
// placement matrix.
type BitmapShader struct {
	pixmap   *Pixmap
	sampling SampleMode
	tileX    TileMode
	tileY    TileMode
	matrix   Matrix
}

// NewBitmapShader creates a bitmap shader. The matrix maps local
// (shading) space to bitmap pixel space; use Identity for direct
// placement.
func NewBitmapShader(p *Pixmap, sampling SampleMode, tileX, tileY TileMode, m Matrix) *BitmapShader {
	return &BitmapShader{
		pixmap:   p,
		sampling: sampling,
		tileX:    tileX,
		tileY:    tileY,
		matrix:   m,
	}
}

// ColorAt samples the bitmap at the mapped position.
func (s *BitmapShader) ColorAt(x, y float64) Color {
	if s.pixmap == nil {
		return Color{}
	}
	pt := s.matrix.TransformPoint(Pt(x, y))
	return s.pixmap.Sample(pt.X, pt.Y, s.sampling, s.tileX, s.tileY)
}
