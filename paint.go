package kanvas

import "github.com/ygdrasil-io/kanvas/internal/stroke"

// PaintStyle selects whether geometry is filled, stroked, or both.
type PaintStyle int

const (
	// PaintFill fills the geometry interior.
	PaintFill PaintStyle = iota
	// PaintStroke strokes the geometry outline.
	PaintStroke
	// PaintFillAndStroke fills, then strokes.
	PaintFillAndStroke
)

// LineCap specifies the shape of open stroke endpoints.
type LineCap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt LineCap = iota
	// CapRound extends the stroke with a half disc.
	CapRound
	// CapSquare extends the stroke with a half square.
	CapSquare
)

// LineJoin specifies the shape of stroke corners.
type LineJoin int

const (
	// JoinMiter extends outer edges to a point, up to the miter limit.
	JoinMiter LineJoin = iota
	// JoinRound fills corners with an arc.
	JoinRound
	// JoinBevel cuts corners with a straight edge.
	JoinBevel
)

// Paint describes how geometry is drawn: the color source, compositing
// mode, stroke geometry, and quality flags. A Shader takes precedence
// over Color when set; the ColorFilter applies to whichever produced
// the color.
type Paint struct {
	Color  Color
	Shader Shader
	Filter ColorFilter
	Blend  BlendMode
	Style  PaintStyle

	StrokeWidth float64
	Cap         LineCap
	Join        LineJoin
	MiterLimit  float64
	Dash        []float64
	DashPhase   float64

	// Sampling selects the filter for image draws.
	Sampling SampleMode

	Antialias bool
	Dither    bool
}

// NewPaint creates a paint with the defaults: opaque black fill,
// source-over compositing, anti-aliasing on, 1-wide butt/miter stroke
// geometry.
func NewPaint() *Paint {
	return &Paint{
		Color:       Black,
		Blend:       BlendSrcOver,
		Style:       PaintFill,
		StrokeWidth: 1,
		Cap:         CapButt,
		Join:        JoinMiter,
		MiterLimit:  4,
		Sampling:    SampleBilinear,
		Antialias:   true,
	}
}

// colorAt resolves the paint's color source at a local-space point and
// runs it through the color filter.
func (p *Paint) colorAt(x, y float64) Color {
	c := p.Color
	if p.Shader != nil {
		c = p.Shader.ColorAt(x, y)
	}
	if p.Filter != nil {
		c = p.Filter.Apply(c)
	}
	return c
}

// isUniform reports whether the paint produces one color everywhere, a
// fast path that skips per-pixel shading.
func (p *Paint) isUniform() bool {
	if p.Shader == nil {
		return true
	}
	_, solid := p.Shader.(*ColorShader)
	return solid
}

// strokeStyle converts the paint's stroke parameters for the expander.
// The cap and join enums share their ordering.
func (p *Paint) strokeStyle() stroke.Style {
	return stroke.Style{
		Width:      p.StrokeWidth,
		Cap:        stroke.LineCap(p.Cap),
		Join:       stroke.LineJoin(p.Join),
		MiterLimit: p.MiterLimit,
		Dash:       p.Dash,
		DashPhase:  p.DashPhase,
	}
}
