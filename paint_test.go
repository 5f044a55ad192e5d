package kanvas

import "testing"

func TestNewPaintDefaults(t *testing.T) {
	p := NewPaint()
	if p.Color != Black || p.Blend != BlendSrcOver || p.Style != PaintFill {
		t.Errorf("defaults = %+v", p)
	}
	if p.StrokeWidth != 1 || p.Cap != CapButt || p.Join != JoinMiter || p.MiterLimit != 4 {
		t.Errorf("stroke defaults = %+v", p)
	}
	if !p.Antialias || p.Dither {
		t.Errorf("flag defaults = %+v", p)
	}
}

func TestPaintColorPrecedence(t *testing.T) {
	p := NewPaint()
	p.Color = Red
	if got := p.colorAt(0, 0); !colorClose(got, Red, 1e-9) {
		t.Errorf("plain color = %v", got)
	}

	// A shader overrides the color.
	p.Shader = NewColorShader(Green)
	if got := p.colorAt(0, 0); !colorClose(got, Green, 1e-9) {
		t.Errorf("shaded color = %v, want shader output", got)
	}

	// The filter applies last.
	p.Filter = NewGrayscaleFilter()
	got := p.colorAt(0, 0)
	if !colorClose(got, Color{R: 0.7152, G: 0.7152, B: 0.7152, A: 1}, 1e-9) {
		t.Errorf("filtered color = %v", got)
	}
}

func TestPaintIsUniform(t *testing.T) {
	p := NewPaint()
	if !p.isUniform() {
		t.Error("plain color paint should be uniform")
	}
	p.Shader = NewColorShader(Red)
	if !p.isUniform() {
		t.Error("solid shader should be uniform")
	}
	g, _ := NewLinearGradient(Pt(0, 0), Pt(1, 0), redBlueStops(), TileClamp)
	p.Shader = g
	if p.isUniform() {
		t.Error("gradient paint should not be uniform")
	}
}

func TestDashedStroke(t *testing.T) {
	d := newWhiteDevice(t, 20, 6)
	p := solidPaint(Red)
	p.StrokeWidth = 2
	p.Dash = []float64{4, 4}
	d.DrawLine(1, 3, 17, 3, p)

	// Dashes on: [1,5) and [9,13), off: [5,9) and [13,17).
	if got := d.Pixmap().GetPixel(2, 3); !colorClose(got, Red, 1.0/255) {
		t.Errorf("first dash = %v, want red", got)
	}
	if got := d.Pixmap().GetPixel(6, 3); !colorClose(got, White, 1.0/255) {
		t.Errorf("first gap = %v, want white", got)
	}
	if got := d.Pixmap().GetPixel(10, 3); !colorClose(got, Red, 1.0/255) {
		t.Errorf("second dash = %v, want red", got)
	}
	if got := d.Pixmap().GetPixel(14, 3); !colorClose(got, White, 1.0/255) {
		t.Errorf("second gap = %v, want white", got)
	}
}

func TestBlendModeStrings(t *testing.T) {
	if BlendSrcOver.String() != "SourceOver" {
		t.Errorf("BlendSrcOver = %q", BlendSrcOver.String())
	}
	if BlendMultiply.String() != "Multiply" {
		t.Errorf("BlendMultiply = %q", BlendMultiply.String())
	}
	if !BlendExclusion.IsValid() {
		t.Error("BlendExclusion should be valid")
	}
	if BlendMode(200).IsValid() {
		t.Error("out of range blend mode reported valid")
	}
}
