package kanvas

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// GlyphRun is a set of positioned glyphs from one face. Positions are
// baseline origins in user space, one per rune.
type GlyphRun struct {
	Face      font.Face
	Runes     []rune
	Positions []Point
}

// MakeGlyphRun lays out a string along a horizontal baseline starting
// at (x, y), applying the face's advances and kerning.
func MakeGlyphRun(face font.Face, s string, x, y float64) *GlyphRun {
	run := &GlyphRun{Face: face}
	pen := fixed.Int26_6(x * 64)
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			pen += face.Kern(prev, r)
		}
		run.Runes = append(run.Runes, r)
		run.Positions = append(run.Positions, Pt(fixedToFloat(pen), y))
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			prev = -1
			continue
		}
		pen += adv
		prev = r
	}
	return run
}

// Advance returns the pen advance of laying out s with face.
func Advance(face font.Face, s string) float64 {
	return fixedToFloat(font.MeasureString(face, s))
}

// DrawGlyphRun rasterizes each glyph's coverage mask through the paint
// pipeline. Glyph origins map through the transform; the masks
// themselves stay axis-aligned, so rotation moves glyphs without
// rotating their shapes.
func (d *Device) DrawGlyphRun(run *GlyphRun, paint *Paint) {
	if run == nil || run.Face == nil || d.cur.clip.IsEmpty() {
		return
	}
	blit := d.spanBlitter(paint)

	for i, r := range run.Runes {
		if i >= len(run.Positions) {
			break
		}
		pos := d.cur.matrix.TransformPoint(run.Positions[i])
		dot := fixed.Point26_6{
			X: fixed.Int26_6(pos.X * 64),
			Y: fixed.Int26_6(pos.Y * 64),
		}
		dr, mask, maskp, _, ok := run.Face.Glyph(dot, r)
		if !ok {
			Logger().Debug("glyph not in face", "rune", string(r))
			continue
		}

		x0, y0, x1, y1 := dr.Min.X, dr.Min.Y, dr.Max.X, dr.Max.Y
		if x0 < 0 {
			x0 = 0
		}
		if y0 < 0 {
			y0 = 0
		}
		if x1 > d.Width() {
			x1 = d.Width()
		}
		if y1 > d.Height() {
			y1 = d.Height()
		}

		for y := y0; y < y1; y++ {
			my := maskp.Y + y - dr.Min.Y
			for x := x0; x < x1; x++ {
				mx := maskp.X + x - dr.Min.X
				_, _, _, a := mask.At(mx, my).RGBA()
				if cov := uint8(a >> 8); cov > 0 {
					blit(y, x, x+1, cov)
				}
			}
		}
	}
}

// DrawText lays out and draws a string along a baseline at (x, y).
func (d *Device) DrawText(s string, x, y float64, face font.Face, paint *Paint) {
	d.DrawGlyphRun(MakeGlyphRun(face, s, x, y), paint)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
