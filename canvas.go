package kanvas

import "golang.org/x/image/font"

// Canvas is the drawing entry point. It is a thin facade over a Device:
// every call forwards directly, so code holding a Device loses nothing,
// and code holding a Canvas never needs to reach below it.
type Canvas struct {
	device *Device
}

// NewCanvas creates a canvas backed by a fresh 32-bit RGBA pixmap.
func NewCanvas(width, height int) (*Canvas, error) {
	d, err := NewDeviceConfig(width, height, ConfigRGBA8888)
	if err != nil {
		return nil, err
	}
	return &Canvas{device: d}, nil
}

// NewCanvasForPixmap creates a canvas drawing into an existing pixmap.
func NewCanvasForPixmap(p *Pixmap) *Canvas {
	return &Canvas{device: NewDevice(p)}
}

// Device returns the underlying device.
func (c *Canvas) Device() *Device { return c.device }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.device.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.device.Height() }

// Pixmap returns the backing pixmap.
func (c *Canvas) Pixmap() *Pixmap { return c.device.Pixmap() }

// Save pushes the transform and clip state.
func (c *Canvas) Save() int { return c.device.Save() }

// Restore pops the most recent save.
func (c *Canvas) Restore() error { return c.device.Restore() }

// SaveCount returns the number of saves not yet restored.
func (c *Canvas) SaveCount() int { return c.device.SaveCount() }

// RestoreToCount restores until the save count equals count.
func (c *Canvas) RestoreToCount(count int) { c.device.RestoreToCount(count) }

// Matrix returns the current transformation matrix.
func (c *Canvas) Matrix() Matrix { return c.device.Matrix() }

// SetMatrix replaces the current transformation matrix.
func (c *Canvas) SetMatrix(m Matrix) { c.device.SetMatrix(m) }

// ResetMatrix restores the identity transform.
func (c *Canvas) ResetMatrix() { c.device.ResetMatrix() }

// Concat appends m to the current transform.
func (c *Canvas) Concat(m Matrix) { c.device.Concat(m) }

// Translate appends a translation to the current transform.
func (c *Canvas) Translate(x, y float64) { c.device.Translate(x, y) }

// Scale appends a scale to the current transform.
func (c *Canvas) Scale(x, y float64) { c.device.Scale(x, y) }

// Rotate appends a rotation (radians) to the current transform.
func (c *Canvas) Rotate(angle float64) { c.device.Rotate(angle) }

// Shear appends a shear to the current transform.
func (c *Canvas) Shear(x, y float64) { c.device.Shear(x, y) }

// ClipRect combines a rectangle into the clip.
func (c *Canvas) ClipRect(r Rect, op ClipOp, aa bool) { c.device.ClipRect(r, op, aa) }

// ClipPath combines a path into the clip.
func (c *Canvas) ClipPath(p *Path, op ClipOp, aa bool) { c.device.ClipPath(p, op, aa) }

// ReplaceClip replaces the clip with a device-space rectangle.
func (c *Canvas) ReplaceClip(r Rect) { c.device.ReplaceClip(r) }

// ClipBounds returns the device-space bounds of the clip.
func (c *Canvas) ClipBounds() Rect { return c.device.ClipBounds() }

// IsClipEmpty reports whether the clip excludes everything.
func (c *Canvas) IsClipEmpty() bool { return c.device.IsClipEmpty() }

// IsClipRect reports whether the clip is a full-coverage rectangle.
func (c *Canvas) IsClipRect() bool { return c.device.IsClipRect() }

// IsClipWideOpen reports whether the clip covers the whole canvas.
func (c *Canvas) IsClipWideOpen() bool { return c.device.IsClipWideOpen() }

// Clear replaces every pixel, ignoring clip and transform.
func (c *Canvas) Clear(col Color) { c.device.Clear(col) }

// DrawPaint paints the whole clip region.
func (c *Canvas) DrawPaint(p *Paint) { c.device.DrawPaint(p) }

// DrawRect draws a rectangle.
func (c *Canvas) DrawRect(r Rect, p *Paint) { c.device.DrawRect(r, p) }

// DrawOval draws the oval inscribed in r.
func (c *Canvas) DrawOval(r Rect, p *Paint) { c.device.DrawOval(r, p) }

// DrawCircle draws a circle.
func (c *Canvas) DrawCircle(cx, cy, radius float64, p *Paint) {
	c.device.DrawCircle(cx, cy, radius, p)
}

// DrawRoundRect draws a rectangle with rounded corners.
func (c *Canvas) DrawRoundRect(r Rect, radius float64, p *Paint) {
	c.device.DrawRoundRect(r, radius, p)
}

// DrawLine strokes a line segment.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, p *Paint) {
	c.device.DrawLine(x0, y0, x1, y1, p)
}

// DrawPath draws a path with the paint's style.
func (c *Canvas) DrawPath(path *Path, p *Paint) { c.device.DrawPath(path, p) }

// DrawImage draws a pixmap at (x, y).
func (c *Canvas) DrawImage(img *Pixmap, x, y float64, p *Paint) {
	c.device.DrawImage(img, x, y, p)
}

// DrawImageRect draws the src rectangle of a pixmap into dst.
func (c *Canvas) DrawImageRect(img *Pixmap, src, dst Rect, p *Paint) {
	c.device.DrawImageRect(img, src, dst, p)
}

// DrawGlyphRun draws positioned glyphs.
func (c *Canvas) DrawGlyphRun(run *GlyphRun, p *Paint) { c.device.DrawGlyphRun(run, p) }

// DrawText draws a string along a baseline starting at (x, y).
func (c *Canvas) DrawText(s string, x, y float64, face font.Face, p *Paint) {
	c.device.DrawText(s, x, y, face, p)
}

// ReadPixels copies canvas pixels starting at (srcX, srcY) into dst.
func (c *Canvas) ReadPixels(dst *Pixmap, srcX, srcY int) error {
	return c.device.ReadPixels(dst, srcX, srcY)
}

// WritePixels copies src into the canvas at (dstX, dstY).
func (c *Canvas) WritePixels(src *Pixmap, dstX, dstY int) error {
	return c.device.WritePixels(src, dstX, dstY)
}
