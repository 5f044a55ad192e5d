package kanvas

import (
	"github.com/ygdrasil-io/kanvas/internal/blend"
	"github.com/ygdrasil-io/kanvas/internal/clip"
	"github.com/ygdrasil-io/kanvas/internal/raster"
	"github.com/ygdrasil-io/kanvas/internal/stroke"
)

// ClipOp selects how a clip shape combines with the current clip.
type ClipOp int

const (
	// ClipIntersect keeps the area inside both.
	ClipIntersect ClipOp = iota
	// ClipDifference removes the shape's area from the clip.
	ClipDifference
)

func (op ClipOp) regionOp() clip.Op {
	if op == ClipDifference {
		return clip.OpDifference
	}
	return clip.OpIntersect
}

// deviceState is one entry of the save stack: the current transform and
// the device-space clip.
type deviceState struct {
	matrix Matrix
	clip   *clip.Region
}

// Device is a software rendering target. It owns a pixmap, a current
// transformation matrix mapping user space to device space, and a clip
// region in device space, all managed as a save/restore stack.
//
// A Device is not safe for concurrent use.
type Device struct {
	pixmap *Pixmap
	rast   *raster.Rasterizer
	stack  []deviceState
	cur    deviceState
}

// NewDevice creates a device drawing into the given pixmap.
func NewDevice(pixmap *Pixmap) *Device {
	d := &Device{
		pixmap: pixmap,
		rast:   raster.NewRasterizer(pixmap.Width(), pixmap.Height()),
	}
	d.cur = deviceState{
		matrix: Identity(),
		clip:   clip.WideOpen(pixmap.Width(), pixmap.Height()),
	}
	return d
}

// NewDeviceConfig creates a device with a fresh pixmap of the given
// size and config.
func NewDeviceConfig(width, height int, config Config) (*Device, error) {
	p, err := NewPixmap(width, height, config)
	if err != nil {
		return nil, err
	}
	return NewDevice(p), nil
}

// Width returns the device width in pixels.
func (d *Device) Width() int {
	return d.pixmap.Width()
}

// Height returns the device height in pixels.
func (d *Device) Height() int {
	return d.pixmap.Height()
}

// Pixmap returns the device's backing pixmap.
func (d *Device) Pixmap() *Pixmap {
	return d.pixmap
}

// State stack

// Save pushes the current transform and clip onto the stack and
// returns the save count before the push.
func (d *Device) Save() int {
	depth := len(d.stack)
	d.stack = append(d.stack, d.cur)
	return depth
}

// Restore pops the most recent save, restoring its transform and clip.
// Restoring past the base state returns ErrStackUnderflow.
func (d *Device) Restore() error {
	if len(d.stack) == 0 {
		Logger().Warn("restore called on the base device state")
		return ErrStackUnderflow
	}
	d.cur = d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

// SaveCount returns the number of saves not yet restored.
func (d *Device) SaveCount() int {
	return len(d.stack)
}

// RestoreToCount restores until the save count equals count. A count at
// or above the current depth is a no-op.
func (d *Device) RestoreToCount(count int) {
	if count < 0 {
		count = 0
	}
	for len(d.stack) > count {
		_ = d.Restore()
	}
}

// Transform

// Matrix returns the current transformation matrix.
func (d *Device) Matrix() Matrix {
	return d.cur.matrix
}

// SetMatrix replaces the current transformation matrix.
func (d *Device) SetMatrix(m Matrix) {
	d.cur.matrix = m
}

// ResetMatrix restores the identity transform.
func (d *Device) ResetMatrix() {
	d.cur.matrix = Identity()
}

// Concat appends m to the current transform; m applies first.
func (d *Device) Concat(m Matrix) {
	d.cur.matrix = d.cur.matrix.Multiply(m)
}

// Translate appends a translation to the current transform.
func (d *Device) Translate(x, y float64) {
	d.Concat(Translate(x, y))
}

// Scale appends a scale to the current transform.
func (d *Device) Scale(x, y float64) {
	d.Concat(Scale(x, y))
}

// Rotate appends a rotation (radians) to the current transform.
func (d *Device) Rotate(angle float64) {
	d.Concat(Rotate(angle))
}

// Shear appends a shear to the current transform.
func (d *Device) Shear(x, y float64) {
	d.Concat(Shear(x, y))
}

// Clip

// ClipRect combines a user-space rectangle into the clip. Under a
// rotated or skewed transform the rectangle clips as a path.
func (d *Device) ClipRect(r Rect, op ClipOp, aa bool) {
	if d.cur.matrix.IsAxisAligned() {
		dr := d.cur.matrix.TransformRect(r)
		shape := clip.FromRect(d.Width(), d.Height(), dr.X, dr.Y, dr.W, dr.H, aa)
		d.cur.clip = d.cur.clip.Combine(op.regionOp(), shape)
		return
	}
	path := NewPath()
	path.Rectangle(r)
	d.ClipPath(path, op, aa)
}

// ClipPath rasterizes a user-space path into a coverage mask and
// combines it into the clip.
func (d *Device) ClipPath(path *Path, op ClipOp, aa bool) {
	shape := d.rasterizeClipShape(path, aa)
	d.cur.clip = d.cur.clip.Combine(op.regionOp(), shape)
}

// ReplaceClip discards the current clip and replaces it with a
// device-space rectangle, escaping all saved clip state until the next
// restore.
func (d *Device) ReplaceClip(r Rect) {
	d.cur.clip = clip.FromRect(d.Width(), d.Height(), r.X, r.Y, r.W, r.H, false)
}

// rasterizeClipShape renders a path into a clip region.
func (d *Device) rasterizeClipShape(path *Path, aa bool) *clip.Region {
	devPath := path.Transform(d.cur.matrix)
	rings := fillRings(devPath.Flatten(0))
	if len(rings) == 0 {
		return clip.Empty(d.Width(), d.Height())
	}
	mask := make([]uint8, d.Width()*d.Height())
	span := func(y, x0, x1 int, coverage uint8) {
		row := y * d.pixmap.Width()
		for x := x0; x < x1; x++ {
			mask[row+x] = coverage
		}
	}
	rule := fillRule(path.FillType())
	if aa {
		d.rast.FillAA(rings, rule, span)
	} else {
		d.rast.Fill(rings, rule, span)
	}
	return clip.FromMask(d.Width(), d.Height(), mask)
}

// ClipBounds returns the device-space bounding rectangle of the clip.
func (d *Device) ClipBounds() Rect {
	b := d.cur.clip.Bounds()
	return Rect{X: float64(b.X0), Y: float64(b.Y0), W: float64(b.Width()), H: float64(b.Height())}
}

// IsClipEmpty reports whether the clip excludes everything.
func (d *Device) IsClipEmpty() bool {
	return d.cur.clip.IsEmpty()
}

// IsClipRect reports whether the clip is a full-coverage rectangle.
func (d *Device) IsClipRect() bool {
	return d.cur.clip.IsRect() && !d.cur.clip.IsEmpty()
}

// IsClipWideOpen reports whether the clip covers the whole device.
func (d *Device) IsClipWideOpen() bool {
	return d.cur.clip.IsWideOpen()
}

// Drawing

// Clear replaces every pixel of the device with a color, ignoring the
// clip and transform.
func (d *Device) Clear(c Color) {
	d.pixmap.Clear(c)
}

// DrawPaint paints the whole clip region with the paint's color source.
func (d *Device) DrawPaint(paint *Paint) {
	if d.cur.clip.IsEmpty() {
		return
	}
	blit := d.spanBlitter(paint)
	b := d.cur.clip.Bounds()
	for y := b.Y0; y < b.Y1; y++ {
		blit(y, b.X0, b.X1, 255)
	}
}

// DrawRect draws a rectangle.
func (d *Device) DrawRect(r Rect, paint *Paint) {
	path := NewPath()
	path.Rectangle(r)
	d.DrawPath(path, paint)
}

// DrawOval draws the oval inscribed in r.
func (d *Device) DrawOval(r Rect, paint *Paint) {
	path := NewPath()
	path.Oval(r)
	d.DrawPath(path, paint)
}

// DrawCircle draws a circle.
func (d *Device) DrawCircle(cx, cy, radius float64, paint *Paint) {
	path := NewPath()
	path.Circle(cx, cy, radius)
	d.DrawPath(path, paint)
}

// DrawRoundRect draws a rectangle with rounded corners.
func (d *Device) DrawRoundRect(r Rect, radius float64, paint *Paint) {
	path := NewPath()
	path.RoundedRectangle(r, radius)
	d.DrawPath(path, paint)
}

// DrawLine strokes a line segment, regardless of the paint style.
func (d *Device) DrawLine(x0, y0, x1, y1 float64, paint *Paint) {
	path := NewPath()
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	d.strokePath(path, paint)
}

// DrawPath draws a path with the paint's style.
func (d *Device) DrawPath(path *Path, paint *Paint) {
	if d.cur.clip.IsEmpty() || path.IsEmpty() {
		return
	}
	switch paint.Style {
	case PaintStroke:
		d.strokePath(path, paint)
	case PaintFillAndStroke:
		d.fillPath(path, paint)
		d.strokePath(path, paint)
	default:
		d.fillPath(path, paint)
	}
}

// fillPath rasterizes the path interior in device space.
func (d *Device) fillPath(path *Path, paint *Paint) {
	devPath := path.Transform(d.cur.matrix)
	rings := fillRings(devPath.Flatten(0))
	if len(rings) == 0 {
		return
	}
	d.rasterize(rings, fillRule(path.FillType()), paint)
}

// strokePath expands the stroke outline and fills it with the non-zero
// rule. Geometry expands in user space so the transform shapes joins
// and caps; a zero width hairline expands in device space at one pixel.
func (d *Device) strokePath(path *Path, paint *Paint) {
	style := paint.strokeStyle()
	maxScale := d.cur.matrix.MaxScale()
	if maxScale <= 0 {
		return
	}

	if style.Width <= 0 {
		// Hairline: one device pixel wide regardless of transform.
		devPath := path.Transform(d.cur.matrix)
		style.Width = 1
		rings := strokeRings(stroke.Expand(strokeSubs(devPath.Flatten(0)), style))
		d.rasterize(rings, raster.FillRuleNonZero, paint)
		return
	}

	// Flatten tighter under magnification so device-space error stays
	// bounded.
	tol := defaultFlattenTolerance / maxScale
	userRings := stroke.Expand(strokeSubs(path.Flatten(tol)), style)
	rings := make([][]raster.Point, len(userRings))
	for i, ring := range userRings {
		out := make([]raster.Point, len(ring))
		for j, p := range ring {
			pt := d.cur.matrix.TransformPoint(Pt(p.X, p.Y))
			out[j] = raster.Point{X: pt.X, Y: pt.Y}
		}
		rings[i] = out
	}
	d.rasterize(rings, raster.FillRuleNonZero, paint)
}

// DrawImage draws a pixmap with its top-left corner at (x, y) in user
// space.
func (d *Device) DrawImage(img *Pixmap, x, y float64, paint *Paint) {
	dst := Rect{X: x, Y: y, W: float64(img.Width()), H: float64(img.Height())}
	d.DrawImageRect(img, img.Bounds(), dst, paint)
}

// DrawImageRect draws the src rectangle of a pixmap scaled into the dst
// rectangle in user space. The paint supplies blend mode, alpha-free
// color filter, and quality flags; its color source is replaced by the
// image. A nil paint uses defaults with bilinear sampling.
func (d *Device) DrawImageRect(img *Pixmap, src, dst Rect, paint *Paint) {
	if img == nil || src.IsEmpty() || dst.IsEmpty() {
		return
	}
	if paint == nil {
		paint = NewPaint()
	}

	// Map user-space dst coordinates onto src pixel coordinates.
	m := Translate(src.X, src.Y).
		Multiply(Scale(src.W/dst.W, src.H/dst.H)).
		Multiply(Translate(-dst.X, -dst.Y))

	sampling := paint.Sampling
	if sampling == SampleBilinear && unscaledIntegerDraw(d.cur.matrix, src, dst) {
		// Bilinear at exact pixel centers reduces to a copy.
		sampling = SampleNearest
	}

	p := *paint
	p.Style = PaintFill
	p.Shader = NewBitmapShader(img, sampling, TileClamp, TileClamp, m)

	path := NewPath()
	path.Rectangle(dst)
	d.DrawPath(path, &p)
}

// unscaledIntegerDraw reports whether the draw lands the source on the
// destination pixel grid exactly.
func unscaledIntegerDraw(ctm Matrix, src, dst Rect) bool {
	if src.W != dst.W || src.H != dst.H || !ctm.IsTranslation() {
		return false
	}
	tx := ctm.C + dst.X - src.X
	ty := ctm.F + dst.Y - src.Y
	return tx == float64(int(tx)) && ty == float64(int(ty))
}

// Pixel access

// ReadPixels copies device pixels starting at (srcX, srcY) into dst.
func (d *Device) ReadPixels(dst *Pixmap, srcX, srcY int) error {
	return d.pixmap.ReadPixels(dst, srcX, srcY)
}

// WritePixels copies src into the device at (dstX, dstY), bypassing the
// transform, clip, and blend mode.
func (d *Device) WritePixels(src *Pixmap, dstX, dstY int) error {
	return d.pixmap.WritePixels(src, dstX, dstY)
}

// Pipeline internals

// rasterize scans the rings and blits covered spans through the paint.
func (d *Device) rasterize(rings [][]raster.Point, rule raster.FillRule, paint *Paint) {
	blit := d.spanBlitter(paint)
	if paint.Antialias {
		d.rast.FillAA(rings, rule, blit)
	} else {
		d.rast.Fill(rings, rule, blit)
	}
}

// spanBlitter builds the per-span pipeline: clip coverage multiply,
// shading in local space, compositing, and storing with optional
// dithering.
func (d *Device) spanBlitter(paint *Paint) raster.SpanFunc {
	region := d.cur.clip
	wideOpen := region.IsWideOpen()
	mode := paint.Blend.mode()
	dither := paint.Dither && d.pixmap.config != ConfigRGBA8888

	uniform := paint.isUniform()
	var ur, ug, ub, ua uint8
	if uniform {
		ur, ug, ub, ua = paint.colorAt(0, 0).premulBytes()
	}

	inv, invertible := d.cur.matrix.Invert()
	if !uniform && !invertible {
		Logger().Debug("skipping shaded draw, transform is not invertible")
		return func(y, x0, x1 int, coverage uint8) {}
	}

	return func(y, x0, x1 int, coverage uint8) {
		for x := x0; x < x1; x++ {
			cov := coverage
			if !wideOpen {
				cov = mul255(cov, region.Coverage(x, y))
				if cov == 0 {
					continue
				}
			}

			sr, sg, sb, sa := ur, ug, ub, ua
			if !uniform {
				local := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
				sr, sg, sb, sa = paint.colorAt(local.X, local.Y).premulBytes()
			}

			dr, dg, db, da := d.pixmap.loadPremul(x, y)
			r, g, b, a := blend.Composite(mode, sr, sg, sb, sa, dr, dg, db, da, cov)
			d.pixmap.storePremul(x, y, r, g, b, a, dither)
		}
	}
}

// fillRings converts flattened subpaths to rasterizer rings. Fills
// treat open subpaths as closed; degenerate single points carry no
// area.
func fillRings(subs []SubPath) [][]raster.Point {
	rings := make([][]raster.Point, 0, len(subs))
	for _, sub := range subs {
		if len(sub.Points) < 3 {
			continue
		}
		ring := make([]raster.Point, len(sub.Points))
		for i, p := range sub.Points {
			ring[i] = raster.Point{X: p.X, Y: p.Y}
		}
		rings = append(rings, ring)
	}
	return rings
}

// strokeSubs converts flattened subpaths for the stroke expander.
func strokeSubs(subs []SubPath) []stroke.SubPath {
	out := make([]stroke.SubPath, len(subs))
	for i, sub := range subs {
		pts := make([]stroke.Point, len(sub.Points))
		for j, p := range sub.Points {
			pts[j] = stroke.Point{X: p.X, Y: p.Y}
		}
		out[i] = stroke.SubPath{Points: pts, Closed: sub.Closed}
	}
	return out
}

// strokeRings converts expanded stroke outlines to rasterizer rings.
func strokeRings(rings [][]stroke.Point) [][]raster.Point {
	out := make([][]raster.Point, len(rings))
	for i, ring := range rings {
		conv := make([]raster.Point, len(ring))
		for j, p := range ring {
			conv[j] = raster.Point{X: p.X, Y: p.Y}
		}
		out[i] = conv
	}
	return out
}

// fillRule converts a path fill type for the rasterizer.
func fillRule(ft FillType) raster.FillRule {
	if ft == FillEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

// mul255 computes a * b / 255 with round-half-up rounding, the same
// policy the compositor uses.
func mul255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
