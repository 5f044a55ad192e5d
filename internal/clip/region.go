// Package clip provides device-space clip regions with coverage-based
// combination. A region is one of three kinds: wide open (the whole
// device), a pixel-aligned rectangle, or an 8-bit coverage mask.
// Rectangle regions are kept symbolic as long as possible; combining
// anything with a mask materializes per-pixel coverage.
package clip

import "math"

// IRect is an integer pixel rectangle, half-open on the right and
// bottom edges.
type IRect struct {
	X0, Y0, X1, Y1 int
}

// MakeIRect creates an IRect from edges.
func MakeIRect(x0, y0, x1, y1 int) IRect {
	return IRect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Empty reports whether the rectangle covers no pixels.
func (r IRect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Width returns the pixel width.
func (r IRect) Width() int {
	return r.X1 - r.X0
}

// Height returns the pixel height.
func (r IRect) Height() int {
	return r.Y1 - r.Y0
}

// Intersect returns the overlap of two rectangles.
func (r IRect) Intersect(o IRect) IRect {
	out := IRect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	if out.Empty() {
		return IRect{}
	}
	return out
}

// Contains reports whether the pixel (x, y) lies in the rectangle.
func (r IRect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Kind identifies a region's representation.
type Kind int

const (
	// KindWideOpen covers the entire device.
	KindWideOpen Kind = iota
	// KindRect covers a pixel-aligned rectangle at full coverage.
	KindRect
	// KindMask carries per-pixel coverage.
	KindMask
)

// Op selects how a new clip shape combines with the current region.
type Op int

const (
	// OpIntersect keeps the area inside both.
	OpIntersect Op = iota
	// OpDifference removes the new shape's area from the region.
	OpDifference
)

// Region is an immutable device-space clip. All combining operations
// return a new region.
type Region struct {
	width, height int
	kind          Kind
	rect          IRect   // valid for KindRect
	mask          []uint8 // valid for KindMask, len width*height
	bounds        IRect   // cached non-zero coverage bounds for KindMask
}

// WideOpen returns a region covering the whole device.
func WideOpen(width, height int) *Region {
	return &Region{width: width, height: height, kind: KindWideOpen}
}

// Empty returns a region covering nothing.
func Empty(width, height int) *Region {
	return &Region{width: width, height: height, kind: KindRect, rect: IRect{}}
}

// FromRect builds a region from a device-space rectangle. With aa false
// the rectangle snaps to the pixels whose centers it contains. With aa
// true, fractional edges produce a mask with exact per-pixel area
// coverage; pixel-aligned rectangles stay in rect form either way.
func FromRect(width, height int, x, y, w, h float64, aa bool) *Region {
	if w <= 0 || h <= 0 {
		return Empty(width, height)
	}
	deviceRect := IRect{X0: 0, Y0: 0, X1: width, Y1: height}

	aligned := x == math.Trunc(x) && y == math.Trunc(y) &&
		w == math.Trunc(w) && h == math.Trunc(h)
	if !aa || aligned {
		var ir IRect
		if aligned {
			ir = IRect{X0: int(x), Y0: int(y), X1: int(x + w), Y1: int(y + h)}
		} else {
			// Pixel-center rule: pixel covered when x+0.5 in [x, x+w).
			ir = IRect{
				X0: int(math.Ceil(x - 0.5)),
				Y0: int(math.Ceil(y - 0.5)),
				X1: int(math.Ceil(x + w - 0.5)),
				Y1: int(math.Ceil(y + h - 0.5)),
			}
		}
		ir = ir.Intersect(deviceRect)
		if ir.Empty() {
			return Empty(width, height)
		}
		if ir == deviceRect {
			return WideOpen(width, height)
		}
		return &Region{width: width, height: height, kind: KindRect, rect: ir}
	}

	// Fractional anti-aliased rect: exact area coverage per pixel.
	mask := make([]uint8, width*height)
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x + w))
	y1 := int(math.Ceil(y + h))
	for py := max(y0, 0); py < min(y1, height); py++ {
		fy := overlap1D(float64(py), y, y+h)
		if fy <= 0 {
			continue
		}
		row := py * width
		for px := max(x0, 0); px < min(x1, width); px++ {
			fx := overlap1D(float64(px), x, x+w)
			if fx <= 0 {
				continue
			}
			mask[row+px] = uint8(math.Round(fx * fy * 255))
		}
	}
	return fromMask(width, height, mask)
}

// FromMask builds a region from a device-sized coverage mask. The mask
// is retained, not copied.
func FromMask(width, height int, mask []uint8) *Region {
	return fromMask(width, height, mask)
}

func fromMask(width, height int, mask []uint8) *Region {
	r := &Region{width: width, height: height, kind: KindMask, mask: mask}
	r.bounds = maskBounds(mask, width, height)
	if r.bounds.Empty() {
		return Empty(width, height)
	}
	return r
}

// overlap1D returns the length of the overlap between the unit interval
// [p, p+1) and [lo, hi), clamped to [0, 1].
func overlap1D(p, lo, hi float64) float64 {
	v := math.Min(p+1, hi) - math.Max(p, lo)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// maskBounds scans for the tight bounds of non-zero coverage.
func maskBounds(mask []uint8, width, height int) IRect {
	b := IRect{X0: width, Y0: height, X1: 0, Y1: 0}
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			if mask[row+x] == 0 {
				continue
			}
			if x < b.X0 {
				b.X0 = x
			}
			if x+1 > b.X1 {
				b.X1 = x + 1
			}
			if y < b.Y0 {
				b.Y0 = y
			}
			b.Y1 = y + 1
		}
	}
	if b.X1 <= b.X0 {
		return IRect{}
	}
	return b
}

// Kind returns the region's representation.
func (r *Region) Kind() Kind {
	return r.kind
}

// IsWideOpen reports whether the region covers the whole device.
func (r *Region) IsWideOpen() bool {
	return r.kind == KindWideOpen
}

// IsEmpty reports whether the region covers nothing.
func (r *Region) IsEmpty() bool {
	return r.kind == KindRect && r.rect.Empty()
}

// IsRect reports whether the region is an axis-aligned rectangle at
// full coverage (wide open counts).
func (r *Region) IsRect() bool {
	return r.kind != KindMask
}

// Bounds returns the tight integer bounds of non-zero coverage.
func (r *Region) Bounds() IRect {
	switch r.kind {
	case KindWideOpen:
		return IRect{X0: 0, Y0: 0, X1: r.width, Y1: r.height}
	case KindRect:
		return r.rect
	default:
		return r.bounds
	}
}

// Coverage returns the clip coverage (0-255) at the pixel (x, y).
// Out-of-device pixels have zero coverage.
func (r *Region) Coverage(x, y int) uint8 {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0
	}
	switch r.kind {
	case KindWideOpen:
		return 255
	case KindRect:
		if r.rect.Contains(x, y) {
			return 255
		}
		return 0
	default:
		return r.mask[y*r.width+x]
	}
}

// Combine merges a shape region into r under the given op and returns
// the result.
func (r *Region) Combine(op Op, shape *Region) *Region {
	if op == OpIntersect {
		return r.intersect(shape)
	}
	return r.difference(shape)
}

// intersect returns the region covered by both r and o. Coverage
// multiplies, so overlapping anti-aliased boundaries attenuate.
func (r *Region) intersect(o *Region) *Region {
	if r.IsEmpty() || o.IsWideOpen() {
		return r
	}
	if o.IsEmpty() || r.IsWideOpen() {
		return o
	}
	if r.kind == KindRect && o.kind == KindRect {
		ir := r.rect.Intersect(o.rect)
		if ir.Empty() {
			return Empty(r.width, r.height)
		}
		return &Region{width: r.width, height: r.height, kind: KindRect, rect: ir}
	}

	mask := make([]uint8, r.width*r.height)
	b := r.Bounds().Intersect(o.Bounds())
	for y := b.Y0; y < b.Y1; y++ {
		row := y * r.width
		for x := b.X0; x < b.X1; x++ {
			mask[row+x] = mulDiv255(r.Coverage(x, y), o.Coverage(x, y))
		}
	}
	return fromMask(r.width, r.height, mask)
}

// difference returns r with o's coverage removed. Coverage multiplies
// by the complement, so anti-aliased boundaries feather out.
func (r *Region) difference(o *Region) *Region {
	if r.IsEmpty() || o.IsEmpty() {
		return r
	}
	if o.IsWideOpen() {
		return Empty(r.width, r.height)
	}

	mask := make([]uint8, r.width*r.height)
	b := r.Bounds()
	for y := b.Y0; y < b.Y1; y++ {
		row := y * r.width
		for x := b.X0; x < b.X1; x++ {
			mask[row+x] = mulDiv255(r.Coverage(x, y), 255-o.Coverage(x, y))
		}
	}
	return fromMask(r.width, r.height, mask)
}

// mulDiv255 computes a * b / 255 with round-half-up rounding, matching
// the compositing policy used elsewhere.
func mulDiv255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
