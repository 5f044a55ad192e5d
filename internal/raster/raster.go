// Package raster provides scanline rasterization of polygons into
// coverage spans. The rasterizer computes geometry only; callers supply a
// SpanFunc that applies clipping, shading, and blending per span.
package raster

import "math"

// FillRule specifies how to determine which areas are inside a polygon.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// SpanFunc receives a horizontal run of pixels [x0, x1) on row y with a
// uniform coverage value. Coordinates are always within the rasterizer's
// bounds.
type SpanFunc func(y, x0, x1 int, coverage uint8)

// Rasterizer performs scanline rasterization within a fixed device
// bound. It is reusable but not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	aet    *ActiveEdgeTable
	cov    []float64 // per-pixel coverage accumulator for one AA row
}

// NewRasterizer creates a rasterizer for the given device dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		aet:    NewActiveEdgeTable(),
	}
}

// Fill rasterizes polygon rings without anti-aliasing. A pixel is inside
// when its center (x+0.5, y+0.5) is inside the polygon; covered pixels
// are reported with coverage 255.
func (r *Rasterizer) Fill(polys [][]Point, rule FillRule, span SpanFunc) {
	edges := buildEdges(polys)
	if len(edges) == 0 {
		return
	}

	yMin, yMax := r.clampYBounds(edges)
	for y := yMin; y < yMax; y++ {
		scanY := float64(y) + 0.5
		r.collectCrossings(edges, scanY)
		r.forEachInterval(rule, func(x1, x2 float64) {
			// Pixel centers x+0.5 in [x1, x2).
			start := int(math.Ceil(x1 - 0.5))
			end := int(math.Ceil(x2 - 0.5))
			if start < 0 {
				start = 0
			}
			if end > r.width {
				end = r.width
			}
			if start < end {
				span(y, start, end, 255)
			}
		})
	}
}

// supersample is the vertical supersampling factor for anti-aliased
// fills. Horizontal coverage is exact (fractional span overlap), so 4
// sub-scanlines give 4x4-equivalent quality.
const supersample = 4

// FillAA rasterizes polygon rings with anti-aliasing. Each pixel is
// reported with a coverage value proportional to the area of the pixel
// inside the polygon, estimated from 4 sub-scanlines with exact
// fractional x coverage.
func (r *Rasterizer) FillAA(polys [][]Point, rule FillRule, span SpanFunc) {
	edges := buildEdges(polys)
	if len(edges) == 0 {
		return
	}

	if len(r.cov) < r.width {
		r.cov = make([]float64, r.width)
	}
	cov := r.cov[:r.width]

	yMin, yMax := r.clampYBounds(edges)
	for y := yMin; y < yMax; y++ {
		for i := range cov {
			cov[i] = 0
		}
		touched := false

		for sub := 0; sub < supersample; sub++ {
			scanY := float64(y) + (float64(sub)+0.5)/supersample
			r.collectCrossings(edges, scanY)
			r.forEachInterval(rule, func(x1, x2 float64) {
				if r.accumulate(cov, x1, x2) {
					touched = true
				}
			})
		}

		if touched {
			emitRuns(cov, y, span)
		}
	}
}

// clampYBounds returns the pixel row range [yMin, yMax) covered by the
// edge list, clamped to the device height.
func (r *Rasterizer) clampYBounds(edges []Edge) (int, int) {
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	lo := int(math.Floor(yMin))
	hi := int(math.Ceil(yMax))
	if lo < 0 {
		lo = 0
	}
	if hi > r.height {
		hi = r.height
	}
	return lo, hi
}

// collectCrossings gathers and sorts the edges crossing scanY.
func (r *Rasterizer) collectCrossings(edges []Edge, scanY float64) {
	r.aet.Clear()
	for i := range edges {
		e := &edges[i]
		if e.y0 <= scanY && scanY < e.y1 {
			r.aet.AddAtY(*e, scanY)
		}
	}
	r.aet.Sort()
}

// forEachInterval walks the sorted crossings and invokes fn for every
// inside interval [x1, x2) according to the fill rule.
func (r *Rasterizer) forEachInterval(rule FillRule, fn func(x1, x2 float64)) {
	crossings := r.aet.Edges()
	if rule == FillRuleNonZero {
		winding := 0
		var x1 float64
		for _, c := range crossings {
			if winding == 0 {
				x1 = c.x
			}
			winding += c.dir
			if winding == 0 {
				fn(x1, c.x)
			}
		}
		return
	}
	for i := 0; i+1 < len(crossings); i += 2 {
		fn(crossings[i].x, crossings[i+1].x)
	}
}

// accumulate adds one sub-scanline's worth of coverage for the interval
// [x1, x2) into cov. Partial pixels receive their exact fractional
// overlap. Reports whether anything was added.
func (r *Rasterizer) accumulate(cov []float64, x1, x2 float64) bool {
	if x1 < 0 {
		x1 = 0
	}
	if x2 > float64(r.width) {
		x2 = float64(r.width)
	}
	if x1 >= x2 {
		return false
	}

	const weight = 1.0 / supersample
	ix1 := int(x1)
	ix2 := int(x2)

	if ix1 == ix2 {
		cov[ix1] += (x2 - x1) * weight
		return true
	}

	cov[ix1] += (float64(ix1+1) - x1) * weight
	for x := ix1 + 1; x < ix2; x++ {
		cov[x] += weight
	}
	if ix2 < len(cov) {
		cov[ix2] += (x2 - float64(ix2)) * weight
	}
	return true
}

// emitRuns converts an accumulated coverage row into spans of equal byte
// coverage and reports them.
func emitRuns(cov []float64, y int, span SpanFunc) {
	runStart := -1
	var runCov uint8
	for x := 0; x <= len(cov); x++ {
		var c uint8
		if x < len(cov) {
			c = coverageByte(cov[x])
		}
		if runStart >= 0 && c == runCov {
			continue
		}
		if runStart >= 0 && runCov > 0 {
			span(y, runStart, x, runCov)
		}
		runStart = x
		runCov = c
	}
}

// coverageByte converts accumulated fractional coverage to a byte,
// clamping supersampling round-off above 1.0.
func coverageByte(c float64) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(math.Round(c * 255))
}
