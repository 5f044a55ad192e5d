package stroke

import (
	"math"
	"testing"
)

// ringsBounds returns the bounding box of all ring points.
func ringsBounds(rings [][]Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, ring := range rings {
		for _, p := range ring {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return
}

// containsPoint tests a point against the rings with the non-zero rule.
func containsPoint(rings [][]Point, x, y float64) bool {
	winding := 0
	for _, ring := range rings {
		for i := range ring {
			p0 := ring[i]
			p1 := ring[(i+1)%len(ring)]
			if p0.Y <= y && y < p1.Y {
				if (p1.X-p0.X)*(y-p0.Y)-(x-p0.X)*(p1.Y-p0.Y) > 0 {
					winding++
				}
			} else if p1.Y <= y && y < p0.Y {
				if (p1.X-p0.X)*(y-p0.Y)-(x-p0.X)*(p1.Y-p0.Y) < 0 {
					winding--
				}
			}
		}
	}
	return winding != 0
}

func approxEq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestExpandLineButt(t *testing.T) {
	subs := []SubPath{{Points: []Point{{10, 10}, {50, 10}}}}
	rings := Expand(subs, Style{Width: 4, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4})

	minX, minY, maxX, maxY := ringsBounds(rings)
	if !approxEq(minX, 10, 1e-9) || !approxEq(maxX, 50, 1e-9) {
		t.Errorf("butt caps should not extend past endpoints: x [%v, %v]", minX, maxX)
	}
	if !approxEq(minY, 8, 1e-9) || !approxEq(maxY, 12, 1e-9) {
		t.Errorf("stroke should span half width each side: y [%v, %v]", minY, maxY)
	}
	if !containsPoint(rings, 30, 10) {
		t.Error("stroke center should be inside the outline")
	}
	if containsPoint(rings, 30, 13) {
		t.Error("point outside the stroke width should be outside")
	}
}

func TestExpandLineSquareCap(t *testing.T) {
	subs := []SubPath{{Points: []Point{{10, 10}, {50, 10}}}}
	rings := Expand(subs, Style{Width: 4, Cap: LineCapSquare})

	minX, _, maxX, _ := ringsBounds(rings)
	if !approxEq(minX, 8, 1e-9) || !approxEq(maxX, 52, 1e-9) {
		t.Errorf("square caps should extend half width: x [%v, %v]", minX, maxX)
	}
}

func TestExpandLineRoundCap(t *testing.T) {
	subs := []SubPath{{Points: []Point{{10, 10}, {50, 10}}}}
	rings := Expand(subs, Style{Width: 4, Cap: LineCapRound})

	minX, _, maxX, _ := ringsBounds(rings)
	if !approxEq(minX, 8, 0.05) || !approxEq(maxX, 52, 0.05) {
		t.Errorf("round caps should extend ~half width: x [%v, %v]", minX, maxX)
	}
	// The cap extreme lies on the line axis, not the offset edges.
	if !containsPoint(rings, 9, 10) {
		t.Error("round cap interior should be covered")
	}
	if containsPoint(rings, 8.2, 11.8) {
		t.Error("round cap corner should be rounded off")
	}
}

func TestExpandZeroLengthSubpath(t *testing.T) {
	dot := []SubPath{{Points: []Point{{20, 20}}}}

	// Round cap paints a disc with the stroke diameter.
	rings := Expand(dot, Style{Width: 10, Cap: LineCapRound})
	if len(rings) == 0 {
		t.Fatal("round cap should produce a dot")
	}
	// The polygon is inscribed in the true circle, so bounds may fall a
	// little short of the exact diameter but never exceed it.
	minX, minY, maxX, maxY := ringsBounds(rings)
	if maxX-minX > 10+1e-9 || maxX-minX < 9.4 || maxY-minY > 10+1e-9 || maxY-minY < 9.4 {
		t.Errorf("dot diameter should approximate stroke width: %v x %v", maxX-minX, maxY-minY)
	}
	if !containsPoint(rings, 20, 20) || !containsPoint(rings, 24, 20) {
		t.Error("disc interior should be covered")
	}
	if containsPoint(rings, 24, 24) {
		t.Error("disc corner should be empty")
	}

	// Square cap paints a width-sized square.
	rings = Expand(dot, Style{Width: 10, Cap: LineCapSquare})
	minX, minY, maxX, maxY = ringsBounds(rings)
	if minX != 15 || minY != 15 || maxX != 25 || maxY != 25 {
		t.Errorf("square dot bounds = [%v %v %v %v]", minX, minY, maxX, maxY)
	}

	// Butt cap paints nothing.
	if rings := Expand(dot, Style{Width: 10, Cap: LineCapButt}); len(rings) != 0 {
		t.Error("butt cap should not paint a dot")
	}
}

func TestExpandMiterJoin(t *testing.T) {
	// Right angle turn: miter ratio is sqrt(2), below the default limit,
	// so the corner extends to a sharp point.
	subs := []SubPath{{Points: []Point{{0, 20}, {20, 20}, {20, 0}}}}
	rings := Expand(subs, Style{Width: 4, Join: LineJoinMiter, MiterLimit: 4})

	// The outer corner of a right angle miter reaches (22, 22).
	if !containsPoint(rings, 21.5, 21.5) {
		t.Error("miter point should cover the outer corner")
	}

	// With a limit below sqrt(2) the join falls back to bevel and the
	// sharp corner is cut off.
	rings = Expand(subs, Style{Width: 4, Join: LineJoinMiter, MiterLimit: 1.2})
	if containsPoint(rings, 21.8, 21.8) {
		t.Error("beveled corner should not reach the miter point")
	}
}

func TestExpandRoundJoin(t *testing.T) {
	subs := []SubPath{{Points: []Point{{0, 20}, {20, 20}, {20, 0}}}}
	rings := Expand(subs, Style{Width: 4, Join: LineJoinRound})

	// Round joins bulge to half width from the vertex in the outer
	// diagonal direction.
	d := 2 / math.Sqrt2 * 0.95
	if !containsPoint(rings, 20+d, 20+d) {
		t.Error("round join should cover the outer arc")
	}
	if containsPoint(rings, 21.9, 21.9) {
		t.Error("round join should stay within half width of the vertex")
	}
}

func TestExpandClosedContour(t *testing.T) {
	// A closed square stroke forms an annulus: the hole stays open.
	square := []Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}, {10, 10}}
	subs := []SubPath{{Points: square, Closed: true}}
	rings := Expand(subs, Style{Width: 4, Join: LineJoinMiter, MiterLimit: 4})

	if !containsPoint(rings, 20, 10) {
		t.Error("stroke band should be covered")
	}
	if !containsPoint(rings, 20, 11.5) {
		t.Error("inner edge of the band should be covered")
	}
	if containsPoint(rings, 20, 20) {
		t.Error("hole in the middle should stay open")
	}
	// Outer miter corner of the closed contour.
	if !containsPoint(rings, 8.5, 8.5) {
		t.Error("closed contour join at the start vertex should be mitered")
	}
}

func TestExpandHairline(t *testing.T) {
	subs := []SubPath{{Points: []Point{{0, 10}, {20, 10}}}}
	rings := Expand(subs, Style{Width: 0})

	_, minY, _, maxY := ringsBounds(rings)
	if !approxEq(maxY-minY, 1, 1e-9) {
		t.Errorf("zero width should stroke one pixel wide, got %v", maxY-minY)
	}
}

func TestApplyDash(t *testing.T) {
	line := []Point{{0, 0}, {10, 0}}

	pieces := applyDash(line, []float64{2, 3}, 0)
	if len(pieces) != 2 {
		t.Fatalf("got %d pieces, want 2", len(pieces))
	}
	if !approxEq(pieces[0][0].X, 0, 1e-9) || !approxEq(pieces[0][len(pieces[0])-1].X, 2, 1e-9) {
		t.Errorf("first dash = %v, want [0, 2]", pieces[0])
	}
	if !approxEq(pieces[1][0].X, 5, 1e-9) || !approxEq(pieces[1][len(pieces[1])-1].X, 7, 1e-9) {
		t.Errorf("second dash = %v, want [5, 7]", pieces[1])
	}

	// Phase shifts the pattern start.
	pieces = applyDash(line, []float64{2, 3}, 1)
	if !approxEq(pieces[0][len(pieces[0])-1].X, 1, 1e-9) {
		t.Errorf("phased first dash should end at 1, got %v", pieces[0])
	}

	// Odd patterns double: {2} behaves like {2, 2}.
	pieces = applyDash(line, []float64{2}, 0)
	if len(pieces) != 3 {
		t.Fatalf("odd pattern: got %d pieces, want 3", len(pieces))
	}

	// Degenerate pattern strokes solid.
	pieces = applyDash(line, []float64{0, 0}, 0)
	if len(pieces) != 1 || len(pieces[0]) != 2 {
		t.Errorf("zero pattern should stroke solid, got %v", pieces)
	}
}

func TestDashAcrossVertices(t *testing.T) {
	// An L shape with total length 20 and pattern {6, 4}: dashes at
	// [0,6] and [10,16] measured along the polyline.
	l := []Point{{0, 0}, {10, 0}, {10, 10}}
	pieces := applyDash(l, []float64{6, 4}, 0)
	if len(pieces) != 2 {
		t.Fatalf("got %d pieces, want 2", len(pieces))
	}
	// Second dash starts on the vertical leg at (10, 0) and runs to (10, 6).
	last := pieces[1][len(pieces[1])-1]
	if !approxEq(last.Y, 6, 1e-9) {
		t.Errorf("second dash should end at y=6, got %v", last)
	}
}

func TestRingOrientation(t *testing.T) {
	subs := []SubPath{{Points: []Point{{0, 0}, {10, 0}, {10, 10}}}}
	rings := Expand(subs, Style{Width: 2, Join: LineJoinRound, Cap: LineCapRound})
	for i, ring := range rings {
		if signedArea(ring) < 0 {
			t.Errorf("ring %d has negative orientation", i)
		}
	}
}
