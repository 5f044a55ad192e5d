package raster

import "testing"

// renderGrid rasterizes polys into a coverage grid for inspection.
func renderGrid(w, h int, polys [][]Point, rule FillRule, aa bool) [][]uint8 {
	grid := make([][]uint8, h)
	for i := range grid {
		grid[i] = make([]uint8, w)
	}
	r := NewRasterizer(w, h)
	span := func(y, x0, x1 int, coverage uint8) {
		for x := x0; x < x1; x++ {
			grid[y][x] = coverage
		}
	}
	if aa {
		r.FillAA(polys, rule, span)
	} else {
		r.Fill(polys, rule, span)
	}
	return grid
}

func rectRing(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

func TestFillRect(t *testing.T) {
	grid := renderGrid(8, 8, [][]Point{rectRing(2, 3, 4, 2)}, FillRuleNonZero, false)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 6 && y >= 3 && y < 5
			want := uint8(0)
			if inside {
				want = 255
			}
			if grid[y][x] != want {
				t.Errorf("pixel (%d,%d): coverage %d, want %d", x, y, grid[y][x], want)
			}
		}
	}
}

func TestFillPixelCenterRule(t *testing.T) {
	// A rect from x=0.5 to x=2.5 covers the centers of pixels 0 and 1
	// only (center 0.5 is inside the half-open interval, center 2.5 is
	// not).
	grid := renderGrid(4, 1, [][]Point{rectRing(0.5, 0, 2, 1)}, FillRuleNonZero, false)
	want := []uint8{255, 255, 0, 0}
	for x, w := range want {
		if grid[0][x] != w {
			t.Errorf("pixel %d: coverage %d, want %d", x, grid[0][x], w)
		}
	}

	// Shifted by a quarter pixel, the rect 0.75..2.75 covers centers
	// 1.5 and 2.5 but no longer 0.5.
	grid = renderGrid(4, 1, [][]Point{rectRing(0.75, 0, 2, 1)}, FillRuleNonZero, false)
	want = []uint8{0, 255, 255, 0}
	for x, w := range want {
		if grid[0][x] != w {
			t.Errorf("shifted pixel %d: coverage %d, want %d", x, grid[0][x], w)
		}
	}
}

func TestFillTriangle(t *testing.T) {
	tri := []Point{{0, 0}, {8, 0}, {0, 8}}
	grid := renderGrid(8, 8, [][]Point{tri}, FillRuleNonZero, false)

	if grid[1][1] != 255 {
		t.Error("interior pixel (1,1) should be covered")
	}
	if grid[7][7] != 0 {
		t.Error("pixel (7,7) outside the hypotenuse should be empty")
	}
	// On row y the hypotenuse crosses x = 7.5 - y; the row's span ends
	// one pixel earlier each row down.
	for y := 0; y < 8; y++ {
		lastCovered := -1
		for x := 0; x < 8; x++ {
			if grid[y][x] == 255 {
				lastCovered = x
			}
		}
		if want := 6 - y; lastCovered != want && y < 7 {
			t.Errorf("row %d: last covered pixel %d, want %d", y, lastCovered, want)
		}
	}
}

func TestFillRuleOverlap(t *testing.T) {
	// Two same-orientation rects overlapping in x=[3,5). Non-zero keeps
	// the overlap (winding 2), even-odd removes it.
	polys := [][]Point{
		rectRing(0, 0, 5, 4),
		rectRing(3, 0, 5, 4),
	}

	nz := renderGrid(8, 4, polys, FillRuleNonZero, false)
	eo := renderGrid(8, 4, polys, FillRuleEvenOdd, false)

	if nz[2][4] != 255 {
		t.Error("non-zero: overlap pixel should be covered")
	}
	if eo[2][4] != 0 {
		t.Error("even-odd: overlap pixel should be empty")
	}
	// Outside the overlap both rules agree.
	if nz[2][1] != 255 || eo[2][1] != 255 {
		t.Error("non-overlap pixel should be covered under both rules")
	}
	if nz[2][7] != 255 || eo[2][7] != 255 {
		t.Error("right rect pixel should be covered under both rules")
	}
}

func TestFillAAInterior(t *testing.T) {
	// Pixel-aligned rects produce full coverage inside and none outside,
	// same as the non-AA path.
	grid := renderGrid(8, 8, [][]Point{rectRing(2, 2, 4, 4)}, FillRuleNonZero, true)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 6 && y >= 2 && y < 6
			want := uint8(0)
			if inside {
				want = 255
			}
			if grid[y][x] != want {
				t.Errorf("pixel (%d,%d): coverage %d, want %d", x, y, grid[y][x], want)
			}
		}
	}
}

func TestFillAAPartialCoverage(t *testing.T) {
	// A rect covering the left half of pixel 0 yields ~50% coverage.
	grid := renderGrid(4, 1, [][]Point{rectRing(0, 0, 0.5, 1)}, FillRuleNonZero, true)
	if got := grid[0][0]; got < 126 || got > 129 {
		t.Errorf("half-covered pixel: coverage %d, want ~128", got)
	}
	if grid[0][1] != 0 {
		t.Errorf("uncovered pixel: coverage %d, want 0", grid[0][1])
	}

	// A rect covering the top half of a row yields ~50% via the
	// sub-scanlines.
	grid = renderGrid(1, 4, [][]Point{rectRing(0, 0, 1, 0.5)}, FillRuleNonZero, true)
	if got := grid[0][0]; got < 126 || got > 129 {
		t.Errorf("half-height pixel: coverage %d, want ~128", got)
	}
	if grid[1][0] != 0 {
		t.Errorf("row below: coverage %d, want 0", grid[1][0])
	}

	// A quarter-pixel corner overlap yields ~25%.
	grid = renderGrid(2, 2, [][]Point{rectRing(0, 0, 0.5, 0.5)}, FillRuleNonZero, true)
	if got := grid[0][0]; got < 62 || got > 66 {
		t.Errorf("quarter-covered pixel: coverage %d, want ~64", got)
	}
}

func TestFillDegenerate(t *testing.T) {
	r := NewRasterizer(4, 4)
	called := false
	span := func(y, x0, x1 int, coverage uint8) { called = true }

	// Fewer than 3 points, purely horizontal ring, empty input.
	r.Fill(nil, FillRuleNonZero, span)
	r.Fill([][]Point{{{1, 1}}}, FillRuleNonZero, span)
	r.Fill([][]Point{{{0, 1}, {3, 1}}}, FillRuleNonZero, span)
	if called {
		t.Error("degenerate input should produce no spans")
	}

	// Geometry entirely outside the device bounds.
	r.Fill([][]Point{rectRing(10, 10, 5, 5)}, FillRuleNonZero, span)
	r.FillAA([][]Point{rectRing(-8, -8, 4, 4)}, FillRuleNonZero, span)
	if called {
		t.Error("out-of-bounds geometry should produce no spans")
	}
}

func TestEdgeDirection(t *testing.T) {
	down := NewEdge(Point{0, 0}, Point{0, 4})
	up := NewEdge(Point{0, 4}, Point{0, 0})
	if down.dir != 1 {
		t.Errorf("downward edge dir = %d, want 1", down.dir)
	}
	if up.dir != -1 {
		t.Errorf("upward edge dir = %d, want -1", up.dir)
	}
	// Both normalized to y0 < y1.
	if down.y0 != 0 || down.y1 != 4 || up.y0 != 0 || up.y1 != 4 {
		t.Error("edges should be normalized to y0 < y1")
	}

	e := NewEdge(Point{0, 0}, Point{4, 4})
	if got := e.XAtY(2); got != 2 {
		t.Errorf("XAtY(2) = %v, want 2", got)
	}
}
