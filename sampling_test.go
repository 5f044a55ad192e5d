package kanvas

import (
	"math"
	"testing"
)

func gradientPixmap(t *testing.T) *Pixmap {
	t.Helper()
	p, err := NewPixmap(2, 1, ConfigRGBA8888)
	if err != nil {
		t.Fatalf("NewPixmap: %v", err)
	}
	p.SetPixel(0, 0, Black)
	p.SetPixel(1, 0, White)
	return p
}

func TestSampleNearest(t *testing.T) {
	p := gradientPixmap(t)
	if got := p.Sample(0.5, 0.5, SampleNearest, TileClamp, TileClamp); !colorClose(got, Black, 1e-9) {
		t.Errorf("first pixel = %v, want black", got)
	}
	if got := p.Sample(1.9, 0.5, SampleNearest, TileClamp, TileClamp); !colorClose(got, White, 1e-9) {
		t.Errorf("second pixel = %v, want white", got)
	}
}

func TestSampleBilinearMidpoint(t *testing.T) {
	p := gradientPixmap(t)
	got := p.Sample(1.0, 0.5, SampleBilinear, TileClamp, TileClamp)
	if math.Abs(got.R-0.5) > 1e-9 || math.Abs(got.G-0.5) > 1e-9 {
		t.Errorf("midpoint = %v, want mid gray", got)
	}
	// At a pixel center bilinear reproduces the pixel.
	if got := p.Sample(0.5, 0.5, SampleBilinear, TileClamp, TileClamp); !colorClose(got, Black, 1e-9) {
		t.Errorf("center tap = %v, want black", got)
	}
}

func TestSampleTileModes(t *testing.T) {
	p := gradientPixmap(t)
	// Clamp extends edge pixels indefinitely.
	if got := p.Sample(10, 0.5, SampleNearest, TileClamp, TileClamp); !colorClose(got, White, 1e-9) {
		t.Errorf("clamp = %v, want white", got)
	}
	// Repeat wraps: x=2.5 lands back on the first pixel.
	if got := p.Sample(2.5, 0.5, SampleNearest, TileRepeat, TileClamp); !colorClose(got, Black, 1e-9) {
		t.Errorf("repeat = %v, want black", got)
	}
	// Mirror reflects: the tiled run is black, white, white, black, so
	// x=3.5 lands on black.
	if got := p.Sample(3.5, 0.5, SampleNearest, TileMirror, TileClamp); !colorClose(got, Black, 1e-9) {
		t.Errorf("mirror = %v, want black", got)
	}
}

func TestSampleBicubicSmooth(t *testing.T) {
	p, _ := NewPixmap(4, 1, ConfigRGBA8888)
	for x := 0; x < 4; x++ {
		v := float64(x) / 3
		p.SetPixel(x, 0, Color{R: v, G: v, B: v, A: 1})
	}
	got := p.Sample(2.0, 0.5, SampleBicubic, TileClamp, TileClamp)
	// Catmull-Rom interpolates the linear ramp exactly at the midpoint
	// of the two middle samples.
	want := 0.5
	if math.Abs(got.R-want) > 0.01 {
		t.Errorf("bicubic ramp = %v, want about %v", got.R, want)
	}
}

func TestSamplePremultipliedFiltering(t *testing.T) {
	// A transparent neighbor must not bleed its color: filtering happens
	// premultiplied.
	p, _ := NewPixmap(2, 1, ConfigRGBA8888)
	p.SetPixel(0, 0, Red)
	p.SetPixel(1, 0, Color{R: 0, G: 1, B: 0, A: 0})

	got := p.Sample(1.0, 0.5, SampleBilinear, TileClamp, TileClamp)
	if got.A <= 0.49 || got.A >= 0.51 {
		t.Fatalf("alpha = %v, want 0.5", got.A)
	}
	if got.G > 1e-6 {
		t.Errorf("transparent green bled into sample: %v", got)
	}
	if math.Abs(got.R-1) > 1e-6 {
		t.Errorf("unpremultiplied red = %v, want 1", got.R)
	}
}

func TestTileCoord(t *testing.T) {
	tests := []struct {
		i, n int
		mode TileMode
		want int
	}{
		{-1, 4, TileClamp, 0},
		{6, 4, TileClamp, 3},
		{5, 4, TileRepeat, 1},
		{-1, 4, TileRepeat, 3},
		{4, 4, TileMirror, 3},
		{5, 4, TileMirror, 2},
		{-1, 4, TileMirror, 0},
	}
	for _, tt := range tests {
		if got := tileCoord(tt.i, tt.n, tt.mode); got != tt.want {
			t.Errorf("tileCoord(%d, %d, %v) = %d, want %d", tt.i, tt.n, tt.mode, got, tt.want)
		}
	}
}
