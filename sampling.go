package kanvas

import "math"

// SampleMode selects the filter used when reading between pixel centers.
type SampleMode int

const (
	// SampleNearest picks the closest pixel.
	SampleNearest SampleMode = iota
	// SampleBilinear blends the four surrounding pixels.
	SampleBilinear
	// SampleBicubic blends a 4x4 neighborhood with a Catmull-Rom kernel.
	SampleBicubic
)

// tileCoord maps an unbounded pixel index into [0, n) per the tile
// mode.
func tileCoord(i, n int, mode TileMode) int {
	switch mode {
	case TileRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case TileMirror:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			return period - 1 - i
		}
		return i
	default: // TileClamp
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

// premulColor is a premultiplied color with float components in [0, 1],
// the working space for filtering so transparent neighborhoods don't
// bleed color.
type premulColor struct {
	r, g, b, a float64
}

func (p *Pixmap) premulAt(x, y int, tileX, tileY TileMode) premulColor {
	r, g, b, a := p.loadPremul(tileCoord(x, p.width, tileX), tileCoord(y, p.height, tileY))
	return premulColor{
		r: float64(r) / 255,
		g: float64(g) / 255,
		b: float64(b) / 255,
		a: float64(a) / 255,
	}
}

// Sample reads the pixmap at a fractional position with the given
// filter and tile modes. The coordinate system puts pixel centers at
// half offsets: (0.5, 0.5) is the center of pixel (0, 0).
func (p *Pixmap) Sample(x, y float64, mode SampleMode, tileX, tileY TileMode) Color {
	var out premulColor
	switch mode {
	case SampleBilinear:
		out = p.sampleBilinear(x, y, tileX, tileY)
	case SampleBicubic:
		out = p.sampleBicubic(x, y, tileX, tileY)
	default:
		out = p.premulAt(int(math.Floor(x)), int(math.Floor(y)), tileX, tileY)
	}

	if out.a <= 0 {
		return Color{}
	}
	// Filtering can overshoot; clamp channels to the alpha so the
	// straight color stays in range.
	out.a = clamp01(out.a)
	return Color{
		R: clamp01(out.r / out.a),
		G: clamp01(out.g / out.a),
		B: clamp01(out.b / out.a),
		A: out.a,
	}
}

func (p *Pixmap) sampleBilinear(x, y float64, tileX, tileY TileMode) premulColor {
	// Shift so the integer lattice sits on pixel centers.
	fx := x - 0.5
	fy := y - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := p.premulAt(x0, y0, tileX, tileY)
	c10 := p.premulAt(x0+1, y0, tileX, tileY)
	c01 := p.premulAt(x0, y0+1, tileX, tileY)
	c11 := p.premulAt(x0+1, y0+1, tileX, tileY)

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }
	return premulColor{
		r: lerp(lerp(c00.r, c10.r, tx), lerp(c01.r, c11.r, tx), ty),
		g: lerp(lerp(c00.g, c10.g, tx), lerp(c01.g, c11.g, tx), ty),
		b: lerp(lerp(c00.b, c10.b, tx), lerp(c01.b, c11.b, tx), ty),
		a: lerp(lerp(c00.a, c10.a, tx), lerp(c01.a, c11.a, tx), ty),
	}
}

// catmullRom is the Catmull-Rom cubic kernel (Keys, a = -0.5).
func catmullRom(t float64) float64 {
	t = math.Abs(t)
	if t < 1 {
		return 1.5*t*t*t - 2.5*t*t + 1
	}
	if t < 2 {
		return -0.5*t*t*t + 2.5*t*t - 4*t + 2
	}
	return 0
}

func (p *Pixmap) sampleBicubic(x, y float64, tileX, tileY TileMode) premulColor {
	fx := x - 0.5
	fy := y - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	var out premulColor
	for j := -1; j <= 2; j++ {
		wy := catmullRom(float64(j) - ty)
		if wy == 0 {
			continue
		}
		for i := -1; i <= 2; i++ {
			w := wy * catmullRom(float64(i)-tx)
			if w == 0 {
				continue
			}
			c := p.premulAt(x0+i, y0+j, tileX, tileY)
			out.r += c.r * w
			out.g += c.g * w
			out.b += c.b * w
			out.a += c.a * w
		}
	}
	return out
}
