package kanvas

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
)

// Pixmap is a block of pixels with a fixed size and Config. Color data
// is stored premultiplied; GetPixel and SetPixel convert to and from
// straight-alpha Color values.
type Pixmap struct {
	width  int
	height int
	config Config
	stride int
	pix    []byte
}

// NewPixmap creates a pixmap initialized to transparent black.
func NewPixmap(width, height int, config Config) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !config.IsValid() {
		return nil, ErrInvalidConfig
	}
	stride := width * config.BytesPerPixel()
	return &Pixmap{
		width:  width,
		height: height,
		config: config,
		stride: stride,
		pix:    make([]byte, stride*height),
	}, nil
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Config returns the pixel layout.
func (p *Pixmap) Config() Config {
	return p.config
}

// Stride returns the row size in bytes.
func (p *Pixmap) Stride() int {
	return p.stride
}

// Bytes returns the raw pixel storage.
func (p *Pixmap) Bytes() []byte {
	return p.pix
}

// Bounds returns the pixmap rectangle in pixel coordinates.
func (p *Pixmap) Bounds() Rect {
	return Rect{W: float64(p.width), H: float64(p.height)}
}

// Clear fills the entire pixmap with a color, replacing all pixels.
func (p *Pixmap) Clear(c Color) {
	r, g, b, a := c.premulBytes()
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.storePremul(x, y, r, g, b, a, false)
		}
	}
}

// GetPixel returns the color at (x, y) with straight alpha. Out of
// bounds coordinates return transparent black.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return Color{}
	}
	r, g, b, a := p.loadPremul(x, y)
	return colorFromPremulBytes(r, g, b, a)
}

// SetPixel writes a color at (x, y). Out of bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	r, g, b, a := c.premulBytes()
	p.storePremul(x, y, r, g, b, a, false)
}

// loadPremul reads the premultiplied RGBA bytes at (x, y). The caller
// guarantees bounds.
func (p *Pixmap) loadPremul(x, y int) (r, g, b, a uint8) {
	i := y*p.stride + x*p.config.BytesPerPixel()
	switch p.config {
	case ConfigRGBA8888:
		return p.pix[i], p.pix[i+1], p.pix[i+2], p.pix[i+3]
	case ConfigRGB565:
		v := binary.LittleEndian.Uint16(p.pix[i:])
		return expand5(uint8(v >> 11)), expand6(uint8(v >> 5 & 0x3f)), expand5(uint8(v & 0x1f)), 255
	case ConfigARGB4444:
		v := binary.LittleEndian.Uint16(p.pix[i:])
		return expand4(uint8(v >> 8 & 0xf)), expand4(uint8(v >> 4 & 0xf)), expand4(uint8(v & 0xf)), expand4(uint8(v >> 12))
	case ConfigAlpha8:
		return 0, 0, 0, p.pix[i]
	case ConfigRGBAF16:
		to8 := func(off int) uint8 {
			f := f16to32(binary.LittleEndian.Uint16(p.pix[i+off:]))
			if f <= 0 {
				return 0
			}
			if f >= 1 {
				return 255
			}
			return uint8(math.Round(float64(f) * 255))
		}
		return to8(0), to8(2), to8(4), to8(6)
	}
	return 0, 0, 0, 0
}

// storePremul writes premultiplied RGBA bytes at (x, y). With dither
// set, low-precision configs use ordered dithering instead of rounding.
// The caller guarantees bounds.
func (p *Pixmap) storePremul(x, y int, r, g, b, a uint8, dither bool) {
	i := y*p.stride + x*p.config.BytesPerPixel()
	threshold := 0.5
	if dither {
		threshold = bayer4x4[y&3][x&3]
	}
	switch p.config {
	case ConfigRGBA8888:
		p.pix[i] = r
		p.pix[i+1] = g
		p.pix[i+2] = b
		p.pix[i+3] = a
	case ConfigRGB565:
		v := uint16(quantize(r, 5, threshold))<<11 |
			uint16(quantize(g, 6, threshold))<<5 |
			uint16(quantize(b, 5, threshold))
		binary.LittleEndian.PutUint16(p.pix[i:], v)
	case ConfigARGB4444:
		v := uint16(quantize(a, 4, threshold))<<12 |
			uint16(quantize(r, 4, threshold))<<8 |
			uint16(quantize(g, 4, threshold))<<4 |
			uint16(quantize(b, 4, threshold))
		binary.LittleEndian.PutUint16(p.pix[i:], v)
	case ConfigAlpha8:
		p.pix[i] = a
	case ConfigRGBAF16:
		binary.LittleEndian.PutUint16(p.pix[i:], f32to16(float32(r)/255))
		binary.LittleEndian.PutUint16(p.pix[i+2:], f32to16(float32(g)/255))
		binary.LittleEndian.PutUint16(p.pix[i+4:], f32to16(float32(b)/255))
		binary.LittleEndian.PutUint16(p.pix[i+6:], f32to16(float32(a)/255))
	}
}

// ReadPixels copies the rectangle of this pixmap starting at (srcX,
// srcY) into dst, converting configs as needed. The copy is clipped to
// both pixmaps; ErrZeroOverlap is returned when nothing overlaps.
func (p *Pixmap) ReadPixels(dst *Pixmap, srcX, srcY int) error {
	return transfer(dst, p, 0, 0, srcX, srcY)
}

// WritePixels copies src into this pixmap at (dstX, dstY), converting
// configs as needed. The copy is clipped to both pixmaps;
// ErrZeroOverlap is returned when nothing overlaps.
func (p *Pixmap) WritePixels(src *Pixmap, dstX, dstY int) error {
	return transfer(p, src, dstX, dstY, 0, 0)
}

// transfer copies the overlapping region from src to dst with the given
// origin offsets.
func transfer(dst, src *Pixmap, dstX, dstY, srcX, srcY int) error {
	// Width of the region both pixmaps can serve.
	w := min(dst.width-dstX, src.width-srcX)
	h := min(dst.height-dstY, src.height-srcY)
	// Negative origins clip the leading edge.
	startX := max(0, max(-dstX, -srcX))
	startY := max(0, max(-dstY, -srcY))
	if w <= startX || h <= startY {
		return ErrZeroOverlap
	}
	for y := startY; y < h; y++ {
		for x := startX; x < w; x++ {
			r, g, b, a := src.loadPremul(srcX+x, srcY+y)
			dst.storePremul(dstX+x, dstY+y, r, g, b, a, false)
		}
	}
	return nil
}

// Copy returns a deep copy of the pixmap.
func (p *Pixmap) Copy() *Pixmap {
	out := &Pixmap{
		width:  p.width,
		height: p.height,
		config: p.config,
		stride: p.stride,
		pix:    make([]byte, len(p.pix)),
	}
	copy(out.pix, p.pix)
	return out
}

// ExtractSubset returns a copy of the rectangle (x, y, w, h) as a new
// pixmap with the same config. The rectangle is clipped to the pixmap;
// ErrZeroOverlap is returned when nothing remains.
func (p *Pixmap) ExtractSubset(x, y, w, h int) (*Pixmap, error) {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, p.width)
	y1 := min(y+h, p.height)
	if x1 <= x0 || y1 <= y0 {
		return nil, ErrZeroOverlap
	}
	out, err := NewPixmap(x1-x0, y1-y0, p.config)
	if err != nil {
		return nil, err
	}
	bpp := p.config.BytesPerPixel()
	for row := y0; row < y1; row++ {
		srcOff := row*p.stride + x0*bpp
		dstOff := (row - y0) * out.stride
		copy(out.pix[dstOff:dstOff+out.stride], p.pix[srcOff:srcOff+(x1-x0)*bpp])
	}
	return out, nil
}

// Image converts the pixmap to a standard library image with straight
// alpha.
func (p *Pixmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			img.SetNRGBA(x, y, p.GetPixel(x, y).NRGBA())
		}
	}
	return img
}

// PixmapFromImage converts a standard library image into an RGBA8888
// pixmap.
func PixmapFromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	p, err := NewPixmap(bounds.Dx(), bounds.Dy(), ConfigRGBA8888)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			p.SetPixel(x, y, FromColor(c))
		}
	}
	return p, nil
}
