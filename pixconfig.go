package kanvas

import "math"

// Config describes the pixel layout of a Pixmap. All configs store
// premultiplied alpha except where the layout has no alpha channel.
type Config int

const (
	// ConfigRGBA8888 stores 8 bits per channel, 4 bytes per pixel.
	ConfigRGBA8888 Config = iota
	// ConfigRGB565 stores 5-6-5 bits with no alpha, 2 bytes per pixel.
	ConfigRGB565
	// ConfigARGB4444 stores 4 bits per channel, 2 bytes per pixel.
	ConfigARGB4444
	// ConfigAlpha8 stores coverage only, 1 byte per pixel.
	ConfigAlpha8
	// ConfigRGBAF16 stores half floats per channel, 8 bytes per pixel.
	ConfigRGBAF16

	configCount
)

// BytesPerPixel returns the storage size of one pixel.
func (c Config) BytesPerPixel() int {
	switch c {
	case ConfigRGBA8888:
		return 4
	case ConfigRGB565, ConfigARGB4444:
		return 2
	case ConfigAlpha8:
		return 1
	case ConfigRGBAF16:
		return 8
	default:
		return 0
	}
}

// HasAlpha reports whether the config stores an alpha channel.
func (c Config) HasAlpha() bool {
	return c != ConfigRGB565
}

// IsValid reports whether c is a known config.
func (c Config) IsValid() bool {
	return c >= 0 && c < configCount
}

// String returns the config name.
func (c Config) String() string {
	switch c {
	case ConfigRGBA8888:
		return "RGBA8888"
	case ConfigRGB565:
		return "RGB565"
	case ConfigARGB4444:
		return "ARGB4444"
	case ConfigAlpha8:
		return "Alpha8"
	case ConfigRGBAF16:
		return "RGBAF16"
	default:
		return "Unknown"
	}
}

// bayer4x4 is the ordered dithering threshold matrix, normalized so
// thresholds are centered in [0, 1).
var bayer4x4 = [4][4]float64{
	{0.5 / 16, 8.5 / 16, 2.5 / 16, 10.5 / 16},
	{12.5 / 16, 4.5 / 16, 14.5 / 16, 6.5 / 16},
	{3.5 / 16, 11.5 / 16, 1.5 / 16, 9.5 / 16},
	{15.5 / 16, 7.5 / 16, 13.5 / 16, 5.5 / 16},
}

// quantize reduces an 8-bit value to the given bit depth. The threshold
// replaces round-to-nearest; 0.5 gives plain rounding and Bayer
// thresholds give ordered dithering.
func quantize(v uint8, bits uint, threshold float64) uint8 {
	maxLevel := float64(int(1)<<bits - 1)
	scaled := float64(v) * maxLevel / 255
	q := math.Floor(scaled + threshold)
	if q > maxLevel {
		q = maxLevel
	}
	if q < 0 {
		q = 0
	}
	return uint8(q)
}

// expand5 widens a 5-bit channel to 8 bits by bit replication.
func expand5(v uint8) uint8 {
	return v<<3 | v>>2
}

// expand6 widens a 6-bit channel to 8 bits by bit replication.
func expand6(v uint8) uint8 {
	return v<<2 | v>>4
}

// expand4 widens a 4-bit channel to 8 bits by bit replication.
func expand4(v uint8) uint8 {
	return v<<4 | v
}

// float16 encoding (IEEE 754 binary16), used by ConfigRGBAF16.

// f32to16 converts a float32 to its half precision bit pattern, with
// round-to-nearest-even and overflow to infinity.
func f32to16(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int32(bits>>23&0xff) - 127
	mant := bits & 0x7fffff

	switch {
	case exp == 128: // Inf or NaN
		if mant != 0 {
			return sign | 0x7e00
		}
		return sign | 0x7c00
	case exp > 15: // overflow
		return sign | 0x7c00
	case exp >= -14: // normal
		out := sign | uint16(exp+15)<<10 | uint16(mant>>13)
		// Round to nearest even on the truncated bits.
		if mant&0x1000 != 0 && (mant&0xfff != 0 || mant&0x2000 != 0) {
			out++
		}
		return out
	case exp >= -24: // subnormal
		mant |= 0x800000
		shift := uint32(-exp - 1) // 13 for exp == -14, growing as exp drops
		out := sign | uint16(mant>>shift)
		if mant>>(shift-1)&1 != 0 {
			out++
		}
		return out
	default: // underflow to zero
		return sign
	}
}

// f16to32 converts a half precision bit pattern to float32.
func f16to32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h >> 10 & 0x1f)
	mant := uint32(h & 0x3ff)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: normalize.
		e := uint32(127 - 15 + 1)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3ff
		return math.Float32frombits(sign | e<<23 | mant<<13)
	case 0x1f:
		return math.Float32frombits(sign | 0xff<<23 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
	}
}
