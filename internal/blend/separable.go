package blend

import "math"

// Separable blend modes from the W3C compositing spec. Each mode is a
// per-channel function B(cb, cs) over unpremultiplied color in [0, 1],
// composited as:
//
//	co = cs*as*(1-ab) + cb*ab*(1-as) + B(cb, cs)*as*ab
//	ao = as + ab*(1-as)
//
// The channel math runs in float64 because several modes (ColorDodge,
// ColorBurn, SoftLight) divide by channel values and lose too much
// precision in fixed point.

// channelFunc blends one unpremultiplied channel. cb is the backdrop
// (destination) value, cs the source value, both in [0, 1].
type channelFunc func(cb, cs float64) float64

// separableBlend applies a per-channel blend function to premultiplied
// 8-bit color.
func separableBlend(fn channelFunc, sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	as := float64(sa) / 255
	ab := float64(da) / 255

	// Unpremultiply. A zero-alpha layer contributes no color term, so the
	// channel value is irrelevant; zero keeps the math finite.
	unpremul := func(c, a uint8) float64 {
		if a == 0 {
			return 0
		}
		return float64(c) / float64(a)
	}

	blendChannel := func(s, d uint8) uint8 {
		cs := unpremul(s, sa)
		cb := unpremul(d, da)
		co := cs*as*(1-ab) + cb*ab*(1-as) + fn(cb, cs)*as*ab
		return uint8(math.Round(clamp01(co) * 255))
	}

	ao := as + ab*(1-as)
	return blendChannel(sr, dr),
		blendChannel(sg, dg),
		blendChannel(sb, db),
		uint8(math.Round(clamp01(ao) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Channel functions (W3C compositing level 1, section 10.1.2)

func channelMultiply(cb, cs float64) float64 {
	return cb * cs
}

func channelScreen(cb, cs float64) float64 {
	return cb + cs - cb*cs
}

func channelOverlay(cb, cs float64) float64 {
	return channelHardLight(cs, cb)
}

func channelDarken(cb, cs float64) float64 {
	return math.Min(cb, cs)
}

func channelLighten(cb, cs float64) float64 {
	return math.Max(cb, cs)
}

func channelColorDodge(cb, cs float64) float64 {
	if cb == 0 {
		return 0
	}
	if cs == 1 {
		return 1
	}
	return math.Min(1, cb/(1-cs))
}

func channelColorBurn(cb, cs float64) float64 {
	if cb == 1 {
		return 1
	}
	if cs == 0 {
		return 0
	}
	return 1 - math.Min(1, (1-cb)/cs)
}

func channelHardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return channelMultiply(cb, 2*cs)
	}
	return channelScreen(cb, 2*cs-1)
}

func channelSoftLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

func channelDifference(cb, cs float64) float64 {
	return math.Abs(cb - cs)
}

func channelExclusion(cb, cs float64) float64 {
	return cb + cs - 2*cb*cs
}

// Mode entry points

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelMultiply, sr, sg, sb, sa, dr, dg, db, da)
}

func blendScreen(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelScreen, sr, sg, sb, sa, dr, dg, db, da)
}

func blendOverlay(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelOverlay, sr, sg, sb, sa, dr, dg, db, da)
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelDarken, sr, sg, sb, sa, dr, dg, db, da)
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelLighten, sr, sg, sb, sa, dr, dg, db, da)
}

func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelColorDodge, sr, sg, sb, sa, dr, dg, db, da)
}

func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelColorBurn, sr, sg, sb, sa, dr, dg, db, da)
}

func blendHardLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelHardLight, sr, sg, sb, sa, dr, dg, db, da)
}

func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelSoftLight, sr, sg, sb, sa, dr, dg, db, da)
}

func blendDifference(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelDifference, sr, sg, sb, sa, dr, dg, db, da)
}

func blendExclusion(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(channelExclusion, sr, sg, sb, sa, dr, dg, db, da)
}
