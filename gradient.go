package kanvas

import "math"

// ColorStop defines a color at a position along a gradient.
type ColorStop struct {
	Offset float64 // Position in [0, 1]
	Color  Color
}

// TileMode specifies how a gradient or bitmap extends beyond its
// defined range.
type TileMode int

const (
	// TileClamp extends the edge value.
	TileClamp TileMode = iota
	// TileRepeat wraps around periodically.
	TileRepeat
	// TileMirror wraps around, reflecting every other period.
	TileMirror
)

// EvenStops spaces colors evenly over [0, 1]: the first color at 0, the
// last at 1. A single color yields one stop at 0.
func EvenStops(colors ...Color) []ColorStop {
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		off := 0.0
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: off, Color: c}
	}
	return stops
}

// validateStops checks gradient stops at construction time: at least
// one stop, offsets within [0, 1], non-decreasing order.
func validateStops(stops []ColorStop) error {
	if len(stops) == 0 {
		return ErrInvalidStops
	}
	prev := 0.0
	for _, s := range stops {
		if s.Offset < 0 || s.Offset > 1 || s.Offset < prev {
			return ErrInvalidStops
		}
		prev = s.Offset
	}
	return nil
}

// applyTile maps an unbounded gradient parameter into [0, 1].
func applyTile(t float64, mode TileMode) float64 {
	switch mode {
	case TileRepeat:
		t -= math.Floor(t)
		return t
	case TileMirror:
		t = math.Abs(t)
		period := math.Mod(t, 2)
		if period > 1 {
			return 2 - period
		}
		return period
	default: // TileClamp
		return clamp01(t)
	}
}

// colorAtOffset interpolates the stop colors at parameter t in [0, 1].
// Components interpolate directly in storage space; a red to blue
// gradient passes through (0.5, 0, 0.5) at the midpoint.
func colorAtOffset(stops []ColorStop, t float64) Color {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			lo := stops[i-1]
			hi := stops[i]
			span := hi.Offset - lo.Offset
			if span <= 0 {
				return hi.Color
			}
			return lo.Color.Lerp(hi.Color, (t-lo.Offset)/span)
		}
	}
	return last.Color
}
