package kanvas

import "math"

// RadialGradient shades colors by distance from a center point,
// reaching the last stop at the given radius.
type RadialGradient struct {
	center Point
	radius float64
	stops  []ColorStop
	tile   TileMode
}

// NewRadialGradient creates a radial gradient. Stops are validated at
// construction; invalid stops return ErrInvalidStops.
func NewRadialGradient(center Point, radius float64, stops []ColorStop, tile TileMode) (*RadialGradient, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	return &RadialGradient{center: center, radius: radius, stops: stops, tile: tile}, nil
}

// ColorAt interpolates by normalized distance from the center. A
// non-positive radius degenerates to the last stop everywhere except
// the center itself.
func (g *RadialGradient) ColorAt(x, y float64) Color {
	dist := math.Hypot(x-g.center.X, y-g.center.Y)
	if g.radius <= 0 {
		if dist == 0 {
			return g.stops[0].Color
		}
		return colorAtOffset(g.stops, applyTile(1, g.tile))
	}
	return colorAtOffset(g.stops, applyTile(dist/g.radius, g.tile))
}
