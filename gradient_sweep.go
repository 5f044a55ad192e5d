package kanvas

import "math"

// SweepGradient shades colors by angle around a center point, starting
// at startAngle (radians) and sweeping one full turn.
type SweepGradient struct {
	center     Point
	startAngle float64
	stops      []ColorStop
	tile       TileMode
}

// NewSweepGradient creates a sweep gradient. Stops are validated at
// construction; invalid stops return ErrInvalidStops.
func NewSweepGradient(center Point, startAngle float64, stops []ColorStop, tile TileMode) (*SweepGradient, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	return &SweepGradient{center: center, startAngle: startAngle, stops: stops, tile: tile}, nil
}

// ColorAt interpolates by the normalized angle from the start angle.
func (g *SweepGradient) ColorAt(x, y float64) Color {
	angle := math.Atan2(y-g.center.Y, x-g.center.X) - g.startAngle
	t := angle / (2 * math.Pi)
	t -= math.Floor(t) // normalize to [0, 1)
	return colorAtOffset(g.stops, applyTile(t, g.tile))
}
