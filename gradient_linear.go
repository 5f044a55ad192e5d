package kanvas

// LinearGradient shades colors along the line from start to end,
// extended across the plane by the tile mode.
type LinearGradient struct {
	start Point
	end   Point
	stops []ColorStop
	tile  TileMode

	dir   Point   // end - start
	lenSq float64 // squared gradient length
}

// NewLinearGradient creates a linear gradient. Stops are validated at
// construction; invalid stops return ErrInvalidStops.
func NewLinearGradient(start, end Point, stops []ColorStop, tile TileMode) (*LinearGradient, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	dir := end.Sub(start)
	return &LinearGradient{
		start: start,
		end:   end,
		stops: stops,
		tile:  tile,
		dir:   dir,
		lenSq: dir.Dot(dir),
	}, nil
}

// ColorAt projects the point onto the gradient axis and interpolates.
// A degenerate gradient (start == end) shades with the first stop.
func (g *LinearGradient) ColorAt(x, y float64) Color {
	if g.lenSq == 0 {
		return g.stops[0].Color
	}
	t := Pt(x, y).Sub(g.start).Dot(g.dir) / g.lenSq
	return colorAtOffset(g.stops, applyTile(t, g.tile))
}
