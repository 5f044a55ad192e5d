package stroke

// applyDash splits a polyline into the "on" pieces of a dash pattern.
// The pattern alternates on/off lengths starting with on; an odd-length
// pattern is doubled, following the common convention. The phase shifts
// the pattern start and restarts for every subpath.
func applyDash(pts []Point, pattern []float64, phase float64) [][]Point {
	total := 0.0
	for _, d := range pattern {
		if d < 0 {
			return [][]Point{pts}
		}
		total += d
	}
	if total <= 0 {
		return [][]Point{pts}
	}
	if len(pattern)%2 == 1 {
		doubled := make([]float64, 0, 2*len(pattern))
		doubled = append(doubled, pattern...)
		doubled = append(doubled, pattern...)
		pattern = doubled
		total *= 2
	}

	// Advance the pattern cursor by the phase.
	offset := phase
	for offset < 0 {
		offset += total
	}
	for offset >= total {
		offset -= total
	}
	idx := 0
	for offset >= pattern[idx] {
		offset -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remain := pattern[idx] - offset
	on := idx%2 == 0

	var pieces [][]Point
	var cur []Point
	if on {
		cur = append(cur, pts[0])
	}
	flush := func() {
		if len(cur) >= 2 {
			pieces = append(pieces, cur)
		} else if len(cur) == 1 {
			// Zero-length dash: keep the point so round and square
			// caps can paint a dot.
			pieces = append(pieces, cur)
		}
		cur = nil
	}

	for i := 0; i+1 < len(pts); i++ {
		p0 := pts[i]
		p1 := pts[i+1]
		segLen := p1.Sub(p0).Length()
		pos := 0.0

		for segLen-pos > remain {
			pos += remain
			t := pos / segLen
			cut := Point{
				X: p0.X + (p1.X-p0.X)*t,
				Y: p0.Y + (p1.Y-p0.Y)*t,
			}
			if on {
				cur = append(cur, cut)
				flush()
			} else {
				cur = append(cur, cut)
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx]
			// Zero-length entries toggle immediately; the flush above
			// already recorded the dot for on-entries.
			for remain == 0 {
				if on {
					cur = append(cur, cut)
					flush()
				} else {
					cur = append(cur, cut)
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				remain = pattern[idx]
			}
		}
		remain -= segLen - pos
		if on {
			cur = append(cur, p1)
		}
	}
	flush()
	return pieces
}
