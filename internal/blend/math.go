package blend

// mulDiv255 computes a * b / 255 with round-half-up rounding:
// (a*b + 127) / 255. This is the single rounding policy for all 8-bit
// compositing math in this package; using one policy everywhere keeps
// results deterministic across operators.
func mulDiv255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// addClamp adds two bytes, clamping the sum to 255.
func addClamp(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// minU8 returns the smaller of two bytes.
func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

// maxU8 returns the larger of two bytes.
func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
