package kanvas

import "github.com/ygdrasil-io/kanvas/internal/blend"

// BlendMode selects how painted color combines with the destination.
// The Porter-Duff operators come first, followed by the separable
// blend modes.
type BlendMode int

const (
	BlendClear BlendMode = iota
	BlendSrc
	BlendDst
	BlendSrcOver
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcAtop
	BlendDstAtop
	BlendXor
	BlendPlus
	BlendModulate
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
)

// mode converts to the compositor's enum. The orderings match.
func (m BlendMode) mode() blend.Mode {
	return blend.Mode(m)
}

// IsValid reports whether m is a known blend mode.
func (m BlendMode) IsValid() bool {
	return m.mode().IsValid()
}

// String returns the blend mode name.
func (m BlendMode) String() string {
	return m.mode().String()
}
