package kanvas

// Shader produces a color for each point being painted. Coordinates are
// in the shader's local space, which is the user space active when the
// draw call was issued.
type Shader interface {
	ColorAt(x, y float64) Color
}

// ColorShader paints a single color everywhere.
type ColorShader struct {
	Color Color
}

// NewColorShader creates a solid color shader.
func NewColorShader(c Color) *ColorShader {
	return &ColorShader{Color: c}
}

// ColorAt returns the shader color regardless of position.
func (s *ColorShader) ColorAt(x, y float64) Color {
	return s.Color
}

// CustomShader adapts a plain function into a Shader, for procedural
// paint sources.
type CustomShader struct {
	Func func(x, y float64) Color
}

// NewCustomShader creates a shader from a function.
func NewCustomShader(fn func(x, y float64) Color) *CustomShader {
	return &CustomShader{Func: fn}
}

// ColorAt evaluates the shader function.
func (s *CustomShader) ColorAt(x, y float64) Color {
	if s.Func == nil {
		return Color{}
	}
	return s.Func(x, y)
}
