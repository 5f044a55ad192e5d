package blend

import "testing"

type rgba struct {
	r, g, b, a uint8
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want uint8
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{100, 255, 100},
		{255, 100, 100},
		{128, 128, 64},  // 16384/255 = 64.25, rounds down
		{1, 128, 1},     // 128/255 = 0.502, rounds up
		{127, 255, 127}, // identity with full weight
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPorterDuff(t *testing.T) {
	opaqueRed := rgba{255, 0, 0, 255}
	opaqueBlue := rgba{0, 0, 255, 255}
	halfRed := rgba{128, 0, 0, 128} // premultiplied 50% red
	transparent := rgba{0, 0, 0, 0}

	tests := []struct {
		name string
		mode Mode
		src  rgba
		dst  rgba
		want rgba
	}{
		{"clear", Clear, opaqueRed, opaqueBlue, transparent},
		{"source", Source, opaqueRed, opaqueBlue, opaqueRed},
		{"destination", Destination, opaqueRed, opaqueBlue, opaqueBlue},
		{"source over opaque", SourceOver, opaqueRed, opaqueBlue, opaqueRed},
		{"source over half", SourceOver, halfRed, opaqueBlue, rgba{128, 0, 127, 255}},
		{"source over transparent dst", SourceOver, halfRed, transparent, halfRed},
		{"destination over opaque", DestinationOver, opaqueRed, opaqueBlue, opaqueBlue},
		{"destination over transparent dst", DestinationOver, opaqueRed, transparent, opaqueRed},
		{"source in opaque", SourceIn, opaqueRed, opaqueBlue, opaqueRed},
		{"source in transparent", SourceIn, opaqueRed, transparent, transparent},
		{"destination in", DestinationIn, halfRed, opaqueBlue, rgba{0, 0, 128, 128}},
		{"source out", SourceOut, opaqueRed, opaqueBlue, transparent},
		{"destination out", DestinationOut, halfRed, opaqueBlue, rgba{0, 0, 127, 127}},
		{"source atop", SourceAtop, halfRed, opaqueBlue, rgba{128, 0, 127, 255}},
		{"source atop keeps dst alpha", SourceAtop, opaqueRed, transparent, transparent},
		{"destination atop", DestinationAtop, opaqueRed, transparent, opaqueRed},
		{"xor opaque pair cancels", Xor, opaqueRed, opaqueBlue, transparent},
		{"plus clamps", Plus, rgba{200, 0, 0, 200}, rgba{100, 0, 0, 100}, rgba{255, 0, 0, 255}},
		{"modulate", Modulate, opaqueRed, opaqueBlue, rgba{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := FuncFor(tt.mode)
			r, g, b, a := fn(tt.src.r, tt.src.g, tt.src.b, tt.src.a,
				tt.dst.r, tt.dst.g, tt.dst.b, tt.dst.a)
			got := rgba{r, g, b, a}
			if got != tt.want {
				t.Errorf("%s: got %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSeparableOpaque(t *testing.T) {
	// With both layers opaque the composite reduces to the raw channel
	// function, which makes expectations easy to state.
	gray := rgba{128, 128, 128, 255}

	tests := []struct {
		name string
		mode Mode
		src  rgba
		dst  rgba
		want rgba
	}{
		{"multiply gray", Multiply, gray, gray, rgba{64, 64, 64, 255}},
		{"multiply by white", Multiply, rgba{255, 255, 255, 255}, gray, gray},
		{"screen gray", Screen, gray, gray, rgba{192, 192, 192, 255}},
		{"screen with black", Screen, rgba{0, 0, 0, 255}, gray, gray},
		{"darken", Darken, rgba{64, 200, 0, 255}, rgba{200, 64, 255, 255}, rgba{64, 64, 0, 255}},
		{"lighten", Lighten, rgba{64, 200, 0, 255}, rgba{200, 64, 255, 255}, rgba{200, 200, 255, 255}},
		{"difference", Difference, rgba{200, 50, 0, 255}, rgba{50, 200, 0, 255}, rgba{150, 150, 0, 255}},
		{"exclusion gray", Exclusion, gray, gray, rgba{127, 127, 127, 255}},
		{"colordodge", ColorDodge, rgba{64, 64, 64, 255}, gray, rgba{171, 171, 171, 255}},
		{"hardlight dark src multiplies", HardLight, rgba{64, 64, 64, 255}, gray, rgba{64, 64, 64, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := FuncFor(tt.mode)
			r, g, b, a := fn(tt.src.r, tt.src.g, tt.src.b, tt.src.a,
				tt.dst.r, tt.dst.g, tt.dst.b, tt.dst.a)
			got := rgba{r, g, b, a}
			if got != tt.want {
				t.Errorf("%s: got %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSeparableTransparentLayers(t *testing.T) {
	// A transparent source leaves only the backdrop term; a transparent
	// backdrop leaves only the source term.
	src := rgba{128, 64, 32, 128}
	for _, mode := range []Mode{Multiply, Screen, Overlay, Darken, Lighten,
		ColorDodge, ColorBurn, HardLight, SoftLight, Difference, Exclusion} {
		fn := FuncFor(mode)

		r, g, b, a := fn(0, 0, 0, 0, src.r, src.g, src.b, src.a)
		if (rgba{r, g, b, a}) != src {
			t.Errorf("%s: transparent src got %v, want %v", mode, rgba{r, g, b, a}, src)
		}

		r, g, b, a = fn(src.r, src.g, src.b, src.a, 0, 0, 0, 0)
		if (rgba{r, g, b, a}) != src {
			t.Errorf("%s: transparent dst got %v, want %v", mode, rgba{r, g, b, a}, src)
		}
	}
}

func TestComposite(t *testing.T) {
	red := rgba{255, 0, 0, 255}
	blue := rgba{0, 0, 255, 255}

	// Zero coverage never touches the destination, regardless of mode.
	for _, mode := range []Mode{Clear, Source, SourceOver, SourceIn, Xor} {
		r, g, b, a := Composite(mode, red.r, red.g, red.b, red.a,
			blue.r, blue.g, blue.b, blue.a, 0)
		if (rgba{r, g, b, a}) != blue {
			t.Errorf("%s at coverage 0: got %v, want %v", mode, rgba{r, g, b, a}, blue)
		}
	}

	// Full coverage matches the raw blend function.
	r, g, b, a := Composite(SourceOver, red.r, red.g, red.b, red.a,
		blue.r, blue.g, blue.b, blue.a, 255)
	if (rgba{r, g, b, a}) != red {
		t.Errorf("full coverage: got %v, want %v", rgba{r, g, b, a}, red)
	}

	// Half coverage lerps toward the destination.
	r, g, b, a = Composite(SourceOver, red.r, red.g, red.b, red.a,
		blue.r, blue.g, blue.b, blue.a, 128)
	want := rgba{128, 0, 127, 255}
	if (rgba{r, g, b, a}) != want {
		t.Errorf("half coverage: got %v, want %v", rgba{r, g, b, a}, want)
	}

	// Half coverage Clear erases half the destination.
	r, g, b, a = Composite(Clear, red.r, red.g, red.b, red.a,
		blue.r, blue.g, blue.b, blue.a, 128)
	want = rgba{0, 0, 127, 127}
	if (rgba{r, g, b, a}) != want {
		t.Errorf("half coverage clear: got %v, want %v", rgba{r, g, b, a}, want)
	}
}

func TestModeString(t *testing.T) {
	if got := SourceOver.String(); got != "SourceOver" {
		t.Errorf("SourceOver.String() = %q", got)
	}
	if got := Mode(200).String(); got != "Unknown" {
		t.Errorf("Mode(200).String() = %q", got)
	}
	if !Exclusion.IsValid() {
		t.Error("Exclusion should be valid")
	}
	if Mode(200).IsValid() {
		t.Error("Mode(200) should be invalid")
	}
}
