package kanvas

import (
	"math"
	"testing"
)

func pointClose(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// m.Multiply(other) applies other first: scale, then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	if !pointClose(got, Pt(12, 2), 1e-12) {
		t.Errorf("transform = %v, want (12, 2)", got)
	}
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(2, -1), Pt(3, 4), Pt(5, 3)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate quarter", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"shear", Shear(1, 0), Pt(0, 2), Pt(2, 2)},
	}
	for _, tt := range tests {
		if got := tt.m.TransformPoint(tt.in); !pointClose(got, tt.want, 1e-12) {
			t.Errorf("%s: %v -> %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("matrix not invertible")
	}
	p := Pt(3.25, -1.5)
	back := inv.TransformPoint(m.TransformPoint(p))
	if !pointClose(back, p, 1e-9) {
		t.Errorf("round trip = %v, want %v", back, p)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("degenerate matrix reported invertible")
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Identity().IsIdentity() || !Identity().IsTranslation() || !Identity().IsAxisAligned() {
		t.Error("identity predicates")
	}
	if !Translate(1, 2).IsTranslation() {
		t.Error("translation not detected")
	}
	if Scale(2, 2).IsTranslation() {
		t.Error("scale is not a translation")
	}
	if !Scale(2, 3).IsAxisAligned() {
		t.Error("scale is axis aligned")
	}
	if Rotate(0.5).IsAxisAligned() {
		t.Error("rotation is not axis aligned")
	}
}

func TestMatrixMaxScale(t *testing.T) {
	if got := Scale(2, 3).MaxScale(); math.Abs(got-3) > 1e-12 {
		t.Errorf("MaxScale = %v, want 3", got)
	}
	// Rotation preserves lengths.
	if got := Rotate(1.1).MaxScale(); math.Abs(got-1) > 1e-12 {
		t.Errorf("rotation MaxScale = %v, want 1", got)
	}
}

func TestMatrixTransformRect(t *testing.T) {
	r := Scale(2, 2).TransformRect(NewRect(1, 1, 2, 3))
	if r != NewRect(2, 2, 4, 6) {
		t.Errorf("scaled rect = %v", r)
	}
	// Rotating 90 degrees swaps the extents.
	rot := Rotate(math.Pi / 2).TransformRect(NewRect(0, 0, 4, 2))
	if math.Abs(rot.W-2) > 1e-9 || math.Abs(rot.H-4) > 1e-9 {
		t.Errorf("rotated rect = %v, want 2x4 extent", rot)
	}
}
