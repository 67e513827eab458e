package annulus

import (
	"math"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() is not identity")
	}
	p := Pt(3, -2)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity moved %v to %v", p, got)
	}
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"translate", Translate(2, 3), Pt(1, 1), Pt(3, 4)},
		{"scale", Scale(2, 0.5), Pt(4, 4), Pt(8, 2)},
		{"scale then translate", Translate(1, 0).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); got.Distance(tt.want) > 1e-12 {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(3, -1).Multiply(Scale(2, 4))
	inv := m.Invert()
	p := Pt(1.5, -2.5)
	got := inv.TransformPoint(m.TransformPoint(p))
	if got.Distance(p) > 1e-12 {
		t.Errorf("round trip moved %v to %v", p, got)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Scale(0, 1)
	if got := m.Invert(); !got.IsIdentity() {
		t.Errorf("singular inverse = %+v, want identity", got)
	}
}

func TestSurfaceMatrix(t *testing.T) {
	m := surfaceMatrix([2]float64{-2, 2}, [2]float64{0, 4})
	tests := []struct {
		in   Point
		want Point
	}{
		{Pt(-2, 0), Pt(-1, -1)},
		{Pt(2, 4), Pt(1, 1)},
		{Pt(0, 2), Pt(0, 0)},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); got.Distance(tt.want) > 1e-12 {
			t.Errorf("surface(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPointOps(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(3, 4)); got != Pt(4, 6) {
		t.Errorf("Add = %v", got)
	}
	if got := Pt(3, 4).Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length = %v", got)
	}
	if got := Pt(0, 0).Normalize(); got != Pt(0, 0) {
		t.Errorf("Normalize zero = %v", got)
	}
	if got := Pt(0, 3).Normalize(); got.Distance(Pt(0, 1)) > 1e-12 {
		t.Errorf("Normalize = %v", got)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 10), 0.25); got != Pt(2.5, 2.5) {
		t.Errorf("Lerp = %v", got)
	}
}
