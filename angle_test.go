package annulus

import (
	"math"
	"testing"
)

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside", 123, 123},
		{"full circle", 360, 0},
		{"over", 450, 90},
		{"negative", -90, 270},
		{"deep negative", -720, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDeg(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("normalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUprightRotation(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"zero", 0, 0},
		{"upper right", 45, 45},
		{"boundary 90", 90, 90},
		{"just past 90", 91, 271},
		{"straight down", 180, 0},
		{"just before 270", 269, 89},
		{"boundary 270", 270, 270},
		{"upper left", 300, 300},
		{"negative input", -90, 270},
		{"wrapped lower", 360 + 180, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UprightRotation(tt.raw); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("UprightRotation(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// The upright rule must flip by exactly 180 inside the open lower
// semicircle and leave everything else untouched.
func TestUprightRotationFlipRule(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 7.5 {
		got := UprightRotation(deg)
		lower := deg > 90 && deg < 270
		if lower && math.Abs(got-normalizeDeg(deg+180)) > 1e-12 {
			t.Errorf("raw %v in lower semicircle: got %v, want %v", deg, got, normalizeDeg(deg+180))
		}
		if !lower && math.Abs(got-deg) > 1e-12 {
			t.Errorf("raw %v outside lower semicircle: got %v, want %v", deg, got, deg)
		}
	}
}

func TestPolar(t *testing.T) {
	tests := []struct {
		name   string
		deg, r float64
		want   Point
	}{
		{"east", 0, 1, Pt(1, 0)},
		{"north", 90, 2, Pt(0, 2)},
		{"west", 180, 1, Pt(-1, 0)},
		{"south", 270, 0.5, Pt(0, -0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := polar(tt.deg, tt.r)
			if got.Distance(tt.want) > 1e-12 {
				t.Errorf("polar(%v, %v) = %v, want %v", tt.deg, tt.r, got, tt.want)
			}
		})
	}
}
