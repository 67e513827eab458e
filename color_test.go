package annulus

import (
	"image/color"
	"math"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.5, 0.25, 1.0)
	if c.R != 0.5 || c.G != 0.25 || c.B != 1.0 || c.A != 1.0 {
		t.Errorf("RGB(0.5, 0.25, 1.0) = %+v", c)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"short rgb", "#f00", RGBA{R: 1, A: 1}},
		{"short rgba", "#f008", RGBA{R: 1, A: 8.0 * 17 / 255}},
		{"full rgb", "#ff8000", RGBA{R: 1, G: 128.0 / 255, A: 1}},
		{"full rgba", "#ff800080", RGBA{R: 1, G: 128.0 / 255, A: 128.0 / 255}},
		{"no hash", "00ff00", RGBA{G: 1, A: 1}},
		{"invalid digits", "#zzzzzz", RGBA{A: 1}},
		{"wrong length", "#ff", RGBA{A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			for _, d := range []float64{
				got.R - tt.want.R, got.G - tt.want.G, got.B - tt.want.B, got.A - tt.want.A,
			} {
				if math.Abs(d) > 1e-9 {
					t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
					break
				}
			}
		})
	}
}

func TestRGBAColor(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want color.NRGBA
	}{
		{"opaque white", RGB(1, 1, 1), color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"transparent", RGBA{}, color.NRGBA{}},
		{"clamped above", RGBA{R: 2, A: 1}, color.NRGBA{R: 255, A: 255}},
		{"clamped below", RGBA{R: -1, A: 1}, color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Color(); got != tt.want {
				t.Errorf("Color() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
