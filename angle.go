package annulus

import "math"

// Direction fixes the sense in which sector angles accumulate around the
// circle.
type Direction int

const (
	// Counterclockwise lays sectors out in increasing angle, the standard
	// mathematical orientation. This is the default.
	Counterclockwise Direction = iota

	// Clockwise lays sectors out in decreasing angle.
	Clockwise
)

// sign returns the angular step sign for the direction.
func (d Direction) sign() float64 {
	if d == Clockwise {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// angleTol is the bookkeeping tolerance for angles: 1e-6 of the full circle.
// Sector widths plus gaps must close the circle within this tolerance.
const angleTol = 360 * 1e-6

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// normalizeDeg maps an angle to [0, 360).
func normalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// UprightRotation adjusts a raw text rotation so the text never renders
// upside-down relative to the viewer: rotations in the open lower semicircle
// (90°, 270°) are flipped by 180°, all others pass through unchanged.
// The result is normalized to [0, 360).
func UprightRotation(deg float64) float64 {
	n := normalizeDeg(deg)
	if n > 90 && n < 270 {
		return normalizeDeg(n + 180)
	}
	return n
}

// polar converts an angle in degrees and a radius into a Cartesian point.
func polar(deg, r float64) Point {
	sin, cos := math.Sincos(deg2rad(deg))
	return Point{X: r * cos, Y: r * sin}
}
