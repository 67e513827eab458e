package annulus

import (
	"math"
	"testing"
)

// cubicAt evaluates a cubic Bezier by de Casteljau subdivision.
func cubicAt(p0, c1, c2, p3 Point, t float64) Point {
	a := p0.Lerp(c1, t)
	b := c1.Lerp(c2, t)
	c := c2.Lerp(p3, t)
	return a.Lerp(b, t).Lerp(b.Lerp(c, t), t)
}

func TestArcToEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		sweep    float64
		radius   float64
		wantEnd  Point
		segments int
	}{
		{"quarter turn", 0, 90, 1, Pt(0, 1), 1},
		{"half turn", 0, 180, 1, Pt(-1, 0), 2},
		{"full turn", 0, 360, 2, Pt(2, 0), 4},
		{"clockwise quarter", 90, -90, 1, Pt(1, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			p.ArcTo(Pt(0, 0), tt.radius, tt.start, tt.sweep)

			els := p.Elements()
			if _, ok := els[0].(MoveTo); !ok {
				t.Fatalf("first element = %T, want MoveTo", els[0])
			}
			cubics := 0
			for _, e := range els[1:] {
				if _, ok := e.(CubicTo); ok {
					cubics++
				}
			}
			if cubics != tt.segments {
				t.Errorf("cubic count = %d, want %d", cubics, tt.segments)
			}
			if got := p.CurrentPoint(); got.Distance(tt.wantEnd) > 1e-12 {
				t.Errorf("end point = %v, want %v", got, tt.wantEnd)
			}
		})
	}
}

// Every point of the cubic approximation must stay within 1e-3 of the true
// radius for segments of up to a quarter turn.
func TestArcToRadiusAccuracy(t *testing.T) {
	const radius = 1.0
	p := NewPath()
	p.ArcTo(Pt(0, 0), radius, 30, 90)

	prev := Pt(0, 0)
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case MoveTo:
			prev = e.Point
		case CubicTo:
			for _, s := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
				pt := cubicAt(prev, e.Control1, e.Control2, e.Point, s)
				if err := math.Abs(pt.Length() - radius); err > 1e-3 {
					t.Errorf("radial error %v at t=%v", err, s)
				}
			}
			prev = e.Point
		}
	}
}

func TestArcToContinuesSubpath(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(Pt(0, 0), 1, 0, 90)

	els := p.Elements()
	if len(els) < 2 {
		t.Fatalf("got %d elements", len(els))
	}
	lt, ok := els[1].(LineTo)
	if !ok {
		t.Fatalf("second element = %T, want LineTo to the arc start", els[1])
	}
	if lt.Point.Distance(Pt(1, 0)) > 1e-12 {
		t.Errorf("arc start = %v, want (1, 0)", lt.Point)
	}
}

func TestArcCubicsZeroSweep(t *testing.T) {
	if segs := arcCubics(Pt(0, 0), 1, 45, 0); segs != nil {
		t.Errorf("zero sweep produced %d segments", len(segs))
	}
	if segs := arcCubics(Pt(0, 0), 0, 45, 90); segs != nil {
		t.Errorf("zero radius produced %d segments", len(segs))
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 0)
	p.LineTo(0, 1)
	p.QuadraticTo(1, 1, 2, 2)
	p.CubicTo(0, 0, 1, 0, 3, 3)
	p.Close()

	m := Scale(2, 2).Multiply(Translate(1, -1))
	got := p.Transform(m)

	if len(got.Elements()) != len(p.Elements()) {
		t.Fatalf("element count changed: %d -> %d", len(p.Elements()), len(got.Elements()))
	}
	mv := got.Elements()[0].(MoveTo)
	if want := m.TransformPoint(Pt(1, 0)); mv.Point.Distance(want) > 1e-12 {
		t.Errorf("transformed MoveTo = %v, want %v", mv.Point, want)
	}
	cb := got.Elements()[3].(CubicTo)
	if want := m.TransformPoint(Pt(1, 0)); cb.Control2.Distance(want) > 1e-12 {
		t.Errorf("transformed control = %v, want %v", cb.Control2, want)
	}
	if _, ok := got.Elements()[4].(Close); !ok {
		t.Errorf("Close not preserved: %T", got.Elements()[4])
	}
}

func TestPathCurrentPoint(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path is not empty")
	}
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	if got := p.CurrentPoint(); got != Pt(3, 4) {
		t.Errorf("current = %v, want (3, 4)", got)
	}
	p.Close()
	if got := p.CurrentPoint(); got != Pt(1, 2) {
		t.Errorf("current after Close = %v, want subpath start (1, 2)", got)
	}
}
