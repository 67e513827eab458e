package annulus

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path in surface coordinates. Link geometry
// produces paths; drawing backends consume them.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// ArcTo appends a circular arc around center, starting at startDeg and
// sweeping sweepDeg (positive is counterclockwise). The arc is approximated
// by cubic Bezier segments of at most a quarter turn each, using the
// 4/3*tan(step/4) control arm construction. If the path is empty the arc
// starts with a MoveTo, otherwise with a LineTo to the arc's start point.
func (p *Path) ArcTo(center Point, radius, startDeg, sweepDeg float64) {
	start := center.Add(polar(startDeg, radius))
	if p.IsEmpty() {
		p.MoveTo(start.X, start.Y)
	} else {
		p.LineTo(start.X, start.Y)
	}
	for _, seg := range arcCubics(center, radius, startDeg, sweepDeg) {
		p.CubicTo(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y, seg[2].X, seg[2].Y)
	}
}

// arcCubics returns the cubic control triples (c1, c2, end) approximating a
// circular arc. A zero sweep returns no segments.
func arcCubics(center Point, radius, startDeg, sweepDeg float64) [][3]Point {
	if sweepDeg == 0 || radius == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(sweepDeg) / 90))
	if n < 1 {
		n = 1
	}
	step := sweepDeg / float64(n)
	// Control arm length for a cubic approximating an arc of `step` degrees.
	arm := (4.0 / 3.0) * math.Tan(deg2rad(step)/4) * radius

	segs := make([][3]Point, 0, n)
	a0 := startDeg
	p0 := center.Add(polar(a0, radius))
	for i := 0; i < n; i++ {
		a1 := a0 + step
		p3 := center.Add(polar(a1, radius))
		// Unit tangents point counterclockwise; arm carries the sweep sign.
		c1 := p0.Add(polar(a0+90, 1).Mul(arm))
		c2 := p3.Sub(polar(a1+90, 1).Mul(arm))
		segs = append(segs, [3]Point{c1, c2, p3})
		a0 = a1
		p0 = p3
	}
	return segs
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			out.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			out.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			out.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			out.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			out.Close()
		}
	}
	return out
}
