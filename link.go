package annulus

import (
	"fmt"
	"math"
)

// LinkEnd selects one endpoint of a connector. The endpoint is anchored to
// a cell, which may belong to any layout or closed layer; the two ends of a
// link may come from different layers with different canvas extents.
type LinkEnd struct {
	// Cell anchors the endpoint.
	Cell *Cell

	// X0 and X1 give the endpoint's data-x anchor. Equal values anchor a
	// point; distinct values anchor a span, turning the link into a ribbon
	// edge along the arc between them.
	X0, X1 float64

	// Radius, when positive, overrides the anchor radius (as a fraction of
	// the drawing radius). The default is the inner edge of the cell's
	// track band.
	Radius float64
}

func (e LinkEnd) isSpan() bool { return e.X0 != e.X1 }

func (e LinkEnd) anchorRadius() float64 {
	if e.Radius > 0 {
		return e.Radius
	}
	return e.Cell.track.inner
}

// surfacePoint resolves the endpoint's anchor at data-x through its own
// cell and layer.
func (e LinkEnd) surfacePoint(x float64) Point {
	logical := polar(e.Cell.AngleOf(x), e.anchorRadius())
	return e.Cell.layout.Surface(logical)
}

// center returns the endpoint's circle center in surface coordinates.
func (e LinkEnd) center() Point {
	return e.Cell.layout.Surface(Pt(0, 0))
}

// appendArc appends the endpoint's span arc to path, from X0 to X1, built
// in the endpoint's logical space and mapped through its layer so the arc
// scales with the layer's extent.
func (e LinkEnd) appendArc(path *Path) {
	c := e.Cell
	a0 := c.AngleOf(e.X0)
	a1 := c.AngleOf(e.X1)
	m := c.layout.surface
	for _, seg := range arcCubics(Pt(0, 0), e.anchorRadius(), a0, a1-a0) {
		c1 := m.TransformPoint(seg[0])
		c2 := m.TransformPoint(seg[1])
		end := m.TransformPoint(seg[2])
		path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
}

// validate checks an endpoint before geometry is built.
func (e LinkEnd) validate() error {
	if e.Cell == nil {
		return fmt.Errorf("link endpoint has no cell: %w", ErrConfig)
	}
	if e.Radius < 0 {
		return fmt.Errorf("link endpoint radius %v is negative: %w", e.Radius, ErrConfig)
	}
	return nil
}

// Link computes the connector path between two cell-anchored endpoints in
// surface coordinates. Two point ends produce a single cubic Bezier bowed
// toward the circle center; when either end is a span the result is a
// closed ribbon: an arc along each span joined by two Beziers.
//
// Link is a pure function of the resolved endpoint geometry; it retains no
// state and works across open sessions and closed layers alike.
func Link(a, b LinkEnd) (*Path, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	if !a.isSpan() && !b.isSpan() {
		p0 := a.surfacePoint(a.X0)
		p1 := b.surfacePoint(b.X0)
		c0 := controlPoint(a, b, p0, a.center())
		c1 := controlPoint(a, b, p1, b.center())
		path := NewPath()
		path.MoveTo(p0.X, p0.Y)
		path.CubicTo(c0.X, c0.Y, c1.X, c1.Y, p1.X, p1.Y)
		return path, nil
	}

	// Ribbon: arc along a's span, Bezier to b, arc back along b's span
	// (reversed), Bezier home, close.
	start := a.surfacePoint(a.X0)
	path := NewPath()
	path.MoveTo(start.X, start.Y)
	a.appendArc(path)

	aEnd := a.surfacePoint(a.X1)
	bStart := b.surfacePoint(b.X0)
	c0 := controlPoint(a, b, aEnd, a.center())
	c1 := controlPoint(a, b, bStart, b.center())
	path.CubicTo(c0.X, c0.Y, c1.X, c1.Y, bStart.X, bStart.Y)

	// Walk b's span from X0 to X1, then return to a's start.
	b.appendArc(path)

	bEnd := b.surfacePoint(b.X1)
	c2 := controlPoint(a, b, bEnd, b.center())
	c3 := controlPoint(a, b, start, a.center())
	path.CubicTo(c2.X, c2.Y, c3.X, c3.Y, start.X, start.Y)
	path.Close()
	return path, nil
}

// controlPoint pulls a link endpoint toward its circle center. The pull
// deepens with the angular separation of the two ends: nearly adjacent
// anchors bow gently, opposite anchors dive close to the center.
func controlPoint(a, b LinkEnd, p, center Point) Point {
	da := a.Cell.AngleOf((a.X0 + a.X1) / 2)
	db := b.Cell.AngleOf((b.X0 + b.X1) / 2)
	sep := math.Abs(normalizeDeg(da) - normalizeDeg(db))
	if sep > 180 {
		sep = 360 - sep
	}
	pull := 1 - sep/180
	if pull < 0.1 {
		pull = 0.1
	}
	if pull > 0.9 {
		pull = 0.9
	}
	return center.Add(p.Sub(center).Mul(pull))
}
