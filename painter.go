package annulus

import (
	"fmt"
	"math"
)

// Facing selects how painter text is oriented relative to the circle. All
// facings are corrected so text never renders upside-down.
type Facing int

const (
	// FacingTangent runs text along the arc at its position.
	FacingTangent Facing = iota

	// FacingOutside runs text along the radius, reading outward.
	FacingOutside

	// FacingInside runs text along the radius, reading inward.
	FacingInside
)

// maxSegmentDeg bounds the angular span of one straight segment when data
// lines are bent around the circle.
const maxSegmentDeg = 5.0

// Painter resolves data coordinates through cells and forwards primitives
// to a Backend in surface coordinates. It is the bridge between the
// coordinate engine and a concrete drawing surface; it retains no state
// beyond the backend.
type Painter struct {
	backend Backend
}

// NewPainter creates a painter drawing onto b.
func NewPainter(b Backend) *Painter {
	return &Painter{backend: b}
}

// Point draws a dot at the data point (x, y) of the cell.
func (p *Painter) Point(c *Cell, x, y float64, style Style) {
	p.backend.DrawPoint(c.Surface(x, y), style)
}

// Points draws one dot per data point.
func (p *Painter) Points(c *Cell, xs, ys []float64, style Style) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%d x values vs %d y values: %w", len(xs), len(ys), ErrConfig)
	}
	for i := range xs {
		p.backend.DrawPoint(c.Surface(xs[i], ys[i]), style)
	}
	return nil
}

// Line strokes a polyline through the data points. Segments are subdivided
// in data space so the line bends with the arc instead of cutting chords
// across it.
func (p *Painter) Line(c *Cell, xs, ys []float64, style Style) error {
	pts, err := p.sampled(c, xs, ys, false)
	if err != nil {
		return err
	}
	p.backend.DrawLine(pts, style)
	return nil
}

// Polygon fills and/or outlines the closed region through the data points,
// with the same arc-following subdivision as Line.
func (p *Painter) Polygon(c *Cell, xs, ys []float64, style Style) error {
	pts, err := p.sampled(c, xs, ys, true)
	if err != nil {
		return err
	}
	p.backend.DrawPolygon(pts, style)
	return nil
}

// sampled resolves a data polyline into surface points, subdividing each
// segment into steps of at most maxSegmentDeg of arc.
func (p *Painter) sampled(c *Cell, xs, ys []float64, closed bool) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%d x values vs %d y values: %w", len(xs), len(ys), ErrConfig)
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("polyline needs at least 2 points, got %d: %w", len(xs), ErrConfig)
	}
	pts := make([]Point, 0, len(xs))
	pts = append(pts, c.Surface(xs[0], ys[0]))
	n := len(xs)
	last := n - 1
	if closed {
		last = n
	}
	for i := 1; i <= last; i++ {
		x0, y0 := xs[(i-1)%n], ys[(i-1)%n]
		x1, y1 := xs[i%n], ys[i%n]
		steps := int(math.Ceil(math.Abs(c.AngleOf(x1)-c.AngleOf(x0)) / maxSegmentDeg))
		if steps < 1 {
			steps = 1
		}
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			pts = append(pts, c.Surface(x0+(x1-x0)*t, y0+(y1-y0)*t))
		}
	}
	return pts, nil
}

// Text draws a label anchored at the data point (x, y), oriented per the
// facing and corrected to stay upright.
func (p *Painter) Text(c *Cell, x, y float64, text string, facing Facing, style Style) {
	angle := c.AngleOf(x)
	var raw float64
	switch facing {
	case FacingOutside:
		raw = angle
	case FacingInside:
		raw = angle + 180
	default:
		raw = angle + 90
	}
	p.backend.DrawText(c.Surface(x, y), text, UprightRotation(raw), style)
}

// CellOutline draws the padded cell region as an annular wedge: an arc at
// the outer radius, a radial edge inward, an arc back at the inner radius,
// and a closing edge. The style's Fill paints the wedge, Stroke outlines it.
func (p *Painter) CellOutline(c *Cell, style Style) {
	xmin, xmax, ymin, ymax := c.Bounds()
	a0 := c.AngleOf(xmin)
	a1 := c.AngleOf(xmax)
	rIn := c.RadiusOf(ymin)
	rOut := c.RadiusOf(ymax)

	path := NewPath()
	path.ArcTo(Pt(0, 0), rOut, a0, a1-a0)
	path.ArcTo(Pt(0, 0), rIn, a1, a0-a1)
	path.Close()
	p.backend.DrawPath(path.Transform(c.layout.surface), style)
}

// CellBackground paints the cell's configured background, if any.
func (p *Painter) CellBackground(c *Cell) {
	if c.background.A == 0 {
		return
	}
	p.CellOutline(c, Style{Fill: c.background})
}

// Link forwards a connector path produced by the Link function.
func (p *Painter) Link(path *Path, style Style) {
	p.backend.DrawPath(path, style)
}
