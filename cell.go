package annulus

import (
	"fmt"
	"math"
)

// Padding gives four-sided cell padding as fractions of the cell's span:
// Left and Right shrink the usable angular span, Bottom and Top shrink the
// usable radial band.
type Padding struct {
	Left, Right float64
	Bottom, Top float64
}

func (p Padding) validate() error {
	for _, v := range []float64{p.Left, p.Right, p.Bottom, p.Top} {
		if v < 0 || v >= 1 {
			return fmt.Errorf("padding fraction %v outside [0, 1): %w", v, ErrConfig)
		}
	}
	if p.Left+p.Right >= 1 {
		return fmt.Errorf("horizontal padding %v+%v leaves no usable span: %w", p.Left, p.Right, ErrConfig)
	}
	if p.Bottom+p.Top >= 1 {
		return fmt.Errorf("vertical padding %v+%v leaves no usable band: %w", p.Bottom, p.Top, ErrConfig)
	}
	return nil
}

// Cell is the addressable drawing region at the intersection of one sector
// and one track. A cell maps its data bounds onto an angular/radial region
// and answers bidirectional coordinate queries.
type Cell struct {
	sector *Sector
	track  *Track
	layout *Layout

	ymin, ymax float64
	pad        Padding
	visible    bool
	background RGBA
}

// Sector returns the cell's sector.
func (c *Cell) Sector() *Sector { return c.sector }

// Track returns the cell's track.
func (c *Cell) Track() *Track { return c.track }

// Layout returns the layout session (or layer) owning the cell.
func (c *Cell) Layout() *Layout { return c.layout }

// Visible reports whether the cell has been activated for drawing.
func (c *Cell) Visible() bool { return c.visible }

// Background returns the cell's background fill color.
func (c *Cell) Background() RGBA { return c.background }

// Bounds returns the cell's data bounds.
func (c *Cell) Bounds() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = c.sector.XRange()
	return xmin, xmax, c.ymin, c.ymax
}

// YRange returns the cell's data-y range.
func (c *Cell) YRange() (ymin, ymax float64) { return c.ymin, c.ymax }

// InBounds reports whether (x, y) lies within the cell's data bounds.
func (c *Cell) InBounds(x, y float64) bool {
	xmin, xmax := c.sector.XRange()
	return x >= xmin && x <= xmax && y >= c.ymin && y <= c.ymax
}

// AngleOf maps data-x to an absolute angle in degrees. Padding shrinks the
// usable angular span; out-of-range data extrapolates linearly. A sector
// with a zero-width x-range (manual width only) maps every x to its angular
// midline.
func (c *Cell) AngleOf(x float64) float64 {
	xmin, xmax := c.sector.XRange()
	f := 0.5
	if xmax > xmin {
		f = (x - xmin) / (xmax - xmin)
	}
	u := c.pad.Left + f*(1-c.pad.Left-c.pad.Right)
	start, end := c.sector.Span()
	return start + u*(end-start)
}

// RadiusOf maps data-y to a radius as a fraction of the drawing radius.
// Padding shrinks the usable radial band; out-of-range data extrapolates
// linearly.
func (c *Cell) RadiusOf(y float64) float64 {
	g := (y - c.ymin) / (c.ymax - c.ymin)
	v := c.pad.Bottom + g*(1-c.pad.Bottom-c.pad.Top)
	return c.track.inner + v*(c.track.outer-c.track.inner)
}

// ToCanvas maps a data point to the layout's logical canvas coordinates.
// Out-of-range data is projected linearly outside the cell; when overflow
// warnings are enabled the package logger records the event.
func (c *Cell) ToCanvas(x, y float64) Point {
	if c.layout.cfg.overflowWarnings && !c.InBounds(x, y) {
		Logger().Warn("annulus: data point outside cell bounds",
			"sector", c.sector.Name(), "track", c.track.index, "x", x, "y", y)
	}
	return polar(c.AngleOf(x), c.RadiusOf(y))
}

// FromCanvas inverts ToCanvas: it recovers the data coordinates of a
// logical canvas point, interpreting the point's angle relative to this
// cell's sector. The round trip is exact within floating tolerance for
// points inside the cell.
func (c *Cell) FromCanvas(p Point) (x, y float64) {
	r := p.Length()
	theta := rad2deg(math.Atan2(p.Y, p.X))

	// Pick the representation of theta (mod 360) nearest the sector midline
	// so sectors straddling the wrap point invert correctly. The tolerance
	// keeps a point on the seam itself from being bumped a full extra turn
	// by floating noise in atan2.
	mid := c.sector.mid()
	for theta < mid-180-angleTol {
		theta += 360
	}
	for theta > mid+180+angleTol {
		theta -= 360
	}

	start, end := c.sector.Span()
	u := (theta - start) / (end - start)
	f := (u - c.pad.Left) / (1 - c.pad.Left - c.pad.Right)
	xmin, xmax := c.sector.XRange()
	x = xmin + f*(xmax-xmin)

	v := (r - c.track.inner) / (c.track.outer - c.track.inner)
	g := (v - c.pad.Bottom) / (1 - c.pad.Bottom - c.pad.Top)
	y = c.ymin + g*(c.ymax-c.ymin)
	return x, y
}

// Surface maps a data point all the way into surface coordinates, through
// the owning layout's canvas extent.
func (c *Cell) Surface(x, y float64) Point {
	return c.layout.Surface(c.ToCanvas(x, y))
}

// LabelRotation returns the rotation, in degrees, for a label running along
// the arc at data-x. The raw tangent is corrected so the label never
// renders upside-down.
func (c *Cell) LabelRotation(x float64) float64 {
	return UprightRotation(c.AngleOf(x) + 90)
}
