package annulus

import "fmt"

// LayoutOption configures a layout session at BeginLayout time.
// Use functional options to customize layout behavior.
//
// Example:
//
//	layout, err := canvas.BeginLayout(
//	    annulus.WithStartAngle(90),
//	    annulus.WithGap(2),
//	)
type LayoutOption func(*layoutConfig)

// layoutConfig holds the resolved configuration of one layout session.
type layoutConfig struct {
	startAngle       float64
	direction        Direction
	gap              float64   // uniform gap-after in degrees
	gaps             []float64 // per-sector gap-after; overrides gap when set
	groupShares      map[string]float64
	xlim, ylim       [2]float64
	padding          Padding
	trackHeight      float64
	trackMargin      float64
	overflowWarnings bool
	composite        bool
}

// defaultLayoutConfig returns the default layout configuration.
func defaultLayoutConfig() layoutConfig {
	return layoutConfig{
		startAngle:       0,
		direction:        Counterclockwise,
		xlim:             [2]float64{-1, 1},
		ylim:             [2]float64{-1, 1},
		trackHeight:      0.15,
		trackMargin:      0.01,
		overflowWarnings: true,
	}
}

// validate checks configuration invariants that do not depend on the sector
// set. Sector-dependent checks (per-sector gap count, group share coverage)
// happen at allocation time.
func (c *layoutConfig) validate() error {
	if c.gap < 0 {
		return fmt.Errorf("negative uniform gap %v: %w", c.gap, ErrConfig)
	}
	for i, g := range c.gaps {
		if g < 0 {
			return fmt.Errorf("negative gap %v after sector %d: %w", g, i, ErrConfig)
		}
	}
	if c.xlim[0] >= c.xlim[1] || c.ylim[0] >= c.ylim[1] {
		return fmt.Errorf("canvas extent %v x %v is empty: %w", c.xlim, c.ylim, ErrConfig)
	}
	if err := c.padding.validate(); err != nil {
		return err
	}
	if c.trackHeight <= 0 || c.trackHeight > 1 {
		return fmt.Errorf("default track height %v outside (0, 1]: %w", c.trackHeight, ErrConfig)
	}
	if c.trackMargin < 0 || c.trackMargin >= 1 {
		return fmt.Errorf("default track margin %v outside [0, 1): %w", c.trackMargin, ErrConfig)
	}
	for g, s := range c.groupShares {
		if s <= 0 || s > 1 {
			return fmt.Errorf("group %q share %v outside (0, 1]: %w", g, s, ErrConfig)
		}
	}
	return nil
}

// WithStartAngle rotates the zero-angle reference: the first sector starts
// at deg degrees.
func WithStartAngle(deg float64) LayoutOption {
	return func(c *layoutConfig) { c.startAngle = deg }
}

// WithDirection sets the direction in which sectors are laid out.
// The default is Counterclockwise.
func WithDirection(d Direction) LayoutOption {
	return func(c *layoutConfig) { c.direction = d }
}

// WithGap reserves a uniform gap of deg degrees after every sector.
func WithGap(deg float64) LayoutOption {
	return func(c *layoutConfig) { c.gap = deg }
}

// WithGaps reserves a per-sector gap-after in degrees. The number of values
// must match the number of sectors at allocation time.
func WithGaps(deg ...float64) LayoutOption {
	return func(c *layoutConfig) { c.gaps = deg }
}

// WithGroupShares fixes the fraction of the available angle reserved for
// each sector group. The map must cover every group present in the sector
// set and the shares must sum to 1. Without this option, groups split the
// available angle equally.
func WithGroupShares(shares map[string]float64) LayoutOption {
	return func(c *layoutConfig) { c.groupShares = shares }
}

// WithCanvasExtent sets the logical canvas bounds the polar projection maps
// into. The default is [-1,1] x [-1,1]. A wider extent renders the layout
// at a proportionally smaller apparent radius on the shared surface,
// enabling nested and overlaid circles.
func WithCanvasExtent(xlim, ylim [2]float64) LayoutOption {
	return func(c *layoutConfig) {
		c.xlim = xlim
		c.ylim = ylim
	}
}

// WithCellPadding sets the default four-sided cell padding, as fractions of
// each cell's angular and radial span. Track configs may override it.
func WithCellPadding(p Padding) LayoutOption {
	return func(c *layoutConfig) { c.padding = p }
}

// WithTrackHeight sets the default track height as a fraction of the
// drawing radius, used when a TrackConfig leaves Height zero.
func WithTrackHeight(h float64) LayoutOption {
	return func(c *layoutConfig) { c.trackHeight = h }
}

// WithTrackMargin sets the default radial margin left free after each
// track, used when a TrackConfig leaves Margin zero.
func WithTrackMargin(m float64) LayoutOption {
	return func(c *layoutConfig) { c.trackMargin = m }
}

// WithOverflowWarnings controls whether ToCanvas logs a warning when given
// data outside the cell bounds. Enabled by default; out-of-range data is
// projected linearly outside the cell either way.
func WithOverflowWarnings(enabled bool) LayoutOption {
	return func(c *layoutConfig) { c.overflowWarnings = enabled }
}

// WithComposite allows BeginLayout to run while another session is open:
// the open session is closed into a layer first and the new session paints
// on top of it. Without this option, BeginLayout fails with ErrState when a
// session is already open.
func WithComposite() LayoutOption {
	return func(c *layoutConfig) { c.composite = true }
}
