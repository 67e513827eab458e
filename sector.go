package annulus

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// SectorDef describes one sector before allocation.
type SectorDef struct {
	// Name is the sector's unique identity within a layout.
	Name string

	// XMin, XMax give the data-x range the sector covers. The range size
	// drives proportional width allocation unless Width is set.
	XMin, XMax float64

	// Width, when positive, is a manual angular width in degrees. Zero means
	// the width is derived proportionally from the x-range size.
	Width float64

	// Group tags the sector's zoom group. Sectors are width-normalized
	// independently within each group. The empty string is the default group.
	Group string
}

// span returns the data-x range size.
func (d SectorDef) span() float64 { return d.XMax - d.XMin }

// Sector is an allocated angular partition of the circle.
type Sector struct {
	def      SectorDef
	index    int
	start    float64 // degrees
	end      float64 // degrees; end = start + direction*width
	gapAfter float64 // degrees reserved after this sector
}

// Name returns the sector's unique name.
func (s *Sector) Name() string { return s.def.Name }

// Group returns the sector's zoom group tag.
func (s *Sector) Group() string { return s.def.Group }

// Index returns the sector's position in layout order.
func (s *Sector) Index() int { return s.index }

// XRange returns the sector's data-x range.
func (s *Sector) XRange() (xmin, xmax float64) { return s.def.XMin, s.def.XMax }

// Span returns the sector's angular span in degrees. For clockwise layouts
// end is smaller than start.
func (s *Sector) Span() (startDeg, endDeg float64) { return s.start, s.end }

// Width returns the sector's angular width in degrees, always positive.
func (s *Sector) Width() float64 {
	w := s.end - s.start
	if w < 0 {
		return -w
	}
	return w
}

// GapAfter returns the gap in degrees reserved after this sector.
func (s *Sector) GapAfter() float64 { return s.gapAfter }

// mid returns the angular midline of the sector in degrees.
func (s *Sector) mid() float64 { return (s.start + s.end) / 2 }

// allocateSectors computes the angular span of every sector from the defs,
// the gap policy, and the group shares. See the package documentation for
// the allocation rules. The returned sectors partition the circle: widths
// plus gaps sum to 360 degrees within tolerance.
func allocateSectors(defs []SectorDef, cfg *layoutConfig) ([]*Sector, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("no sectors defined: %w", ErrConfig)
	}
	if cfg.gaps != nil && len(cfg.gaps) != len(defs) {
		return nil, fmt.Errorf("%d per-sector gaps for %d sectors: %w",
			len(cfg.gaps), len(defs), ErrConfig)
	}

	gaps := make([]float64, len(defs))
	var gapTotal float64
	for i := range defs {
		if cfg.gaps != nil {
			gaps[i] = cfg.gaps[i]
		} else {
			gaps[i] = cfg.gap
		}
		gapTotal += gaps[i]
	}
	avail := 360 - gapTotal
	if avail < -angleTol {
		return nil, fmt.Errorf("gaps sum to %v degrees, exceeding the full circle: %w",
			gapTotal, ErrConfig)
	}
	if avail < 0 {
		avail = 0
	}

	widths, err := allocateWidths(defs, cfg, avail)
	if err != nil {
		return nil, err
	}

	dir := cfg.direction.sign()
	sectors := make([]*Sector, len(defs))
	cursor := cfg.startAngle
	for i, d := range defs {
		s := &Sector{
			def:      d,
			index:    i,
			start:    cursor,
			end:      cursor + dir*widths[i],
			gapAfter: gaps[i],
		}
		sectors[i] = s
		cursor = s.end + dir*gaps[i]
	}

	// Widths plus gaps must close the circle exactly once.
	if !scalar.EqualWithinAbs(cursor, cfg.startAngle+dir*360, angleTol) {
		return nil, fmt.Errorf("sector widths and gaps close at %v degrees instead of 360: %w",
			dir*(cursor-cfg.startAngle), ErrConfig)
	}

	Logger().Debug("annulus: sectors allocated",
		"sectors", len(sectors), "gapTotal", gapTotal, "startAngle", cfg.startAngle,
		"direction", cfg.direction.String())
	return sectors, nil
}

// allocateWidths splits the available angle over the defs, normalizing each
// group independently.
func allocateWidths(defs []SectorDef, cfg *layoutConfig, avail float64) ([]float64, error) {
	// Groups in first-appearance order.
	var groups []string
	byGroup := make(map[string][]int)
	for i, d := range defs {
		if _, ok := byGroup[d.Group]; !ok {
			groups = append(groups, d.Group)
		}
		byGroup[d.Group] = append(byGroup[d.Group], i)
	}

	shares := make(map[string]float64, len(groups))
	if len(cfg.groupShares) == 0 {
		for _, g := range groups {
			shares[g] = 1 / float64(len(groups))
		}
	} else {
		var sum float64
		for _, g := range groups {
			s, ok := cfg.groupShares[g]
			if !ok {
				return nil, fmt.Errorf("group %q has no share: %w", g, ErrConfig)
			}
			shares[g] = s
			sum += s
		}
		if !scalar.EqualWithinAbs(sum, 1, 1e-6) {
			return nil, fmt.Errorf("group shares sum to %v instead of 1: %w", sum, ErrConfig)
		}
	}

	widths := make([]float64, len(defs))
	for _, g := range groups {
		groupAvail := shares[g] * avail

		var manualSum, propTotal float64
		var propCount int
		for _, i := range byGroup[g] {
			d := defs[i]
			if d.Width < 0 {
				return nil, fmt.Errorf("sector %q has negative width %v: %w", d.Name, d.Width, ErrConfig)
			}
			if d.XMax < d.XMin {
				return nil, fmt.Errorf("sector %q has inverted x-range [%v, %v]: %w",
					d.Name, d.XMin, d.XMax, ErrConfig)
			}
			if d.Width > 0 {
				manualSum += d.Width
				continue
			}
			if d.span() <= 0 {
				return nil, fmt.Errorf("sector %q has a zero-width x-range and no manual width: %w",
					d.Name, ErrConfig)
			}
			propTotal += d.span()
			propCount++
		}

		if propCount == 0 {
			// Only manual widths in this group: scale them to fill the
			// group's share exactly.
			scale := 1.0
			if manualSum > 0 {
				scale = groupAvail / manualSum
			}
			for _, i := range byGroup[g] {
				widths[i] = defs[i].Width * scale
			}
			continue
		}

		rem := groupAvail - manualSum
		if rem <= angleTol {
			return nil, fmt.Errorf("group %q: manual widths (%v degrees) leave no room in the group's %v degrees: %w",
				g, manualSum, groupAvail, ErrConfig)
		}
		for _, i := range byGroup[g] {
			if defs[i].Width > 0 {
				widths[i] = defs[i].Width
			} else {
				widths[i] = rem * defs[i].span() / propTotal
			}
		}
	}
	return widths, nil
}
