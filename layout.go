package annulus

import "fmt"

// Canvas composites layout sessions onto one logical drawing surface.
// At most one session is open for mutation at a time; closed sessions are
// retained as read-only layers that keep answering coordinate queries, which
// cross-layer links and overlay drawing depend on. Layer order is overlay
// order: the first closed layer is the bottom of the stack.
//
// A Canvas is not safe for concurrent use; layout construction is a
// synchronous, imperative process.
type Canvas struct {
	layers  []*Layout
	current *Layout
}

// NewCanvas creates an empty compositor with no open session.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// BeginLayout opens a new layout session. It fails with ErrState when a
// session is already open, unless WithComposite was passed, in which case
// the open session is closed into a layer first and the new session paints
// on top of it.
func (c *Canvas) BeginLayout(opts ...LayoutOption) (*Layout, error) {
	cfg := defaultLayoutConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if c.current != nil {
		if !cfg.composite {
			return nil, fmt.Errorf("a session is already open (pass WithComposite to overlay): %w", ErrState)
		}
		if err := c.current.Close(); err != nil {
			return nil, err
		}
	}

	l := &Layout{
		canvas:       c,
		cfg:          cfg,
		names:        make(map[string]int),
		radialCursor: 1.0,
		surface:      surfaceMatrix(cfg.xlim, cfg.ylim),
	}
	c.current = l
	return l, nil
}

// Close closes the current session into a layer. It fails with ErrState
// when no session is open.
func (c *Canvas) Close() error {
	if c.current == nil {
		return fmt.Errorf("no open session: %w", ErrState)
	}
	return c.current.Close()
}

// Current returns the open session, or nil if none is open.
func (c *Canvas) Current() *Layout { return c.current }

// Layers returns the closed layers in overlay order (bottom first). The
// returned slice must not be modified.
func (c *Canvas) Layers() []*Layout { return c.layers }

// Reset drops the current session and all layers. Call it between
// independent renders so sectors and tracks do not leak across them.
func (c *Canvas) Reset() {
	c.layers = nil
	c.current = nil
}

// surfaceMatrix maps the logical extent [xlim]x[ylim] onto the shared
// surface square [-1,1]^2.
func surfaceMatrix(xlim, ylim [2]float64) Matrix {
	sx := 2 / (xlim[1] - xlim[0])
	sy := 2 / (ylim[1] - ylim[0])
	return Matrix{
		A: sx, B: 0, C: -(xlim[0] + xlim[1]) / (xlim[1] - xlim[0]),
		D: 0, E: sy, F: -(ylim[0] + ylim[1]) / (ylim[1] - ylim[0]),
	}
}

// Layout is one layout session: an ordered sector table, a track stack, and
// a canvas extent. While open it accepts sectors and tracks; once closed it
// becomes a read-only layer whose geometry stays valid for queries.
type Layout struct {
	canvas *Canvas
	cfg    layoutConfig

	defs    []SectorDef
	names   map[string]int
	sectors []*Sector
	tracks  []*Track

	radialCursor float64
	surface      Matrix

	finalized bool
	closed    bool
}

// mutable returns ErrState when the layout no longer accepts mutations.
func (l *Layout) mutable() error {
	if l.closed {
		return fmt.Errorf("layout is closed: %w", ErrState)
	}
	return nil
}

// AddSector appends one sector definition. Sectors must be added before the
// first track; definitions are validated individually here and as a set
// when the layout is finalized.
func (l *Layout) AddSector(def SectorDef) error {
	if err := l.mutable(); err != nil {
		return err
	}
	if l.finalized {
		return fmt.Errorf("sector table is finalized, cannot add %q: %w", def.Name, ErrState)
	}
	if def.Name == "" {
		return fmt.Errorf("sector with empty name: %w", ErrConfig)
	}
	if _, ok := l.names[def.Name]; ok {
		return fmt.Errorf("duplicate sector %q: %w", def.Name, ErrConfig)
	}
	if def.XMax < def.XMin {
		return fmt.Errorf("sector %q has inverted x-range [%v, %v]: %w",
			def.Name, def.XMin, def.XMax, ErrConfig)
	}
	if def.Width < 0 {
		return fmt.Errorf("sector %q has negative width %v: %w", def.Name, def.Width, ErrConfig)
	}
	if def.Width == 0 && def.XMax == def.XMin {
		return fmt.Errorf("sector %q has a zero-width x-range and no manual width: %w",
			def.Name, ErrConfig)
	}
	l.names[def.Name] = len(l.defs)
	l.defs = append(l.defs, def)
	return nil
}

// AddSectors appends several sector definitions. The call is atomic: on
// error no definition is added.
func (l *Layout) AddSectors(defs ...SectorDef) error {
	saved := len(l.defs)
	for _, def := range defs {
		if err := l.AddSector(def); err != nil {
			for _, d := range l.defs[saved:] {
				delete(l.names, d.Name)
			}
			l.defs = l.defs[:saved]
			return err
		}
	}
	return nil
}

// finalize allocates angular spans for the sector table. It runs once, on
// the first track addition or geometry query; afterwards the sector set is
// fixed.
func (l *Layout) finalize() error {
	if l.finalized {
		return nil
	}
	sectors, err := allocateSectors(l.defs, &l.cfg)
	if err != nil {
		return err
	}
	l.sectors = sectors
	l.finalized = true
	return nil
}

// Sectors returns the allocated sectors in layout order, finalizing the
// sector table if needed.
func (l *Layout) Sectors() ([]*Sector, error) {
	if err := l.finalize(); err != nil {
		return nil, err
	}
	return l.sectors, nil
}

// Sector returns the allocated sector with the given name.
func (l *Layout) Sector(name string) (*Sector, error) {
	if err := l.finalize(); err != nil {
		return nil, err
	}
	i, ok := l.names[name]
	if !ok {
		return nil, fmt.Errorf("sector %q: %w", name, ErrLookup)
	}
	return l.sectors[i], nil
}

// Track returns the track at the given stack index, 0 being the outermost.
func (l *Layout) Track(index int) (*Track, error) {
	if index < 0 || index >= len(l.tracks) {
		return nil, fmt.Errorf("track %d of %d: %w", index, len(l.tracks), ErrLookup)
	}
	return l.tracks[index], nil
}

// Tracks returns the allocated tracks, outermost first.
func (l *Layout) Tracks() []*Track { return l.tracks }

// Cell returns the cell at the intersection of the named sector and the
// track at the given index. Cells of closed layouts remain queryable.
func (l *Layout) Cell(sector string, track int) (*Cell, error) {
	t, err := l.Track(track)
	if err != nil {
		return nil, err
	}
	i, ok := l.names[sector]
	if !ok {
		return nil, fmt.Errorf("sector %q: %w", sector, ErrLookup)
	}
	return t.cells[i], nil
}

// ActivateSector assigns a y-range to the named sector's cell in the given
// track and makes it visible. This fills shell tracks cell by cell without
// re-flowing the stack. The layout must still be open.
func (l *Layout) ActivateSector(track int, sector string, ymin, ymax float64) error {
	if err := l.mutable(); err != nil {
		return err
	}
	if ymin >= ymax {
		return fmt.Errorf("y-range [%v, %v] is empty: %w", ymin, ymax, ErrConfig)
	}
	cell, err := l.Cell(sector, track)
	if err != nil {
		return err
	}
	cell.ymin = ymin
	cell.ymax = ymax
	cell.visible = true
	return nil
}

// Close finalizes the sector table if needed and freezes the layout into a
// read-only layer on the owning canvas. Coordinate queries keep working on
// closed layouts; mutations fail with ErrState.
func (l *Layout) Close() error {
	if l.closed {
		return fmt.Errorf("layout already closed: %w", ErrState)
	}
	if !l.finalized && len(l.defs) > 0 {
		if err := l.finalize(); err != nil {
			return err
		}
	}
	l.closed = true
	l.canvas.layers = append(l.canvas.layers, l)
	if l.canvas.current == l {
		l.canvas.current = nil
	}
	return nil
}

// Closed reports whether the layout has been frozen into a layer.
func (l *Layout) Closed() bool { return l.closed }

// Extent returns the layout's logical canvas bounds.
func (l *Layout) Extent() (xlim, ylim [2]float64) {
	return l.cfg.xlim, l.cfg.ylim
}

// Surface maps a point from the layout's logical canvas coordinates into
// the shared surface square [-1,1]^2. Layers with different extents compose
// on one physical output through this mapping: a [-2,2] extent renders at
// half the apparent radius of a [-1,1] extent.
func (l *Layout) Surface(p Point) Point {
	return l.surface.TransformPoint(p)
}

// StartAngle returns the configured zero-angle reference of the layout.
func (l *Layout) StartAngle() float64 { return l.cfg.startAngle }

// LayoutDirection returns the configured direction of the layout.
func (l *Layout) LayoutDirection() Direction { return l.cfg.direction }
