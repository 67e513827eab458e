package annulus

import "fmt"

// radiusTol absorbs floating error in radial band bookkeeping.
const radiusTol = 1e-9

// TrackConfig configures one concentric track.
type TrackConfig struct {
	// Height is the track's radial thickness as a fraction of the drawing
	// radius. Zero uses the layout default. In AddTracks, zero-height
	// entries instead split the remaining radius equally.
	Height float64

	// Margin is the radial gap left free inside the track, toward the
	// center, before the next track starts. Zero uses the layout default.
	Margin float64

	// YRange is the data-y range assigned to every cell in the track. The
	// zero value means [0, 1]. Individual cells may be reassigned later via
	// ActivateSector.
	YRange [2]float64

	// Padding overrides the layout's default cell padding when non-nil.
	Padding *Padding

	// Sectors selects which sectors start out visible in this track.
	// nil means all sectors; an empty non-nil slice creates a shell track
	// whose cells are filled in later via ActivateSector.
	Sectors []string

	// Background is the fill behind each visible cell. A zero (fully
	// transparent) value draws nothing.
	Background RGBA
}

// Track is an allocated annular band shared by all sectors of a layout.
type Track struct {
	layout *Layout
	index  int
	inner  float64
	outer  float64
	margin float64
	cells  []*Cell // aligned with the layout's sector order
}

// Index returns the track's position in the stack, 0 being the outermost.
func (t *Track) Index() int { return t.index }

// Band returns the track's radial band as fractions of the drawing radius.
func (t *Track) Band() (inner, outer float64) { return t.inner, t.outer }

// Height returns the track's radial thickness.
func (t *Track) Height() float64 { return t.outer - t.inner }

// resolveTrack validates a track config against the current radial cursor
// and resolves defaults. It does not mutate the layout.
func (l *Layout) resolveTrack(cfg TrackConfig) (height, margin float64, yr [2]float64, pad Padding, err error) {
	height = cfg.Height
	if height == 0 {
		height = l.cfg.trackHeight
	}
	if height < 0 || height > 1 {
		return 0, 0, yr, pad, fmt.Errorf("track height %v outside (0, 1]: %w", cfg.Height, ErrConfig)
	}
	margin = cfg.Margin
	if margin == 0 {
		margin = l.cfg.trackMargin
	}
	if margin < 0 {
		return 0, 0, yr, pad, fmt.Errorf("negative track margin %v: %w", cfg.Margin, ErrConfig)
	}

	yr = cfg.YRange
	if yr == [2]float64{} {
		yr = [2]float64{0, 1}
	}
	if yr[0] >= yr[1] {
		return 0, 0, yr, pad, fmt.Errorf("track y-range [%v, %v] is empty: %w", yr[0], yr[1], ErrConfig)
	}

	pad = l.cfg.padding
	if cfg.Padding != nil {
		pad = *cfg.Padding
	}
	if err := pad.validate(); err != nil {
		return 0, 0, yr, pad, err
	}

	if l.radialCursor-height < -radiusTol {
		return 0, 0, yr, pad, fmt.Errorf("track height %v exceeds the remaining radius %v: %w",
			height, l.radialCursor, ErrCapacity)
	}
	return height, margin, yr, pad, nil
}

// AddTrack allocates the next radial band, outward to inward, and creates
// one cell per sector. The call is atomic: on error the track stack is
// unchanged.
func (l *Layout) AddTrack(cfg TrackConfig) (*Track, error) {
	if err := l.mutable(); err != nil {
		return nil, err
	}
	if err := l.finalize(); err != nil {
		return nil, err
	}

	height, margin, yr, pad, err := l.resolveTrack(cfg)
	if err != nil {
		return nil, err
	}
	visible, err := l.visibleSet(cfg.Sectors)
	if err != nil {
		return nil, err
	}

	t := &Track{
		layout: l,
		index:  len(l.tracks),
		outer:  l.radialCursor,
		inner:  l.radialCursor - height,
		margin: margin,
	}
	t.cells = make([]*Cell, len(l.sectors))
	for i, s := range l.sectors {
		t.cells[i] = &Cell{
			sector:     s,
			track:      t,
			layout:     l,
			ymin:       yr[0],
			ymax:       yr[1],
			pad:        pad,
			visible:    visible[s.Name()],
			background: cfg.Background,
		}
	}
	l.tracks = append(l.tracks, t)
	l.radialCursor = t.inner - margin

	Logger().Debug("annulus: track allocated",
		"track", t.index, "inner", t.inner, "outer", t.outer, "margin", margin)
	return t, nil
}

// AddTracks allocates several tracks at once. Entries with zero Height split
// the radius remaining after the sized entries and all margins equally. The
// call is atomic: on error no track is added.
func (l *Layout) AddTracks(cfgs ...TrackConfig) ([]*Track, error) {
	if err := l.mutable(); err != nil {
		return nil, err
	}
	if err := l.finalize(); err != nil {
		return nil, err
	}
	if len(cfgs) == 0 {
		return nil, nil
	}

	// Resolve margins and count unsized entries without mutating anything.
	remaining := l.radialCursor
	unsized := 0
	for i, cfg := range cfgs {
		if cfg.Height < 0 || cfg.Height > 1 {
			return nil, fmt.Errorf("track %d height %v outside [0, 1]: %w", i, cfg.Height, ErrConfig)
		}
		if cfg.Height == 0 {
			unsized++
		} else {
			remaining -= cfg.Height
		}
		margin := cfg.Margin
		if margin == 0 {
			margin = l.cfg.trackMargin
		}
		remaining -= margin
	}
	fill := 0.0
	if unsized > 0 {
		fill = remaining / float64(unsized)
		if fill <= radiusTol {
			return nil, fmt.Errorf("no radius left for %d unsized tracks: %w", unsized, ErrCapacity)
		}
	} else if remaining < -radiusTol {
		return nil, fmt.Errorf("track heights and margins exceed the drawing radius: %w", ErrCapacity)
	}

	// Dry-run every config against a copy of the cursor so a late failure
	// cannot leave earlier tracks committed.
	resolved := make([]TrackConfig, len(cfgs))
	savedCursor := l.radialCursor
	savedTracks := len(l.tracks)
	for i, cfg := range cfgs {
		if cfg.Height == 0 {
			cfg.Height = fill
		}
		resolved[i] = cfg
	}
	tracks := make([]*Track, 0, len(cfgs))
	for _, cfg := range resolved {
		t, err := l.AddTrack(cfg)
		if err != nil {
			l.tracks = l.tracks[:savedTracks]
			l.radialCursor = savedCursor
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// visibleSet resolves a TrackConfig.Sectors selector into a visibility set,
// validating every name. nil selects all sectors.
func (l *Layout) visibleSet(names []string) (map[string]bool, error) {
	visible := make(map[string]bool, len(l.sectors))
	if names == nil {
		for _, s := range l.sectors {
			visible[s.Name()] = true
		}
		return visible, nil
	}
	for _, name := range names {
		if _, ok := l.names[name]; !ok {
			return nil, fmt.Errorf("sector %q: %w", name, ErrLookup)
		}
		visible[name] = true
	}
	return visible, nil
}
