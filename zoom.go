package annulus

import "fmt"

// ZoomSector derives a zoomed duplicate of a source sector definition
// covering the sub-range [xmin, xmax]. The duplicate carries a new name and
// a new group tag, so it is allocated alongside the original without
// colliding with it, and its width is normalized within its own group.
//
// The zoomed definition's data range is exactly the requested subset. Every
// data point inside the subset therefore keeps the same relative position
// within the zoomed sector as it has within the subset of the source, which
// is what keeps zoomed rendering proportional without a special drawing
// path: populate both sectors with the same records and draw them the same
// way.
func ZoomSector(src SectorDef, name, group string, xmin, xmax float64) (SectorDef, error) {
	if name == "" || name == src.Name {
		return SectorDef{}, fmt.Errorf("zoom of sector %q needs a distinct name: %w", src.Name, ErrConfig)
	}
	if group == src.Group {
		return SectorDef{}, fmt.Errorf("zoom of sector %q needs a distinct group (got %q): %w",
			src.Name, group, ErrConfig)
	}
	if xmin >= xmax {
		return SectorDef{}, fmt.Errorf("zoom of sector %q has empty range [%v, %v]: %w",
			src.Name, xmin, xmax, ErrConfig)
	}
	if xmin < src.XMin || xmax > src.XMax {
		return SectorDef{}, fmt.Errorf("zoom range [%v, %v] outside sector %q range [%v, %v]: %w",
			xmin, xmax, src.Name, src.XMin, src.XMax, ErrConfig)
	}
	return SectorDef{
		Name:  name,
		XMin:  xmin,
		XMax:  xmax,
		Group: group,
	}, nil
}

// ZoomSectors duplicates whole sector definitions under a new group tag,
// renaming each through rename. It is a convenience for zooming a set of
// complete sectors rather than a sub-range of one.
func ZoomSectors(group string, srcs []SectorDef, rename func(string) string) ([]SectorDef, error) {
	out := make([]SectorDef, 0, len(srcs))
	for _, src := range srcs {
		z, err := ZoomSector(src, rename(src.Name), group, src.XMin, src.XMax)
		if err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, nil
}
