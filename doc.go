// Package annulus provides a circular layout and coordinate engine for Go.
//
// # Overview
//
// annulus computes and maintains the coordinate system underlying circular
// and chord visualizations: it maps data domains onto angular sectors,
// stacks concentric tracks into addressable cells, projects data
// bidirectionally between cell space and canvas space, and composites
// multiple independent layouts onto one drawing surface. It is a pure
// geometry layer; drawing happens through the narrow Backend interface.
//
// # Quick Start
//
//	import "github.com/gogpu/annulus"
//
//	canvas := annulus.NewCanvas()
//	layout, _ := canvas.BeginLayout(annulus.WithStartAngle(90), annulus.WithGap(2))
//	layout.AddSectors(
//	    annulus.SectorDef{Name: "a", XMin: 0, XMax: 3},
//	    annulus.SectorDef{Name: "b", XMin: 0, XMax: 1},
//	)
//	track, _ := layout.AddTrack(annulus.TrackConfig{Height: 0.2})
//	cell, _ := layout.Cell("a", track.Index())
//	p := cell.ToCanvas(1.5, 0.5) // data -> canvas coordinates
//
// # Layout Model
//
// A Canvas owns layout sessions. A session collects sectors, whose angular
// widths are allocated proportionally to their data ranges (or set
// manually), separated by configurable gaps; widths plus gaps always close
// the circle exactly once. Tracks are stacked outward to inward, each
// taking a radial band; the intersection of a sector and a track is a Cell,
// the atomic drawing region.
//
// Zoomed views duplicate a sub-range of a sector under a new name and
// group tag (ZoomSector); groups are width-normalized independently, so the
// zoomed copy renders through the exact same cell and track machinery as
// the original.
//
// Closing a session freezes it into a read-only layer that keeps answering
// coordinate queries. New sessions may composite on top with different
// canvas extents, and Link builds connector geometry across layers.
//
// # Coordinate Spaces
//
// Three spaces are involved: data space (per cell), the layout's logical
// canvas space (polar projection around the origin, drawing radius 1), and
// the shared surface square [-1,1]^2 that all layers map their extents
// into. Backends consume surface coordinates only.
//
// # Backends
//
// The engine draws through the Backend interface. backend/raster renders
// onto an image via golang.org/x/image/vector; backend/svg writes an SVG
// document.
package annulus
