package annulus

// Style carries the resolved drawing attributes handed to a Backend.
// Colors with zero alpha mean "skip that part": a polygon with a
// transparent Fill is outlined only, one with a transparent Stroke is
// filled only.
type Style struct {
	Stroke RGBA
	Fill   RGBA

	// LineWidth is the stroke width in surface units (the surface square
	// spans 2 units across).
	LineWidth float64

	// PointSize is the point radius in surface units.
	PointSize float64

	// FontSize is the text height in surface units. Backends with
	// fixed-size faces may ignore it.
	FontSize float64
}

// Backend is the primitive drawing surface the engine renders onto. All
// coordinates are resolved surface coordinates in [-1,1]^2 (values outside
// the square are legal and clipped by the backend); the engine never passes
// unresolved data coordinates to a backend.
//
// Implementations: backend/raster renders onto an image, backend/svg writes
// an SVG document.
type Backend interface {
	// DrawPoint draws a filled dot at p.
	DrawPoint(p Point, style Style)

	// DrawLine strokes an open polyline through pts.
	DrawLine(pts []Point, style Style)

	// DrawPolygon fills and/or outlines the closed polygon through pts.
	DrawPolygon(pts []Point, style Style)

	// DrawPath fills and/or strokes a vector path (link ribbons, cell
	// wedges).
	DrawPath(path *Path, style Style)

	// DrawText draws text anchored at p, rotated rotationDeg degrees
	// counterclockwise about p.
	DrawText(p Point, text string, rotationDeg float64, style Style)
}
