// Package raster provides a software rasterizing backend for annulus,
// rendering primitives onto an in-memory RGBA image via
// golang.org/x/image/vector.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/annulus"
)

// curveSteps is the flattening resolution used when stroking curved paths.
const curveSteps = 16

// Backend rasterizes annulus primitives onto a square RGBA image. The
// surface square [-1,1]^2 maps to the full image, y pointing up.
type Backend struct {
	img  *image.RGBA
	size int
}

var _ annulus.Backend = (*Backend)(nil)

// New creates a raster backend with a size x size pixel surface. The image
// starts fully transparent; use Clear to fill a background.
func New(size int) *Backend {
	return &Backend{
		img:  image.NewRGBA(image.Rect(0, 0, size, size)),
		size: size,
	}
}

// Image returns the underlying image.
func (b *Backend) Image() *image.RGBA { return b.img }

// Clear fills the entire surface with a color.
func (b *Backend) Clear(col annulus.RGBA) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// SavePNG saves the surface to a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, b.img); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return nil
}

// device maps a surface point to pixel coordinates, flipping y.
func (b *Backend) device(p annulus.Point) (float32, float32) {
	s := float64(b.size) / 2
	return float32((p.X + 1) * s), float32((1 - p.Y) * s)
}

// devScale converts a length in surface units to pixels.
func (b *Backend) devScale(v float64) float64 {
	return v * float64(b.size) / 2
}

// DrawPoint draws a filled dot. The style's Fill color wins; a transparent
// Fill falls back to Stroke.
func (b *Backend) DrawPoint(p annulus.Point, style annulus.Style) {
	col := style.Fill
	if col.A == 0 {
		col = style.Stroke
	}
	if col.A == 0 {
		return
	}
	r := b.devScale(style.PointSize)
	if r <= 0 {
		r = 2
	}
	cx, cy := b.device(p)
	b.fillCircle(float64(cx), float64(cy), r, col)
}

// fillCircle rasterizes a circle from four cubic segments.
// 0.5523 is the standard control magic number for a quarter circle.
func (b *Backend) fillCircle(cx, cy, r float64, col annulus.RGBA) {
	const k = 0.55228475
	z := vector.NewRasterizer(b.size, b.size)
	z.MoveTo(float32(cx+r), float32(cy))
	z.CubeTo(float32(cx+r), float32(cy+k*r), float32(cx+k*r), float32(cy+r), float32(cx), float32(cy+r))
	z.CubeTo(float32(cx-k*r), float32(cy+r), float32(cx-r), float32(cy+k*r), float32(cx-r), float32(cy))
	z.CubeTo(float32(cx-r), float32(cy-k*r), float32(cx-k*r), float32(cy-r), float32(cx), float32(cy-r))
	z.CubeTo(float32(cx+k*r), float32(cy-r), float32(cx+r), float32(cy-k*r), float32(cx+r), float32(cy))
	z.ClosePath()
	z.Draw(b.img, b.img.Bounds(), image.NewUniform(col.Color()), image.Point{})
}

// DrawLine strokes an open polyline.
func (b *Backend) DrawLine(pts []annulus.Point, style annulus.Style) {
	if len(pts) < 2 || style.Stroke.A == 0 {
		return
	}
	b.strokePolyline(pts, style)
}

// strokePolyline fills one thin quad per segment. Joins are butt joins;
// at typical line widths the difference is below a pixel.
func (b *Backend) strokePolyline(pts []annulus.Point, style annulus.Style) {
	w := b.devScale(style.LineWidth)
	if w <= 0 {
		w = 1
	}
	half := w / 2
	z := vector.NewRasterizer(b.size, b.size)
	for i := 1; i < len(pts); i++ {
		x0, y0 := b.device(pts[i-1])
		x1, y1 := b.device(pts[i])
		dx := float64(x1 - x0)
		dy := float64(y1 - y0)
		length := math.Sqrt(dx*dx + dy*dy)
		if length == 0 {
			continue
		}
		inv := half / length
		nx := float32(-dy * inv)
		ny := float32(dx * inv)
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
		z.ClosePath()
	}
	z.Draw(b.img, b.img.Bounds(), image.NewUniform(style.Stroke.Color()), image.Point{})
}

// DrawPolygon fills and/or outlines a closed polygon.
func (b *Backend) DrawPolygon(pts []annulus.Point, style annulus.Style) {
	if len(pts) < 3 {
		return
	}
	if style.Fill.A > 0 {
		z := vector.NewRasterizer(b.size, b.size)
		x, y := b.device(pts[0])
		z.MoveTo(x, y)
		for _, p := range pts[1:] {
			x, y = b.device(p)
			z.LineTo(x, y)
		}
		z.ClosePath()
		z.Draw(b.img, b.img.Bounds(), image.NewUniform(style.Fill.Color()), image.Point{})
	}
	if style.Stroke.A > 0 {
		closed := append(append([]annulus.Point(nil), pts...), pts[0])
		b.strokePolyline(closed, style)
	}
}

// DrawPath fills and/or strokes a vector path.
func (b *Backend) DrawPath(path *annulus.Path, style annulus.Style) {
	if style.Fill.A > 0 {
		b.fillPath(path, style.Fill)
	}
	if style.Stroke.A > 0 {
		for _, poly := range flatten(path) {
			b.strokePolyline(poly, style)
		}
	}
}

func (b *Backend) fillPath(path *annulus.Path, col annulus.RGBA) {
	z := vector.NewRasterizer(b.size, b.size)
	penDown := false
	for _, e := range path.Elements() {
		switch e := e.(type) {
		case annulus.MoveTo:
			x, y := b.device(e.Point)
			z.MoveTo(x, y)
			penDown = true
		case annulus.LineTo:
			x, y := b.device(e.Point)
			z.LineTo(x, y)
		case annulus.QuadTo:
			cx, cy := b.device(e.Control)
			x, y := b.device(e.Point)
			z.QuadTo(cx, cy, x, y)
		case annulus.CubicTo:
			c1x, c1y := b.device(e.Control1)
			c2x, c2y := b.device(e.Control2)
			x, y := b.device(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case annulus.Close:
			z.ClosePath()
			penDown = false
		}
	}
	if penDown {
		z.ClosePath()
	}
	z.Draw(b.img, b.img.Bounds(), image.NewUniform(col.Color()), image.Point{})
}

// flatten converts a path into polylines in surface coordinates, one per
// subpath, sampling curves at a fixed resolution.
func flatten(path *annulus.Path) [][]annulus.Point {
	var out [][]annulus.Point
	var cur []annulus.Point
	var start annulus.Point
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	last := func() annulus.Point {
		if len(cur) == 0 {
			return annulus.Point{}
		}
		return cur[len(cur)-1]
	}
	for _, e := range path.Elements() {
		switch e := e.(type) {
		case annulus.MoveTo:
			flush()
			start = e.Point
			cur = []annulus.Point{e.Point}
		case annulus.LineTo:
			cur = append(cur, e.Point)
		case annulus.QuadTo:
			p0 := last()
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				a := p0.Lerp(e.Control, t)
				b := e.Control.Lerp(e.Point, t)
				cur = append(cur, a.Lerp(b, t))
			}
		case annulus.CubicTo:
			p0 := last()
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				a := p0.Lerp(e.Control1, t)
				b := e.Control1.Lerp(e.Control2, t)
				c := e.Control2.Lerp(e.Point, t)
				ab := a.Lerp(b, t)
				bc := b.Lerp(c, t)
				cur = append(cur, ab.Lerp(bc, t))
			}
		case annulus.Close:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			flush()
		}
	}
	flush()
	return out
}

// DrawText draws text horizontally centered at p using a fixed bitmap face.
// The rotation is ignored: the 7x13 bitmap face cannot be rotated, which is
// an accepted fidelity limit of this backend; use backend/svg for rotated
// labels.
func (b *Backend) DrawText(p annulus.Point, text string, rotationDeg float64, style annulus.Style) {
	col := style.Stroke
	if col.A == 0 {
		col = style.Fill
	}
	if col.A == 0 || text == "" {
		return
	}
	x, y := b.device(p)
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(col.Color()),
		Face: basicfont.Face7x13,
	}
	adv := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*64) - adv/2,
		Y: fixed.Int26_6(y * 64),
	}
	d.DrawString(text)
}
