// Package svg provides an SVG writer backend for annulus. Unlike the
// raster backend it preserves full vector and text-rotation fidelity, so it
// is the backend of choice for labeled charts.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/annulus"
)

// Backend writes annulus primitives as an SVG document. Primitives are
// buffered; Flush emits the complete document to the writer.
type Backend struct {
	w    io.Writer
	size int
	body bytes.Buffer
}

var _ annulus.Backend = (*Backend)(nil)

// New creates an SVG backend with a size x size pixel viewport, emitting to w.
func New(w io.Writer, size int) *Backend {
	return &Backend{w: w, size: size}
}

// Flush writes the buffered document to the underlying writer.
func (b *Backend) Flush() error {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		b.size, b.size, b.size, b.size)
	doc.Write(b.body.Bytes())
	doc.WriteString("</svg>\n")
	if _, err := b.w.Write(doc.Bytes()); err != nil {
		return fmt.Errorf("svg: write: %w", err)
	}
	return nil
}

// device maps a surface point to pixel coordinates, flipping y.
func (b *Backend) device(p annulus.Point) (float64, float64) {
	s := float64(b.size) / 2
	return (p.X + 1) * s, (1 - p.Y) * s
}

// devScale converts a length in surface units to pixels.
func (b *Backend) devScale(v float64) float64 {
	return v * float64(b.size) / 2
}

// paintAttrs renders fill and stroke attributes for a style.
func (b *Backend) paintAttrs(style annulus.Style) string {
	var sb strings.Builder
	writeColor(&sb, "fill", style.Fill)
	writeColor(&sb, "stroke", style.Stroke)
	if style.Stroke.A > 0 {
		w := b.devScale(style.LineWidth)
		if w <= 0 {
			w = 1
		}
		fmt.Fprintf(&sb, " stroke-width=\"%.2f\"", w)
	}
	return sb.String()
}

func writeColor(sb *strings.Builder, attr string, c annulus.RGBA) {
	if c.A == 0 {
		fmt.Fprintf(sb, " %s=\"none\"", attr)
		return
	}
	fmt.Fprintf(sb, " %s=\"#%02x%02x%02x\"", attr,
		uint8(clamp01(c.R)*255), uint8(clamp01(c.G)*255), uint8(clamp01(c.B)*255))
	if c.A < 1 {
		fmt.Fprintf(sb, " %s-opacity=\"%.3f\"", attr, c.A)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DrawPoint draws a filled dot.
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
	x, y := b.device(p)
	var sb strings.Builder
	writeColor(&sb, "fill", col)
	fmt.Fprintf(&b.body, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\"%s/>\n", x, y, r, sb.String())
}

// DrawLine strokes an open polyline.
func (b *Backend) DrawLine(pts []annulus.Point, style annulus.Style) {
	if len(pts) < 2 || style.Stroke.A == 0 {
		return
	}
	noFill := style
	noFill.Fill = annulus.RGBA{}
	fmt.Fprintf(&b.body, "<polyline points=\"%s\"%s/>\n", b.pointList(pts), b.paintAttrs(noFill))
}

// DrawPolygon fills and/or outlines a closed polygon.
func (b *Backend) DrawPolygon(pts []annulus.Point, style annulus.Style) {
	if len(pts) < 3 {
		return
	}
	fmt.Fprintf(&b.body, "<polygon points=\"%s\"%s/>\n", b.pointList(pts), b.paintAttrs(style))
}

func (b *Backend) pointList(pts []annulus.Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		x, y := b.device(p)
		fmt.Fprintf(&sb, "%.2f,%.2f", x, y)
	}
	return sb.String()
}

// DrawPath fills and/or strokes a vector path.
func (b *Backend) DrawPath(path *annulus.Path, style annulus.Style) {
	var d strings.Builder
	for _, e := range path.Elements() {
		switch e := e.(type) {
		case annulus.MoveTo:
			x, y := b.device(e.Point)
			fmt.Fprintf(&d, "M%.2f %.2f ", x, y)
		case annulus.LineTo:
			x, y := b.device(e.Point)
			fmt.Fprintf(&d, "L%.2f %.2f ", x, y)
		case annulus.QuadTo:
			cx, cy := b.device(e.Control)
			x, y := b.device(e.Point)
			fmt.Fprintf(&d, "Q%.2f %.2f %.2f %.2f ", cx, cy, x, y)
		case annulus.CubicTo:
			c1x, c1y := b.device(e.Control1)
			c2x, c2y := b.device(e.Control2)
			x, y := b.device(e.Point)
			fmt.Fprintf(&d, "C%.2f %.2f %.2f %.2f %.2f %.2f ", c1x, c1y, c2x, c2y, x, y)
		case annulus.Close:
			d.WriteString("Z ")
		}
	}
	fmt.Fprintf(&b.body, "<path d=\"%s\"%s/>\n", strings.TrimSpace(d.String()), b.paintAttrs(style))
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// DrawText draws text centered at p. The counterclockwise surface rotation
// becomes a clockwise screen rotation because the device y axis points
// down, hence the sign flip on the SVG rotate.
func (b *Backend) DrawText(p annulus.Point, text string, rotationDeg float64, style annulus.Style) {
	col := style.Stroke
	if col.A == 0 {
		col = style.Fill
	}
	if col.A == 0 || text == "" {
		return
	}
	x, y := b.device(p)
	size := b.devScale(style.FontSize)
	if size <= 0 {
		size = 12
	}
	var sb strings.Builder
	writeColor(&sb, "fill", col)
	fmt.Fprintf(&b.body,
		"<text x=\"%.2f\" y=\"%.2f\" font-size=\"%.1f\" text-anchor=\"middle\" transform=\"rotate(%.2f %.2f %.2f)\"%s>%s</text>\n",
		x, y, size, -rotationDeg, x, y, sb.String(), textEscaper.Replace(text))
}
