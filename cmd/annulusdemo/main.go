// Command annulusdemo renders a small circular chart demonstrating the
// annulus layout engine: proportional sectors with a zoomed region, stacked
// tracks, ribbon links, and a composited inner layout.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/annulus"
	"github.com/gogpu/annulus/backend/raster"
	"github.com/gogpu/annulus/backend/svg"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		outPNG  string
		outSVG  string
		size    int
		verbose bool
	)

	root := &cobra.Command{
		Use:          "annulusdemo",
		Short:        "Render a demo circular chart with the annulus engine",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
			})
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
			annulus.SetLogger(slog.New(logger))
			return render(outPNG, outSVG, size)
		},
	}
	root.Flags().StringVar(&outPNG, "png", "demo.png", "output PNG path (empty to skip)")
	root.Flags().StringVar(&outSVG, "svg", "demo.svg", "output SVG path (empty to skip)")
	root.Flags().IntVar(&size, "size", 800, "output size in pixels")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return root.Execute()
}

func render(outPNG, outSVG string, size int) error {
	var backends []annulus.Backend

	var rb *raster.Backend
	if outPNG != "" {
		rb = raster.New(size)
		rb.Clear(annulus.RGB(1, 1, 1))
		backends = append(backends, rb)
	}

	var sb *svg.Backend
	var svgFile *os.File
	if outSVG != "" {
		f, err := os.Create(outSVG)
		if err != nil {
			return err
		}
		svgFile = f
		defer svgFile.Close()
		sb = svg.New(f, size)
		backends = append(backends, sb)
	}

	for _, b := range backends {
		if err := draw(b); err != nil {
			return err
		}
	}

	if rb != nil {
		if err := rb.SavePNG(outPNG); err != nil {
			return err
		}
	}
	if sb != nil {
		if err := sb.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// draw builds the demo chart onto one backend: an outer layout with three
// data sectors and a zoomed copy of part of the first one, plus an inner
// composited layout linked across layers.
func draw(b annulus.Backend) error {
	canvas := annulus.NewCanvas()
	paint := annulus.NewPainter(b)

	outer, err := canvas.BeginLayout(
		annulus.WithStartAngle(90),
		annulus.WithGap(2),
		annulus.WithGroupShares(map[string]float64{"": 0.75, "zoom": 0.25}),
		annulus.WithCellPadding(annulus.Padding{Left: 0.01, Right: 0.01, Bottom: 0.05, Top: 0.05}),
	)
	if err != nil {
		return err
	}

	sectors := []annulus.SectorDef{
		{Name: "alpha", XMin: 0, XMax: 10},
		{Name: "beta", XMin: 0, XMax: 6},
		{Name: "gamma", XMin: 0, XMax: 4},
	}
	zoomed, err := annulus.ZoomSector(sectors[0], "alpha-zoom", "zoom", 0, 2)
	if err != nil {
		return err
	}
	if err := outer.AddSectors(append(sectors, zoomed)...); err != nil {
		return err
	}

	labels, err := outer.AddTrack(annulus.TrackConfig{
		Height:     0.12,
		Background: annulus.Hex("#e8e8f0"),
	})
	if err != nil {
		return err
	}
	lines, err := outer.AddTrack(annulus.TrackConfig{
		Height:     0.2,
		Background: annulus.Hex("#f4f4f4"),
	})
	if err != nil {
		return err
	}

	labelStyle := annulus.Style{Stroke: annulus.RGB(0.1, 0.1, 0.2), FontSize: 0.05}
	err = outer.EachCell(labels.Index(), annulus.CellVisitorFunc(func(c *annulus.Cell) error {
		paint.CellBackground(c)
		xmin, xmax, _, _ := c.Bounds()
		paint.Text(c, (xmin+xmax)/2, 0.5, c.Sector().Name(), annulus.FacingTangent, labelStyle)
		return nil
	}))
	if err != nil {
		return err
	}

	lineStyle := annulus.Style{Stroke: annulus.Hex("#3366cc"), LineWidth: 0.004}
	err = outer.EachCell(lines.Index(), annulus.CellVisitorFunc(func(c *annulus.Cell) error {
		paint.CellBackground(c)
		xmin, xmax, _, _ := c.Bounds()
		const n = 64
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := range xs {
			t := float64(i) / (n - 1)
			xs[i] = xmin + t*(xmax-xmin)
			ys[i] = 0.5 + 0.45*math.Sin(xs[i]*2)
		}
		return paint.Line(c, xs, ys, lineStyle)
	}))
	if err != nil {
		return err
	}

	// Ribbon between alpha's zoom source range and its zoomed copy.
	alphaCell, err := outer.Cell("alpha", lines.Index())
	if err != nil {
		return err
	}
	zoomCell, err := outer.Cell("alpha-zoom", lines.Index())
	if err != nil {
		return err
	}
	ribbon, err := annulus.Link(
		annulus.LinkEnd{Cell: alphaCell, X0: 0, X1: 2},
		annulus.LinkEnd{Cell: zoomCell, X0: 0, X1: 2},
	)
	if err != nil {
		return err
	}
	paint.Link(ribbon, annulus.Style{Fill: annulus.RGBA2(0.8, 0.3, 0.3, 0.35)})

	// Composite an inner layout at a wider extent (smaller apparent radius).
	inner, err := canvas.BeginLayout(
		annulus.WithComposite(),
		annulus.WithCanvasExtent([2]float64{-2.8, 2.8}, [2]float64{-2.8, 2.8}),
		annulus.WithStartAngle(90),
		annulus.WithGap(4),
	)
	if err != nil {
		return err
	}
	if err := inner.AddSectors(
		annulus.SectorDef{Name: "inner-a", XMin: 0, XMax: 1},
		annulus.SectorDef{Name: "inner-b", XMin: 0, XMax: 1},
	); err != nil {
		return err
	}
	innerTrack, err := inner.AddTrack(annulus.TrackConfig{
		Height:     0.3,
		Background: annulus.Hex("#ddeedd"),
	})
	if err != nil {
		return err
	}
	err = inner.EachCell(innerTrack.Index(), annulus.CellVisitorFunc(func(c *annulus.Cell) error {
		paint.CellBackground(c)
		return nil
	}))
	if err != nil {
		return err
	}

	// Cross-layer link from the inner ring out to a sector of the first layer.
	innerCell, err := inner.Cell("inner-a", innerTrack.Index())
	if err != nil {
		return err
	}
	betaCell, err := outer.Cell("beta", lines.Index())
	if err != nil {
		return err
	}
	cross, err := annulus.Link(
		annulus.LinkEnd{Cell: innerCell, X0: 0.5, X1: 0.5, Radius: 1.0},
		annulus.LinkEnd{Cell: betaCell, X0: 3, X1: 3},
	)
	if err != nil {
		return err
	}
	paint.Link(cross, annulus.Style{Stroke: annulus.Hex("#558855"), LineWidth: 0.004})

	return canvas.Close()
}
