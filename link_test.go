package annulus

import (
	"errors"
	"math"
	"testing"
)

// linkFixture returns two cells of one track in a two-sector layout.
func linkFixture(t *testing.T) (*Cell, *Cell) {
	t.Helper()
	l := twoSectorLayout(t)
	tr, err := l.AddTrack(TrackConfig{Height: 0.3, YRange: [2]float64{0, 1}})
	if err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	a, err := l.Cell("a", tr.Index())
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	b, err := l.Cell("b", tr.Index())
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	return a, b
}

func TestLinkValidation(t *testing.T) {
	a, _ := linkFixture(t)
	if _, err := Link(LinkEnd{}, LinkEnd{Cell: a}); !errors.Is(err, ErrConfig) {
		t.Errorf("nil cell error = %v, want ErrConfig", err)
	}
	if _, err := Link(LinkEnd{Cell: a}, LinkEnd{Cell: a, Radius: -0.5}); !errors.Is(err, ErrConfig) {
		t.Errorf("negative radius error = %v, want ErrConfig", err)
	}
}

func TestPointLinkShape(t *testing.T) {
	a, b := linkFixture(t)
	ea := LinkEnd{Cell: a, X0: 0.5, X1: 0.5}
	eb := LinkEnd{Cell: b, X0: 0.5, X1: 0.5}
	p, err := Link(ea, eb)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}

	els := p.Elements()
	if len(els) != 2 {
		t.Fatalf("got %d elements, want MoveTo + CubicTo", len(els))
	}
	mv, ok := els[0].(MoveTo)
	if !ok {
		t.Fatalf("first element = %T, want MoveTo", els[0])
	}
	cb, ok := els[1].(CubicTo)
	if !ok {
		t.Fatalf("second element = %T, want CubicTo", els[1])
	}

	if want := ea.surfacePoint(0.5); mv.Point.Distance(want) > 1e-12 {
		t.Errorf("start = %v, want %v", mv.Point, want)
	}
	if want := eb.surfacePoint(0.5); cb.Point.Distance(want) > 1e-12 {
		t.Errorf("end = %v, want %v", cb.Point, want)
	}

	// Controls are pulled strictly toward the center, so the chord bows
	// inward: both control radii are below the anchor radius.
	anchor := mv.Point.Length()
	for _, c := range []Point{cb.Control1, cb.Control2} {
		if c.Length() >= anchor {
			t.Errorf("control %v not pulled inside anchor radius %v", c, anchor)
		}
	}
}

// Point links anchor at the inner edge of the track band unless Radius
// overrides it.
func TestLinkAnchorRadius(t *testing.T) {
	a, b := linkFixture(t)
	inner, _ := a.Track().Band()

	p, err := Link(LinkEnd{Cell: a, X0: 0.5, X1: 0.5}, LinkEnd{Cell: b, X0: 0.5, X1: 0.5})
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	start := p.Elements()[0].(MoveTo).Point
	if math.Abs(start.Length()-inner) > 1e-12 {
		t.Errorf("anchor radius = %v, want track inner %v", start.Length(), inner)
	}

	p, err = Link(LinkEnd{Cell: a, X0: 0.5, X1: 0.5, Radius: 0.95}, LinkEnd{Cell: b, X0: 0.5, X1: 0.5})
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	start = p.Elements()[0].(MoveTo).Point
	if math.Abs(start.Length()-0.95) > 1e-12 {
		t.Errorf("overridden anchor radius = %v, want 0.95", start.Length())
	}
}

func TestRibbonLinkShape(t *testing.T) {
	a, b := linkFixture(t)
	ea := LinkEnd{Cell: a, X0: 0.2, X1: 0.8}
	eb := LinkEnd{Cell: b, X0: 0.1, X1: 0.9}
	p, err := Link(ea, eb)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}

	els := p.Elements()
	if _, ok := els[0].(MoveTo); !ok {
		t.Fatalf("first element = %T, want MoveTo", els[0])
	}
	if _, ok := els[len(els)-1].(Close); !ok {
		t.Fatalf("last element = %T, want Close", els[len(els)-1])
	}
	for _, e := range els[1 : len(els)-1] {
		if _, ok := e.(CubicTo); !ok {
			t.Fatalf("interior element = %T, want CubicTo", e)
		}
	}

	start := els[0].(MoveTo).Point
	if want := ea.surfacePoint(0.2); start.Distance(want) > 1e-12 {
		t.Errorf("ribbon start = %v, want %v", start, want)
	}
	// The outline returns to its start before closing.
	last := els[len(els)-2].(CubicTo)
	if last.Point.Distance(start) > 1e-12 {
		t.Errorf("ribbon outline ends at %v, start was %v", last.Point, start)
	}
}

// A span on one end is enough to make the link a closed ribbon.
func TestMixedLinkIsRibbon(t *testing.T) {
	a, b := linkFixture(t)
	p, err := Link(
		LinkEnd{Cell: a, X0: 0.2, X1: 0.8},
		LinkEnd{Cell: b, X0: 0.5, X1: 0.5},
	)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	els := p.Elements()
	if _, ok := els[len(els)-1].(Close); !ok {
		t.Errorf("last element = %T, want Close", els[len(els)-1])
	}
}

// An endpoint on a layer with a wider extent resolves at a proportionally
// smaller surface radius, so cross-layer links land where the layer renders.
func TestCrossLayerLinkScaling(t *testing.T) {
	canvas := NewCanvas()
	outer, err := canvas.BeginLayout()
	if err != nil {
		t.Fatalf("BeginLayout: %v", err)
	}
	if err := outer.AddSector(SectorDef{Name: "a", XMin: 0, XMax: 1}); err != nil {
		t.Fatalf("AddSector: %v", err)
	}
	ot, err := outer.AddTrack(TrackConfig{Height: 0.3})
	if err != nil {
		t.Fatalf("AddTrack: %v", err)
	}

	inner, err := canvas.BeginLayout(WithComposite(), WithCanvasExtent([2]float64{-2, 2}, [2]float64{-2, 2}))
	if err != nil {
		t.Fatalf("BeginLayout: %v", err)
	}
	if err := inner.AddSector(SectorDef{Name: "z", XMin: 0, XMax: 1}); err != nil {
		t.Fatalf("AddSector: %v", err)
	}
	it, err := inner.AddTrack(TrackConfig{Height: 0.3})
	if err != nil {
		t.Fatalf("AddTrack: %v", err)
	}

	oc, err := outer.Cell("a", ot.Index())
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	ic, err := inner.Cell("z", it.Index())
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}

	p, err := Link(
		LinkEnd{Cell: ic, X0: 0.5, X1: 0.5, Radius: 1.0},
		LinkEnd{Cell: oc, X0: 0.5, X1: 0.5, Radius: 1.0},
	)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}

	start := p.Elements()[0].(MoveTo).Point
	end := p.Elements()[1].(CubicTo).Point
	// Logical radius 1.0 is surface radius 0.5 on the [-2,2] layer and 1.0
	// on the [-1,1] layer.
	if math.Abs(start.Length()-0.5) > 1e-12 {
		t.Errorf("inner-layer anchor at surface radius %v, want 0.5", start.Length())
	}
	if math.Abs(end.Length()-1.0) > 1e-12 {
		t.Errorf("outer-layer anchor at surface radius %v, want 1.0", end.Length())
	}
}
