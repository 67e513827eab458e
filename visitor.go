package annulus

// CellVisitor is invoked once per visible cell when iterating a track.
// Chart-building code implements it to stay polymorphic over drawing
// strategy: the engine resolves the cell, the visitor decides what to draw
// in it.
type CellVisitor interface {
	VisitCell(c *Cell) error
}

// CellVisitorFunc adapts a plain function to the CellVisitor interface.
type CellVisitorFunc func(*Cell) error

// VisitCell implements CellVisitor.
func (f CellVisitorFunc) VisitCell(c *Cell) error { return f(c) }

// EachCell invokes v once per visible cell of the track at the given index,
// in sector order. Iteration works on closed layouts too; the first visitor
// error aborts the walk.
func (l *Layout) EachCell(track int, v CellVisitor) error {
	t, err := l.Track(track)
	if err != nil {
		return err
	}
	for _, cell := range t.cells {
		if !cell.visible {
			continue
		}
		if err := v.VisitCell(cell); err != nil {
			return err
		}
	}
	return nil
}
