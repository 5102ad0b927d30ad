package shapes

import (
	"reflect"
	"testing"

	"github.com/okiso/isoscene/geom"
)

func TestPrimitiveLinesCloseLoop(t *testing.T) {
	p := NewPrimitive(pts(0, 0, 1, 0, 1, 1))
	want := []Line{
		{A: geom.Pt(0, 0), B: geom.Pt(1, 0)},
		{A: geom.Pt(1, 0), B: geom.Pt(1, 1)},
		{A: geom.Pt(1, 1), B: geom.Pt(0, 0)},
	}
	if got := p.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestComponentLinesStayPerLoop(t *testing.T) {
	c := NewComponent(geom.V3(0, 0, 1), []*Primitive{
		NewPrimitive(pts(0, 0, 1, 0, 1, 1)),
		NewPrimitive(pts(5, 5, 6, 5, 6, 6)),
	})
	lines := c.Lines()
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	// Each loop closes on itself; no edge crosses between loops.
	if lines[2] != (Line{A: geom.Pt(1, 1), B: geom.Pt(0, 0)}) {
		t.Errorf("first loop closing edge: %v", lines[2])
	}
	if lines[3] != (Line{A: geom.Pt(5, 5), B: geom.Pt(6, 5)}) {
		t.Errorf("second loop opening edge: %v", lines[3])
	}
}

func TestShapeVertices(t *testing.T) {
	s := NewShape([]*Component{
		NewComponent(geom.V3(1, 0, 0), []*Primitive{NewPrimitive(pts(0, 0, 1, 0, 1, 1))}),
		NewComponent(geom.V3(0, 1, 0), []*Primitive{NewPrimitive(pts(2, 2, 3, 2, 3, 3))}),
	})
	if got := len(s.Vertices()); got != 6 {
		t.Errorf("got %d vertices, want 6", got)
	}
	if got := len(s.Lines()); got != 6 {
		t.Errorf("got %d lines, want 6", got)
	}
}

func TestBoundingHelpers(t *testing.T) {
	p := NewPrimitive(pts(1, 2, 5, 2, 5, 8, 1, 8))
	if Left(p) != 1 || Right(p) != 5 || Top(p) != 2 || Bottom(p) != 8 {
		t.Errorf("bounds: %v %v %v %v", Left(p), Right(p), Top(p), Bottom(p))
	}
	if Width(p) != 4 || Height(p) != 6 {
		t.Errorf("extent: %v x %v", Width(p), Height(p))
	}
	if Centre(p) != geom.Pt(3, 5) {
		t.Errorf("centre: %v", Centre(p))
	}
}

func TestMoveTo(t *testing.T) {
	p := NewPrimitive(pts(0, 0, 2, 0, 2, 2, 0, 2))
	MoveTo(p, geom.Pt(10, -4))
	if Centre(p) != geom.Pt(10, -4) {
		t.Errorf("centre after move: %v", Centre(p))
	}
	if p.Points[0] != geom.Pt(9, -5) {
		t.Errorf("first vertex after move: %v", p.Points[0])
	}
}

func TestShapeCloneIsDeep(t *testing.T) {
	s := NewShape([]*Component{
		NewComponent(geom.V3(0, 0, 1), []*Primitive{NewPrimitive(pts(0, 0, 1, 0, 1, 1))}),
	})
	c := s.Clone()
	c.Shift(geom.Pt(100, 100))
	if s.Components[0].Primitives[0].Points[0] != geom.Pt(0, 0) {
		t.Error("shifting the clone moved the original")
	}
	if c.Components[0].Primitives[0].Points[0] != geom.Pt(100, 100) {
		t.Error("clone did not shift")
	}
}

func TestPathData(t *testing.T) {
	c := NewComponent(geom.V3(0, 0, 1), []*Primitive{
		NewPrimitive(pts(0, 0, 1, 0, 1, 1, 0, 1)),
		NewPrimitive(pts(5, 5, 6, 5, 6, 6, 5, 6)),
	})
	want := "M0 0 H1 V1 H0 zM5 5 H6 V6 H5 z"
	if got := c.PathData(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
