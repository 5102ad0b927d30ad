package shapes

import (
	"testing"

	"github.com/okiso/isoscene/geom"
)

// square returns an axis-aligned square of the given half width centred
// on c.
func square(c geom.Point, r float64) *Primitive {
	return NewPrimitive([]geom.Point{
		{X: c.X + r, Y: c.Y + r},
		{X: c.X - r, Y: c.Y + r},
		{X: c.X - r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y - r},
	})
}

// diamond returns a square rotated 45 degrees, centred on the origin.
func diamond(r float64) *Primitive {
	return NewPrimitive([]geom.Point{
		{X: 0, Y: r}, {X: r, Y: 0}, {X: 0, Y: -r}, {X: -r, Y: 0},
	})
}

func mustClassify(t *testing.T, p Polygonal, pt geom.Point) Region {
	t.Helper()
	r, err := Classify(p, pt)
	if err != nil {
		t.Fatalf("Classify(%v): %v", pt, err)
	}
	return r
}

func TestClassifySquare(t *testing.T) {
	sq := square(geom.Point{}, 1)
	cases := []struct {
		pt   geom.Point
		want Region
	}{
		{geom.Pt(0, 0), Inside},
		{geom.Pt(0.5, -0.5), Inside},
		{geom.Pt(2, 0), Outside},
		{geom.Pt(0, -2), Outside},
		{geom.Pt(1, 0), Edge},  // right edge
		{geom.Pt(0, 1), Edge},  // edge parallel to the first ray
		{geom.Pt(1, 1), Edge},  // corner
		{geom.Pt(-2, 1), Outside}, // ray collinear with the top edge
		{geom.Pt(-2, -1), Outside},
	}
	for _, c := range cases {
		if got := mustClassify(t, sq, c.pt); got != c.want {
			t.Errorf("Classify(%v) = %v, want %v", c.pt, got, c.want)
		}
	}
}

func TestClassifyVertexPassThrough(t *testing.T) {
	d := diamond(1)
	// From the centre the ray exits through the right corner exactly:
	// a true crossing, counted once.
	if got := mustClassify(t, d, geom.Pt(0, 0)); got != Inside {
		t.Errorf("centre: got %v, want inside", got)
	}
	// From outside on the same line the ray skewers both side corners:
	// two crossings, still outside.
	if got := mustClassify(t, d, geom.Pt(-2, 0)); got != Outside {
		t.Errorf("outside on axis: got %v, want outside", got)
	}
	if got := mustClassify(t, d, geom.Pt(0, 1)); got != Edge {
		t.Errorf("corner point: got %v, want edge", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	sq := square(geom.Point{}, 1)
	pt := geom.Pt(-2, 1) // forces the vertical fallback every time
	first := mustClassify(t, sq, pt)
	for i := 0; i < 10; i++ {
		if got := mustClassify(t, sq, pt); got != first {
			t.Fatalf("call %d: got %v, first call gave %v", i, got, first)
		}
	}
}

func TestClassifyDegenerate(t *testing.T) {
	line := NewPrimitive([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if _, err := Classify(line, geom.Pt(0, 0)); err == nil {
		t.Error("expected error for 2-vertex polygon")
	}
}

func TestEnclosesReflexive(t *testing.T) {
	sq := square(geom.Point{}, 1)
	ok, err := Encloses(sq, sq)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("a polygon must enclose itself")
	}
}

func TestEncloses(t *testing.T) {
	outer := square(geom.Point{}, 2)
	inner := square(geom.Point{}, 1)
	if ok, _ := Encloses(outer, inner); !ok {
		t.Error("outer should enclose inner")
	}
	if ok, _ := Encloses(inner, outer); ok {
		t.Error("inner should not enclose outer")
	}
	shifted := square(geom.Pt(3, 0), 1)
	if ok, _ := Encloses(outer, shifted); ok {
		t.Error("disjoint squares should not enclose")
	}
	touching := square(geom.Pt(1, 1), 1) // overlaps one quadrant
	if ok, _ := Encloses(outer, touching); !ok {
		t.Error("vertices on the boundary still count as enclosed")
	}
}

func TestReduceIfObscuredPrimitive(t *testing.T) {
	occluder := square(geom.Point{}, 2)
	hidden := square(geom.Point{}, 1)
	r, err := hidden.ReduceIfObscured(occluder)
	if err != nil {
		t.Fatal(err)
	}
	if r != nil {
		t.Error("enclosed primitive should reduce to nil")
	}
	partial := square(geom.Pt(2, 0), 1)
	r, err = partial.ReduceIfObscured(occluder)
	if err != nil {
		t.Fatal(err)
	}
	if r != partial {
		t.Error("partially visible primitive must survive whole")
	}
}

func TestReduceIfObscuredComponent(t *testing.T) {
	occluder := square(geom.Point{}, 2)
	c := NewComponent(geom.V3(0, 0, 1), []*Primitive{
		square(geom.Point{}, 1),   // hidden
		square(geom.Pt(5, 0), 1), // visible
	})
	r, err := c.ReduceIfObscured(occluder)
	if err != nil {
		t.Fatal(err)
	}
	if r == nil || len(r.Primitives) != 1 {
		t.Fatalf("got %v, want one surviving primitive", r)
	}
	if Centre(r.Primitives[0]) != geom.Pt(5, 0) {
		t.Error("wrong primitive survived")
	}

	allHidden := NewComponent(geom.V3(0, 0, 1), []*Primitive{
		square(geom.Point{}, 1),
		square(geom.Pt(0.5, 0.5), 0.5),
	})
	r, err = allHidden.ReduceIfObscured(occluder)
	if err != nil {
		t.Fatal(err)
	}
	if r != nil {
		t.Error("fully hidden component should reduce to nil")
	}
}

func TestReduceIfObscuredShape(t *testing.T) {
	occluder := square(geom.Point{}, 2)
	s := NewShape([]*Component{
		NewComponent(geom.V3(1, 0, 0), []*Primitive{square(geom.Point{}, 1)}),
		NewComponent(geom.V3(0, 1, 0), []*Primitive{square(geom.Pt(5, 0), 1)}),
	})
	r, err := s.ReduceIfObscured(occluder)
	if err != nil {
		t.Fatal(err)
	}
	if r == nil || len(r.Components) != 1 {
		t.Fatalf("got %v, want one surviving component", r)
	}
	if r.Components[0].Normal != geom.V3(0, 1, 0) {
		t.Error("wrong component survived")
	}
}

func TestReduceMonotonic(t *testing.T) {
	// Applying further occluders can only remove primitives.
	s := NewShape([]*Component{
		NewComponent(geom.V3(0, 0, 1), []*Primitive{
			square(geom.Point{}, 1),
			square(geom.Pt(5, 0), 1),
			square(geom.Pt(10, 0), 1),
		}),
	})
	count := func() int { return len(s.Components[0].Primitives) }
	before := count()
	if _, err := s.ReduceIfObscured(square(geom.Point{}, 2)); err != nil {
		t.Fatal(err)
	}
	mid := count()
	if mid > before {
		t.Fatalf("reduction grew the shape: %d -> %d", before, mid)
	}
	if _, err := s.ReduceIfObscured(square(geom.Pt(5, 0), 2)); err != nil {
		t.Fatal(err)
	}
	if count() > mid {
		t.Fatalf("reduction grew the shape: %d -> %d", mid, count())
	}
	if count() != 1 {
		t.Errorf("got %d primitives, want 1", count())
	}
}
