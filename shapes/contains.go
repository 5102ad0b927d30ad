package shapes

import (
	"fmt"
	"math"

	"github.com/okiso/isoscene/geom"
)

// Region locates a point relative to a polygon boundary.
type Region uint8

const (
	Outside Region = iota
	Inside
	Edge
)

func (r Region) String() string {
	switch r {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case Edge:
		return "edge"
	}
	return "unknown"
}

// intersectionParameters solves p1 + lambda*d1 == p2 + mu*d2. Parallel
// lines give infinite parameters; collinear lines give NaN.
func intersectionParameters(p1, d1, p2, d2 geom.Point) (lambda, mu float64) {
	lambda = p2.Sub(p1).Cross(d2) / d1.Cross(d2)
	mu = p1.Sub(p2).Cross(d1) / d2.Cross(d1)
	return
}

// signum collapses a float to +1 or -1 by its sign bit, so that exact
// zeroes still pick a side.
func signum(v float64) float64 {
	if math.Signbit(v) {
		return -1
	}
	return 1
}

// Classify locates pt relative to the boundary of p by casting a ray and
// counting boundary crossings. An intersection on the boundary itself
// (mu == 0 with lambda within the edge) short-circuits to Edge. A
// crossing counts when the ray meets the interior of an edge, or meets a
// vertex exactly while the two adjacent edges leave the ray on the same
// rotational side. A polygon with fewer than three vertices is an error.
func Classify(p Polygonal, pt geom.Point) (Region, error) {
	verts := p.Vertices()
	if len(verts) < 3 {
		return Outside, fmt.Errorf("shapes: degenerate polygon with %d vertices", len(verts))
	}
	region, ok := classify(verts, p.Lines(), pt, geom.Pt(1, 0))
	if !ok {
		// The horizontal ray ran along an edge. Restart the whole count
		// with a vertical ray rather than patching mid-loop, so both
		// passes see a consistent direction for every edge.
		region, _ = classify(verts, p.Lines(), pt, geom.Pt(0, 1))
	}
	return region, nil
}

func classify(verts []geom.Point, lines []Line, pt, dir geom.Point) (Region, bool) {
	sp0 := verts[len(verts)-1]
	crossings := 0
	for _, ln := range lines {
		edge := ln.B.Sub(ln.A)
		prev := ln.A.Sub(sp0)
		lambda, mu := intersectionParameters(ln.A, edge, pt, dir)
		if math.IsNaN(lambda) || math.IsNaN(mu) {
			return Outside, false
		}
		if mu == 0 && 0 <= lambda && lambda <= 1 {
			return Edge, true
		}
		if mu > 0 && (0 < lambda && lambda < 1 ||
			lambda == 0 && signum(prev.Cross(dir)) == signum(edge.Cross(dir))) {
			crossings++
		}
		sp0 = ln.A
	}
	if crossings%2 == 1 {
		return Inside, true
	}
	return Outside, true
}

// Encloses reports whether every vertex of inner lies on or inside the
// boundary of outer. Only vertices are sampled: an edge of inner that
// bulges outside outer between two enclosed vertices goes undetected.
// The compositor accepts that, since cell faces only ever hide each
// other exactly.
func Encloses(outer, inner Polygonal) (bool, error) {
	for _, pt := range inner.Vertices() {
		r, err := Classify(outer, pt)
		if err != nil {
			return false, err
		}
		if r == Outside {
			return false, nil
		}
	}
	return true, nil
}

// ReduceIfObscured returns nil when occluder encloses p, and p unchanged
// otherwise. Primitives are dropped wholesale or kept whole; partial
// overlap never clips geometry.
func (p *Primitive) ReduceIfObscured(occluder Polygonal) (*Primitive, error) {
	hidden, err := Encloses(occluder, p)
	if err != nil {
		return nil, err
	}
	if hidden {
		return nil, nil
	}
	return p, nil
}

// ReduceIfObscured prunes the primitives of c that occluder encloses,
// in place. It returns nil when none survive.
func (c *Component) ReduceIfObscured(occluder Polygonal) (*Component, error) {
	var kept []*Primitive
	for _, p := range c.Primitives {
		r, err := p.ReduceIfObscured(occluder)
		if err != nil {
			return nil, err
		}
		if r != nil {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}
	c.Primitives = kept
	return c, nil
}

// ReduceIfObscured prunes the components of s that occluder fully
// obscures, in place. It returns nil when none survive. Reduction only
// ever removes geometry, so applying further occluders can only shrink
// the shape.
func (s *Shape) ReduceIfObscured(occluder Polygonal) (*Shape, error) {
	var kept []*Component
	for _, c := range s.Components {
		r, err := c.ReduceIfObscured(occluder)
		if err != nil {
			return nil, err
		}
		if r != nil {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}
	s.Components = kept
	return s, nil
}
