// Package shapes models the polygon geometry of an isometric scene:
// primitives (single closed loops), components (coplanar faces with a
// normal) and shapes (one grid cell's worth of faces), together with
// the containment, occlusion and boundary fusion operations the
// compositor runs on them.
package shapes

import (
	"math"

	"github.com/okiso/isoscene/geom"
)

// Line is one directed polygon edge.
type Line struct {
	A, B geom.Point
}

// Polygonal is the vertex and edge iteration contract shared by
// Primitive, Component and Shape. The bounding box, centre and
// translation helpers below are defined once against it and work on all
// three levels.
type Polygonal interface {
	// Vertices returns every vertex in drawing order. The slice may
	// alias internal storage and must not be modified by callers.
	Vertices() []geom.Point
	// Lines returns every directed edge, closing each loop back to its
	// first vertex.
	Lines() []Line
	// Shift translates the geometry in place.
	Shift(offset geom.Point)
}

// Left returns the smallest x coordinate of p.
func Left(p Polygonal) float64 {
	min := math.Inf(1)
	for _, pt := range p.Vertices() {
		if pt.X < min {
			min = pt.X
		}
	}
	return min
}

// Right returns the largest x coordinate of p.
func Right(p Polygonal) float64 {
	max := math.Inf(-1)
	for _, pt := range p.Vertices() {
		if pt.X > max {
			max = pt.X
		}
	}
	return max
}

// Top returns the smallest y coordinate of p.
func Top(p Polygonal) float64 {
	min := math.Inf(1)
	for _, pt := range p.Vertices() {
		if pt.Y < min {
			min = pt.Y
		}
	}
	return min
}

// Bottom returns the largest y coordinate of p.
func Bottom(p Polygonal) float64 {
	max := math.Inf(-1)
	for _, pt := range p.Vertices() {
		if pt.Y > max {
			max = pt.Y
		}
	}
	return max
}

// Width returns the horizontal extent of the bounding box of p.
func Width(p Polygonal) float64 { return Right(p) - Left(p) }

// Height returns the vertical extent of the bounding box of p.
func Height(p Polygonal) float64 { return Bottom(p) - Top(p) }

// Centre returns the centre of the bounding box of p.
func Centre(p Polygonal) geom.Point {
	return geom.Pt((Left(p)+Right(p))/2, (Top(p)+Bottom(p))/2)
}

// MoveTo translates p so that its bounding box centre lands on to.
func MoveTo(p Polygonal, to geom.Point) {
	p.Shift(to.Sub(Centre(p)))
}
