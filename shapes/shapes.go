package shapes

import (
	"github.com/okiso/isoscene/geom"

	"github.com/okiso/isoscene/svgpath"
)

// Primitive is a single closed polygon: consecutive vertices joined in
// order, with an implicit edge from the last vertex back to the first.
type Primitive struct {
	Points []geom.Point
}

// NewPrimitive wraps a vertex loop.
func NewPrimitive(points []geom.Point) *Primitive {
	return &Primitive{Points: points}
}

// Vertices implements Polygonal.
func (p *Primitive) Vertices() []geom.Point { return p.Points }

// Lines implements Polygonal, closing the loop back to the first vertex.
func (p *Primitive) Lines() []Line {
	n := len(p.Points)
	lines := make([]Line, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, Line{A: p.Points[i], B: p.Points[(i+1)%n]})
	}
	return lines
}

// Shift implements Polygonal.
func (p *Primitive) Shift(offset geom.Point) {
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(offset)
	}
}

// Clone returns a deep copy of p.
func (p *Primitive) Clone() *Primitive {
	points := make([]geom.Point, len(p.Points))
	copy(points, p.Points)
	return &Primitive{Points: points}
}

// PathData re-encodes the loop as an SVG d attribute.
func (p *Primitive) PathData() string {
	return svgpath.Encode(p.Points)
}

// Component is a set of coplanar faces sharing one unit surface normal.
type Component struct {
	Normal     geom.Vec3
	Primitives []*Primitive
}

// NewComponent wraps primitives under a common normal.
func NewComponent(normal geom.Vec3, prims []*Primitive) *Component {
	return &Component{Normal: normal, Primitives: prims}
}

// Vertices implements Polygonal over all primitives in order.
func (c *Component) Vertices() []geom.Point {
	var points []geom.Point
	for _, p := range c.Primitives {
		points = append(points, p.Points...)
	}
	return points
}

// Lines implements Polygonal. Each primitive contributes its own closed
// loop; edges never span primitives.
func (c *Component) Lines() []Line {
	var lines []Line
	for _, p := range c.Primitives {
		lines = append(lines, p.Lines()...)
	}
	return lines
}

// Shift implements Polygonal.
func (c *Component) Shift(offset geom.Point) {
	for _, p := range c.Primitives {
		p.Shift(offset)
	}
}

// Clone returns a deep copy of c.
func (c *Component) Clone() *Component {
	prims := make([]*Primitive, len(c.Primitives))
	for i, p := range c.Primitives {
		prims[i] = p.Clone()
	}
	return &Component{Normal: c.Normal, Primitives: prims}
}

// PathData concatenates the d attributes of all primitives.
func (c *Component) PathData() string {
	var d string
	for _, p := range c.Primitives {
		d += p.PathData()
	}
	return d
}

// Shape is every visible face of one grid cell.
type Shape struct {
	Components []*Component
}

// NewShape wraps components into a shape.
func NewShape(components []*Component) *Shape {
	return &Shape{Components: components}
}

// Vertices implements Polygonal over all components in order.
func (s *Shape) Vertices() []geom.Point {
	var points []geom.Point
	for _, c := range s.Components {
		points = append(points, c.Vertices()...)
	}
	return points
}

// Lines implements Polygonal.
func (s *Shape) Lines() []Line {
	var lines []Line
	for _, c := range s.Components {
		lines = append(lines, c.Lines()...)
	}
	return lines
}

// Shift implements Polygonal.
func (s *Shape) Shift(offset geom.Point) {
	for _, c := range s.Components {
		c.Shift(offset)
	}
}

// Clone returns a deep copy of s. Prototype shapes are never mutated;
// every placement works on a clone.
func (s *Shape) Clone() *Shape {
	components := make([]*Component, len(s.Components))
	for i, c := range s.Components {
		components[i] = c.Clone()
	}
	return &Shape{Components: components}
}
