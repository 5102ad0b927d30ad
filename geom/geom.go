// Package geom provides the small vector types shared by the path codec,
// the polygon kernel and the scene compositor.
package geom

import "math"

// Point is a 2-D coordinate in SVG user units: x grows to the right,
// y grows down the page.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Div returns p scaled by 1/k.
func (p Point) Div(k float64) Point { return Point{p.X / k, p.Y / k} }

// Mod applies math.Mod componentwise. The result keeps the sign of the
// dividend, which the cell offset computation relies on.
func (p Point) Mod(q Point) Point {
	return Point{math.Mod(p.X, q.X), math.Mod(p.Y, q.Y)}
}

// Dot returns the scalar product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the 3-D cross product of p and q.
// Its sign tells which side of p the vector q lies on.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Magnitude returns the euclidean length of p.
func (p Point) Magnitude() float64 { return math.Hypot(p.X, p.Y) }

// Normalize returns p scaled to unit length.
func (p Point) Normalize() Point { return p.Div(p.Magnitude()) }

// Rot returns p rotated by angle radians about the origin.
func (p Point) Rot(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// Vec3 is a 3-D vector, used for face normals, the light direction and
// RGB colour triples.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the scalar product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the vector product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Magnitude returns the euclidean length of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length.
func (v Vec3) Normalize() Vec3 {
	m := v.Magnitude()
	return Vec3{v.X / m, v.Y / m, v.Z / m}
}
