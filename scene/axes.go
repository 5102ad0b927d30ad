// Package scene turns a voxel grid of tile ids into a flat list of
// translated, occlusion-culled shapes and serializes them as an SVG
// document in painter's order.
package scene

import (
	"math"

	"github.com/okiso/isoscene/geom"
	"github.com/okiso/isoscene/shapes"
)

// normalTolerance absorbs the quantisation error of normals decoded
// from 8-bit colour channels.
const normalTolerance = 0.001

// Axes are the projected grid axis vectors: the on-canvas displacement
// of one cell step along each grid axis.
type Axes struct {
	X, Y, Z geom.Point
}

// AxesFromCube derives the projection axes from the reference cube's
// three axis-aligned faces. The x axis vector's horizontal part comes
// from the +x face width, the z vector's from the +z face width (sign
// flipped, z runs left), and the vertical parts are solved from the
// three face heights: each projected face height is the sum of the two
// cell axis drops that span it.
func AxesFromCube(cube *shapes.Shape) Axes {
	var xv, yv, zv geom.Point
	var hr, hg, hb float64
	for _, component := range cube.Components {
		n := component.Normal
		switch {
		case near(n.X, 1) && near(n.Y, 0) && near(n.Z, 0):
			xv.X = shapes.Width(component)
			hr = -shapes.Height(component)
		case near(n.X, 0) && near(n.Y, 1) && near(n.Z, 0):
			hg = -shapes.Height(component)
		case near(n.X, 0) && near(n.Y, 0) && near(n.Z, 1):
			zv.X = -shapes.Width(component)
			hb = -shapes.Height(component)
		}
	}
	xv.Y = (-hr - hg + hb) / 2
	yv.Y = (hr - hg + hb) / 2
	zv.Y = (hr - hg - hb) / 2
	return Axes{X: xv, Y: yv, Z: zv}
}

func near(v, target float64) bool {
	return math.Abs(v-target) <= normalTolerance
}
