// Implements a raster preview of a composed scene, by wrapping rasterx.
// Faces are flat filled with the same Lambertian colour the SVG
// serializer writes.
package raster

import (
	"image"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/okiso/isoscene/geom"
	"github.com/okiso/isoscene/scene"
)

// Render rasterizes the scene into an RGBA image of its canvas size.
// Shapes are painted in placement order, so overlap resolution matches
// the SVG output.
func Render(s *scene.Scene, light, colour geom.Vec3) *image.RGBA {
	w := int(math.Ceil(s.Width))
	h := int(math.Ceil(s.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	for _, shape := range s.Shapes() {
		for _, component := range shape.Components {
			filler.Clear()
			filler.SetColor(scene.FaceColour(component.Normal, light, colour))
			for _, prim := range component.Primitives {
				if len(prim.Points) == 0 {
					continue
				}
				filler.Start(toFixed(prim.Points[0]))
				for _, pt := range prim.Points[1:] {
					filler.Line(toFixed(pt))
				}
				filler.Stop(true)
			}
			filler.Draw()
		}
	}
	return img
}

func toFixed(p geom.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}
