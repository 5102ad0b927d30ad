package raster

import (
	"image/color"
	"testing"

	"github.com/okiso/isoscene/geom"
	"github.com/okiso/isoscene/scene"
	"github.com/okiso/isoscene/shapes"
)

func testScene() *scene.Scene {
	square := shapes.NewPrimitive([]geom.Point{
		{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8},
	})
	shape := shapes.NewShape([]*shapes.Component{
		shapes.NewComponent(geom.V3(0, 1, 0), []*shapes.Primitive{square}),
	})
	return &scene.Scene{
		Placements: []scene.Placement{{Instance: shape}},
		Width:      10,
		Height:     10,
	}
}

func TestRenderSize(t *testing.T) {
	img := Render(testScene(), geom.V3(0, 1, 0), geom.V3(0.6, 0.2, 0.9))
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("bounds: %v, want 10 x 10", b)
	}
}

func TestRenderFillsFace(t *testing.T) {
	img := Render(testScene(), geom.V3(0, 1, 0), geom.V3(0.6, 0.2, 0.9))
	r, g, b, _ := img.At(5, 5).RGBA()
	want := scene.FaceColour(geom.V3(0, 1, 0), geom.V3(0, 1, 0), geom.V3(0.6, 0.2, 0.9))
	wr, wg, wb, _ := color.NRGBAModel.Convert(want).RGBA()
	if r != wr || g != wg || b != wb {
		t.Errorf("centre pixel %v %v %v, want %v %v %v", r, g, b, wr, wg, wb)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("pixel outside every face should stay transparent")
	}
}

func TestRenderMinimumCanvas(t *testing.T) {
	sc := &scene.Scene{}
	img := Render(sc, geom.V3(0, 1, 0), geom.V3(1, 1, 1))
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("empty scene canvas: %v", b)
	}
}
