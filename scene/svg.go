package scene

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"encoding/xml"

	"github.com/okiso/isoscene/geom"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// DefaultLight is the scene light direction used when the configuration
// leaves it out.
var DefaultLight = geom.V3(0.3, 0.7, 0.5).Normalize()

// DefaultColour is the base face colour used when the configuration
// leaves it out.
var DefaultColour = geom.V3(0.6, 0.2, 0.9)

// FaceColour computes the flat Lambertian colour of a face: the base
// colour scaled by the clamped cosine between the face normal and the
// light direction.
func FaceColour(normal, light, colour geom.Vec3) color.NRGBA {
	brightness := math.Max(normal.Dot(light), 0)
	c := colour.Scale(brightness * 256)
	return color.NRGBA{R: clampChannel(c.X), G: clampChannel(c.Y), B: clampChannel(c.Z), A: 0xff}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FillStyle renders the face colour as an inline style value.
func FillStyle(normal, light, colour geom.Vec3) string {
	c := FaceColour(normal, light, colour)
	return fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B)
}

// WriteSVG serializes the scene: one group per surviving placement, one
// path per component, in placement order so later cells paint over
// earlier ones.
func (s *Scene) WriteSVG(w io.Writer, light, colour geom.Vec3) error {
	enc := xml.NewEncoder(w)
	root := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			attr("width", formatFloat(s.Width)),
			attr("height", formatFloat(s.Height)),
			attr("version", "1.1"),
			attr("xmlns", svgNamespace),
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, shape := range s.Shapes() {
		group := xml.StartElement{Name: xml.Name{Local: "g"}}
		if err := enc.EncodeToken(group); err != nil {
			return err
		}
		for _, component := range shape.Components {
			path := xml.StartElement{
				Name: xml.Name{Local: "path"},
				Attr: []xml.Attr{
					attr("d", component.PathData()),
					attr("style", FillStyle(component.Normal, light, colour)),
				},
			}
			if err := enc.EncodeToken(path); err != nil {
				return err
			}
			if err := enc.EncodeToken(path.End()); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(group.End()); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
