// Package tileset reads the tile face library: an SVG document whose
// layer groups are labelled with the 8-bit tile ids they draw, and whose
// paths carry the face geometry in their d attribute and the face normal
// packed into their fill colour.
package tileset

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/okiso/isoscene/geom"
	"github.com/okiso/isoscene/shapes"
	"github.com/okiso/isoscene/svgpath"
)

// ReferenceCubeID is the tile id reserved for the reference cube the
// compositor derives its projection axes from.
const ReferenceCubeID = 255

// fillColour extracts the rgb hex channels of a flat fill style. The
// channels encode the face normal: (value - 128) per channel, read in
// blue, green, red order for the x, y, z axes.
var fillColour = regexp.MustCompile(`fill:#(?P<r>[0-9a-f]{2})(?P<g>[0-9a-f]{2})(?P<b>[0-9a-f]{2})`)

var (
	errMissingPath  = errors.New("tileset: path element has no d attribute")
	errMissingFill  = errors.New("tileset: path element has no fill style")
	errMissingLabel = errors.New("tileset: group element has no label attribute")
	errZeroNormal   = errors.New("tileset: fill colour encodes a zero normal")
)

// Library holds the parsed tile prototypes, indexed by tile id. Ids with
// no prototype are empty cells. Several ids listed on one group share a
// single prototype.
type Library struct {
	protos [256]*shapes.Shape
}

// Proto returns the prototype for a tile id, or nil when the library
// does not define one.
func (l *Library) Proto(id uint8) *shapes.Shape { return l.protos[id] }

// Register binds a prototype to a tile id, replacing any earlier one.
func (l *Library) Register(id uint8, s *shapes.Shape) { l.protos[id] = s }

// Cube returns the reference cube prototype.
func (l *Library) Cube() (*shapes.Shape, error) {
	cube := l.protos[ReferenceCubeID]
	if cube == nil {
		return nil, fmt.Errorf("tileset: no reference cube registered under id %d", ReferenceCubeID)
	}
	return cube, nil
}

// ReadLibraryStream parses the tile face library from the given
// io.Reader. Each labelled group becomes one prototype shape; each path
// inside it one component. Missing d or style attributes and malformed
// labels are fatal.
func ReadLibraryStream(stream io.Reader) (*Library, error) {
	lib := &Library{}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var ids []uint8
	var components []*shapes.Component
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			switch se.Name.Local {
			case "g":
				groupIDs, err := parseGroupLabel(se.Attr)
				if err != nil {
					return nil, err
				}
				ids = append(ids, groupIDs...)
			case "path":
				component, err := parseFace(se.Attr)
				if err != nil {
					return nil, err
				}
				components = append(components, component)
			}
		case xml.EndElement:
			if se.Name.Local != "g" {
				continue
			}
			// All ids collected for the group share the one shape, so a
			// placement through any of them sees the same prototype.
			shape := shapes.NewShape(components)
			for _, id := range ids {
				lib.protos[id] = shape
			}
			ids = nil
			components = nil
		}
	}
	return lib, nil
}

// ReadLibrary parses the tile face library from the named file.
func ReadLibrary(file string) (*Library, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadLibraryStream(fin)
}

// parseGroupLabel reads the group's label attribute: tile ids written in
// binary, separated by semicolons.
func parseGroupLabel(attrs []xml.Attr) ([]uint8, error) {
	for _, attr := range attrs {
		if attr.Name.Local != "label" {
			continue
		}
		var ids []uint8
		for _, tok := range strings.Split(attr.Value, ";") {
			id, err := strconv.ParseUint(strings.TrimSpace(tok), 2, 8)
			if err != nil {
				return nil, fmt.Errorf("tileset: bad tile id %q in group label: %w", tok, err)
			}
			ids = append(ids, uint8(id))
		}
		return ids, nil
	}
	return nil, errMissingLabel
}

// parseFace reads one path element into a component: the d attribute
// gives the face loops, the fill colour the surface normal.
func parseFace(attrs []xml.Attr) (*shapes.Component, error) {
	var (
		prims  []*shapes.Primitive
		normal geom.Vec3
		hasD   bool
		hasRGB bool
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "d":
			loops, err := svgpath.Primitives(attr.Value)
			if err != nil {
				return nil, err
			}
			for _, loop := range loops {
				if len(loop) < 3 {
					return nil, fmt.Errorf("tileset: face loop with %d points", len(loop))
				}
				prims = append(prims, shapes.NewPrimitive(loop))
			}
			hasD = true
		case "style":
			match := fillColour.FindStringSubmatch(attr.Value)
			if match == nil {
				continue
			}
			normal = normalFromFill(match[1], match[2], match[3])
			if normal.Magnitude() == 0 {
				return nil, errZeroNormal
			}
			normal = normal.Normalize()
			hasRGB = true
		}
	}
	if !hasD {
		return nil, errMissingPath
	}
	if !hasRGB {
		return nil, errMissingFill
	}
	return shapes.NewComponent(normal, prims), nil
}

func normalFromFill(r, g, b string) geom.Vec3 {
	return geom.V3(channel(b), channel(g), channel(r))
}

func channel(hex string) float64 {
	// The submatch groups guarantee two hex digits.
	v, _ := strconv.ParseUint(hex, 16, 16)
	return float64(v) - 128
}
