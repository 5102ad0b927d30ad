package scene

import (
	"github.com/okiso/isoscene/geom"
	"github.com/okiso/isoscene/shapes"
	"github.com/okiso/isoscene/tileset"
)

// Cell addresses one voxel of the grid.
type Cell struct {
	X, Y, Z int
}

// Grid is the voxel field of tile ids, indexed [x][y][z]. Id values
// without a registered prototype are empty cells.
type Grid [][][]uint8

// NewGrid allocates a zeroed grid of the given dimensions.
func NewGrid(x, y, z int) Grid {
	g := make(Grid, x)
	for i := range g {
		g[i] = make([][]uint8, y)
		for j := range g[i] {
			g[i][j] = make([]uint8, z)
		}
	}
	return g
}

// Dims returns the grid dimensions.
func (g Grid) Dims() (x, y, z int) {
	x = len(g)
	if x == 0 {
		return 0, 0, 0
	}
	y = len(g[0])
	if y == 0 {
		return x, 0, 0
	}
	return x, y, len(g[0][0])
}

// Placement records one visited cell and the shape instance drawn for
// it. Instance drops to nil once later cells fully obscure it; the slot
// itself is kept so equivalence lookups by earlier placements stay
// valid. Shared instances appear in several placements.
type Placement struct {
	Instance *shapes.Shape
	Cell     Cell
}

// Compositor walks a grid in painter's order and produces the visible
// scene. Groups lists cells whose placements must reuse a single shape
// instance; Progress, when set, is called after each finished depth
// layer. Compose is single threaded.
type Compositor struct {
	Library    *tileset.Library
	Groups     [][]Cell
	MergeFaces bool
	Progress   func(layer, total int)
}

// Scene is the composited output: the full placement log plus the
// canvas extent in SVG user units.
type Scene struct {
	Placements    []Placement
	Width, Height float64
}

// Shapes returns the surviving shape per placement, in placement order.
// A shape shared through an equivalence group appears once per surviving
// placement.
func (s *Scene) Shapes() []*shapes.Shape {
	var out []*shapes.Shape
	for _, p := range s.Placements {
		if p.Instance != nil {
			out = append(out, p.Instance)
		}
	}
	return out
}

// Compose traverses the grid back to front. Cells on the same depth
// layer x+y+z cannot overlap, so any layer order works; within the run
// each new instance is tested against every earlier survivor and fully
// hidden geometry is dropped wholesale.
func (c *Compositor) Compose(grid Grid) (*Scene, error) {
	cube, err := c.Library.Cube()
	if err != nil {
		return nil, err
	}
	axes := AxesFromCube(cube)
	size := geom.Pt(shapes.Width(cube), shapes.Height(cube))
	centreRef := shapes.Centre(cube)

	gx, gy, gz := grid.Dims()
	width := float64(gx)*axes.X.X + float64(gz)*-axes.Z.X
	height := float64(gx)*axes.X.Y + float64(gy)*-axes.Y.Y + float64(gz)*axes.Z.Y
	origin := geom.Pt(float64(gz)*-axes.Z.X, float64(gy)*-axes.Y.Y)

	var placements []Placement
	layers := gx + gy + gz - 2
	for depth := 0; depth < layers; depth++ {
		for x := 0; x < min(gx, depth+1); x++ {
			for y := 0; y < min(gy, depth+1-x); y++ {
				z := depth - x - y
				if z >= gz {
					continue
				}
				proto := c.Library.Proto(grid[x][y][z])
				if proto == nil {
					continue
				}
				cell := Cell{X: x, Y: y, Z: z}
				centre := origin.
					Add(axes.X.Mul(float64(x))).
					Add(axes.Y.Mul(float64(y))).
					Add(axes.Z.Mul(float64(z)))
				instance := c.sharedInstance(placements, cell)
				if instance == nil {
					instance = proto.Clone()
					// Faces may stick out of the prototype's own cell
					// box (overhangs); the offset keeps that relative
					// excursion, wrapped to within half a cell.
					offset := shapes.Centre(instance).
						Sub(centreRef).
						Add(size.Div(2)).
						Mod(size).
						Sub(size.Div(2))
					shapes.MoveTo(instance, centre.Add(offset))
				}
				for i := range placements {
					prev := placements[i].Instance
					if prev == nil || prev == instance {
						continue
					}
					reduced, err := prev.ReduceIfObscured(instance)
					if err != nil {
						return nil, err
					}
					if reduced == nil {
						placements[i].Instance = nil
					}
				}
				placements = append(placements, Placement{Instance: instance, Cell: cell})
			}
		}
		if c.Progress != nil {
			c.Progress(depth+1, layers)
		}
	}

	scene := &Scene{Placements: placements, Width: width, Height: height}
	if c.MergeFaces {
		mergeFaces(scene)
	}
	return scene, nil
}

// sharedInstance looks for an earlier placement in the same equivalence
// group whose instance is still alive. The instance is reused as it
// stands, already translated and possibly already reduced.
func (c *Compositor) sharedInstance(placements []Placement, cell Cell) *shapes.Shape {
	group := c.groupOf(cell)
	if group == nil {
		return nil
	}
	for _, p := range placements {
		if p.Instance == nil {
			continue
		}
		for _, member := range group {
			if p.Cell == member {
				return p.Instance
			}
		}
	}
	return nil
}

func (c *Compositor) groupOf(cell Cell) []Cell {
	for _, group := range c.Groups {
		for _, member := range group {
			if member == cell {
				return group
			}
		}
	}
	return nil
}

// mergeFaces fuses adjacent facets within each surviving component.
// Shared instances are visited once.
func mergeFaces(s *Scene) {
	seen := make(map[*shapes.Shape]bool)
	for _, p := range s.Placements {
		if p.Instance == nil || seen[p.Instance] {
			continue
		}
		seen[p.Instance] = true
		for _, component := range p.Instance.Components {
			component.MergePrimitives()
		}
	}
}
