// Package sceneconfig loads the YAML description of a scene: grid
// dimensions, how to fill the grid, explicit tile placements,
// equivalence groups and the lighting constants.
package sceneconfig

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okiso/isoscene/geom"
	"github.com/okiso/isoscene/scene"
)

// Fill policies for cells not covered by an explicit placement.
const (
	FillRandom = "random"
	FillEmpty  = "empty"
)

// TilePlacement pins one tile id to one cell.
type TilePlacement struct {
	At [3]int `yaml:"at"`
	ID uint8  `yaml:"id"`
}

// Config describes one scene to compose.
type Config struct {
	GridSize [3]int `yaml:"grid_size"`

	// Fill defaults to random when no explicit tiles are listed and to
	// empty otherwise.
	Fill string  `yaml:"fill"`
	Seed *uint64 `yaml:"seed"`

	Tiles      []TilePlacement     `yaml:"tiles"`
	Equalities map[string][][3]int `yaml:"equalities"`

	Light  *[3]float64 `yaml:"light"`
	Colour *[3]float64 `yaml:"colour"`

	MergeFaces bool `yaml:"merge_faces"`
}

// Load reads and validates a configuration file.
func Load(file string) (*Config, error) {
	buf, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(buf)
}

// Parse decodes and validates a configuration document.
func Parse(buf []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}
	if cfg.Fill == "" {
		if len(cfg.Tiles) == 0 {
			cfg.Fill = FillRandom
		} else {
			cfg.Fill = FillEmpty
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks dimensions, fill policy and coordinate bounds.
func (c *Config) Validate() error {
	for i, d := range c.GridSize {
		if d < 1 {
			return fmt.Errorf("sceneconfig: grid_size[%d] is %d, want at least 1", i, d)
		}
	}
	if c.Fill != FillRandom && c.Fill != FillEmpty {
		return fmt.Errorf("sceneconfig: unknown fill policy %q", c.Fill)
	}
	for _, t := range c.Tiles {
		if !c.inBounds(t.At) {
			return fmt.Errorf("sceneconfig: tile at %v is outside grid %v", t.At, c.GridSize)
		}
	}
	for name, cells := range c.Equalities {
		for _, at := range cells {
			if !c.inBounds(at) {
				return fmt.Errorf("sceneconfig: group %q cell %v is outside grid %v", name, at, c.GridSize)
			}
		}
	}
	return nil
}

func (c *Config) inBounds(at [3]int) bool {
	for i, v := range at {
		if v < 0 || v >= c.GridSize[i] {
			return false
		}
	}
	return true
}

// BuildGrid materialises the voxel grid: the fill policy first, explicit
// placements on top. A seeded random fill is reproducible.
func (c *Config) BuildGrid() scene.Grid {
	grid := scene.NewGrid(c.GridSize[0], c.GridSize[1], c.GridSize[2])
	if c.Fill == FillRandom {
		rng := c.rng()
		for x := range grid {
			for y := range grid[x] {
				for z := range grid[x][y] {
					grid[x][y][z] = uint8(rng.UintN(256))
				}
			}
		}
	}
	for _, t := range c.Tiles {
		grid[t.At[0]][t.At[1]][t.At[2]] = t.ID
	}
	return grid
}

func (c *Config) rng() *rand.Rand {
	if c.Seed != nil {
		return rand.New(rand.NewPCG(*c.Seed, *c.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Groups flattens the named equivalence groups into the compositor's
// cell lists.
func (c *Config) Groups() [][]scene.Cell {
	var groups [][]scene.Cell
	for _, cells := range c.Equalities {
		group := make([]scene.Cell, len(cells))
		for i, at := range cells {
			group[i] = scene.Cell{X: at[0], Y: at[1], Z: at[2]}
		}
		groups = append(groups, group)
	}
	return groups
}

// LightVector returns the normalized scene light direction.
func (c *Config) LightVector() geom.Vec3 {
	if c.Light == nil {
		return scene.DefaultLight
	}
	return geom.V3(c.Light[0], c.Light[1], c.Light[2]).Normalize()
}

// SceneColour returns the base face colour.
func (c *Config) SceneColour() geom.Vec3 {
	if c.Colour == nil {
		return scene.DefaultColour
	}
	return geom.V3(c.Colour[0], c.Colour[1], c.Colour[2])
}
