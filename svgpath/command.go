// Package svgpath decodes and encodes the subset of the SVG path
// mini-language used by the tile face libraries: absolute and relative
// move, line, vertical and horizontal commands plus close-path. Curves
// are not part of the format.
package svgpath

import "fmt"

// Opcode identifies one path command kind.
type Opcode uint8

const (
	MoveToAbs Opcode = iota // M
	MoveToRel               // m
	LineToAbs               // L
	LineToRel               // l
	VertAbs                 // V
	VertRel                 // v
	HorizAbs                // H
	HorizRel                // h
	ClosePath               // Z or z
)

// Relative reports whether the opcode takes coordinates relative to the
// current point.
func (op Opcode) Relative() bool {
	switch op {
	case MoveToRel, LineToRel, VertRel, HorizRel:
		return true
	}
	return false
}

// String returns the single-letter form of the opcode, as written by the
// encoder. ClosePath is always written lowercase.
func (op Opcode) String() string {
	switch op {
	case MoveToAbs:
		return "M"
	case MoveToRel:
		return "m"
	case LineToAbs:
		return "L"
	case LineToRel:
		return "l"
	case VertAbs:
		return "V"
	case VertRel:
		return "v"
	case HorizAbs:
		return "H"
	case HorizRel:
		return "h"
	case ClosePath:
		return "z"
	}
	return "?"
}

// parseOpcode maps a single-letter command to its Opcode.
func parseOpcode(s string) (Opcode, error) {
	switch s {
	case "M":
		return MoveToAbs, nil
	case "m":
		return MoveToRel, nil
	case "L":
		return LineToAbs, nil
	case "l":
		return LineToRel, nil
	case "V":
		return VertAbs, nil
	case "v":
		return VertRel, nil
	case "H":
		return HorizAbs, nil
	case "h":
		return HorizRel, nil
	case "Z", "z":
		return ClosePath, nil
	}
	return 0, fmt.Errorf("svgpath: unknown path command %q", s)
}

// Command is one opcode with its full parameter run, as it appears in a
// d attribute. A run may cover several coordinates: "L 1 2 3 4" is a
// single Command with four parameters.
type Command struct {
	Op     Opcode
	Params []float64
}

// arity checks that the parameter count is legal for the opcode. Move
// and line runs take a positive even number of parameters, vertical and
// horizontal runs at least one, close-path exactly zero.
func (c Command) arity() error {
	n := len(c.Params)
	switch c.Op {
	case MoveToAbs, MoveToRel, LineToAbs, LineToRel:
		if n == 0 || n%2 != 0 {
			return fmt.Errorf("svgpath: command %s needs coordinate pairs, got %d parameters", c.Op, n)
		}
	case VertAbs, VertRel, HorizAbs, HorizRel:
		if n == 0 {
			return fmt.Errorf("svgpath: command %s needs at least one parameter", c.Op)
		}
	case ClosePath:
		if n != 0 {
			return fmt.Errorf("svgpath: command %s takes no parameters, got %d", c.Op, n)
		}
	}
	return nil
}
