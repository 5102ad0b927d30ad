package svgpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/okiso/isoscene/geom"
)

// pathData matches one command letter and the run of numbers that
// follows it. Anything in the d attribute this pattern does not cover is
// a format error.
var pathData = regexp.MustCompile(`(?i)(?P<cmd>[MVHLZ])\s*(?P<nums>(([+-]?\d+\.?\d*(E\d+)?)(\s|,)?)*)`)

// splitOnCommaOrSpace returns a list of strings after splitting the input
// on comma and whitespace delimiters.
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
}

func onlySeparators(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return r != ',' && !unicode.IsSpace(r)
	}) < 0
}

// Tokenize splits a d attribute into its raw command runs. Unknown
// command letters, malformed numbers and illegal parameter counts are
// all reported as errors rather than skipped.
func Tokenize(d string) ([]Command, error) {
	locs := pathData.FindAllStringSubmatchIndex(d, -1)
	prev := 0
	var cmds []Command
	for _, loc := range locs {
		if gap := d[prev:loc[0]]; !onlySeparators(gap) {
			return nil, fmt.Errorf("svgpath: unexpected path data %q", strings.TrimSpace(gap))
		}
		prev = loc[1]
		op, err := parseOpcode(d[loc[2]:loc[3]])
		if err != nil {
			return nil, err
		}
		cmd := Command{Op: op}
		if loc[4] >= 0 {
			for _, tok := range splitOnCommaOrSpace(d[loc[4]:loc[5]]) {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, fmt.Errorf("svgpath: bad number %q in path data", tok)
				}
				cmd.Params = append(cmd.Params, v)
			}
		}
		if err := cmd.arity(); err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if gap := d[prev:]; !onlySeparators(gap) {
		return nil, fmt.Errorf("svgpath: unexpected path data %q", strings.TrimSpace(gap))
	}
	return cmds, nil
}

// pointIter replays a command stream as absolute points. Each call
// returns either the next vertex or a subpath boundary marker (close
// command reached).
type pointIter struct {
	cmds    []Command
	cmdIdx  int
	pointer int
	current geom.Point
	start   geom.Point
}

func (it *pointIter) next() (p geom.Point, boundary, ok bool) {
	for it.cmdIdx < len(it.cmds) {
		cmd := it.cmds[it.cmdIdx]
		if cmd.Op == ClosePath {
			it.cmdIdx++
			it.pointer = 0
			it.current = it.start
			return it.start, true, true
		}
		if it.pointer >= len(cmd.Params) {
			it.cmdIdx++
			it.pointer = 0
			continue
		}
		switch cmd.Op {
		case MoveToAbs, MoveToRel:
			p := geom.Pt(cmd.Params[it.pointer], cmd.Params[it.pointer+1])
			it.pointer += 2
			if cmd.Op == MoveToRel {
				p = it.current.Add(p)
			}
			it.current = p
			if it.pointer == 2 {
				// The first pair moves the pen; later pairs are
				// implicit line-tos and do not touch the anchor.
				it.start = p
			}
			return p, false, true
		case LineToAbs, LineToRel:
			p := geom.Pt(cmd.Params[it.pointer], cmd.Params[it.pointer+1])
			it.pointer += 2
			if cmd.Op == LineToRel {
				p = it.current.Add(p)
			}
			it.current = p
			return p, false, true
		case VertAbs:
			it.current.Y = cmd.Params[it.pointer]
		case VertRel:
			it.current.Y += cmd.Params[it.pointer]
		case HorizAbs:
			it.current.X = cmd.Params[it.pointer]
		case HorizRel:
			it.current.X += cmd.Params[it.pointer]
		}
		it.pointer++
		return it.current, false, true
	}
	return geom.Point{}, false, false
}

// Primitives decodes a d attribute into one vertex loop per subpath.
// Close commands end a loop; a trailing unclosed run still counts as a
// loop of its own.
func Primitives(d string) ([][]geom.Point, error) {
	cmds, err := Tokenize(d)
	if err != nil {
		return nil, err
	}
	it := pointIter{cmds: cmds}
	var prims [][]geom.Point
	var cur []geom.Point
	open := false
	for {
		p, boundary, ok := it.next()
		if !ok {
			break
		}
		if boundary {
			prims = append(prims, cur)
			cur = nil
			open = false
			continue
		}
		cur = append(cur, p)
		open = true
	}
	if open {
		prims = append(prims, cur)
	}
	return prims, nil
}
