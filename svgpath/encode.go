package svgpath

import (
	"strconv"
	"strings"

	"github.com/okiso/isoscene/geom"
)

// encoder compacts an ordered vertex loop into absolute commands. It
// walks the loop greedily: the opening move absorbs points until two
// consecutive points share an axis, then each following command extends
// a vertical, horizontal or diagonal run for as long as the alignment
// against the run's anchor holds. The point that breaks a run becomes
// the anchor of the next command and is emitted by that command, not the
// broken one.
type encoder struct {
	points   []geom.Point
	idx      int
	started  bool
	last     geom.Point
	current  geom.Point
	closed   bool
	finished bool
}

func (e *encoder) nextPoint() (geom.Point, bool) {
	if e.idx >= len(e.points) {
		return geom.Point{}, false
	}
	p := e.points[e.idx]
	e.idx++
	return p, true
}

func (e *encoder) next() (Command, bool) {
	next, ok := e.nextPoint()
	if ok {
		if !e.started {
			e.started = true
			e.finished = true
			e.current = next
			params := []float64{next.X, next.Y}
			for {
				np, more := e.nextPoint()
				if !more {
					break
				}
				e.last = e.current
				e.current = np
				if e.last.X == e.current.X || e.last.Y == e.current.Y {
					e.finished = false
					break
				}
				params = append(params, np.X, np.Y)
			}
			return Command{Op: MoveToAbs, Params: params}, true
		}
		switch {
		case e.current.X == e.last.X:
			params := []float64{e.current.Y}
			for next.X == e.current.X {
				params = append(params, next.Y)
				e.last = e.current
				e.current = next
				np, more := e.nextPoint()
				if !more {
					e.finished = true
					break
				}
				next = np
			}
			e.last = e.current
			e.current = next
			return Command{Op: VertAbs, Params: params}, true
		case e.current.Y == e.last.Y:
			params := []float64{e.current.X}
			for next.Y == e.current.Y {
				params = append(params, next.X)
				e.last = e.current
				e.current = next
				np, more := e.nextPoint()
				if !more {
					e.finished = true
					break
				}
				next = np
			}
			e.last = e.current
			e.current = next
			return Command{Op: HorizAbs, Params: params}, true
		default:
			params := []float64{e.current.X, e.current.Y}
			for next.X != e.current.X && next.Y != e.current.Y {
				params = append(params, next.X, next.Y)
				e.last = e.current
				e.current = next
				np, more := e.nextPoint()
				if !more {
					e.finished = true
					break
				}
				next = np
			}
			e.last = e.current
			e.current = next
			return Command{Op: LineToAbs, Params: params}, true
		}
	}
	// Points exhausted: flush the pending anchor, then close.
	switch {
	case e.closed:
		return Command{}, false
	case e.finished:
		e.closed = true
		return Command{Op: ClosePath}, true
	case e.current.X == e.last.X:
		e.finished = true
		return Command{Op: VertAbs, Params: []float64{e.current.Y}}, true
	case e.current.Y == e.last.Y:
		e.finished = true
		return Command{Op: HorizAbs, Params: []float64{e.current.X}}, true
	default:
		e.finished = true
		return Command{Op: LineToAbs, Params: []float64{e.current.X, e.current.Y}}, true
	}
}

// EncodeCommands compacts a vertex loop into the minimal absolute
// command runs the greedy walk produces, ending with a close command.
// An empty loop yields no commands.
func EncodeCommands(points []geom.Point) []Command {
	e := encoder{points: points}
	var cmds []Command
	for {
		cmd, ok := e.next()
		if !ok {
			return cmds
		}
		cmds = append(cmds, cmd)
	}
}

// Encode renders a vertex loop as a d attribute. Numbers are written in
// their shortest plain decimal form and every parameter is followed by a
// single space.
func Encode(points []geom.Point) string {
	var b strings.Builder
	for _, cmd := range EncodeCommands(points) {
		b.WriteString(cmd.Op.String())
		for _, p := range cmd.Params {
			b.WriteString(strconv.FormatFloat(p, 'f', -1, 64))
			b.WriteByte(' ')
		}
	}
	return b.String()
}
