package shapes

import "github.com/okiso/isoscene/geom"

// shoelace returns the signed area sum of a loop. Its sign gives the
// winding direction.
func shoelace(points []geom.Point) float64 {
	sum := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		sum += points[i].Cross(points[(i+1)%n])
	}
	return sum
}

// FuseSharedBoundary joins two closed loops that share a maximal
// contiguous run of boundary vertices into one loop covering both. The
// run needs at least one whole shared edge (two consecutive vertices,
// compared exactly); anything less, including a single shared corner,
// returns nil. The windings of the two loops may differ: when they
// agree the shared run appears reversed in b, when they differ it runs
// forward, and the splice direction follows from that.
func FuseSharedBoundary(a, b *Primitive) *Primitive {
	n, m := len(a.Points), len(b.Points)
	if n < 3 || m < 3 {
		return nil
	}
	step := 1
	if signum(shoelace(a.Points)) == signum(shoelace(b.Points)) {
		step = -1
	}
	limit := n
	if m < n {
		limit = m
	}
	bestI, bestJ, bestLen := 0, 0, 0
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if a.Points[i] != b.Points[j] {
				continue
			}
			length := 1
			for length < limit &&
				a.Points[(i+length)%n] == b.Points[((j+step*length)%m+m)%m] {
				length++
			}
			if length > bestLen {
				bestI, bestJ, bestLen = i, j, length
			}
		}
	}
	if bestLen < 2 {
		return nil
	}
	// Walk a from the far end of the shared run all the way around to
	// its near end, keeping both run endpoints, then continue along b's
	// vertices outside the run. Interior run vertices disappear.
	out := make([]geom.Point, 0, n+m-2*bestLen+2)
	for t := 0; t < n-bestLen+2; t++ {
		out = append(out, a.Points[(bestI+bestLen-1+t)%n])
	}
	for t := 1; t <= m-bestLen; t++ {
		out = append(out, b.Points[((bestJ-step*t)%m+m)%m])
	}
	return &Primitive{Points: out}
}

// MergePrimitives repeatedly fuses pairs of primitives that share an
// edge run until no such pair remains, shrinking a component's facets
// into the fewest loops the shared boundaries allow.
func (c *Component) MergePrimitives() {
	for {
		merged := false
	scan:
		for i := 0; i < len(c.Primitives); i++ {
			for k := i + 1; k < len(c.Primitives); k++ {
				f := FuseSharedBoundary(c.Primitives[i], c.Primitives[k])
				if f == nil {
					continue
				}
				c.Primitives[i] = f
				c.Primitives = append(c.Primitives[:k], c.Primitives[k+1:]...)
				merged = true
				break scan
			}
		}
		if !merged {
			return
		}
	}
}
