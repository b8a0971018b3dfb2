package models

// Point is a pixel coordinate in the scaled mask's local space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Less orders points by (Y, X). Tracing uses this ordering for
// deterministic start points and tie-breaks.
func (p Point) Less(other Point) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// DistanceSquared returns the squared euclidean distance to other.
func (p Point) DistanceSquared(other Point) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Add returns the point translated by offset.
func (p Point) Add(offset Point) Point {
	return Point{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Path is one continuous pointer-down stroke: an ordered sequence of
// points, each appended as the nearest unvisited neighbor of its
// predecessor at trace time.
type Path []Point

// Translate returns a copy of the path shifted by offset. Callers use
// this to move mask-local coordinates into the target region before
// replay.
func (p Path) Translate(offset Point) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = pt.Add(offset)
	}
	return out
}

// Interpolate returns the intermediate points of a straight pointer
// motion from a to b, endpoints included. Consecutive path points can
// be up to the trace distance apart; replay fills the gap one pixel
// step at a time.
func Interpolate(a, b Point) []Point {
	steps := isqrt(a.DistanceSquared(b))
	if steps <= 1 {
		return []Point{a, b}
	}

	out := make([]Point, 0, steps+1)
	out = append(out, a)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, Point{
			X: a.X + int(t*float64(b.X-a.X)),
			Y: a.Y + int(t*float64(b.Y-a.Y)),
		})
	}
	return out
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// MinRegionSize is the floor applied to each region dimension. A
// degenerate corner pair still yields a drawable canvas.
const MinRegionSize = 10

// Region is the target rectangle a mask is scaled into. The two
// corners may be given in any order; dimensions come from absolute
// differences.
type Region struct {
	C1 Point
	C2 Point
}

// NewRegion builds a region from an unordered corner pair.
func NewRegion(c1, c2 Point) Region {
	return Region{C1: c1, C2: c2}
}

// Width returns |x2-x1| floored at MinRegionSize.
func (r Region) Width() int {
	w := r.C2.X - r.C1.X
	if w < 0 {
		w = -w
	}
	if w < MinRegionSize {
		w = MinRegionSize
	}
	return w
}

// Height returns |y2-y1| floored at MinRegionSize.
func (r Region) Height() int {
	h := r.C2.Y - r.C1.Y
	if h < 0 {
		h = -h
	}
	if h < MinRegionSize {
		h = MinRegionSize
	}
	return h
}

// Origin returns the top-left corner of the region, regardless of the
// order the corners were captured in.
func (r Region) Origin() Point {
	origin := r.C1
	if r.C2.X < origin.X {
		origin.X = r.C2.X
	}
	if r.C2.Y < origin.Y {
		origin.Y = r.C2.Y
	}
	return origin
}
