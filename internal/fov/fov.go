// Package fov computes field of view on a grid using symmetric shadowcasting.
//
// The algorithm scans each of the four cardinal quadrants row by row, tracking the
// visible wedge as a pair of exact rational slopes. A floor tile is visible only if its
// centre lies inside the wedge, which makes visibility symmetric: if A sees B, B sees A.
// Walls are visible when any part of them is inside the wedge. Range is a Euclidean cutoff:
// a tile at (dx, dy) from the origin is visible only if dx*dx + dy*dy <= radius*radius.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/cavern/internal/world"
)

// Grid is the opacity query the algorithm runs against.
type Grid interface {
	Dimensions() (width, height int)
	IsOpaque(x, y int) bool
}

// Compute returns every point visible from origin within radius.
// The origin is always included, even with a radius of zero.
func Compute(origin world.Point, radius int, grid Grid) mapset.Set[world.Point] {
	visible := mapset.New[world.Point]()
	width, height := grid.Dimensions()
	if origin.X < 0 || origin.Y < 0 || origin.X >= width || origin.Y >= height {
		return visible
	}

	visible.Put(origin)
	if radius <= 0 {
		return visible
	}

	for q := north; q <= west; q++ {
		s := scanner{
			quad:    quadrant{dir: q, origin: origin},
			grid:    grid,
			width:   width,
			height:  height,
			radius:  radius,
			visible: visible,
		}
		s.scan(row{depth: 1, start: slope{-1, 1}, end: slope{1, 1}})
	}

	return visible
}

type cardinal int

const (
	north cardinal = iota
	east
	south
	west
)

type quadrant struct {
	dir    cardinal
	origin world.Point
}

// transform maps a (depth, col) position in the quadrant to map coordinates.
func (q quadrant) transform(depth, col int) (int, int) {
	switch q.dir {
	case north:
		return q.origin.X + col, q.origin.Y - depth
	case south:
		return q.origin.X + col, q.origin.Y + depth
	case east:
		return q.origin.X + depth, q.origin.Y + col
	default:
		return q.origin.X - depth, q.origin.Y + col
	}
}

// slope is the exact fraction num/den with den > 0.
type slope struct {
	num, den int
}

type row struct {
	depth      int
	start, end slope
}

// colRange returns the first and last column of the row touched by the wedge.
func (r row) colRange() (int, int) {
	// round half up of depth*start, round half down of depth*end
	minCol := floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
	maxCol := ceilDiv(2*r.depth*r.end.num-r.end.den, 2*r.end.den)
	return minCol, maxCol
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// isSymmetric reports whether the tile centre at col lies within the wedge.
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

// tileSlope is the slope of the tile's left edge: (2col - 1) / (2depth).
func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

type scanner struct {
	quad          quadrant
	grid          Grid
	width, height int
	radius        int
	visible       mapset.Set[world.Point]
}

type tileState int

const (
	tileNone tileState = iota
	tileWall
	tileFloor
)

func (s *scanner) state(depth, col int) tileState {
	x, y := s.quad.transform(depth, col)
	if x < 0 || y < 0 || x >= s.width || y >= s.height || s.grid.IsOpaque(x, y) {
		return tileWall
	}
	return tileFloor
}

func (s *scanner) reveal(depth, col int) {
	if depth*depth+col*col > s.radius*s.radius {
		return
	}
	x, y := s.quad.transform(depth, col)
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.visible.Put(world.Point{X: x, Y: y})
}

func (s *scanner) scan(r row) {
	if r.depth > s.radius {
		return
	}

	prev := tileNone
	minCol, maxCol := r.colRange()
	for col := minCol; col <= maxCol; col++ {
		cur := s.state(r.depth, col)

		if cur == tileWall || r.isSymmetric(col) {
			s.reveal(r.depth, col)
		}
		if prev == tileWall && cur == tileFloor {
			r.start = tileSlope(r.depth, col)
		}
		if prev == tileFloor && cur == tileWall {
			next := r.next()
			next.end = tileSlope(r.depth, col)
			s.scan(next)
		}
		prev = cur
	}

	if prev == tileFloor {
		s.scan(r.next())
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
