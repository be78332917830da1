package world

// Rect is an axis-aligned rectangle with inclusive corners (X1,Y1) and (X2,Y2).
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle at (x, y) extending w tiles right and h tiles down.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersects returns true if the closed extents of the two rectangles overlap on both axes.
// Rectangles that share an edge intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the midpoint of the rectangle, truncated toward zero.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if (x, y) is one of the carved interior tiles of the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}
