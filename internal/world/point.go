package world

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// DistanceSq returns the squared Euclidean distance between two points.
func (p Point) DistanceSq(other Point) int {
	dx, dy := p.X-other.X, p.Y-other.Y
	return dx*dx + dy*dy
}
