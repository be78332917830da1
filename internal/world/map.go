package world

const (
	// DefaultWidth and DefaultHeight are the map dimensions used when none are configured.
	DefaultWidth  = 80
	DefaultHeight = 50
)

// Map is the tile grid shared by generation, movement, visibility and rendering.
// Tiles and the two visibility bitmaps are stored row-major: index = y*Width + x.
type Map struct {
	Width  int
	Height int
	Tiles  []TileType
	Rooms  []Rect // Generation order; each room is joined to the one before it

	// Revealed marks tiles the player has ever seen. Entries never revert to false.
	Revealed []bool
	// Visible marks tiles the player can see this tick.
	Visible []bool
}

// Exit is a neighbour reachable from a tile, with its movement cost.
type Exit struct {
	Index int
	Cost  float64
}

// NewMap creates a map filled with walls.
func NewMap(width, height int) *Map {
	size := width * height
	tiles := make([]TileType, size)
	for i := range tiles {
		tiles[i] = TileWall
	}

	return &Map{
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		Rooms:    make([]Rect, 0),
		Revealed: make([]bool, size),
		Visible:  make([]bool, size),
	}
}

// Index converts a coordinate to its linear tile index. The coordinate must be in bounds.
func (m *Map) Index(x, y int) int {
	return y*m.Width + x
}

// PointAt converts a linear tile index back to its coordinate.
func (m *Map) PointAt(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// InBounds returns true if the coordinate lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Dimensions returns the map width and height.
func (m *Map) Dimensions() (int, int) {
	return m.Width, m.Height
}

// Tile returns the tile at the given coordinate. Out-of-bounds coordinates read as walls.
func (m *Map) Tile(x, y int) TileType {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.Index(x, y)]
}

// IsOpaque returns true if the tile at (x, y) blocks sight.
func (m *Map) IsOpaque(x, y int) bool {
	return m.Tile(x, y).IsOpaque()
}

// IsPassable returns true if the tile at (x, y) can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	return m.Tile(x, y).IsPassable()
}

// IsRevealed returns true if the player has ever seen (x, y).
func (m *Map) IsRevealed(x, y int) bool {
	return m.InBounds(x, y) && m.Revealed[m.Index(x, y)]
}

// IsVisible returns true if the player can currently see (x, y).
func (m *Map) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[m.Index(x, y)]
}

// ClearVisible resets the current-visibility bitmap.
func (m *Map) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

// Reveal marks p as both visible now and revealed for good.
func (m *Map) Reveal(p Point) {
	idx := m.Index(p.X, p.Y)
	m.Visible[idx] = true
	m.Revealed[idx] = true
}

// Exits lists the neighbours reachable from a tile. Pathfinding is not implemented,
// so no tile has exits yet.
func (m *Map) Exits(idx int) []Exit {
	return nil
}

// PathingDistance is the heuristic distance between two tiles.
func (m *Map) PathingDistance(from, to int) float64 {
	return 1.0
}

// RoomIndexAt returns the index of the room whose interior contains (x, y), or -1.
func (m *Map) RoomIndexAt(x, y int) int {
	for i, room := range m.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (m *Map) setFloor(x, y int) {
	m.Tiles[m.Index(x, y)] = TileFloor
}
