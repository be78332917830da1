// Package world provides the tile map and dungeon generation.
package world

// TileType is the terrain kind of a single map tile.
type TileType uint8

const (
	// TileWall is an impassable, opaque tile.
	TileWall TileType = iota
	// TileFloor is a passable, transparent tile.
	TileFloor
)

// IsPassable returns true if the tile can be walked on.
func (t TileType) IsPassable() bool {
	return t == TileFloor
}

// IsOpaque returns true if the tile blocks sight.
func (t TileType) IsOpaque() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t TileType) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	default:
		return '#'
	}
}

// String returns a human-readable tile name.
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}
