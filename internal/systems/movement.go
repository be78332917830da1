package systems

import (
	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/world"
)

// TryMove moves an entity by (dx, dy). The destination is clamped to the map and the
// move is rejected if it lands on a wall or does not change the position.
// On success the entity's viewshed becomes dirty and, for the player, PlayerPos follows.
func TryMove(res *Resources, id entity.ID, dx, dy int) bool {
	pos, ok := res.Entities.Positions.Get(id)
	if !ok {
		return false
	}

	m := res.Map
	destX := clamp(pos.X+dx, 0, m.Width-1)
	destY := clamp(pos.Y+dy, 0, m.Height-1)

	if destX == pos.X && destY == pos.Y {
		return false
	}
	if m.Tiles[m.Index(destX, destY)] == world.TileWall {
		return false
	}

	pos.X, pos.Y = destX, destY

	if vs, ok := res.Entities.Viewsheds.Get(id); ok {
		vs.Dirty = true
	}
	if res.Entities.Players.Has(id) {
		res.PlayerPos = pos.Point()
	}
	return true
}

// MovePlayer applies a movement intent to every player-controlled entity.
// It reports whether any of them moved.
func MovePlayer(res *Resources, intent Intent) bool {
	moved := false
	for _, id := range res.Entities.Players.IDs() {
		if TryMove(res, id, intent.DX, intent.DY) {
			moved = true
		}
	}
	res.Metrics.ObserveMove(moved)
	return moved
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
