package systems

import (
	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/world"
)

// roomMap returns a width x height map with a single carved room.
func roomMap(width, height int, room world.Rect) *world.Map {
	m := world.NewMap(width, height)
	m.Rooms = append(m.Rooms, room)
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.Tiles[m.Index(x, y)] = world.TileFloor
		}
	}
	return m
}

// newResources builds a 10x10 single-room world with no entities.
func newResources() *Resources {
	return &Resources{
		Map:      roomMap(10, 10, world.NewRect(0, 0, 8, 8)),
		Entities: entity.NewWorld(),
	}
}

func addPlayer(res *Resources, x, y, viewRange int) entity.ID {
	id := res.Entities.Create()
	res.Entities.Players.Set(id, entity.Player{})
	res.Entities.Positions.Set(id, entity.Position{X: x, Y: y})
	res.Entities.Viewsheds.Set(id, entity.NewViewshed(viewRange))
	res.PlayerPos = world.Point{X: x, Y: y}
	return id
}

func addMonster(res *Resources, x, y, viewRange int) entity.ID {
	id := res.Entities.Create()
	res.Entities.Monsters.Set(id, entity.Monster{})
	res.Entities.Names.Set(id, "Goblin #0")
	res.Entities.Positions.Set(id, entity.Position{X: x, Y: y})
	res.Entities.Viewsheds.Set(id, entity.NewViewshed(viewRange))
	return id
}
