package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/rng"
	"github.com/samdwyer/cavern/internal/telemetry"
)

// DefaultScatterWalls is the number of random walls dropped by GenerateScatter.
const DefaultScatterWalls = 400

// GenerateScatter builds an open map with a solid boundary and randomly placed walls.
// The centre tile is never walled. The whole map is recorded as a single room so that
// spawning treats it like any other layout. No guarantees that it won't look awful.
func GenerateScatter(ctx context.Context, width, height int, src *rng.Source, walls int) *Map {
	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.scatter")
	defer span.End()

	m := NewMap(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			m.setFloor(x, y)
		}
	}

	// Room spans the map border so its center is the map center
	m.Rooms = append(m.Rooms, NewRect(0, 0, width-1, height-1))
	cx, cy := m.Rooms[0].Center()
	centre := m.Index(cx, cy)

	placed := 0
	for i := 0; i < walls; i++ {
		x := src.RollDice(1, width-1)
		y := src.RollDice(1, height-1)
		if !m.InBounds(x, y) {
			continue
		}
		idx := m.Index(x, y)
		if idx == centre {
			continue
		}
		m.Tiles[idx] = TileWall
		placed++
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.walls", placed),
	)
	logger.Component("world").WithField("walls", placed).Info("scatter map generated")

	return m
}
